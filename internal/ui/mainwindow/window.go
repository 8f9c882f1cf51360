package mainwindow

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
)

var (
	workColor  = color.NRGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF}
	breakColor = color.NRGBA{R: 0x27, G: 0xAE, B: 0x60, A: 0xFF}
)

// Callbacks defines the user intents emitted by the timer view.
type Callbacks struct {
	OnStartStop func()
	OnPause     func()
	OnReset     func()
	OnSettings  func()
	OnHistory   func()
	OnClosed    func()
}

// Window is the main timer view. It renders engine snapshots and never
// mutates engine state directly.
type Window struct {
	window fyne.Window

	kindLabel   *widget.Label
	clockText   *canvas.Text
	progressBar *widget.ProgressBar
	cycleLabel  *widget.Label
	countLabel  *widget.Label

	startButton *widget.Button
	pauseButton *widget.Button
}

// New creates the main window with the provided intent callbacks.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("Pomodoro Timer")

	kindLabel := widget.NewLabelWithStyle("Work Session", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	clockText := canvas.NewText("25:00", workColor)
	clockText.TextSize = 64
	clockText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	clockText.Alignment = fyne.TextAlignCenter

	progressBar := widget.NewProgressBar()
	progressBar.TextFormatter = func() string { return "" }

	cycleLabel := widget.NewLabelWithStyle("Cycle 1 of 4", fyne.TextAlignCenter, fyne.TextStyle{})
	countLabel := widget.NewLabelWithStyle("Completed today: 0 work, 0 breaks", fyne.TextAlignCenter, fyne.TextStyle{})

	startButton := widget.NewButton("Start", func() {
		if callbacks.OnStartStop != nil {
			callbacks.OnStartStop()
		}
	})
	startButton.Importance = widget.HighImportance

	pauseButton := widget.NewButton("Pause", func() {
		if callbacks.OnPause != nil {
			callbacks.OnPause()
		}
	})
	pauseButton.Disable()

	resetButton := widget.NewButton("Reset", func() {
		if callbacks.OnReset != nil {
			callbacks.OnReset()
		}
	})

	settingsButton := widget.NewButton("Settings", func() {
		if callbacks.OnSettings != nil {
			callbacks.OnSettings()
		}
	})
	historyButton := widget.NewButton("History", func() {
		if callbacks.OnHistory != nil {
			callbacks.OnHistory()
		}
	})

	content := container.NewVBox(
		kindLabel,
		clockText,
		progressBar,
		cycleLabel,
		countLabel,
		container.NewGridWithColumns(3, startButton, pauseButton, resetButton),
		container.NewGridWithColumns(2, settingsButton, historyButton),
	)

	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(380, 420))
	window.SetFixedSize(true)
	window.SetMaster()
	window.SetOnClosed(func() {
		if callbacks.OnClosed != nil {
			callbacks.OnClosed()
		}
	})

	return &Window{
		window:      window,
		kindLabel:   kindLabel,
		clockText:   clockText,
		progressBar: progressBar,
		cycleLabel:  cycleLabel,
		countLabel:  countLabel,
		startButton: startButton,
		pauseButton: pauseButton,
	}
}

// Show displays the main window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Render updates every widget from a snapshot. Must run on the UI
// thread (wrap in fyne.Do when called from an engine notification).
func (view *Window) Render(snapshot model.Snapshot) {
	session := snapshot.Session

	view.kindLabel.SetText(session.Kind.Title())

	view.clockText.Text = model.FormatClock(session.Remaining)
	if session.Kind.IsBreak() {
		view.clockText.Color = breakColor
	} else {
		view.clockText.Color = workColor
	}
	view.clockText.Refresh()

	view.progressBar.SetValue(snapshot.Progress())
	view.cycleLabel.SetText(fmt.Sprintf("Cycle %d of %d", session.Cycle, session.TotalCycles))
	view.countLabel.SetText(fmt.Sprintf("Completed today: %d work, %d breaks",
		session.CompletedWorkSessions, session.CompletedBreakSessions))

	switch session.RunState {
	case model.RunRunning:
		view.startButton.SetText("Stop")
		view.pauseButton.SetText("Pause")
		view.pauseButton.Enable()
	case model.RunPaused:
		view.startButton.SetText("Start")
		view.pauseButton.SetText("Resume")
		view.pauseButton.Enable()
	default:
		view.startButton.SetText("Start")
		view.pauseButton.SetText("Pause")
		view.pauseButton.Disable()
	}
}
