package settings

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
)

// Window handles the settings UI. Saving routes the assembled
// configuration through onSave; a returned error (engine validation)
// keeps the window open and shows the message.
type Window struct {
	window fyne.Window
	config model.Config
	onSave func(model.Config) error

	workEntry   *widget.Entry
	shortEntry  *widget.Entry
	longEntry   *widget.Entry
	cyclesEntry *widget.Entry
	autoBreaks  *widget.Check
	autoWork    *widget.Check
}

// New creates a settings window pre-filled from config.
func New(app fyne.App, config model.Config, onSave func(model.Config) error) *Window {
	window := app.NewWindow("Pomodoro Settings")

	workEntry := widget.NewEntry()
	shortEntry := widget.NewEntry()
	longEntry := widget.NewEntry()
	cyclesEntry := widget.NewEntry()

	autoBreaks := widget.NewCheck("Auto-start breaks after work", nil)
	autoWork := widget.NewCheck("Auto-start work after breaks", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work"), workEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), shortEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), longEntry, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Cycles", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work sessions before a long break"), cyclesEntry),
		autoBreaks,
		autoWork,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 360))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	view := &Window{
		window:      window,
		config:      config,
		onSave:      onSave,
		workEntry:   workEntry,
		shortEntry:  shortEntry,
		longEntry:   longEntry,
		cyclesEntry: cyclesEntry,
		autoBreaks:  autoBreaks,
		autoWork:    autoWork,
	}
	view.UpdateConfig(config)

	saveButton.OnTapped = view.handleSave
	cancelButton.OnTapped = func() {
		view.UpdateConfig(view.config)
		window.Hide()
	}

	return view
}

// Show displays the settings window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// UpdateConfig replaces the form values.
func (view *Window) UpdateConfig(config model.Config) {
	view.config = config
	view.workEntry.SetText(fmt.Sprintf("%d", int(config.WorkDuration.Minutes())))
	view.shortEntry.SetText(fmt.Sprintf("%d", int(config.ShortBreakDuration.Minutes())))
	view.longEntry.SetText(fmt.Sprintf("%d", int(config.LongBreakDuration.Minutes())))
	view.cyclesEntry.SetText(fmt.Sprintf("%d", config.CyclesBeforeLongBreak))
	view.autoBreaks.SetChecked(config.AutoStartBreaks)
	view.autoWork.SetChecked(config.AutoStartWork)
}

func (view *Window) handleSave() {
	config := view.config

	if minutes, ok := parsePositiveInt(view.workEntry.Text); ok {
		config.WorkDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(view.shortEntry.Text); ok {
		config.ShortBreakDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(view.longEntry.Text); ok {
		config.LongBreakDuration = time.Duration(minutes) * time.Minute
	}
	if cycles, ok := parsePositiveInt(view.cyclesEntry.Text); ok {
		config.CyclesBeforeLongBreak = cycles
	}
	config.AutoStartBreaks = view.autoBreaks.Checked
	config.AutoStartWork = view.autoWork.Checked

	if view.onSave != nil {
		if err := view.onSave(config); err != nil {
			dialog.ShowError(err, view.window)
			return
		}
	}
	view.config = config
	view.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
