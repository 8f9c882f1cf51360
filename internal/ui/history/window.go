package history

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
)

// Window shows lifetime totals and today's completed sessions. It is a
// pure consumer of a statistics copy taken at open time.
type Window struct {
	window fyne.Window
}

// New creates a history window over a statistics snapshot.
func New(app fyne.App, stats model.Statistics) *Window {
	window := app.NewWindow("Session History")

	summary := container.NewGridWithColumns(3,
		statBox("Total Sessions", fmt.Sprintf("%d", stats.SessionsCompleted)),
		statBox("Work Time", fmt.Sprintf("%.1fh", stats.TotalWorkTime.Hours())),
		statBox("Break Time", fmt.Sprintf("%.1fh", stats.TotalBreakTime.Hours())),
	)

	entries := stats.TodaySessions
	sessionList := widget.NewList(
		func() int { return len(entries) },
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewLabel("00:00"),
				widget.NewLabelWithStyle("Work", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
				widget.NewLabel("25 min"),
			)
		},
		func(index widget.ListItemID, item fyne.CanvasObject) {
			entry := entries[index]
			row := item.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(entry.Timestamp.Format("15:04"))
			row.Objects[1].(*widget.Label).SetText(kindTitle(entry.Kind))
			row.Objects[2].(*widget.Label).SetText(fmt.Sprintf("%d min", int(entry.Duration.Minutes())))
		},
	)

	header := widget.NewLabelWithStyle(
		fmt.Sprintf("Today's Sessions (%d)", len(entries)),
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true},
	)

	var body fyne.CanvasObject = sessionList
	if len(entries) == 0 {
		body = container.NewCenter(widget.NewLabel("No sessions completed today yet."))
	}

	window.SetContent(container.NewBorder(
		container.NewVBox(summary, widget.NewSeparator(), header),
		nil, nil, nil,
		body,
	))
	window.Resize(fyne.NewSize(460, 520))

	return &Window{window: window}
}

// Show displays the history window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

func statBox(title, value string) fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabelWithStyle(value, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{}),
	)
}

func kindTitle(kind model.LogKind) string {
	if kind == model.LogBreak {
		return "Break"
	}
	return "Work"
}
