package splash

import (
	"context"
	"image/color"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	splashWidth   = 360
	splashHeight  = 280
	frameInterval = 50 * time.Millisecond
	pulsePeriod   = 1200 * time.Millisecond
)

var (
	backgroundColor = color.NRGBA{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF}
	tomatoColor     = color.NRGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF}
	leafColor       = color.NRGBA{R: 0x2E, G: 0xCC, B: 0x71, A: 0xFF}
	titleColor      = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	trackColor      = color.NRGBA{R: 0x3D, G: 0x56, B: 0x6E, A: 0xFF}
)

// Splash is the startup splash window: a pulsing tomato above a loading
// bar, shown for a fixed duration before handing off to the main view.
type Splash struct {
	window fyne.Window
	cancel context.CancelFunc
}

// Show displays the splash and invokes onDone on the UI thread once the
// duration elapses (or immediately after Close).
func Show(app fyne.App, duration time.Duration, onDone func()) *Splash {
	var window fyne.Window
	if drv, ok := app.Driver().(desktop.Driver); ok {
		window = drv.CreateSplashWindow()
	} else {
		window = app.NewWindow("Pomodoro Timer")
	}

	background := canvas.NewRectangle(backgroundColor)
	background.Resize(fyne.NewSize(splashWidth, splashHeight))

	body := canvas.NewCircle(tomatoColor)
	leaves := []*canvas.Circle{
		canvas.NewCircle(leafColor),
		canvas.NewCircle(leafColor),
		canvas.NewCircle(leafColor),
	}

	title := canvas.NewText("Pomodoro Timer", titleColor)
	title.TextSize = 22
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter
	title.Move(fyne.NewPos(0, splashHeight-70))
	title.Resize(fyne.NewSize(splashWidth, 30))

	track := canvas.NewRectangle(trackColor)
	track.Move(fyne.NewPos(40, splashHeight-28))
	track.Resize(fyne.NewSize(splashWidth-80, 6))

	fill := canvas.NewRectangle(tomatoColor)
	fill.Move(fyne.NewPos(40, splashHeight-28))
	fill.Resize(fyne.NewSize(0, 6))

	objects := []fyne.CanvasObject{background, body}
	for _, leafCircle := range leaves {
		objects = append(objects, leafCircle)
	}
	objects = append(objects, title, track, fill)

	window.SetContent(container.NewWithoutLayout(objects...))
	window.Resize(fyne.NewSize(splashWidth, splashHeight))
	window.CenterOnScreen()

	layoutTomato(body, leaves, 1)
	window.Show()

	ctx, cancel := context.WithCancel(context.Background())
	splash := &Splash{window: window, cancel: cancel}

	go splash.run(ctx, duration, body, leaves, fill, onDone)
	return splash
}

// Close cancels the animation and dismisses the splash early.
func (splash *Splash) Close() {
	splash.cancel()
}

func (splash *Splash) run(ctx context.Context, duration time.Duration, body *canvas.Circle, leaves []*canvas.Circle, fill *canvas.Rectangle, onDone func()) {
	start := time.Now()
	for {
		if !sleepWithContext(ctx, frameInterval) {
			break
		}
		elapsed := time.Since(start)
		if elapsed >= duration {
			break
		}

		phase := float64(elapsed%pulsePeriod) / float64(pulsePeriod)
		pulse := 1 + 0.06*math.Sin(2*math.Pi*phase)
		progress := float32(elapsed) / float32(duration)

		fyne.Do(func() {
			layoutTomato(body, leaves, float32(pulse))
			fill.Resize(fyne.NewSize((splashWidth-80)*progress, 6))
			fill.Refresh()
		})
	}

	fyne.Do(func() {
		splash.window.Close()
		if onDone != nil {
			onDone()
		}
	})
}

// layoutTomato positions the tomato body and leaf tuft around the
// splash center, scaled by the pulse factor.
func layoutTomato(body *canvas.Circle, leaves []*canvas.Circle, pulse float32) {
	const (
		centerX = float32(splashWidth) / 2
		centerY = float32(splashHeight)/2 - 25
	)
	bodyRadius := 55 * pulse
	body.Move(fyne.NewPos(centerX-bodyRadius, centerY-bodyRadius+12))
	body.Resize(fyne.NewSize(bodyRadius*2, bodyRadius*2))
	body.Refresh()

	leafRadius := 14 * pulse
	offsets := [][2]float32{{0, -1.1}, {-1.4, -0.75}, {1.4, -0.75}}
	for i, leafCircle := range leaves {
		leafX := centerX + offsets[i][0]*leafRadius*1.4
		leafY := centerY + offsets[i][1]*bodyRadius
		leafCircle.Move(fyne.NewPos(leafX-leafRadius, leafY-leafRadius))
		leafCircle.Resize(fyne.NewSize(leafRadius*2, leafRadius*2))
		leafCircle.Refresh()
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
