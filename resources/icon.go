// Package resources provides the application artwork. No binary assets
// are shipped; the tomato icon is rendered once at first use.
package resources

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
)

const iconSize = 128

var (
	iconOnce sync.Once
	iconRes  fyne.Resource
	iconErr  error
)

// AppIcon returns the rendered application icon.
func AppIcon() (fyne.Resource, error) {
	iconOnce.Do(func() {
		data, err := renderTomato(iconSize)
		if err != nil {
			iconErr = fmt.Errorf("render app icon: %w", err)
			return
		}
		iconRes = fyne.NewStaticResource("pomodoro.png", data)
	})
	return iconRes, iconErr
}

// MustAppIcon returns the application icon or panics on error.
func MustAppIcon() fyne.Resource {
	resource, err := AppIcon()
	if err != nil {
		panic(err)
	}
	return resource
}

// renderTomato draws a round tomato body with a leaf tuft and encodes
// it as PNG.
func renderTomato(size int) ([]byte, error) {
	var (
		body = color.NRGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF}
		leaf = color.NRGBA{R: 0x2E, G: 0xCC, B: 0x71, A: 0xFF}
	)

	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	// Body: circle in the lower two thirds.
	bodyCX := float64(size) / 2
	bodyCY := float64(size) * 0.58
	bodyR := float64(size) * 0.38
	fillCircle(img, bodyCX, bodyCY, bodyR, body)

	// Leaves: three small circles fanned above the body.
	leafR := float64(size) * 0.10
	leafY := float64(size) * 0.20
	fillCircle(img, bodyCX, leafY, leafR, leaf)
	fillCircle(img, bodyCX-leafR*1.6, leafY+leafR*0.7, leafR, leaf)
	fillCircle(img, bodyCX+leafR*1.6, leafY+leafR*0.7, leafR, leaf)

	var buffer bytes.Buffer
	if err := png.Encode(&buffer, img); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func fillCircle(img *image.NRGBA, centerX, centerY, radius float64, fill color.NRGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dx := float64(x) + 0.5 - centerX
			dy := float64(y) + 0.5 - centerY
			if dx*dx+dy*dy <= radius*radius {
				img.SetNRGBA(x, y, fill)
			}
		}
	}
}
