package atxt

// This file sets up the test font used across the package tests
// and provides some helper methods.

import "os"
import "image"
import "image/png"
import "image/color"

import "github.com/tinne26/atxt/metrics"

// Test font: ' ', 'H', 'i' and '?' with ascent 8, descent -2 and
// line height 12. Glyphs are solid white rectangles on the atlas.
func newTestMetrics() *metrics.FontMetrics {
	return &metrics.FontMetrics{
		Name: "test",
		Size: 12,
		Ascent: 8,
		Descent: -2,
		CharCount: 4,
		Chars:   []rune{' ', 'H', 'i', '?'},
		Advance: []float64{3, 7, 3, 5},
		OffsetX: []float64{0, 0, 1, 0},
		OffsetY: []float64{0, -7, -7, -7},
		Width:   []int{0, 6, 1, 4},
		Height:  []int{0, 7, 7, 7},
		PackX:   []int{0, 1, 8, 10},
		PackY:   []int{0, 1, 1, 1},
	}
}

const testAtlasPath = "/test/atlas.png"

func newTestAtlas() *image.NRGBA {
	fontMetrics := newTestMetrics()
	atlas := image.NewNRGBA(image.Rect(0, 0, 16, 9))
	white := color.NRGBA{255, 255, 255, 255}
	for i := range fontMetrics.Chars {
		x0, y0 := fontMetrics.PackX[i], fontMetrics.PackY[i]
		for y := y0; y < y0 + fontMetrics.Height[i]; y++ {
			for x := x0; x < x0 + fontMetrics.Width[i]; x++ {
				atlas.SetNRGBA(x, y, white)
			}
		}
	}
	return atlas
}

// --- helpers ---

func exportAsPNG(filename string, img image.Image) {
	file, err := os.Create(filename)
	if err != nil { panic(err) }
	err = png.Encode(file, img)
	if err != nil { panic(err) }
	err = file.Close()
	if err != nil { panic(err) }
}

func equalSlices(a, b []byte) bool {
	if len(a) != len(b) { return false }
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] { return false }
	}
	return true
}

func sumAdvances(fontMetrics *metrics.FontMetrics, text string) float64 {
	var width float64
	for _, char := range text {
		width += fontMetrics.Advance[fontMetrics.IndexOf(char)] + 1
	}
	return width
}
