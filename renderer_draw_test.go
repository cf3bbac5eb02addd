//go:build cputext

package atxt

import "errors"
import "image"
import "image/color"
import "context"
import "testing"

import "github.com/tinne26/atxt/cache"
import "github.com/tinne26/atxt/core"

var testRed = color.RGBA{255, 0, 0, 255}

func newReadyRenderer(t *testing.T, colors ...color.Color) *Renderer {
	loader := cache.NewMapLoader()
	loader.Set(testAtlasPath, newTestAtlas())
	renderer := NewRenderer(loader)
	renderer.Fonts().Register("test", newTestMetrics(), testAtlasPath)
	err := renderer.Advanced().Preload(context.Background(), colors, "test")
	if err != nil { t.Fatal(err) }
	return renderer
}

type placement struct { x, y int ; glyph GlyphPlacement }

func recordPlacements(renderer *Renderer) *[]placement {
	var record []placement
	renderer.Advanced().SetDrawFunc(func(_ core.Target, _ core.Surface, glyph GlyphPlacement, x, y int) {
		record = append(record, placement{ x, y, glyph })
	})
	return &record
}

func TestDrawPixels(t *testing.T) {
	renderer := newReadyRenderer(t, testRed)
	target := image.NewRGBA(image.Rect(0, 0, 40, 30))
	err := renderer.DrawText(target, "H", 10, 20, "test", &DrawOptions{ Color: testRed })
	if err != nil { t.Fatal(err) }

	// 'H' is 6x7 with offset (0, -7): top-left at (10, 13)
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			inside := x >= 10 && x < 16 && y >= 13 && y < 20
			got := target.RGBAAt(x, y)
			if inside && got != testRed {
				exportAsPNG(t.Name() + ".png", target)
				t.Fatalf("expected red at (%d, %d), got %v", x, y, got)
			}
			if !inside && got != (color.RGBA{}) {
				exportAsPNG(t.Name() + ".png", target)
				t.Fatalf("expected transparent at (%d, %d), got %v", x, y, got)
			}
		}
	}
}

func TestDrawIdempotent(t *testing.T) {
	renderer := newReadyRenderer(t, nil)
	opts := &DrawOptions{ Align: Center, Baseline: Middle }
	text := "Hi H\n?i\n\nHH"

	targetA := image.NewRGBA(image.Rect(0, 0, 64, 64))
	targetB := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for _, target := range []*image.RGBA{targetA, targetB} {
		err := renderer.DrawText(target, text, 32, 10, "test", opts)
		if err != nil { t.Fatal(err) }
	}
	if !equalSlices(targetA.Pix, targetB.Pix) {
		exportAsPNG(t.Name() + "_a.png", targetA)
		exportAsPNG(t.Name() + "_b.png", targetB)
		t.Fatal("same draw call produced different results")
	}

	record := recordPlacements(renderer)
	_ = renderer.DrawText(targetA, text, 32, 10, "test", opts)
	first := append([]placement(nil), (*record)...)
	*record = (*record)[ : 0]
	_ = renderer.DrawText(targetA, text, 32, 10, "test", opts)
	if len(first) == 0 || len(first) != len(*record) { t.Fatal("unexpected number of placements") }
	for i := range first {
		if first[i] != (*record)[i] { t.Fatalf("placement %d differs between draws", i) }
	}
}

func TestDrawCenterMultiline(t *testing.T) {
	renderer := newReadyRenderer(t, nil)
	record := recordPlacements(renderer)
	err := renderer.DrawText(image.NewRGBA(image.Rect(0, 0, 1, 1)), "HH\nH", 50, 20, "test", &DrawOptions{ Align: Center })
	if err != nil { t.Fatal(err) }

	// widths 16 and 8: shifts -8 and (16 - 8)/2 - 8 = -4
	expected := []struct{ x, y int }{ {42, 13}, {50, 13}, {46, 25} }
	if len(*record) != len(expected) { t.Fatalf("expected %d glyphs, got %d", len(expected), len(*record)) }
	for i, pos := range expected {
		got := (*record)[i]
		if got.x != pos.x || got.y != pos.y {
			t.Fatalf("glyph %d: expected (%d, %d), got (%d, %d)", i, pos.x, pos.y, got.x, got.y)
		}
	}
}

func TestDrawRTLStart(t *testing.T) {
	renderer := newReadyRenderer(t, nil)
	record := recordPlacements(renderer)
	err := renderer.DrawText(image.NewRGBA(image.Rect(0, 0, 1, 1)), "Hi", 50, 20, "test", &DrawOptions{ Direction: RTL })
	if err != nil { t.Fatal(err) }

	// start resolves to right for RTL: shift -12, 'i' at -9 from origin
	if len(*record) != 2 { t.Fatalf("expected 2 glyphs, got %d", len(*record)) }
	if (*record)[0].x != 38 || (*record)[1].x != 29 {
		t.Fatalf("unexpected positions %d and %d", (*record)[0].x, (*record)[1].x)
	}
}

func TestDrawPendingAtlas(t *testing.T) {
	gate := make(chan struct{})
	defer close(gate)
	loader := cache.LoaderFunc(func(string) (image.Image, error) {
		<-gate
		return newTestAtlas(), nil
	})
	renderer := NewRenderer(loader)
	renderer.Fonts().Register("test", newTestMetrics(), testAtlasPath)
	record := recordPlacements(renderer)

	target := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for i := 0; i < 3; i++ {
		err := renderer.DrawText(target, "Hi", 5, 15, "test", nil)
		if err != nil { t.Fatal(err) }
	}
	if len(*record) != 0 { t.Fatal("nothing must be drawn while the atlas is pending") }
	if renderer.Advanced().Cache().NumEntries() != 1 { t.Fatal("expected a single pending atlas") }
}

func TestDrawFailedAtlas(t *testing.T) {
	renderer := newFailingRenderer()
	_ = renderer.Advanced().Preload(context.Background(), nil, "test")
	err := renderer.DrawText(image.NewRGBA(image.Rect(0, 0, 8, 8)), "Hi", 0, 0, "test", nil)
	if err == nil { t.Fatal("expected atlas error") }
}

func TestDrawTypedNilTarget(t *testing.T) {
	renderer := newFailingRenderer()
	var target *image.RGBA
	err := renderer.DrawText(target, "Hi", 0, 0, "test", nil)
	var surfaceErr *SurfaceCreationError
	if !errors.As(err, &surfaceErr) { t.Fatalf("expected SurfaceCreationError, got %v", err) }
	if renderer.Advanced().Cache().NumEntries() != 0 {
		t.Fatal("nil targets must not request atlases")
	}
}

func TestDrawMissingGlyphNoAtlas(t *testing.T) {
	renderer := newFailingRenderer()
	target := image.NewRGBA(image.Rect(0, 0, 8, 8))
	err := renderer.DrawText(target, "Hx", 0, 0, "test", nil)
	var missErr *MissingGlyphError
	if !errors.As(err, &missErr) { t.Fatalf("expected MissingGlyphError, got %v", err) }
	if renderer.Advanced().Cache().NumEntries() != 0 {
		t.Fatal("failed layouts must not request atlases")
	}
}
