// The bake package converts ggfnt bitmap fonts into the font metrics
// and atlas images used by atxt renderers. Baking is typically done
// offline, writing the results with [Result.Encode](), but it's also
// possible to bake fonts at startup and register them directly with
// [Result.Register]().
package bake

import "io"
import "fmt"
import "image"
import "image/png"
import "image/color"

import "github.com/tinne26/ggfnt"

import "github.com/tinne26/atxt"
import "github.com/tinne26/atxt/cache"
import "github.com/tinne26/atxt/metrics"

// Empty pixels around each glyph on baked atlases.
const Padding = 1

// A baked font: metrics and a white atlas whose alpha channel holds
// the glyph masks.
type Result struct {
	Metrics *metrics.FontMetrics
	Atlas *image.NRGBA
}

// Bakes the given characters from the font. Line breaks and repeated
// characters are ignored. Characters not mapped by the font make the
// function fail.
//
// Glyph advances already include the font's horizontal interspacing,
// and the font's line height is used as the metrics size.
func FromFont(font *ggfnt.Font, chars string) (*Result, error) {
	if font == nil { panic("nil font") }

	settings := ggfnt.NewSettingsCache(font).UnsafeSlice()
	interspacing := int(font.Metrics().HorzInterspacing())
	glyphs := make([]Glyph, 0, len(chars))
	seen := make(map[rune]struct{}, len(chars))
	for _, char := range chars {
		if char == '\n' { continue }
		if _, found := seen[char]; found { continue }
		seen[char] = struct{}{}

		group, found := font.Mapping().Utf8(char, settings)
		if !found || group.Size() == 0 {
			return nil, fmt.Errorf("font doesn't map character '%c' (%U)", char, char)
		}
		glyphIndex := group.Select(0)
		glyph := Glyph{
			Char: char,
			Advance: float64(int(font.Glyphs().Advance(glyphIndex)) + interspacing - 1),
		}
		mask := font.Glyphs().RasterizeMask(glyphIndex)
		if mask != nil && !mask.Bounds().Empty() {
			glyph.Mask = mask
			glyph.OffsetX = mask.Bounds().Min.X
			glyph.OffsetY = mask.Bounds().Min.Y
		}
		glyphs = append(glyphs, glyph)
	}

	ascent  := float64(font.Metrics().Ascent())
	descent := -float64(font.Metrics().Descent())
	size    := float64(font.Metrics().LineHeight())
	return FromGlyphs(ascent, descent, size, glyphs)
}

// Packs the glyphs into an atlas and builds the matching metrics.
// The metrics name is left empty.
func FromGlyphs(ascent, descent, size float64, glyphs []Glyph) (*Result, error) {
	if size <= 0 { return nil, fmt.Errorf("invalid font size %v", size) }

	positions, atlasSize := Pack(glyphs, Padding)
	atlas := image.NewNRGBA(image.Rectangle{ Max: atlasSize })
	numGlyphs := len(glyphs)
	fontMetrics := &metrics.FontMetrics{
		Size: size,
		Ascent: ascent,
		Descent: descent,
		CharCount: numGlyphs,
		Chars:   make([]rune, numGlyphs),
		Advance: make([]float64, numGlyphs),
		OffsetX: make([]float64, numGlyphs),
		OffsetY: make([]float64, numGlyphs),
		Width:   make([]int, numGlyphs),
		Height:  make([]int, numGlyphs),
		PackX:   make([]int, numGlyphs),
		PackY:   make([]int, numGlyphs),
	}
	for i := range glyphs {
		glyph := &glyphs[i]
		width, height := glyph.Size()
		fontMetrics.Chars[i] = glyph.Char
		fontMetrics.Advance[i] = glyph.Advance
		fontMetrics.OffsetX[i] = float64(glyph.OffsetX)
		fontMetrics.OffsetY[i] = float64(glyph.OffsetY)
		fontMetrics.Width[i] = width
		fontMetrics.Height[i] = height
		fontMetrics.PackX[i] = positions[i].X
		fontMetrics.PackY[i] = positions[i].Y
		if width > 0 && height > 0 {
			copyMask(atlas, glyph.Mask, positions[i])
		}
	}

	err := fontMetrics.Validate()
	if err != nil { return nil, err }
	return &Result{ Metrics: fontMetrics, Atlas: atlas }, nil
}

func copyMask(atlas *image.NRGBA, mask *image.Alpha, at image.Point) {
	bounds := mask.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			alpha := mask.AlphaAt(x, y).A
			if alpha == 0 { continue }
			atX, atY := at.X + x - bounds.Min.X, at.Y + y - bounds.Min.Y
			atlas.SetNRGBA(atX, atY, color.NRGBA{255, 255, 255, alpha})
		}
	}
}

// Writes the metrics as JSON and the atlas as PNG.
func (self *Result) Encode(metricsOut, atlasOut io.Writer) error {
	err := metrics.Encode(metricsOut, self.Metrics)
	if err != nil { return err }
	return png.Encode(atlasOut, self.Atlas)
}

// Sets the metrics name, stores the atlas on the loader and registers
// the font on the renderer. The renderer must have been created with
// the same loader. Returns the atlas path used.
func (self *Result) Register(renderer *atxt.Renderer, name string, loader *cache.MapLoader) string {
	atlasPath := "bake/" + name + ".png"
	self.Metrics.Name = name
	loader.Set(atlasPath, self.Atlas)
	renderer.Fonts().Register(name, self.Metrics, atlasPath)
	return atlasPath
}
