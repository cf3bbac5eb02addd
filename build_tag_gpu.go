//go:build !cputext

package atxt

import "image"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/atxt/core"

// Copies the glyph rectangle from the atlas to (x, y) on the target,
// with regular source over blending.
func blitGlyph(target core.Target, atlas core.Surface, glyph GlyphPlacement, x, y int) {
	rect := image.Rect(glyph.AtlasX, glyph.AtlasY, glyph.AtlasX + glyph.Width, glyph.AtlasY + glyph.Height)
	var opts ebiten.DrawImageOptions
	opts.GeoM.Translate(float64(x), float64(y))
	target.DrawImage(atlas.SubImage(rect).(*ebiten.Image), &opts)
}

func isNilTarget(target core.Target) bool {
	return target == nil
}
