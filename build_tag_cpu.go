//go:build cputext

package atxt

import "image"
import "reflect"
import "image/draw"

import "github.com/tinne26/atxt/core"

// Copies the glyph rectangle from the atlas to (x, y) on the target,
// composited over the existing content.
func blitGlyph(target core.Target, atlas core.Surface, glyph GlyphPlacement, x, y int) {
	rect := image.Rect(x, y, x + glyph.Width, y + glyph.Height)
	draw.Draw(target, rect, atlas, image.Pt(glyph.AtlasX, glyph.AtlasY), draw.Over)
}

// Reports whether the target is nil, including nil pointers wrapped
// in the draw.Image interface.
func isNilTarget(target core.Target) bool {
	if target == nil { return true }
	value := reflect.ValueOf(target)
	return value.Kind() == reflect.Pointer && value.IsNil()
}
