//go:build cputext

package cache

import "image"
import "image/draw"
import "image/color"

import "github.com/tinne26/atxt/core"

// Without Ebitengine, DrawMask with a uniform source and the source
// image as the mask is exactly a source-in composite: alpha from the
// atlas, color from the tint.
func tint(source image.Image, rgba color.RGBA) (core.Surface, error) {
	bounds := source.Bounds()
	if bounds.Empty() {
		return nil, &core.SurfaceCreationError{ Reason: "empty atlas image" }
	}

	surface := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	fill := image.NewUniform(rgba)
	draw.DrawMask(surface, surface.Rect, fill, image.Point{}, source, bounds.Min, draw.Src)
	return surface, nil
}
