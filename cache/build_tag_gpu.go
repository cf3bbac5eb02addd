//go:build !cputext

package cache

import "image"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/atxt/core"

// Copies the atlas into a new image and then fills it with the tint
// color using source-in blending, which keeps the atlas alpha and
// replaces its color.
func tint(source image.Image, rgba color.RGBA) (core.Surface, error) {
	bounds := source.Bounds()
	if bounds.Empty() {
		return nil, &core.SurfaceCreationError{ Reason: "empty atlas image" }
	}

	width, height := bounds.Dx(), bounds.Dy()
	surface := ebiten.NewImage(width, height)
	surface.DrawImage(ebiten.NewImageFromImage(source), nil)

	fill := ebiten.NewImage(width, height)
	fill.Fill(rgba)
	var opts ebiten.DrawImageOptions
	opts.Blend = ebiten.BlendSourceIn
	surface.DrawImage(fill, &opts)
	return surface, nil
}
