//go:build !cputext

package core

import _ "image"

import "github.com/hajimehoshi/ebiten/v2"

// Alias to allow compiling the package without Ebitengine (-tags cputext).
// 
// Without Ebitengine, [Target] defaults to [image/draw.Image].
type Target = *ebiten.Image

// A Surface is a recolored copy of a font atlas, ready to have glyph
// rectangles copied from it. Surfaces are created by the atlas cache,
// you rarely need to create them yourself.
// 
// Without Ebitengine, [Surface] defaults to [*image.RGBA], with the
// atlas origin always at (0, 0).
type Surface = *ebiten.Image
