package internal

import "image/color"

// Converts any color to premultiplied RGBA. Nil colors are
// treated as opaque black, the default text color.
func ToRGBA(clr color.Color) color.RGBA {
	if clr == nil { return color.RGBA{0, 0, 0, 255} }
	if rgba, isRGBA := clr.(color.RGBA); isRGBA { return rgba }
	r, g, b, a := clr.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
