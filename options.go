package atxt

import "strings"
import "strconv"
import "image/color"

import "golang.org/x/image/colornames"

// Per-call options for [Renderer.DrawText]() and [Renderer.Measure]().
// The zero value (and nil) gives black text with [Start] align,
// [Alphabetic] baseline and [LTR] direction.
type DrawOptions struct {
	Color color.Color // nil for black
	Align Align
	Baseline Baseline
	Direction Direction
}

var defaultDrawOptions DrawOptions

func (self *DrawOptions) orDefault() *DrawOptions {
	if self == nil { return &defaultDrawOptions }
	return self
}

// Parses a CSS-like color string: "#rgb", "#rgba", "#rrggbb",
// "#rrggbbaa", "transparent" or an SVG 1.1 color name ("black",
// "crimson"...). The result is premultiplied.
func ParseColor(str string) (color.RGBA, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	if str == "transparent" { return color.RGBA{}, nil }
	if !strings.HasPrefix(str, "#") {
		rgba, found := colornames.Map[str]
		if !found { return color.RGBA{}, &colorParseError{str} }
		return rgba, nil
	}

	hex := str[1 : ]
	switch len(hex) {
	case 3, 4: // expand short form
		var builder strings.Builder
		for _, digit := range hex {
			builder.WriteRune(digit)
			builder.WriteRune(digit)
		}
		hex = builder.String()
	case 6, 8:
		// already in long form
	default:
		return color.RGBA{}, &colorParseError{str}
	}
	if len(hex) == 6 { hex += "ff" }

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil { return color.RGBA{}, &colorParseError{str} }
	nrgba := color.NRGBA{
		R: uint8(value >> 24),
		G: uint8(value >> 16),
		B: uint8(value >> 8),
		A: uint8(value),
	}
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}

// Like [ParseColor](), but panics on invalid input. Useful for
// color constants.
func MustParseColor(str string) color.RGBA {
	rgba, err := ParseColor(str)
	if err != nil { panic(err) }
	return rgba
}

type colorParseError struct { str string }
func (self *colorParseError) Error() string {
	return "invalid color '" + self.str + "'"
}
