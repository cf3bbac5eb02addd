package atxt

import "strconv"

// Baselines determine which part of the text the y coordinate passed
// to [Renderer.DrawText]() refers to. Names follow the canvas 2D text
// API, but the shifts are computed only from the font's ascent and
// descent, so some of them are approximations:
//  - [Top]: y is the top of the ascent.
//  - [Hanging]: y is at ascent + descent below the baseline. For fonts
//    with negative descents, that's slightly below the top.
//  - [Middle]: halfway between the baseline and the hanging position.
//  - [Alphabetic] and [Ideographic]: y is the baseline (default).
//  - [Bottom]: y is the bottom of the descent.
type Baseline uint8

const (
	Alphabetic Baseline = iota
	Top
	Hanging
	Middle
	Ideographic
	Bottom
)

// Returns the vertical offset to apply to glyphs positioned relative
// to the baseline, given the font's ascent and (typically negative)
// descent.
func (self Baseline) Shift(ascent, descent float64) float64 {
	switch self {
	case Top: return ascent
	case Hanging: return ascent + descent
	case Middle: return (ascent + descent)/2
	case Bottom: return descent
	case Alphabetic, Ideographic: return 0
	default:
		panic("invalid baseline '" + self.String() + "'")
	}
}

// Returns a textual representation of the baseline.
func (self Baseline) String() string {
	switch self {
	case Alphabetic: return "Alphabetic"
	case Top: return "Top"
	case Hanging: return "Hanging"
	case Middle: return "Middle"
	case Ideographic: return "Ideographic"
	case Bottom: return "Bottom"
	default:
		return "BaselineInvalid#" + strconv.Itoa(int(self))
	}
}
