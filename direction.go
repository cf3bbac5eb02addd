package atxt

import "strconv"

import "golang.org/x/text/unicode/bidi"

// Determines the writing direction of the text. See [DrawOptions].
//
// Direction only changes how horizontal advances accumulate and how
// [Start] and [End] aligns are resolved. Glyphs are never mirrored
// nor reordered: text is always laid out in source order.
type Direction uint8

const (
	LTR Direction = iota // left to right (default)
	RTL // right to left
	DirAuto // RTL if the first strong character is RTL, LTR otherwise
)

// Returns [LTR] or [RTL]. For [DirAuto], the direction is detected
// from the given text with [DetectDirection]().
func (self Direction) Resolve(text string) Direction {
	switch self {
	case LTR, RTL: return self
	case DirAuto: return DetectDirection(text)
	default:
		panic("invalid direction '" + self.String() + "'")
	}
}

// Returns the direction of the first character with a strong bidi
// class in the text. Text without strong characters is [LTR].
func DetectDirection(text string) Direction {
	for i := 0; i < len(text); {
		props, size := bidi.LookupString(text[i : ])
		switch props.Class() {
		case bidi.L: return LTR
		case bidi.R, bidi.AL: return RTL
		}
		if size <= 0 { break }
		i += size
	}
	return LTR
}

func (self Direction) factor() float64 {
	if self == RTL { return -1 }
	return +1
}

// Returns a textual representation of the direction.
func (self Direction) String() string {
	switch self {
	case LTR: return "LTR"
	case RTL: return "RTL"
	case DirAuto: return "DirAuto"
	default:
		return "DirectionInvalid#" + strconv.Itoa(int(self))
	}
}
