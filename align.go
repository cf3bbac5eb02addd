package atxt

import "strconv"

// Aligns tell a [Renderer] how to place each line horizontally relative
// to the x coordinate passed to [Renderer.DrawText]().
//
// The model follows the canvas 2D text API: [Start] and [End] depend
// on the text [Direction], while [Left], [Center] and [Right] don't.
// For multiline text, lines are aligned against the widest line:
//   Left:    Center:    Right:
//   x-----     --x-      -----x
//   x--------  ---x----   ----x
//   x----       -x--     -----x
type Align uint8

const (
	Start  Align = iota // Left for LTR text, Right for RTL text (default)
	End // Right for LTR text, Left for RTL text
	Left
	Center
	Right
)

// Returns the horizontal shift to apply to a line of the given width,
// with maxWidth being the width of the widest line in the text.
//
// The result is always zero or negative, as shifts are relative to
// the origin of the text.
func (self Align) LineShift(lineWidth, maxWidth float64, direction Direction) float64 {
	switch self.effective(direction) {
	case Left:
		return 0
	case Center:
		return (maxWidth - lineWidth)/2 - maxWidth/2
	case Right:
		return -lineWidth
	default:
		panic(brokenCode)
	}
}

// Resolves Start and End for the given direction. The result
// is always Left, Center or Right.
func (self Align) effective(direction Direction) Align {
	switch self {
	case Start:
		if direction == RTL { return Right }
		return Left
	case End:
		if direction == RTL { return Left }
		return Right
	case Left, Center, Right:
		return self
	default:
		panic("invalid align '" + self.String() + "'")
	}
}

// Returns a textual representation of the align.
func (self Align) String() string {
	switch self {
	case Start: return "Start"
	case End: return "End"
	case Left: return "Left"
	case Center: return "Center"
	case Right: return "Right"
	default:
		return "AlignInvalid#" + strconv.Itoa(int(self))
	}
}
