package atxt

import "strings"

import "github.com/tinne26/atxt/metrics"

// Determines what happens when the text contains characters that
// are not present in the font metrics. See [RendererAdvanced.SetGlyphMissPolicy]().
type GlyphMissPolicy uint8

const (
	GlyphMissFail GlyphMissPolicy = iota // return a [*MissingGlyphError] (default)
	GlyphMissSkip // ignore the character, as if it wasn't in the text
	GlyphMissFallback // use the fallback rune instead, fail if it's missing too (spaces only take its advance)
)

// Returns a textual representation of the policy.
func (self GlyphMissPolicy) String() string {
	switch self {
	case GlyphMissFail: return "GlyphMissFail"
	case GlyphMissSkip: return "GlyphMissSkip"
	case GlyphMissFallback: return "GlyphMissFallback"
	default:
		return "GlyphMissPolicyInvalid"
	}
}

// The placement of a single glyph within a [Line]: its source
// rectangle on the font atlas and its position relative to the
// line origin.
type GlyphPlacement struct {
	AtlasX, AtlasY int
	Width, Height int
	X, Y float64
}

// A laid out line of text. Width is the sum of the advances of all
// the line characters, spaces included.
type Line struct {
	Width float64
	Glyphs []GlyphPlacement
}

// Splits the text in lines and computes the width and glyph placements
// for each of them. Lines are split at '\n' only, and vertical stacking
// is left to the caller (see [Renderer.DrawText]()).
//
// Each character advances the line by its metrics advance plus one
// pixel. With [RTL] direction, advances and horizontal glyph offsets
// accumulate towards the left, but characters are still processed in
// source order.
//
// Any character not present in the metrics makes the function return
// a [*MissingGlyphError]. Renderers can be configured to skip missing
// glyphs or use a fallback instead through [RendererAdvanced.SetGlyphMissPolicy]().
func LayoutLines(text string, fontMetrics *metrics.FontMetrics, direction Direction, baseline Baseline) ([]Line, error) {
	var layouter lineLayouter
	return layouter.Layout(text, fontMetrics, direction, baseline)
}

type lineLayouter struct {
	missPolicy GlyphMissPolicy
	fallback rune
}

func (self *lineLayouter) Layout(text string, fontMetrics *metrics.FontMetrics, direction Direction, baseline Baseline) ([]Line, error) {
	if fontMetrics == nil { panic("nil font metrics") }

	factor := direction.Resolve(text).factor()
	shiftY := baseline.Shift(fontMetrics.Ascent, fontMetrics.Descent)
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	for lineIndex, part := range parts {
		var offset float64
		line := &lines[lineIndex]
		column := -1
		for _, char := range part {
			column += 1
			index := fontMetrics.IndexOf(char)
			if index == -1 {
				var err error
				index, err = self.resolveMiss(fontMetrics, char, lineIndex, column)
				if err != nil { return nil, err }
				if index == -1 { continue } // skipped
			}

			advance := fontMetrics.Advance[index] + 1
			if char == ' ' || fontMetrics.Chars[index] == ' ' {
				offset += advance*factor
				line.Width += advance
				continue
			}

			line.Glyphs = append(line.Glyphs, GlyphPlacement{
				AtlasX: fontMetrics.PackX[index],
				AtlasY: fontMetrics.PackY[index],
				Width: fontMetrics.Width[index],
				Height: fontMetrics.Height[index],
				X: offset + fontMetrics.OffsetX[index]*factor,
				Y: fontMetrics.OffsetY[index] + shiftY,
			})
			offset += advance*factor
			line.Width += advance
		}
	}
	return lines, nil
}

// Returns the glyph index to use for a missing character, -1 if the
// character must be skipped, or an error.
func (self *lineLayouter) resolveMiss(fontMetrics *metrics.FontMetrics, char rune, line, column int) (int, error) {
	switch self.missPolicy {
	case GlyphMissFail:
		// error below
	case GlyphMissSkip:
		return -1, nil
	case GlyphMissFallback:
		index := fontMetrics.IndexOf(self.fallback)
		if index != -1 { return index, nil }
	default:
		panic("invalid glyph miss policy '" + self.missPolicy.String() + "'")
	}
	return -1, &MissingGlyphError{ Font: fontMetrics.Name, Char: char, Line: line, Column: column }
}

// Returns the width of the widest line.
func maxLineWidth(lines []Line) float64 {
	if len(lines) == 0 { return 0 }
	width := lines[0].Width
	for i := 1; i < len(lines); i++ {
		width = max(width, lines[i].Width)
	}
	return width
}
