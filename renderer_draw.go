package atxt

import "github.com/tinne26/atxt/core"

// Draws laid out lines from the tinted atlas. Line i is placed i*lineHeight
// below y, horizontally shifted according to the align, direction and the
// width of the widest line.
func (self *Renderer) drawLines(target core.Target, atlas core.Surface, lines []Line, x, y, lineHeight float64, align Align, direction Direction) {
	drawFunc := self.drawFunc
	if drawFunc == nil { drawFunc = blitGlyph }

	maxWidth := maxLineWidth(lines)
	for lineIndex := range lines {
		line := &lines[lineIndex]
		shiftX := align.LineShift(line.Width, maxWidth, direction)
		shiftY := float64(lineIndex)*lineHeight
		for _, glyph := range line.Glyphs {
			if glyph.Width <= 0 || glyph.Height <= 0 { continue }
			glyphX := roundHalfUp(x + shiftX + glyph.X)
			glyphY := roundHalfUp(y + shiftY + glyph.Y)
			drawFunc(target, atlas, glyph, glyphX, glyphY)
		}
	}
}
