package atxt

import "strconv"

import "github.com/tinne26/atxt/core"

// Returned when drawing or measuring with a font name that hasn't
// been registered. See [RendererFonts.Register]().
type FontNotFoundError struct {
	Name string
}

func (self *FontNotFoundError) Error() string {
	return "font '" + self.Name + "' not found"
}

// Returned when text contains a character that's not present in the
// font metrics and the [GlyphMissPolicy] doesn't allow skipping it.
// Line and Column are zero-based, with Column counted in runes.
type MissingGlyphError struct {
	Font string // metrics name
	Char rune
	Line int
	Column int
}

func (self *MissingGlyphError) Error() string {
	return "font '" + self.Font + "' has no glyph for " + strconv.QuoteRune(self.Char) +
		" (line " + strconv.Itoa(self.Line) + ", column " + strconv.Itoa(self.Column) + ")"
}

// Returned when the drawing target is nil or a tinted atlas surface
// can't be created. Alias of [core.SurfaceCreationError].
type SurfaceCreationError = core.SurfaceCreationError
