// The metrics package defines the data model for pre-baked bitmap
// font atlases: per-glyph advances, offsets and atlas rectangles,
// computed offline by a font baking tool.
//
// The field layout follows the external record format exactly, so
// metrics files can be decoded directly with [Decode]().
package metrics

import "fmt"
import "sync"

// Metrics for a single bitmap font atlas.
//
// Per-glyph data is stored as parallel slices indexed by glyph:
// Chars[i] is the character code for glyph i, Advance[i] its horizontal
// advance, and so on. All per-glyph slices are expected to have CharCount
// elements, and Chars values are expected to be unique. None of this is
// enforced unless [FontMetrics.Validate]() is called explicitly.
//
// Atlas rectangles (Width, Height, PackX, PackY) are whole pixels.
// [Decode]() truncates fractional values found on metrics files.
//
// Metrics must not be modified after the first call to
// [FontMetrics.IndexOf]().
type FontMetrics struct {
	Name    string  `json:"name"`
	Size    float64 `json:"size"`    // line height
	Ascent  float64 `json:"ascent"`  // baseline to top, positive
	Descent float64 `json:"descent"` // baseline to bottom, typically negative

	CharCount    int `json:"char_count"`
	KerningCount int `json:"kerning_count"`

	Chars   []rune    `json:"chars"`
	Advance []float64 `json:"advance"`
	OffsetX []float64 `json:"offset_x"`
	OffsetY []float64 `json:"offset_y"`
	Width   []int     `json:"width"`
	Height  []int     `json:"height"`
	PackX   []int     `json:"pack_x"`
	PackY   []int     `json:"pack_y"`

	// Accepted for format compatibility. Layout doesn't use it.
	Kerning []float64 `json:"kerning"`

	indexOnce sync.Once
	index map[rune]int
}

// Returns the glyph index for the given character code, or -1 if
// the font doesn't contain it. If the same code appears more than
// once, the first index is returned.
//
// Safe for concurrent use.
func (self *FontMetrics) IndexOf(char rune) int {
	self.indexOnce.Do(self.buildIndex)
	index, found := self.index[char]
	if !found { return -1 }
	return index
}

// Returns whether all the characters in the given text are available
// in the font. Line breaks are ignored.
func (self *FontMetrics) HasAll(text string) bool {
	for _, char := range text {
		if char == '\n' { continue }
		if self.IndexOf(char) == -1 { return false }
	}
	return true
}

func (self *FontMetrics) buildIndex() {
	self.index = make(map[rune]int, len(self.Chars))
	for i, char := range self.Chars {
		if _, found := self.index[char]; found { continue }
		self.index[char] = i
	}
}

// Checks that all per-glyph slices have CharCount elements, that the
// kerning table has KerningCount elements and that character codes
// are unique. Returns nil if the metrics are consistent.
func (self *FontMetrics) Validate() error {
	if self.CharCount < 0 {
		return fmt.Errorf("metrics %q: negative char_count %d", self.Name, self.CharCount)
	}
	if self.Size <= 0 {
		return fmt.Errorf("metrics %q: non-positive size %v", self.Name, self.Size)
	}

	lengths := [...]struct{ field string ; n int }{
		{"chars", len(self.Chars)},
		{"advance", len(self.Advance)},
		{"offset_x", len(self.OffsetX)},
		{"offset_y", len(self.OffsetY)},
		{"width", len(self.Width)},
		{"height", len(self.Height)},
		{"pack_x", len(self.PackX)},
		{"pack_y", len(self.PackY)},
	}
	for _, entry := range lengths {
		if entry.n == self.CharCount { continue }
		return fmt.Errorf(
			"metrics %q: %s has %d elements, expected char_count = %d",
			self.Name, entry.field, entry.n, self.CharCount,
		)
	}
	if len(self.Kerning) != self.KerningCount {
		return fmt.Errorf(
			"metrics %q: kerning has %d elements, expected kerning_count = %d",
			self.Name, len(self.Kerning), self.KerningCount,
		)
	}

	seen := make(map[rune]int, len(self.Chars))
	for i, char := range self.Chars {
		if prev, found := seen[char]; found {
			return fmt.Errorf("metrics %q: duplicate char %q at indices %d and %d", self.Name, char, prev, i)
		}
		seen[char] = i
		if self.Width[i] < 0 || self.Height[i] < 0 {
			return fmt.Errorf("metrics %q: negative glyph size for char %q", self.Name, char)
		}
	}
	return nil
}
