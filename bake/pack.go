package bake

import "sort"
import "image"

// A glyph ready to be packed into an atlas. Offsets are relative to
// the glyph origin on the baseline, so OffsetY is typically negative.
type Glyph struct {
	Char rune
	Advance float64
	OffsetX, OffsetY int
	Mask *image.Alpha // nil or empty for blank glyphs like spaces
}

// Returns the glyph mask dimensions.
func (self *Glyph) Size() (width, height int) {
	if self.Mask == nil { return 0, 0 }
	bounds := self.Mask.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Packs the glyph masks in shelves, tallest first, leaving at least
// padding empty pixels between any two masks and around the atlas edges.
// Returns the top-left position of each glyph (in the same order as the
// given glyphs) and the atlas size. Blank glyphs are placed at (0, 0)
// and take no space.
func Pack(glyphs []Glyph, padding int) ([]image.Point, image.Point) {
	if padding < 0 { panic("negative padding") }

	order := make([]int, 0, len(glyphs))
	var area, maxWidth int
	for i := range glyphs {
		width, height := glyphs[i].Size()
		if width == 0 || height == 0 { continue }
		order = append(order, i)
		area += (width + padding)*(height + padding)
		maxWidth = max(maxWidth, width)
	}
	positions := make([]image.Point, len(glyphs))
	if len(order) == 0 { return positions, image.Point{} }

	sort.SliceStable(order, func(a, b int) bool {
		_, heightA := glyphs[order[a]].Size()
		_, heightB := glyphs[order[b]].Size()
		return heightA > heightB
	})

	shelfWidth := max(maxWidth, intSqrtCeil(area)) + padding*2
	var atlasWidth int
	x, y := padding, padding
	shelfHeight := 0
	for _, index := range order {
		width, height := glyphs[index].Size()
		if x + width + padding > shelfWidth {
			x = padding
			y += shelfHeight + padding
			shelfHeight = 0
		}
		positions[index] = image.Pt(x, y)
		x += width + padding
		atlasWidth = max(atlasWidth, x)
		shelfHeight = max(shelfHeight, height)
	}
	return positions, image.Pt(atlasWidth, y + shelfHeight + padding)
}

func intSqrtCeil(n int) int {
	root := 0
	for root*root < n { root += 1 }
	return root
}
