package atxt

import "fmt"
import "log/slog"

import "github.com/tinne26/atxt/cache"
import "github.com/tinne26/atxt/core"
import "github.com/tinne26/atxt/internal"

// The [Renderer] is the heart of atxt and the type around which everything
// else revolves. It owns the font registry and the tinted atlas cache, so
// you typically create a single renderer at startup and use it for all
// your text.
//
// Renderers have two groups of functions:
//  - Simple functions to draw and measure text.
//  - Gateways to access more specific functionality.
//
// Gateways are auxiliary types that group specialized functions together
// and keep them out of the way for most workflows that won't require them.
// The following gateways are available:
//  - [Renderer.Fonts](), to register and query fonts.
//  - [Renderer.Advanced](), for advanced options and configurations.
//
// Renderers are not safe for concurrent use. The underlying atlas cache
// is, but registering fonts while drawing from another goroutine isn't.
type Renderer struct {
	fonts map[string]FontEntry
	atlases *cache.AtlasCache
	logger *slog.Logger
	layouter lineLayouter
	drawFunc func(core.Target, core.Surface, GlyphPlacement, int, int)
}

// Creates a new [Renderer] that will load font atlas images through
// the given loader, with the following defaults:
//  - No fonts registered.
//  - Glyph miss policy set to [GlyphMissFail], fallback rune '?'.
//  - Silent logger.
//
// For atlases stored on disk or embedded, use [cache.FSLoader].
func NewRenderer(loader cache.Loader) *Renderer {
	var renderer Renderer
	renderer.fonts = make(map[string]FontEntry, 4)
	renderer.atlases = cache.New(loader)
	renderer.logger = internal.NopLogger()
	renderer.layouter.missPolicy = GlyphMissFail
	renderer.layouter.fallback = '?'
	return &renderer
}

// ---- gateways ----

// Gateway to [RendererFonts]. For context on gateways, see [Renderer].
func (self *Renderer) Fonts() *RendererFonts {
	return (*RendererFonts)(self)
}

// Gateway to [RendererAdvanced]. For context on gateways, see [Renderer].
func (self *Renderer) Advanced() *RendererAdvanced {
	return (*RendererAdvanced)(self)
}

// ---- main operations ----

// Draws the given text at (x, y) with the named font. The meaning of
// the coordinates depends on the align, baseline and direction options
// (see [DrawOptions]). Lines are separated by '\n' and stacked using
// the font size as line height.
//
// The first time a font is used with a given color, a tinted copy of its
// atlas starts being created in the background, and nothing is drawn
// until it's ready. This means that new font and color combinations will
// typically miss one or a few frames. If that's a problem, use
// [RendererAdvanced.Preload]() beforehand.
//
// Errors:
//  - [*FontNotFoundError] if the font is not registered.
//  - [*SurfaceCreationError] if the target is nil (typed nils included).
//  - [*MissingGlyphError] if the text contains characters that the
//    font doesn't have, unless the glyph miss policy says otherwise.
//  - The atlas load or tint error, if that failed.
// Nothing is drawn and no atlas is requested when an error is returned,
// except for atlas failures.
func (self *Renderer) DrawText(target core.Target, text string, x, y float64, fontName string, opts *DrawOptions) error {
	entry, err := self.lookupFont(fontName)
	if err != nil { return err }
	if isNilTarget(target) {
		return &SurfaceCreationError{ Reason: "nil target" }
	}

	opts = opts.orDefault()
	direction := opts.Direction.Resolve(text)
	lines, err := self.layouter.Layout(text, entry.Metrics, direction, opts.Baseline)
	if err != nil { return err }
	handle := self.atlases.Get(entry.AtlasPath, internal.ToRGBA(opts.Color))

	switch handle.State() {
	case cache.Pending:
		return nil // blank frame
	case cache.Failed:
		return fmt.Errorf("font '%s' atlas: %w", fontName, handle.Err())
	}
	surface, _ := handle.Surface()
	self.drawLines(target, surface, lines, x, y, entry.Metrics.Size, opts.Align, direction)
	return nil
}

// Returns the dimensions of the given text: the width of the widest
// line and the number of lines multiplied by the font size.
//
// Only the font, direction and glyph miss policy affect the result.
// The atlas is not needed, so measuring never triggers image loading.
func (self *Renderer) Measure(text string, fontName string, opts *DrawOptions) (width, height float64, err error) {
	entry, err := self.lookupFont(fontName)
	if err != nil { return 0, 0, err }
	opts = opts.orDefault()
	lines, err := self.layouter.Layout(text, entry.Metrics, opts.Direction, opts.Baseline)
	if err != nil { return 0, 0, err }
	return maxLineWidth(lines), float64(len(lines))*entry.Metrics.Size, nil
}

func (self *Renderer) lookupFont(name string) (FontEntry, error) {
	entry, found := self.fonts[name]
	if !found { return entry, &FontNotFoundError{ Name: name } }
	return entry, nil
}
