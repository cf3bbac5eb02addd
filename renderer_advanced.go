package atxt

import "context"
import "log/slog"
import "image/color"

import "golang.org/x/sync/errgroup"

import "github.com/tinne26/atxt/cache"
import "github.com/tinne26/atxt/core"
import "github.com/tinne26/atxt/internal"

// This type exists only for documentation and structuring purposes,
// acting as a [gateway] to advanced renderer functions and configurations
// that most users rarely need to touch.
//
// In general, this type is used through method chaining:
//   renderer.Advanced().SetGlyphMissPolicy(atxt.GlyphMissSkip)
//
// [gateway]: https://pkg.go.dev/github.com/tinne26/atxt#Renderer
type RendererAdvanced Renderer

// Sets the policy for characters missing from the font metrics.
// The default is [GlyphMissFail].
func (self *RendererAdvanced) SetGlyphMissPolicy(policy GlyphMissPolicy) {
	if policy > GlyphMissFallback { panic("invalid glyph miss policy") }
	self.layouter.missPolicy = policy
}

// Returns the current glyph miss policy. See also
// [RendererAdvanced.SetGlyphMissPolicy]().
func (self *RendererAdvanced) GetGlyphMissPolicy() GlyphMissPolicy {
	return self.layouter.missPolicy
}

// Sets the rune used instead of missing characters when the glyph
// miss policy is [GlyphMissFallback]. The default is '?'.
func (self *RendererAdvanced) SetFallbackRune(fallback rune) {
	self.layouter.fallback = fallback
}

// Returns the current fallback rune. See also
// [RendererAdvanced.SetFallbackRune]().
func (self *RendererAdvanced) GetFallbackRune() rune {
	return self.layouter.fallback
}

// Sets the logger for the renderer and its atlas cache. By default,
// renderers produce no log output. Nil restores the silent default.
//
// Levels used:
//  - [slog.LevelDebug]: atlas population start and completion.
//  - [slog.LevelInfo]: fonts registered from manifests.
//  - [slog.LevelWarn]: atlas load or tint failures.
func (self *RendererAdvanced) SetLogger(logger *slog.Logger) {
	self.logger = internal.OrNop(logger)
	self.atlases.SetLogger(self.logger)
}

// Returns the renderer's logger.
func (self *RendererAdvanced) Logger() *slog.Logger {
	return self.logger
}

// Returns the renderer's tinted atlas cache.
func (self *RendererAdvanced) Cache() *cache.AtlasCache {
	return self.atlases
}

// Returns the tinted atlas handle for the given font and color,
// starting its population if it didn't exist yet.
func (self *RendererAdvanced) Atlas(fontName string, clr color.Color) (*cache.Handle, error) {
	entry, err := (*Renderer)(self).lookupFont(fontName)
	if err != nil { return nil, err }
	return self.atlases.Get(entry.AtlasPath, internal.ToRGBA(clr)), nil
}

// Requests the tinted atlases for every combination of the given fonts
// and colors, and waits until all of them are ready. If no colors are
// given, black is used. Returns the first error found, including
// context cancellation.
//
// Preloading at startup avoids the blank frames that happen the first
// time a font and color combination is drawn.
func (self *RendererAdvanced) Preload(ctx context.Context, colors []color.Color, fontNames ...string) error {
	if len(colors) == 0 { colors = []color.Color{nil} }

	handles := make([]*cache.Handle, 0, len(colors)*len(fontNames))
	for _, fontName := range fontNames {
		for _, clr := range colors {
			handle, err := self.Atlas(fontName, clr)
			if err != nil { return err }
			handles = append(handles, handle)
		}
	}

	group, ctx := errgroup.WithContext(ctx)
	for _, handle := range handles {
		handle := handle
		group.Go(func() error {
			_, err := handle.Wait(ctx)
			return err
		})
	}
	return group.Wait()
}

// Lays out the text with the given font, under the renderer's glyph
// miss policy. Mostly useful to implement custom drawing or hit
// testing. Options other than direction and baseline are ignored.
func (self *RendererAdvanced) Layout(text string, fontName string, opts *DrawOptions) ([]Line, error) {
	entry, err := (*Renderer)(self).lookupFont(fontName)
	if err != nil { return nil, err }
	opts = opts.orDefault()
	return self.layouter.Layout(text, entry.Metrics, opts.Direction, opts.Baseline)
}

// Sets a custom glyph drawing function. The function receives the
// tinted atlas, the glyph placement and the final integer position
// for the glyph's top-left corner. Can be set to nil to go back to
// the default drawing function.
func (self *RendererAdvanced) SetDrawFunc(fn func(target core.Target, atlas core.Surface, glyph GlyphPlacement, x, y int)) {
	self.drawFunc = fn
}

// Draws a glyph with the default drawing function. Mostly needed to
// implement custom drawing functions for [RendererAdvanced.SetDrawFunc]().
func (self *RendererAdvanced) DrawGlyph(target core.Target, atlas core.Surface, glyph GlyphPlacement, x, y int) {
	blitGlyph(target, atlas, glyph, x, y)
}
