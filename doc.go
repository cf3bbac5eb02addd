// atxt is a package for drawing text from pre-baked bitmap font atlases,
// designed to be used with Ebitengine, a 2D game engine made by Hajime
// Hoshi for Golang.
//
// Instead of rasterizing fonts, atxt reads glyph geometry from metrics
// computed offline (see the [metrics] package) and copies glyph rectangles
// from an atlas image, recolored on demand.
//
// To get started, create a [*Renderer] and register your fonts:
//   text := atxt.NewRenderer(cache.FSLoader{ FS: assetsFS })
//   text.Fonts().Register("lantern", lanternMetrics, "fonts/lantern/atlas.png")
//
// Or load them all at once from a manifest:
//   err := text.Fonts().LoadManifest(assetsFS, "fonts/fonts.toml")
//   if err != nil { panic(err) }
//
// Once you have everything configured, drawing is quite straightforward:
//   opts := atxt.DrawOptions{ Color: color.RGBA{192, 0, 255, 255}, Align: atxt.Center }
//   err := text.DrawText(canvas, "TEXT IS ME", 160, 90, "lantern", &opts)
//
// Layout follows the canvas 2D text API: align, baseline and direction
// options behave like their textAlign, textBaseline and direction
// counterparts, and lines are split at '\n'.
//
// Without Ebitengine (-tags cputext), targets are [image/draw.Image] and
// atlases are [*image.RGBA].
package atxt
