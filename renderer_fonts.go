package atxt

import "io/fs"
import "sort"

import "github.com/tinne26/atxt/metrics"

// A registered font: its metrics and the path of its atlas image,
// as understood by the renderer's [cache.Loader].
//
// [cache.Loader]: https://pkg.go.dev/github.com/tinne26/atxt/cache#Loader
type FontEntry struct {
	Metrics *metrics.FontMetrics
	AtlasPath string
}

// This type exists only for documentation and structuring purposes,
// acting as a [gateway] to register and query the renderer fonts.
//
// In general, this type is used through method chaining:
//   renderer.Fonts().Register("lantern", lanternMetrics, "fonts/lantern.png")
//
// Fonts sharing the same atlas path also share tinted atlases, even
// if they are registered under different names.
//
// [gateway]: https://pkg.go.dev/github.com/tinne26/atxt#Renderer
type RendererFonts Renderer

// Registers the font metrics and atlas path under the given name,
// replacing any previous font with the same name.
//
// Metrics are not validated. Inconsistent metrics (e.g. slices with
// different lengths) can make drawing operations panic, so if they
// don't come from a trusted source, call [metrics.FontMetrics.Validate]()
// first. Nil metrics will cause the method to panic.
func (self *RendererFonts) Register(name string, fontMetrics *metrics.FontMetrics, atlasPath string) {
	if fontMetrics == nil { panic("nil font metrics") }
	self.fonts[name] = FontEntry{ Metrics: fontMetrics, AtlasPath: atlasPath }
}

// Returns the font registered under the given name.
func (self *RendererFonts) Get(name string) (FontEntry, bool) {
	entry, found := self.fonts[name]
	return entry, found
}

// Returns whether a font is registered under the given name.
func (self *RendererFonts) Has(name string) bool {
	_, found := self.fonts[name]
	return found
}

// Returns the number of registered fonts.
func (self *RendererFonts) Count() int {
	return len(self.fonts)
}

// Unregisters the font with the given name. Returns false if the font
// wasn't registered. Tinted atlases for the font stay cached.
func (self *RendererFonts) Remove(name string) bool {
	_, found := self.fonts[name]
	if !found { return false }
	delete(self.fonts, name)
	return true
}

// Iterates the registered fonts in name order.
func (self *RendererFonts) Each(fn func(name string, entry FontEntry)) {
	names := make([]string, 0, len(self.fonts))
	for name := range self.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fn(name, self.fonts[name])
	}
}

// Loads a TOML or YAML font manifest and registers all the fonts
// listed in it. Unlike [RendererFonts.Register](), metrics loaded
// through manifests are validated. If any font fails to load, no
// fonts are registered.
//
// See [metrics.Manifest] for the format.
func (self *RendererFonts) LoadManifest(fsys fs.FS, manifestPath string) error {
	fonts, err := metrics.LoadManifest(fsys, manifestPath)
	if err != nil { return err }
	for _, font := range fonts {
		self.Register(font.Name, font.Metrics, font.AtlasPath)
		self.logger.Info("atxt: font registered", "name", font.Name, "atlas", font.AtlasPath, "glyphs", font.Metrics.CharCount)
	}
	return nil
}
