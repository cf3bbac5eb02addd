// The cache package provides the tinted atlas cache used by atxt
// renderers: recolored copies of font atlas images, keyed by atlas
// path and color, populated asynchronously.
package cache

import "fmt"
import "sync"
import "image"
import "image/color"
import "log/slog"

import "golang.org/x/sync/singleflight"

import "github.com/tinne26/atxt/internal"

type atlasKey struct {
	path string
	rgba color.RGBA
}

// The AtlasCache stores one tinted surface per (atlas path, color)
// combination. Entries are never evicted: applications are expected
// to use a small, fixed set of fonts and colors.
//
// Source images are loaded at most once per path and kept resident,
// so requesting a new color for an already loaded atlas only costs
// the tinting itself.
//
// All methods are safe for concurrent use.
type AtlasCache struct {
	loader Loader
	logger *slog.Logger

	mutex sync.Mutex
	atlases map[atlasKey]*Handle
	sources map[string]image.Image
	loads singleflight.Group
}

// Creates a new, empty cache that will obtain source images
// through the given loader.
func New(loader Loader) *AtlasCache {
	if loader == nil { panic("nil loader") }
	return &AtlasCache{
		loader: loader,
		logger: internal.NopLogger(),
		atlases: make(map[atlasKey]*Handle, 8),
		sources: make(map[string]image.Image, 4),
	}
}

// Sets the logger for population events. Nil restores the default
// silent logger.
func (self *AtlasCache) SetLogger(logger *slog.Logger) {
	self.mutex.Lock()
	self.logger = internal.OrNop(logger)
	self.mutex.Unlock()
}

// Returns the handle for the given atlas path and color. The first
// request for a key creates the handle and starts populating it in
// the background; later requests return the same handle, whether
// population has finished or not.
//
// The returned handle is never nil. Callers that can't wait should
// poll [Handle.Surface]() and skip drawing while it's pending.
func (self *AtlasCache) Get(path string, rgba color.RGBA) *Handle {
	key := atlasKey{path, rgba}

	self.mutex.Lock()
	handle, found := self.atlases[key]
	if found {
		self.mutex.Unlock()
		return handle
	}
	handle = newHandle(path, rgba)
	self.atlases[key] = handle // in-flight handle stored before population
	logger := self.logger
	self.mutex.Unlock()

	logger.Debug("atxt: populating tinted atlas", "path", path, "color", rgbaString(rgba))
	go self.populate(handle, logger)
	return handle
}

// Returns whether a handle exists for the given key, without
// creating one.
func (self *AtlasCache) Has(path string, rgba color.RGBA) bool {
	self.mutex.Lock()
	_, found := self.atlases[atlasKey{path, rgba}]
	self.mutex.Unlock()
	return found
}

// Returns the number of tinted atlas entries, pending ones included.
func (self *AtlasCache) NumEntries() int {
	self.mutex.Lock()
	numEntries := len(self.atlases)
	self.mutex.Unlock()
	return numEntries
}

// Returns the number of source images currently resident.
func (self *AtlasCache) NumSources() int {
	self.mutex.Lock()
	numSources := len(self.sources)
	self.mutex.Unlock()
	return numSources
}

func (self *AtlasCache) populate(handle *Handle, logger *slog.Logger) {
	source, err := self.loadSource(handle.path)
	if err != nil {
		logger.Warn("atxt: atlas load failed", "path", handle.path, "err", err)
		handle.resolve(nil, err)
		return
	}

	surface, err := tint(source, handle.rgba)
	if err != nil {
		logger.Warn("atxt: atlas tint failed", "path", handle.path, "err", err)
		handle.resolve(nil, err)
		return
	}
	logger.Debug("atxt: tinted atlas ready", "path", handle.path, "color", rgbaString(handle.rgba))
	handle.resolve(surface, nil)
}

// Returns the resident source image for the path, loading it if
// necessary. Concurrent loads for the same path are collapsed.
func (self *AtlasCache) loadSource(path string) (image.Image, error) {
	self.mutex.Lock()
	source, found := self.sources[path]
	self.mutex.Unlock()
	if found { return source, nil }

	result, err, _ := self.loads.Do(path, func() (any, error) {
		img, err := self.loader.Load(path)
		if err != nil { return nil, err }
		if img == nil { return nil, fmt.Errorf("%s: %w", path, ErrNilImage) }
		self.mutex.Lock()
		self.sources[path] = img
		self.mutex.Unlock()
		return img, nil
	})
	if err != nil { return nil, err }
	return result.(image.Image), nil
}

func rgbaString(rgba color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", rgba.R, rgba.G, rgba.B, rgba.A)
}
