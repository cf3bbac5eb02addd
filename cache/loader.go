package cache

import "image"
import "io/fs"
import "fmt"
import "sync"
import "errors"
import "strings"

import _ "image/png"
import _ "image/jpeg"
import _ "image/gif"
import _ "golang.org/x/image/bmp"
import _ "golang.org/x/image/webp"

// Returned by loaders when an image is missing or nil.
var ErrNilImage = errors.New("nil atlas image")

// A Loader obtains the source atlas image for a path. Loaders are
// called from background goroutines, never from the drawing goroutine,
// so they are free to block on disk or network access.
type Loader interface {
	Load(path string) (image.Image, error)
}

// Adapter to use plain functions as loaders.
type LoaderFunc func(path string) (image.Image, error)

func (self LoaderFunc) Load(path string) (image.Image, error) { return self(path) }

// Loads and decodes images from a file system. PNG, JPEG, GIF, BMP and
// WebP are supported. Leading slashes are trimmed from paths, so web-like
// paths such as "/assets/font.png" work with [os.DirFS] and [embed.FS].
type FSLoader struct {
	FS fs.FS
}

func (self FSLoader) Load(path string) (image.Image, error) {
	if self.FS == nil { panic("FSLoader with nil FS") }
	file, err := self.FS.Open(strings.TrimPrefix(path, "/"))
	if err != nil { return nil, err }
	img, _, err := image.Decode(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, file.Close()
}

// In-memory loader. Mostly useful for baked fonts and testing.
type MapLoader struct {
	mutex sync.RWMutex
	images map[string]image.Image
}

func NewMapLoader() *MapLoader {
	return &MapLoader{ images: make(map[string]image.Image) }
}

// Stores an image for the given path, replacing any previous one.
// Already tinted atlases are not affected.
func (self *MapLoader) Set(path string, img image.Image) {
	self.mutex.Lock()
	self.images[path] = img
	self.mutex.Unlock()
}

func (self *MapLoader) Load(path string) (image.Image, error) {
	self.mutex.RLock()
	img, found := self.images[path]
	self.mutex.RUnlock()
	if !found || img == nil { return nil, fmt.Errorf("%s: %w", path, ErrNilImage) }
	return img, nil
}
