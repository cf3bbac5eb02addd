//go:build cputext

package cache

import "bytes"
import "context"
import "image"
import "image/png"
import "image/color"
import "testing"
import "testing/fstest"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/tinne26/atxt/core"

// 4x2 atlas: left half opaque white, right half half-transparent gray
func newTestAtlas() *image.NRGBA {
	atlas := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		atlas.SetNRGBA(0, y, color.NRGBA{255, 255, 255, 255})
		atlas.SetNRGBA(1, y, color.NRGBA{255, 255, 255, 255})
		atlas.SetNRGBA(2, y, color.NRGBA{128, 128, 128, 128})
	}
	return atlas
}

func TestTintKeepsAlphaReplacesColor(t *testing.T) {
	loader := NewMapLoader()
	loader.Set("atlas.png", newTestAtlas())
	atlases := New(loader)

	red := color.RGBA{255, 0, 0, 255}
	surface, err := atlases.Get("atlas.png", red).Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), surface.Bounds())

	assert.Equal(t, red, surface.RGBAAt(0, 0))
	assert.Equal(t, red, surface.RGBAAt(1, 1))
	half := surface.RGBAAt(2, 0)
	assert.InDelta(t, 128, int(half.A), 1)
	assert.InDelta(t, 128, int(half.R), 1)
	assert.Zero(t, half.G)
	assert.Zero(t, half.B)
	assert.Equal(t, color.RGBA{}, surface.RGBAAt(3, 0))
}

func TestSourceLoadedOnce(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, png.Encode(&buffer, newTestAtlas()))
	fsys := fstest.MapFS{ "assets/atlas.png": &fstest.MapFile{ Data: buffer.Bytes() } }

	var calls int
	fsLoader := FSLoader{ FS: fsys }
	loader := LoaderFunc(func(path string) (image.Image, error) {
		calls += 1 // sequential below, no lock needed
		return fsLoader.Load(path)
	})
	atlases := New(loader)

	blue := atlases.Get("/assets/atlas.png", color.RGBA{0, 0, 255, 255})
	_, err := blue.Wait(context.Background())
	require.NoError(t, err)
	green := atlases.Get("/assets/atlas.png", color.RGBA{0, 255, 0, 255})
	_, err = green.Wait(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, atlases.NumSources())
	assert.Equal(t, 2, atlases.NumEntries())
	assert.Equal(t, Ready, green.State())
}

func TestTintEmptyImage(t *testing.T) {
	loader := NewMapLoader()
	loader.Set("empty.png", image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	atlases := New(loader)
	_, err := atlases.Get("empty.png", color.RGBA{0, 0, 0, 255}).Wait(context.Background())
	var surfaceErr *core.SurfaceCreationError
	assert.ErrorAs(t, err, &surfaceErr)
}
