package cache

import "sync"
import "time"
import "errors"
import "context"
import "image"
import "image/color"
import "testing"
import "testing/fstest"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

var errTestLoad = errors.New("test load failure")

// loader that blocks until released, then fails. No tinting ever happens,
// so these tests don't need a graphics backend.
type gatedLoader struct {
	gate chan struct{}
	mutex sync.Mutex
	calls map[string]int
}

func newGatedLoader() *gatedLoader {
	return &gatedLoader{ gate: make(chan struct{}), calls: make(map[string]int) }
}

func (self *gatedLoader) Load(path string) (image.Image, error) {
	self.mutex.Lock()
	self.calls[path] += 1
	self.mutex.Unlock()
	<-self.gate
	return nil, errTestLoad
}

func (self *gatedLoader) Calls(path string) int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.calls[path]
}

func TestGetSameKeySameHandle(t *testing.T) {
	loader := newGatedLoader()
	atlases := New(loader)
	black := color.RGBA{0, 0, 0, 255}
	red := color.RGBA{255, 0, 0, 255}

	first := atlases.Get("font.png", black)
	second := atlases.Get("font.png", black)
	other := atlases.Get("font.png", red)
	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, atlases.NumEntries())
	assert.Equal(t, Pending, first.State())
	_, ready := first.Surface()
	assert.False(t, ready)
	assert.NoError(t, first.Err())
	assert.True(t, atlases.Has("font.png", red))
	assert.False(t, atlases.Has("other.png", red))

	close(loader.gate)
	_, err := first.Wait(context.Background())
	assert.ErrorIs(t, err, errTestLoad)
	_, err = other.Wait(context.Background())
	assert.ErrorIs(t, err, errTestLoad)
	assert.Equal(t, Failed, first.State())
	assert.ErrorIs(t, first.Err(), errTestLoad)

	// failures are not retried, the same failed handle stays cached
	assert.Same(t, first, atlases.Get("font.png", black))
	assert.Equal(t, 0, atlases.NumSources())
}

func TestConcurrentGet(t *testing.T) {
	loader := newGatedLoader()
	atlases := New(loader)
	rgba := color.RGBA{10, 20, 30, 255}

	const numGoroutines = 32
	handles := make([]*Handle, numGoroutines)
	var group sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		group.Add(1)
		go func(i int) {
			defer group.Done()
			handles[i] = atlases.Get("shared.png", rgba)
		}(i)
	}
	group.Wait()
	for i := 1; i < numGoroutines; i++ {
		require.Same(t, handles[0], handles[i])
	}
	assert.Equal(t, 1, atlases.NumEntries())

	close(loader.gate)
	<-handles[0].Done()
	assert.Equal(t, 1, loader.Calls("shared.png"))
}

func TestWaitContext(t *testing.T) {
	loader := newGatedLoader()
	defer close(loader.gate)
	atlases := New(loader)
	handle := atlases.Get("slow.png", color.RGBA{0, 0, 0, 255})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := handle.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, Pending, handle.State())
}

func TestMapLoaderMissing(t *testing.T) {
	atlases := New(NewMapLoader())
	handle := atlases.Get("nowhere.png", color.RGBA{0, 0, 0, 255})
	_, err := handle.Wait(context.Background())
	assert.ErrorIs(t, err, ErrNilImage)
}

func TestFSLoader(t *testing.T) {
	loader := FSLoader{ FS: fstest.MapFS{
		"fonts/bad.png": &fstest.MapFile{ Data: []byte("not a png") },
	}}
	_, err := loader.Load("/fonts/missing.png")
	assert.Error(t, err)
	_, err = loader.Load("/fonts/bad.png")
	assert.ErrorContains(t, err, "fonts/bad.png")
}

func TestHandleStateString(t *testing.T) {
	assert.Equal(t, "Pending", Pending.String())
	assert.Equal(t, "Ready", Ready.String())
	assert.Equal(t, "Failed", Failed.String())
	assert.Equal(t, "HandleStateInvalid", HandleState(9).String())
}
