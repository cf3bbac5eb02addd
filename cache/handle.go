package cache

import "context"
import "image/color"

import "github.com/tinne26/atxt/core"

// The population state of a [Handle].
type HandleState uint8

const (
	Pending HandleState = iota // population still in progress
	Ready // surface available
	Failed // population failed, see [Handle.Err]()
)

// Returns a textual representation of the state.
func (self HandleState) String() string {
	switch self {
	case Pending: return "Pending"
	case Ready: return "Ready"
	case Failed: return "Failed"
	default:
		return "HandleStateInvalid"
	}
}

// A Handle is a future for a tinted atlas surface. Handles are created
// by [AtlasCache.Get]() and stored in the cache before population starts,
// so every request for the same (path, color) key shares one handle.
//
// The surface and error are published once, when the done channel is
// closed. All methods are safe for concurrent use.
type Handle struct {
	path string
	rgba color.RGBA

	done chan struct{}
	surface core.Surface
	err error
}

func newHandle(path string, rgba color.RGBA) *Handle {
	return &Handle{ path: path, rgba: rgba, done: make(chan struct{}) }
}

// precondition: called exactly once
func (self *Handle) resolve(surface core.Surface, err error) {
	self.surface, self.err = surface, err
	close(self.done)
}

// Returns the atlas path the handle was requested for.
func (self *Handle) Path() string { return self.path }

// Returns the premultiplied tint color the handle was requested for.
func (self *Handle) Color() color.RGBA { return self.rgba }

// Returns a channel that's closed when population finishes, either
// successfully or not.
func (self *Handle) Done() <-chan struct{} { return self.done }

// Returns the current state without blocking.
func (self *Handle) State() HandleState {
	select {
	case <-self.done:
		if self.err != nil { return Failed }
		return Ready
	default:
		return Pending
	}
}

// Returns the tinted surface if it's ready, without blocking.
func (self *Handle) Surface() (core.Surface, bool) {
	if self.State() != Ready { return nil, false }
	return self.surface, true
}

// Returns the population error, or nil if the handle is still
// pending or populated successfully.
func (self *Handle) Err() error {
	select {
	case <-self.done:
		return self.err
	default:
		return nil
	}
}

// Blocks until the surface is ready, population fails or the
// context is done.
func (self *Handle) Wait(ctx context.Context) (core.Surface, error) {
	select {
	case <-self.done:
		return self.surface, self.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
