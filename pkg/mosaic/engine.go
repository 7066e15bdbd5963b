package mosaic

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/observability"
)

// Engine wraps a [Driver] with a frame loop lifecycle: pause, resume,
// resize and destroy. All methods are safe for concurrent use; a resize
// never interleaves with a step.
type Engine struct {
	mu        sync.Mutex
	driver    *Driver
	paused    bool
	destroyed bool
	frames    int
	last      Frame
}

// NewEngine builds a driver from cfg and wraps it.
func NewEngine(cfg Config, opts ...DriverOption) (*Engine, error) {
	d, err := NewDriver(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{driver: d}, nil
}

// Step renders one frame onto r and advances the transition. While paused
// it does nothing. After [Engine.Destroy] it returns an
// [errors.ErrCodeDestroyed] error.
func (e *Engine) Step(r Renderer) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return errors.New(errors.ErrCodeDestroyed, "engine destroyed")
	}
	if e.paused {
		return nil
	}

	f := e.driver.Tick()
	e.last = f
	e.frames++
	if r != nil {
		DrawFrame(r, f)
	}
	observability.Engine().OnFrame(e.frames, f.Progress)
	return nil
}

// LastFrame returns the most recently rendered frame. Before the first step
// it renders the current state without advancing.
func (e *Engine) LastFrame() Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.frames == 0 && !e.destroyed {
		return e.driver.Frame()
	}
	return e.last
}

// Frames returns the number of frames rendered so far.
func (e *Engine) Frames() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

// Pause freezes the engine; steps become no-ops.
func (e *Engine) Pause() {
	e.mu.Lock()
	e.paused = true
	e.mu.Unlock()
}

// Resume continues from the frozen progress.
func (e *Engine) Resume() {
	e.mu.Lock()
	e.paused = false
	e.mu.Unlock()
}

// Paused reports whether the engine is paused.
func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

// Resize regenerates both snapshots for a new canvas size.
func (e *Engine) Resize(width, height float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return errors.New(errors.ErrCodeDestroyed, "engine destroyed")
	}
	return e.driver.Resize(width, height)
}

// Subscribe registers the engine for resize notifications from n. A
// rejected size (a zero-area canvas while a window is minimised, for
// example) is logged and the engine keeps its previous size.
func (e *Engine) Subscribe(n ResizeNotifier) {
	n.OnResize(func(width, height float64) {
		if err := e.Resize(width, height); err != nil {
			e.driver.logger.Warn("resize ignored", "width", width, "height", height, "err", err)
		}
	})
}

// Progress returns the driver's raw progress.
func (e *Engine) Progress() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.driver.Progress()
}

// Stats returns the region statistics of the latest generation.
func (e *Engine) Stats() RegionStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.driver.Stats()
}

// PaletteName returns the active accent palette name.
func (e *Engine) PaletteName() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.driver.Palette().Name
}

// Destroy releases the snapshots. The engine cannot be used afterwards.
func (e *Engine) Destroy() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.destroyed = true
	e.driver.current, e.driver.next = Snapshot{}, Snapshot{}
	e.last = Frame{}
}

// Run steps the engine every interval until ctx is done or the engine is
// destroyed.
func (e *Engine) Run(ctx context.Context, interval time.Duration, r Renderer) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := e.Step(r); err != nil {
				return err
			}
		}
	}
}
