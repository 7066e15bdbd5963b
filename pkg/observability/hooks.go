// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about mosaic generation, rendering and cache
// operations.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnRenderStart(ctx, "still", formats)
//	// ... render ...
//	observability.Pipeline().OnRenderComplete(ctx, "still", formats, duration, err)
//
// Engine hooks take no context: they fire from inside the synchronous frame
// step, which has none.
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from the frame engine.
type EngineHooks interface {
	// OnGenerate records one generation pass.
	OnGenerate(regions, accentRegions int, duration time.Duration)

	// OnFrame records one rendered frame.
	OnFrame(frame int, progress float64)

	// OnResize records a grid rebuild after a canvas size change.
	OnResize(cols, rows int)
}

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the render pipeline.
type PipelineHooks interface {
	OnRenderStart(ctx context.Context, kind string, formats []string)
	OnRenderComplete(ctx context.Context, kind string, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnGenerate(int, int, time.Duration) {}
func (NoopEngineHooks) OnFrame(int, float64)               {}
func (NoopEngineHooks) OnResize(int, int)                  {}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string) {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

// slot holds the registered implementation of one hook interface. Reads are
// lock-free because engine hooks fire on every frame.
type slot[T any] struct {
	p    atomic.Pointer[T]
	noop T
}

func (s *slot[T]) get() T {
	if p := s.p.Load(); p != nil {
		return *p
	}
	return s.noop
}

func (s *slot[T]) set(h T) { s.p.Store(&h) }
func (s *slot[T]) reset()  { s.p.Store(nil) }

var (
	engineSlot   = slot[EngineHooks]{noop: NoopEngineHooks{}}
	pipelineSlot = slot[PipelineHooks]{noop: NoopPipelineHooks{}}
	cacheSlot    = slot[CacheHooks]{noop: NoopCacheHooks{}}
)

// SetEngineHooks registers engine hooks. A nil h is ignored.
func SetEngineHooks(h EngineHooks) {
	if h != nil {
		engineSlot.set(h)
	}
}

// SetPipelineHooks registers pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		pipelineSlot.set(h)
	}
}

// SetCacheHooks registers cache hooks. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		cacheSlot.set(h)
	}
}

func Engine() EngineHooks     { return engineSlot.get() }
func Pipeline() PipelineHooks { return pipelineSlot.get() }
func Cache() CacheHooks       { return cacheSlot.get() }

// Reset restores the no-op hooks.
func Reset() {
	engineSlot.reset()
	pipelineSlot.reset()
	cacheSlot.reset()
}
