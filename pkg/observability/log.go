package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports pipeline, cache and generation events as debug log
// lines. Per-frame events are not logged.
type LogHooks struct {
	NoopEngineHooks
	Logger *log.Logger
}

// RegisterLogHooks installs LogHooks for every hook interface.
func RegisterLogHooks(l *log.Logger) {
	h := LogHooks{Logger: l}
	SetEngineHooks(h)
	SetPipelineHooks(h)
	SetCacheHooks(h)
}

func (h LogHooks) OnGenerate(regions, accentRegions int, took time.Duration) {
	h.Logger.Debug("generation", "regions", regions, "accent", accentRegions, "took", took)
}

func (h LogHooks) OnResize(cols, rows int) {
	h.Logger.Debug("resize", "cols", cols, "rows", rows)
}

func (h LogHooks) OnRenderStart(_ context.Context, kind string, formats []string) {
	h.Logger.Debug("render start", "kind", kind, "formats", formats)
}

func (h LogHooks) OnRenderComplete(_ context.Context, kind string, formats []string, took time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "kind", kind, "err", err)
		return
	}
	h.Logger.Debug("render complete", "kind", kind, "formats", formats, "took", took)
}

func (h LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "key", keyType)
}

func (h LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "key", keyType)
}

func (h LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "key", keyType, "bytes", size)
}

var (
	_ EngineHooks   = LogHooks{}
	_ PipelineHooks = LogHooks{}
	_ CacheHooks    = LogHooks{}
)
