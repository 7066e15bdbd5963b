package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/mosaic/pkg/observability"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache.Get should always return a nil miss")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "nested", "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Fatalf("Get(missing) = hit %v err %v", hit, err)
	}

	if err := c.Set(ctx, "frame", []byte("<svg/>"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "frame")
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Fatalf("Get(frame) = %q hit %v err %v", data, hit, err)
	}

	if err := c.Delete(ctx, "frame"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "frame"); hit {
		t.Error("entry survived Delete")
	}
	if err := c.Delete(ctx, "frame"); err != nil {
		t.Errorf("Delete of missing entry = %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "k"); !hit {
		t.Fatal("fresh entry should hit")
	}
	now = now.Add(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed from disk")
	}
}

func TestFileCacheTruncatedEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	_ = c.Set(ctx, "k", []byte("v"), 0)
	if err := os.WriteFile(c.path("k"), []byte{0, 1}, 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("truncated entry: hit %v err %v, want clean miss", hit, err)
	}
}

func TestFileCacheBinaryPayload(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	payload := []byte{0x89, 'P', 'N', 'G', 0, 0, 0xff}
	if err := c.Set(ctx, "png", payload, 0); err != nil {
		t.Fatal(err)
	}
	got, hit, err := c.Get(ctx, "png")
	if err != nil || !hit || string(got) != string(payload) {
		t.Errorf("Get = %v %v %v, want payload back", got, hit, err)
	}
	raw, _ := os.ReadFile(c.path("png"))
	if len(raw) != headerSize+len(payload) {
		t.Errorf("entry size = %d, want header plus payload", len(raw))
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		_ = c.Set(ctx, k, []byte(k), 0)
	}

	n, err := c.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d entries, want 3", n)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("cache dir still has %d entries", len(entries))
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("entry survived Clear")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	type params struct {
		Seed  uint64
		Ticks int
	}
	svg := k.ArtifactKey(ArtifactKeyOpts{Kind: KindStill, Format: "svg", Params: params{Seed: 1}})
	if !strings.HasPrefix(svg, "artifact:still:svg:") {
		t.Errorf("ArtifactKey unexpected: %s", svg)
	}
	if svg != k.ArtifactKey(ArtifactKeyOpts{Kind: KindStill, Format: "svg", Params: params{Seed: 1}}) {
		t.Error("ArtifactKey should be deterministic")
	}
	if svg == k.ArtifactKey(ArtifactKeyOpts{Kind: KindStill, Format: "png", Params: params{Seed: 1}}) {
		t.Error("Different formats should produce different keys")
	}
	if svg == k.ArtifactKey(ArtifactKeyOpts{Kind: KindStill, Format: "svg", Params: params{Seed: 1, Ticks: 3}}) {
		t.Error("Different params should produce different keys")
	}

	if got := k.RecordKey("abc"); got != "record:abc" {
		t.Errorf("RecordKey = %q", got)
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "v1:")

	if got := scoped.RecordKey("abc"); got != "v1:record:abc" {
		t.Errorf("ScopedKeyer RecordKey unexpected: %s", got)
	}
	key := scoped.ArtifactKey(ArtifactKeyOpts{Kind: KindAnimation, Format: "gif"})
	if !strings.HasPrefix(key, "v1:artifact:animation:gif:") {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", key)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "prefix:")
	if key := scoped.RecordKey("x"); key != "prefix:record:x" {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrNetwork)
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if IsRetryable(ErrNetwork) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	defer func(d time.Duration) { retryDelay = d }(retryDelay)
	retryDelay = time.Millisecond
	ctx := context.Background()

	calls := 0
	if err := RetryWithBackoff(ctx, func() error { calls++; return nil }); err != nil || calls != 1 {
		t.Errorf("success: err %v calls %d", err, calls)
	}

	calls = 0
	err := RetryWithBackoff(ctx, func() error { calls++; return ErrNetwork })
	if err != ErrNetwork || calls != 1 {
		t.Errorf("non-retryable: err %v calls %d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retry once: err %v calls %d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error { calls++; return Retryable(ErrNetwork) })
	if !IsRetryable(err) || calls != 3 {
		t.Errorf("exhausted: err %v calls %d", err, calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

type countingHooks struct {
	observability.NoopCacheHooks
	hits, misses, sets int
}

func (h *countingHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *countingHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestObserved(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	fc, _ := NewFileCache(t.TempDir())
	c := Observed(fc)

	_, _, _ = c.Get(ctx, "k")
	_ = c.Set(ctx, "k", []byte("v"), 0)
	_, _, _ = c.Get(ctx, "k")

	if hooks.hits != 1 || hooks.misses != 1 || hooks.sets != 1 {
		t.Errorf("hooks = %d hits %d misses %d sets, want 1/1/1", hooks.hits, hooks.misses, hooks.sets)
	}
	if n, err := c.(Clearer).Clear(ctx); err != nil || n != 1 {
		t.Errorf("Clear through wrapper = %d, %v", n, err)
	}
}

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("MOSAIC_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("MOSAIC_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, RedisOptions{Addr: addr, Prefix: "mosaic-test:"})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()
	defer c.Clear(ctx)

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Fatalf("Get before Set: hit %v err %v", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if data, hit, err := c.Get(ctx, "k"); !hit || err != nil || string(data) != "v" {
		t.Fatalf("Get after Set: %q hit %v err %v", data, hit, err)
	}
}

func TestNewRedisCacheRequiresAddr(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), RedisOptions{}); err == nil {
		t.Error("NewRedisCache without an address should fail")
	}
}
