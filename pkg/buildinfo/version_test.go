package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func restore(t *testing.T) {
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestTemplateIncludesVersion(t *testing.T) {
	restore(t)
	Version = "v9.9.9"
	if !strings.Contains(Template(), "v9.9.9") {
		t.Errorf("Template() = %q, want version", Template())
	}
	if !strings.Contains(String(), "version: v9.9.9") {
		t.Errorf("String() = %q, want version line", String())
	}
	if UserAgent() != "mosaic/v9.9.9" {
		t.Errorf("UserAgent() = %q", UserAgent())
	}
}

func TestFillFrom(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2024-03-01T12:00:00Z"},
		},
	}

	t.Run("unset", func(t *testing.T) {
		restore(t)
		Version, Commit, Date = "dev", "none", "unknown"
		fillFrom(info)
		if Version != "v1.4.0" || Commit != "0123456" || Date != "2024-03-01T12:00:00Z" {
			t.Errorf("got %s %s %s", Version, Commit, Date)
		}
	})

	t.Run("ldflags win", func(t *testing.T) {
		restore(t)
		Version, Commit, Date = "v2.0.0", "abc1234", "today"
		fillFrom(info)
		if Version != "v2.0.0" || Commit != "abc1234" || Date != "today" {
			t.Errorf("ldflag values overwritten: %s %s %s", Version, Commit, Date)
		}
	})

	t.Run("devel", func(t *testing.T) {
		restore(t)
		Version = "dev"
		fillFrom(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
		if Version != "dev" {
			t.Errorf("Version = %q, want dev", Version)
		}
	})
}
