package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/gallery"
	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/palette"
	"github.com/matzehuels/mosaic/pkg/pipeline"
)

func testServer(t *testing.T, store gallery.Store) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	base := pipeline.DefaultOptions()
	base.Config.Width, base.Config.Height = 64, 48
	base.Config.TransitionFrames = 4
	base.Palettes = []palette.Spec{{
		Name:   "forest",
		Colors: []palette.ColorSpec{{Name: "Moss", Hex: "4a5d23"}},
	}}

	runner := pipeline.NewRunner(nil, nil, store, logger)
	srv := httptest.NewServer(New(runner, base, logger).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func TestHealthz(t *testing.T) {
	srv := testServer(t, nil)
	resp, body := get(t, srv.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out map[string]string
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatal(err)
	}
	if out["status"] != "ok" {
		t.Errorf("status = %q", out["status"])
	}
}

func TestPalettes(t *testing.T) {
	srv := testServer(t, nil)
	_, body := get(t, srv.URL+"/v1/palettes")
	var specs []palette.Spec
	if err := json.Unmarshal(body, &specs); err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, s := range specs {
		names = append(names, s.Name)
	}
	want := []string{"earthy", "sunset", "desertNight", "marble", "forest"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestFrame(t *testing.T) {
	srv := testServer(t, nil)

	tests := []struct {
		path        string
		contentType string
		prefix      []byte
	}{
		{"/v1/frame.svg", "image/svg+xml", []byte("<svg")},
		{"/v1/frame.png", "image/png", []byte("\x89PNG")},
		{"/v1/frame.json?ticks=2", "application/json", []byte("{")},
		{"/v1/animation.gif?cycles=1", "image/gif", []byte("GIF8")},
		{"/v1/inspect.dot", "text/vnd.graphviz; charset=utf-8", []byte("graph G {")},
		{"/v1/inspect.json", "application/json", []byte("{")},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, srv.URL+tt.path)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d: %s", resp.StatusCode, body)
			}
			if got := resp.Header.Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			if !bytes.HasPrefix(bytes.TrimSpace(body), tt.prefix) {
				t.Errorf("body starts %q, want prefix %q", body[:min(len(body), 16)], tt.prefix)
			}
			if resp.Header.Get(headerPalette) == "" {
				t.Error("missing palette header")
			}
		})
	}
}

func TestFrameMatchesDriver(t *testing.T) {
	srv := testServer(t, nil)
	_, body := get(t, srv.URL+"/v1/frame.json?seed=9&ticks=3&palette=sunset")

	var out struct {
		Seed     uint64  `json:"seed"`
		Palette  string  `json:"palette"`
		Progress float64 `json:"progress"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatal(err)
	}
	if out.Seed != 9 || out.Palette != "sunset" || out.Progress != 3.0/4 {
		t.Errorf("frame = %+v", out)
	}
}

func TestRenderErrors(t *testing.T) {
	srv := testServer(t, nil)

	tests := []struct {
		path   string
		status int
		code   errors.Code
	}{
		{"/v1/frame.bmp", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"/v1/inspect.gif", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"/v1/frame.svg?cell=0", http.StatusBadRequest, errors.ErrCodeInvalidConfig},
		{"/v1/frame.svg?cell=abc", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"/v1/frame.svg?seed=-1", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"/v1/frame.svg?easing=bounce", http.StatusBadRequest, errors.ErrCodeInvalidEasing},
		{"/v1/frame.svg?palette=neon", http.StatusBadRequest, errors.ErrCodeInvalidPalette},
		{"/v1/gallery", http.StatusNotImplemented, errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, srv.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d: %s", resp.StatusCode, tt.status, body)
			}
			var e errorBody
			if err := json.Unmarshal(body, &e); err != nil {
				t.Fatal(err)
			}
			if e.Code != tt.code {
				t.Errorf("code = %s, want %s", e.Code, tt.code)
			}
		})
	}
}

func TestGallery(t *testing.T) {
	store := gallery.NewMemoryStore()
	srv := testServer(t, store)

	resp, _ := get(t, srv.URL+"/v1/frame.svg?record=true&seed=3")
	id := resp.Header.Get(headerRecord)
	if id == "" {
		t.Fatal("missing record header")
	}

	_, body := get(t, srv.URL+"/v1/gallery")
	var recs []gallery.Record
	if err := json.Unmarshal(body, &recs); err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].ID != id {
		t.Fatalf("records = %+v", recs)
	}

	resp, body = get(t, srv.URL+"/v1/gallery/"+id)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var rec gallery.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Config.Seed != 3 || rec.Kind != pipeline.KindStill {
		t.Errorf("record = %+v", rec)
	}

	resp, _ = get(t, srv.URL+"/v1/gallery/00000000-0000-0000-0000-000000000000")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing record status = %d", resp.StatusCode)
	}
	for _, bad := range []string{"nope", "12345", "00000000-0000-0000-0000-00000000000z"} {
		resp, _ = get(t, srv.URL+"/v1/gallery/"+bad)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("bad id %q status = %d", bad, resp.StatusCode)
		}
	}
	resp, _ = get(t, srv.URL+"/v1/gallery?limit=x")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad limit status = %d", resp.StatusCode)
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	runner := pipeline.NewRunner(nil, nil, nil, nil)
	s := New(runner, pipeline.Options{Config: mosaic.DefaultConfig()}, log.NewWithOptions(io.Discard, log.Options{}))

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.ListenAndServe(ctx, "127.0.0.1:0") }()
	cancel()
	if err := <-errc; err != nil {
		t.Errorf("ListenAndServe = %v, want nil", err)
	}
}
