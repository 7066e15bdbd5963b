package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a braille frame next to a message while a render runs.
// It stops on its own when the parent context is cancelled.
type spinner struct {
	w      io.Writer
	msg    string
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// startSpinner starts a spinner writing to w.
func startSpinner(ctx context.Context, w io.Writer, msg string) *spinner {
	s := &spinner{w: w, msg: msg}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.loop()
	return s
}

func (s *spinner) loop() {
	defer s.wg.Done()
	t := time.NewTicker(spinnerInterval)
	defer t.Stop()
	for frame := 0; ; frame++ {
		select {
		case <-s.ctx.Done():
			return
		case <-t.C:
			glyph := spinnerFrames[frame%len(spinnerFrames)]
			fmt.Fprintf(s.w, "\r%s %s", StyleHighlight.Render(glyph), StyleDim.Render(s.msg))
		}
	}
}

// Stop halts the animation and blanks the line. Repeated calls are no-ops.
func (s *spinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		s.wg.Wait()
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.msg)+4))
	})
}

// Fail stops the spinner and prints msg as an error line.
func (s *spinner) Fail(msg string) {
	s.Stop()
	printError("%s", msg)
}

// Cancelled reports whether the spinner is no longer animating, either
// because Stop was called or because its context ended.
func (s *spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
