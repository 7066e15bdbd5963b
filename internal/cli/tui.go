package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/render/sink"
)

// footerLines is the height of the status bar below the mosaic.
const footerLines = 2

// cellColumns is how many terminal columns one mosaic cell spans. With
// half-block rendering a cell then spans cellColumns/2 terminal rows.
const cellColumns = 4

// =============================================================================
// Resize notifications
// =============================================================================

// termResizer turns terminal window size changes into canvas resizes for
// every subscribed engine.
type termResizer struct {
	fns []func(width, height float64)
}

// OnResize implements mosaic.ResizeNotifier.
func (r *termResizer) OnResize(fn func(width, height float64)) {
	r.fns = append(r.fns, fn)
}

func (r *termResizer) notify(width, height float64) {
	for _, fn := range r.fns {
		fn(width, height)
	}
}

// =============================================================================
// WatchModel - Live terminal animation
// =============================================================================

type tickMsg time.Time

// WatchModel is the bubbletea model that animates an engine in the terminal.
type WatchModel struct {
	Engine   *mosaic.Engine
	Interval time.Duration

	resizer  *termResizer
	cellSize float64
	cols     int
	rows     int
	view     string
	err      error
}

// NewWatchModel creates a watch model for e. cellSize is the engine's cell
// size in pixels, used to map terminal cells to canvas pixels.
func NewWatchModel(e *mosaic.Engine, interval time.Duration, cellSize float64) WatchModel {
	r := &termResizer{}
	e.Subscribe(r)
	return WatchModel{
		Engine:   e,
		Interval: interval,
		resizer:  r,
		cellSize: cellSize,
	}
}

func (m WatchModel) tick() tea.Cmd {
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m WatchModel) Init() tea.Cmd {
	return m.tick()
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			if m.Engine.Paused() {
				m.Engine.Resume()
			} else {
				m.Engine.Pause()
			}
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = max(msg.Height-footerLines, 1)
		px := m.cellSize / cellColumns
		m.resizer.notify(float64(m.cols)*px, float64(m.rows*2)*px)
		m.view = sink.RenderTerminal(m.Engine.LastFrame(), m.cols, m.rows)
	case tickMsg:
		if err := m.Engine.Step(nil); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.view = sink.RenderTerminal(m.Engine.LastFrame(), m.cols, m.rows)
		return m, m.tick()
	}
	return m, nil
}

func (m WatchModel) View() string {
	if m.err != nil {
		return m.err.Error() + "\n"
	}
	var b strings.Builder
	b.WriteString(m.view)
	b.WriteString("\n")

	stats := m.Engine.Stats()
	status := fmt.Sprintf("%s  %3.0f%%  %d regions  %d accent",
		m.Engine.PaletteName(), m.Engine.Progress()*100, stats.Regions, stats.AccentRegions)
	if m.Engine.Paused() {
		status += "  " + StyleWarning.Render("paused")
	}
	b.WriteString(StyleDim.Render(status))
	b.WriteString("  ")
	b.WriteString(StyleHelp.Render("space pause  q quit"))
	return b.String()
}
