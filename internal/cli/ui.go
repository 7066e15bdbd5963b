package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/mosaic/pkg/pipeline"
)

// stdout receives all human-readable command output. Logs go to the
// logger's writer (stderr) so piping a command's output stays clean.
var stdout io.Writer = os.Stdout

// ===== Colors =====

var (
	colorAccent = lipgloss.Color("36")  // teal
	colorGreen  = lipgloss.Color("35")  // success, cache hits
	colorAmber  = lipgloss.Color("220") // warnings, paused
	colorRed    = lipgloss.Color("167") // failures
	colorBlue   = lipgloss.Color("75")  // links, commands
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// ===== Styles =====

var (
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleLink      = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	StyleHelp      = lipgloss.NewStyle().Foreground(colorGray)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorAmber)

	styleOK      = lipgloss.NewStyle().Foreground(colorGreen)
	styleFail    = lipgloss.NewStyle().Foreground(colorRed)
	styleMuted   = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// ===== Status lines =====

// status prints one line prefixed with a coloured marker.
func status(marker string, style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(stdout, style.Render(marker)+" "+fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { status("✓", styleOK, format, args...) }
func printError(format string, args ...any)   { status("✗", styleFail, format, args...) }
func printInfo(format string, args ...any)    { status("›", styleMuted, format, args...) }

func printWarning(format string, args ...any) {
	status("!", StyleWarning, "%s", StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, muted line under a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile reports a written file.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+StyleValue.Render(value))
}

func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func printNewline() { fmt.Fprintln(stdout) }

// ===== Results =====

// printMeta summarises a pipeline result on one dot-separated line, ending
// with whether it came from the cache.
func printMeta(r *pipeline.Result) {
	m := r.Meta
	parts := []string{
		fmt.Sprintf("%dx%d cells", m.Cols, m.Rows),
		fmt.Sprintf("%d regions", m.Stats.Regions),
		fmt.Sprintf("%d accent", m.Stats.AccentRegions),
		m.Palette,
	}
	if m.Frames > 1 {
		parts = append(parts, fmt.Sprintf("%d frames", m.Frames))
	}
	for i, p := range parts {
		parts[i] = StyleDim.Render(p)
	}
	origin := styleMuted.Render("fresh")
	if r.CacheHit {
		origin = styleOK.Render("cached")
	}
	parts = append(parts, origin)

	fmt.Fprintln(stdout, "  "+strings.Join(parts, StyleDim.Render(" · ")))
	if r.Record != nil {
		printDetail("Recorded as %s", r.Record.ID)
	}
}

// swatch renders a colour sample block.
func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}
