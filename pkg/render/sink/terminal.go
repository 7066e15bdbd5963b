package sink

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// upperHalf is drawn with the top pixel as foreground and the bottom pixel
// as background, so each character cell shows two pixel rows.
const upperHalf = "▀"

// RenderTerminal renders f into a block of cols x rows terminal cells.
func RenderTerminal(f mosaic.Frame, cols, rows int) string {
	if cols <= 0 || rows <= 0 || f.Width <= 0 || f.Height <= 0 {
		return ""
	}
	sx := float64(cols) / f.Width
	sy := float64(rows*2) / f.Height
	r := NewRaster(cols, rows*2, 1)
	r.dc.Scale(sx, sy)
	mosaic.DrawFrame(r, f)
	return halfBlocks(r.Image(), cols, rows)
}

func halfBlocks(img image.Image, cols, rows int) string {
	var sb strings.Builder
	b := img.Bounds()
	for y := range rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range cols {
			top := hexAt(img, b.Min.X+x, b.Min.Y+2*y)
			bottom := hexAt(img, b.Min.X+x, b.Min.Y+2*y+1)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))
			sb.WriteString(style.Render(upperHalf))
		}
	}
	return sb.String()
}

func hexAt(img image.Image, x, y int) string {
	c, _ := colorful.MakeColor(img.At(x, y))
	return c.Hex()
}
