package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// Options configures region graph rendering.
type Options struct {
	// Detailed adds the region size and root cell to node labels.
	Detailed bool

	// MinWeight drops edges whose shared border is shorter than this many
	// cell sides. Zero keeps every edge.
	MinWeight int
}

// maxPenWidth caps edge thickness so long borders stay readable.
const maxPenWidth = 8

// attr is one DOT attribute. Attributes are kept in a slice so that the
// output is stable across runs.
type attr struct{ key, value string }

type attrs []attr

func (a attrs) String() string {
	parts := make([]string, len(a))
	for i, kv := range a {
		parts[i] = kv.key + "=" + kv.value
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (a attrs) has(key, value string) bool {
	for _, kv := range a {
		if kv.key == key && kv.value == value {
			return true
		}
	}
	return false
}

// ToDOT writes the region adjacency graph in Graphviz DOT. Node rN is the
// N-th region of p, filled with its colour; accent regions are bold boxes.
// Edges carry the shared border length as pen width.
func ToDOT(p *mosaic.Partition, edges []mosaic.RegionEdge, opts Options) string {
	var b strings.Builder
	b.WriteString("graph G {\n")
	for _, line := range []string{
		"layout=neato",
		"overlap=false",
		`bgcolor="transparent"`,
		`node [style=filled, fontsize=12, fontname="Helvetica"]`,
	} {
		fmt.Fprintf(&b, "  %s;\n", line)
	}

	b.WriteString("\n")
	for i, r := range p.Regions {
		fmt.Fprintf(&b, "  r%d %s;\n", i, nodeAttrs(r, label(i, r, opts.Detailed)))
	}

	b.WriteString("\n")
	for _, e := range edges {
		if e.Weight >= opts.MinWeight {
			fmt.Fprintf(&b, "  r%d -- r%d [penwidth=%d];\n", e.From, e.To, min(e.Weight, maxPenWidth))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func label(i int, r mosaic.Region, detailed bool) string {
	if detailed {
		return fmt.Sprintf("%d\nsize: %d\nroot: %d", i, r.Size(), r.Root)
	}
	return strconv.Itoa(i)
}

func nodeAttrs(r mosaic.Region, text string) attrs {
	fill := r.Color.Clamped()
	a := attrs{
		{"label", strconv.Quote(text)},
		{"fillcolor", strconv.Quote(fill.Hex())},
		{"fontcolor", strconv.Quote(inkFor(fill))},
	}
	if r.Accent {
		return append(a, attr{"shape", "box"}, attr{"penwidth", "2"})
	}
	return append(a, attr{"shape", "ellipse"})
}

// inkFor picks black or white text by the fill's relative luminance.
func inkFor(c colorful.Color) string {
	r, g, b := c.LinearRgb()
	if 0.2126*r+0.7152*g+0.0722*b > 0.18 {
		return "black"
	}
	return "white"
}

// Render lays out a DOT graph in-process and encodes it as format
// (graphviz.SVG, graphviz.PNG, ...).
func Render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	var out bytes.Buffer
	if err := gv.Render(ctx, g, format, &out); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return out.Bytes(), nil
}

// RenderSVG renders a DOT graph to a scalable SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	svg, err := Render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return fitViewBox(svg), nil
}

// RenderPNG renders a DOT graph to PNG.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return Render(ctx, dot, graphviz.PNG)
}

var svgOpenTag = regexp.MustCompile(`<svg[^>]*viewBox="[0-9.]+\s+[0-9.]+\s+([0-9.]+)\s+([0-9.]+)"[^>]*>`)

// fitViewBox replaces Graphviz's point-sized root element with one sized in
// user units and anchored at the origin, so the diagram scales with its
// container.
func fitViewBox(svg []byte) []byte {
	m := svgOpenTag.FindSubmatchIndex(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(svg[m[2]:m[3]]), 64)
	h, _ := strconv.ParseFloat(string(svg[m[4]:m[5]]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)

	out := make([]byte, 0, len(svg))
	out = append(out, svg[:m[0]]...)
	out = append(out, tag...)
	return append(out, svg[m[1]:]...)
}
