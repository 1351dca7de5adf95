package automaton

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
)

// DOTOptions configures transition-diagram rendering.
type DOTOptions struct {
	// Labels maps symbol indices to display labels (e.g., "a", "b").
	// When nil or too short, symbols are labeled by their index.
	Labels []string
}

func (o DOTOptions) label(sym int) string {
	if sym < len(o.Labels) {
		return o.Labels[sym]
	}
	return strconv.Itoa(sym)
}

// ToDOT converts an automaton to Graphviz DOT format. Parallel transitions
// between the same pair of states are merged into a single edge whose label
// lists the symbols. The sink state 0 is drawn with a double circle.
//
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(a Automaton, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph automaton {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fontsize=14];\n")
	buf.WriteString("\n")

	for s := 0; s < a.States(); s++ {
		if s == 0 {
			fmt.Fprintf(&buf, "  %d [shape=doublecircle];\n", s)
		} else {
			fmt.Fprintf(&buf, "  %d;\n", s)
		}
	}

	buf.WriteString("\n")
	for s := 0; s < a.States(); s++ {
		// Group symbols by target so parallel edges collapse to one.
		byTarget := make(map[int][]string)
		for sym := 0; sym < a.Symbols(); sym++ {
			t := a.At(s, sym)
			byTarget[t] = append(byTarget[t], opts.label(sym))
		}
		for t := 0; t < a.States(); t++ {
			if labels, ok := byTarget[t]; ok {
				fmt.Fprintf(&buf, "  %d -> %d [label=%q];\n", s, t, strings.Join(labels, ","))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT transition diagram to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT transition diagram to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
