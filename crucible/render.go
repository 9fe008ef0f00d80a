package crucible

import (
	"strings"

	"github.com/ArthurMatthys/aoc"
	"github.com/charmbracelet/lipgloss"
)

// RenderOptions styles the output of Render.
type RenderOptions struct {
	Cell   lipgloss.Style // cells off the route
	Route  lipgloss.Style // arrows along the route
	Origin lipgloss.Style // the starting cell
	Plain  bool           // ignore the styles
}

func (o RenderOptions) paint(st lipgloss.Style, s string) string {
	if o.Plain {
		return s
	}
	return st.Render(s)
}

// DefaultRenderOptions dims the grid and highlights the route.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Cell:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Route:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Origin: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	}
}

// PlainRenderOptions applies no styling.
func PlainRenderOptions() RenderOptions {
	return RenderOptions{Plain: true}
}

// Render draws g with the route of res overlaid: each entered cell shows the
// arrow of the move that entered it and the origin shows '*'. res must come
// from a Search run WithPath on g.
func Render(g *Grid, res *Result, opts RenderOptions) string {
	arrows := make(map[aoc.Pt]aoc.Direction, len(res.Moves))
	for i, d := range res.Moves {
		arrows[res.Path[i+1]] = d
	}
	rows := strings.Split(g.String(), "\n")
	var sb strings.Builder
	for y, row := range rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, c := range row {
			p := aoc.Pt{X: x, Y: y}
			if d, ok := arrows[p]; ok {
				sb.WriteString(opts.paint(opts.Route, d.String()))
				continue
			}
			if len(res.Path) > 0 && p == res.Path[0] {
				sb.WriteString(opts.paint(opts.Origin, "*"))
				continue
			}
			sb.WriteString(opts.paint(opts.Cell, string(c)))
		}
	}
	return sb.String()
}
