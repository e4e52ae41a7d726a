package widgets

import (
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack lays widgets top to bottom. Ratios weight each widget's share of
// the height; Spacing inserts blank lines between neighbours.
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacers := max(0, v.Spacing*(len(v.Widgets)-1))
	heights := distribute(max(1, height-spacers), len(v.Widgets), v.Ratios)
	parts := make([]string, len(v.Widgets))
	for i, w := range v.Widgets {
		parts[i] = w.Render(width, max(1, heights[i]))
	}
	return strings.Join(parts, strings.Repeat("\n", v.Spacing+1))
}

// HStack lays widgets left to right, padding every cell to its column width
// so rows stay aligned.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gaps := max(0, h.Gap*(len(h.Widgets)-1))
	widths := distribute(max(1, width-gaps), len(h.Widgets), h.Ratios)

	columns := make([][]string, len(h.Widgets))
	rows := 0
	for i, w := range h.Widgets {
		columns[i] = strings.Split(w.Render(max(1, widths[i]), height), "\n")
		if len(columns[i]) > rows {
			rows = len(columns[i])
		}
	}

	gap := strings.Repeat(" ", h.Gap)
	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for i, col := range columns {
			if i > 0 {
				b.WriteString(gap)
			}
			cell := ""
			if row < len(col) {
				cell = col[row]
			}
			b.WriteString(padCell(cell, widths[i]))
		}
	}
	return b.String()
}

// distribute splits total cells over n columns by largest remainder, so the
// parts always sum to total. Ratios weight the split when one is given per
// column; non-positive weights count as 1.
func distribute(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	weights := make([]float64, n)
	sum := 0.0
	for i := range weights {
		w := 1.0
		if len(ratios) == n && ratios[i] > 0 {
			w = ratios[i]
		}
		weights[i] = w
		sum += w
	}

	type share struct {
		idx  int
		frac float64
	}
	out := make([]int, n)
	shares := make([]share, n)
	used := 0
	for i, w := range weights {
		exact := float64(total) * w / sum
		out[i] = int(exact)
		shares[i] = share{idx: i, frac: exact - float64(out[i])}
		used += out[i]
	}
	sort.SliceStable(shares, func(a, b int) bool { return shares[a].frac > shares[b].frac })
	for i := 0; used < total; i = (i + 1) % n {
		out[shares[i].idx]++
		used++
	}
	return out
}

// padCell truncates or pads a cell to an exact display width, ANSI aware.
func padCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
