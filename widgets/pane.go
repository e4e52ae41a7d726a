package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Widget is anything that can draw itself into a width×height cell box.
type Widget interface {
	Render(width, height int) string
}

// Pane is the framed box used for step bodies and summaries. Selected and
// Focused change the border colour and title marker.
type Pane struct {
	Title    string
	Height   int
	Content  string
	Selected bool
	Focused  bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	h := p.Height
	if h < 3 {
		h = 3
	}
	if height > 0 && h > height {
		h = height
	}
	if h < 3 {
		h = 3
	}
	if width < 4 {
		width = 4
	}

	border := lipgloss.Color("#6c7086")
	if p.Selected {
		border = lipgloss.Color("#89b4fa")
	}
	if p.Focused {
		border = lipgloss.Color("#a6e3a1")
	}
	titlePrefix := "  "
	if p.Selected {
		titlePrefix = "▶ "
	}
	if p.Focused {
		titlePrefix = "● "
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
	}

	title := ansi.Truncate(titlePrefix+p.Title, contentWidth, "…")
	body := make([]string, 0, h-2)
	for _, line := range strings.Split(p.Content, "\n") {
		body = append(body, ansi.Truncate(line, contentWidth, "…"))
	}
	if len(body) > h-3 {
		body = body[:h-3]
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(innerWidth).
		Height(h - 2)
	titled := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true).Render(title)
	return frame.Render(titled + "\n" + strings.Join(body, "\n"))
}
