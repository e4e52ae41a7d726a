package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card is the skip pricing card: headline name and price, hire terms,
// delivery label and restriction badges.
type Card struct {
	Name         string
	Price        string
	PriceNote    string
	Lines        []string
	Restrictions []string
	Chosen       bool
}

var (
	cardNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	cardPriceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	cardNoteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	cardWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
)

func (c Card) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	inner := max(10, width-4)

	rows := []string{
		cardNameStyle.Render(ansi.Truncate(c.Name, inner, "…")),
		cardPriceStyle.Render(c.Price) + " " + cardNoteStyle.Render(c.PriceNote),
		"",
	}
	for _, l := range c.Lines {
		rows = append(rows, ansi.Truncate(l, inner, "…"))
	}
	if len(c.Restrictions) > 0 {
		rows = append(rows, "")
		for _, r := range c.Restrictions {
			rows = append(rows, cardWarnStyle.Render(ansi.Truncate("! "+r, inner, "…")))
		}
	}
	if c.Chosen {
		rows = append(rows, "", cardPriceStyle.Render("Selected ✓"))
	}

	border := lipgloss.Color("#6c7086")
	if c.Chosen {
		border = lipgloss.Color("#89b4fa")
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(12, width-2))
	out := frame.Render(strings.Join(rows, "\n"))
	return ClipHeight(out, height)
}

// PriceLabel formats a whole-unit price with its currency symbol.
func PriceLabel(currency string, amount int) string {
	return fmt.Sprintf("%s%d", currency, amount)
}

// ClipHeight drops trailing lines beyond height.
func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
