package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var popupFrame = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1, 2)

// RenderPopup centres a framed popup over base, splicing it in row by row
// so the step body stays visible around the frame.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := canvasRows(base, width, height)

	frameRows := strings.Split(popupFrame.Render(popup), "\n")
	if len(frameRows) > height {
		frameRows = frameRows[:height]
	}
	frameWidth := 0
	for _, r := range frameRows {
		if w := ansi.StringWidth(r); w > frameWidth {
			frameWidth = w
		}
	}
	if frameWidth > width {
		frameWidth = width
	}

	x := (width - frameWidth) / 2
	y := (height - len(frameRows)) / 2
	for i, fr := range frameRows {
		row := y + i
		left := ansi.Truncate(rows[row], x, "")
		if short := x - ansi.StringWidth(left); short > 0 {
			left += strings.Repeat(" ", short)
		}
		middle := ansi.Truncate(fr, frameWidth, "")
		if short := frameWidth - ansi.StringWidth(middle); short > 0 {
			middle += strings.Repeat(" ", short)
		}
		right := ansi.Cut(rows[row], x+frameWidth, width)
		rows[row] = left + middle + right
	}
	return strings.Join(rows, "\n")
}

// canvasRows normalises base to exactly height rows of exactly width cells.
func canvasRows(base string, width, height int) []string {
	rows := strings.Split(base, "\n")
	if len(rows) > height {
		rows = rows[:height]
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	for i, r := range rows {
		r = ansi.Truncate(r, width, "")
		if pad := width - ansi.StringWidth(r); pad > 0 {
			r += strings.Repeat(" ", pad)
		}
		rows[i] = r
	}
	return rows
}
