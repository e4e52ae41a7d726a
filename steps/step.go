package steps

import "skipflow/widgets"

// textWidget renders a preformatted block inside a layout tree.
type textWidget string

func (t textWidget) Render(width, height int) string {
	return widgets.ClipHeight(string(t), height)
}

func moveCursor(cursor, delta, n int) int {
	if n == 0 {
		return 0
	}
	cursor += delta
	if cursor < 0 {
		cursor = 0
	}
	if cursor > n-1 {
		cursor = n - 1
	}
	return cursor
}
