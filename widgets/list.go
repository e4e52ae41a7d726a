package widgets

import "strings"

// OptionList renders selectable tiles as rows: a cursor marker, a checked
// marker for chosen entries, label and hint.
type OptionList struct {
	Title  string
	Items  []OptionItem
	Cursor int
}

type OptionItem struct {
	Label  string
	Hint   string
	Chosen bool
}

func (l OptionList) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, len(l.Items)+2)
	if l.Title != "" {
		rows = append(rows, l.Title, "")
	}
	for i, item := range l.Items {
		cursor := "  "
		if i == l.Cursor {
			cursor = "> "
		}
		mark := "[ ] "
		if item.Chosen {
			mark = "[x] "
		}
		row := cursor + mark + item.Label
		if item.Hint != "" {
			row += "  — " + item.Hint
		}
		rows = append(rows, row)
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}
