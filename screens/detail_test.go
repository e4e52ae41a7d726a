package screens

import (
	"strings"
	"testing"

	"skipflow/catalog"
)

func testSkip() catalog.Skip {
	skips := catalog.Build(catalog.DefaultRates())
	idx, _ := catalog.IndexBySize(skips, 20)
	return skips[idx]
}

func TestDetailScreenShowsSpecSheet(t *testing.T) {
	skip := testSkip()
	s := NewDetailScreen(skip, "£")
	view := s.View(80, 40)

	for _, want := range []string{
		skip.Name, // "20 Yard Roll-On Roll-Off"
		"Capacity",
		"Dimensions",
		"Max weight",
		"Transport",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestDetailScreenClipsToHeight(t *testing.T) {
	s := NewDetailScreen(testSkip(), "£")
	view := s.View(80, 5)
	if got := len(strings.Split(view, "\n")); got > 5 {
		t.Fatalf("view has %d lines, want <= 5", got)
	}
}
