package widgets

import (
	"strings"
	"testing"
)

func TestDistributeEvenWithRemainder(t *testing.T) {
	got := distribute(10, 3, nil)
	want := []int{4, 3, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("distribute = %v, want %v", got, want)
		}
	}
}

func TestDistributeRatiosSumToTotal(t *testing.T) {
	got := distribute(80, 2, []float64{0.65, 0.35})
	if got[0]+got[1] != 80 {
		t.Fatalf("widths %v should sum to 80", got)
	}
	if got[0] <= got[1] {
		t.Fatalf("ratio ordering lost: %v", got)
	}
}

func TestDistributeLargestRemainderGetsTheSpareCell(t *testing.T) {
	// 0.7/0.3 over 9: exact shares 6.3 and 2.7, the spare cell belongs to
	// the larger fraction.
	got := distribute(9, 2, []float64{0.7, 0.3})
	if got[0] != 6 || got[1] != 3 {
		t.Fatalf("distribute = %v, want [6 3]", got)
	}
}

type fixedWidget string

func (f fixedWidget) Render(width, height int) string { return string(f) }

func TestHStackJoinsColumns(t *testing.T) {
	out := HStack{Widgets: []Widget{fixedWidget("aa"), fixedWidget("bb")}, Gap: 1}.Render(9, 1)
	if !strings.Contains(out, "aa") || !strings.Contains(out, "bb") {
		t.Fatalf("both columns should appear: %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if got := len([]rune(line)); got != 9 {
			t.Fatalf("line width = %d, want 9: %q", got, line)
		}
	}
}

func TestVStackSpacingAddsBlankLines(t *testing.T) {
	out := VStack{Widgets: []Widget{fixedWidget("a"), fixedWidget("b")}, Spacing: 1}.Render(3, 5)
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected spacer line, got %q", out)
	}
	if strings.TrimSpace(lines[1]) != "" {
		t.Fatalf("middle line should be a spacer: %q", lines[1])
	}
}

func TestStacksHandleDegenerateSizes(t *testing.T) {
	if got := (HStack{Widgets: []Widget{fixedWidget("x")}}).Render(0, 5); got != "" {
		t.Fatalf("zero width should render nothing, got %q", got)
	}
	if got := (VStack{}).Render(10, 10); got != "" {
		t.Fatalf("empty stack should render nothing, got %q", got)
	}
}
