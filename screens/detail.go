package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"skipflow/catalog"
	"skipflow/core"
)

// DetailScreen is the read-only skip spec sheet opened from the size picker.
type DetailScreen struct {
	skip     catalog.Skip
	currency string
}

func NewDetailScreen(skip catalog.Skip, currency string) *DetailScreen {
	return &DetailScreen{skip: skip, currency: currency}
}

func (s *DetailScreen) Title() string { return s.skip.Name }
func (s *DetailScreen) Scope() string { return "screen:detail" }

func (s *DetailScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "enter", "i":
			return s, nil, true
		}
	}
	return s, nil, false
}

func (s *DetailScreen) View(width, height int) string {
	sk := s.skip
	lines := []string{
		fmt.Sprintf("%s %s", sk.Icon, sk.Name),
		"",
		sk.Description,
		"",
		"Capacity    " + sk.Capacity,
		"Dimensions  " + sk.Dimensions,
		"Max weight  " + sk.MaxWeight,
		fmt.Sprintf("Hire period %d days", sk.HirePeriodDays),
	}

	if len(sk.BestFor) > 0 {
		lines = append(lines, "", "Best for: "+strings.Join(sk.BestFor, ", "))
	}
	if len(sk.UseCases) > 0 {
		lines = append(lines, "", "Typical loads")
		for _, uc := range sk.UseCases {
			lines = append(lines, fmt.Sprintf("  %-22s %d%%", uc.Label, uc.Percent))
		}
	}

	lines = append(lines, "",
		fmt.Sprintf("Price       %s%d ex VAT", s.currency, sk.PriceBeforeVAT),
		fmt.Sprintf("Inc VAT     %s%d (%d%%)", s.currency, sk.PriceWithVAT, sk.VAT),
	)
	if sk.HasTransportCost() {
		lines = append(lines,
			fmt.Sprintf("Transport   %s%d", s.currency, *sk.TransportCost),
			fmt.Sprintf("Total       %s%d", s.currency, sk.FinalPrice),
		)
	}
	if len(sk.Restrictions) > 0 {
		lines = append(lines, "")
		for _, r := range sk.Restrictions {
			lines = append(lines, "! "+r)
		}
	}
	lines = append(lines, "", "Esc close.")

	out := strings.Join(lines, "\n")
	if height > 0 {
		parts := strings.Split(out, "\n")
		if len(parts) > height {
			parts = parts[:height]
		}
		out = strings.Join(parts, "\n")
	}
	return out
}
