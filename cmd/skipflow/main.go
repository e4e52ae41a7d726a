package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"skipflow/catalog"
	"skipflow/core"
	"skipflow/internal/config"
	"skipflow/internal/service"
	"skipflow/screens"
	"skipflow/steps"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	rates := catalog.DefaultRates()
	skips := catalog.Build(rates)
	if len(skips) == 0 {
		log.Fatal("catalog: no bookable skips")
	}
	locator := service.NewLocator(rates)
	booker := service.Booker{}

	skipStep := steps.NewSelectSkipStep(cfg.Booking.PreferredSize)
	stepViews := []core.StepView{
		steps.NewPostcodeStep(locator, cfg.Booking.DefaultZone),
		steps.NewWasteTypeStep(),
		skipStep,
		steps.NewPermitCheckStep(),
		steps.NewChooseDateStep(cfg.Booking.EarliestDeliveryDays, cfg.Booking.DateWindowDays, cfg.UI.DateFormat, nil),
		steps.NewPaymentStep(booker, cfg.UI.DateFormat),
	}

	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	commands := core.NewCommandRegistry(defaultCommands())

	m := core.NewModel(skips, stepViews, keys, commands, cfg.UI.CurrencySymbol)
	m.OpenCommandModal = func(m *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(m.Wizard.Current().Title(),
			func(query string) []core.CommandResult {
				return m.CommandRegistry().Search(query, scope, m)
			})
	}
	m.OpenDetailModal = func(m *core.Model) core.Screen {
		skip, ok := skipStep.Highlighted(m)
		if !ok {
			return nil
		}
		return screens.NewDetailScreen(skip, m.Currency)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "skipflow: %v\n", err)
		os.Exit(1)
	}
}

func defaultCommands() []core.Command {
	cmds := []core.Command{
		{
			ID:          "restart",
			Name:        "Restart booking",
			Description: "Clear every answer and start over",
			Execute: func(m *core.Model) tea.Cmd {
				m.Wizard.Reset()
				return core.StatusCmd("Booking restarted")
			},
		},
		{
			ID:          "quit",
			Name:        "Quit",
			Description: "Leave without booking",
			Execute: func(m *core.Model) tea.Cmd {
				return tea.Quit
			},
		},
	}
	for step := core.StepPostcode; step <= core.StepPayment; step++ {
		cmds = append(cmds, core.Command{
			ID:          fmt.Sprintf("goto-%d", int(step)),
			Name:        fmt.Sprintf("Go to step %d: %s", int(step), step.Title()),
			Description: "Jump to an already-reachable step",
			Step:        step,
			Execute: func(m *core.Model) tea.Cmd {
				return func() tea.Msg { return core.JumpToStepMsg{Step: step} }
			},
		})
	}
	return cmds
}
