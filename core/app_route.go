package core

import tea "github.com/charmbracelet/bubbletea"

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case AdvanceStepMsg:
		m.AdvanceStep()
		return m, nil
	case RetreatStepMsg:
		m.RetreatStep()
		return m, nil
	case JumpToStepMsg:
		m.JumpToStep(msg.Step)
		return m, nil
	case BookingConfirmedMsg:
		m.Wizard.SetConfirmed(msg.Reference)
		m.SetStatus("Booking confirmed: " + msg.Reference)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if cmd, handled := m.screens.Route(msg); handled {
			return m, cmd
		}

		action, _ := m.keys.ActionFor(msg, m.ActiveScope())
		switch action {
		case "quit":
			m.quitting = true
			return m, tea.Quit
		case "next-step":
			m.AdvanceStep()
			return m, nil
		case "back-step":
			m.RetreatStep()
			return m, nil
		case "open-command-palette":
			if m.OpenCommandModal != nil {
				m.screens.Push(m.OpenCommandModal(&m, m.ActiveScope()))
			}
			return m, nil
		case "open-skip-detail":
			if m.OpenDetailModal != nil {
				m.screens.Push(m.OpenDetailModal(&m))
			}
			return m, nil
		}
	}

	// everything else, option keys included, belongs to the top screen or
	// the active step
	if cmd, handled := m.screens.Route(msg); handled {
		return m, cmd
	}
	if step := m.ActiveStep(); step != nil {
		return m, step.Update(&m, msg)
	}
	return m, nil
}
