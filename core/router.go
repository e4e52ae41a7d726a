package core

import tea "github.com/charmbracelet/bubbletea"

// ScreenStack holds the modal overlays above the wizard. The top screen owns
// the keyboard until it reports itself done; the wizard underneath keeps its
// step and selection untouched while anything is stacked.
type ScreenStack struct {
	screens []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.screens = append(s.screens, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

func (s ScreenStack) Top() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

func (s ScreenStack) Len() int {
	return len(s.screens)
}

// Scope is the key scope of the top screen, or "" when the wizard step
// underneath should resolve keys.
func (s ScreenStack) Scope() string {
	if top := s.Top(); top != nil {
		return top.Scope()
	}
	return ""
}

// Route hands a message to the top screen. handled is false only when no
// screen is open. A screen that reports itself done is popped before its
// command is returned, so the command's message already sees the wizard's
// scope.
func (s *ScreenStack) Route(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	if len(s.screens) == 0 {
		return nil, false
	}
	next, cmd, done := s.screens[len(s.screens)-1].Update(msg)
	if done {
		s.Pop()
		return cmd, true
	}
	if next != nil {
		s.screens[len(s.screens)-1] = next
	}
	return cmd, true
}
