package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"skipflow/catalog"
	"skipflow/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// StepView is one wizard step's behaviour: it owns its cursor/tile state,
// keeps its gate up to date on the wizard, and builds its body widget.
type StepView interface {
	Step() WizardStep
	Title() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

// StepInitializer is implemented by steps that need a startup command.
type StepInitializer interface {
	InitStep(m *Model) tea.Cmd
}

// GateHinter lets a step explain why its gate is closed when the user tries
// to continue.
type GateHinter interface {
	GateHint(m *Model) string
}

type Model struct {
	width    int
	height   int
	steps    map[WizardStep]StepView
	screens  ScreenStack
	keys     *KeyRegistry
	commands *CommandRegistry

	status    string
	statusErr bool
	quitting  bool

	Catalog  []catalog.Skip
	Wizard   *Wizard
	Currency string

	OpenCommandModal func(m *Model, scope string) Screen
	OpenDetailModal  func(m *Model) Screen
}

func NewModel(skips []catalog.Skip, steps []StepView, keys *KeyRegistry, commands *CommandRegistry, currency string) Model {
	byStep := make(map[WizardStep]StepView, len(steps))
	for _, s := range steps {
		byStep[s.Step()] = s
	}
	return Model{
		steps:    byStep,
		keys:     keys,
		commands: commands,
		Catalog:  skips,
		Wizard:   NewWizard(),
		Currency: currency,
		status:   "Ready",
		width:    100,
		height:   32,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.steps))
	for _, s := range m.steps {
		if init, ok := s.(StepInitializer); ok {
			if cmd := init.InitStep(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if scope := m.screens.Scope(); scope != "" {
		return scope
	}
	return DefaultStepScope(m.Wizard.Current())
}

// IsAction reports whether the key message triggers the named action in the
// currently active scope. Steps use this instead of matching raw key strings.
func (m *Model) IsAction(msg tea.KeyMsg, action string) bool {
	return m.keys.IsAction(msg, action, m.ActiveScope())
}

func (m Model) ActiveStep() StepView {
	return m.steps[m.Wizard.Current()]
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

// AdvanceStep tries the forward transition and narrates the outcome in the
// status bar. Blocked and boundary attempts leave the step unchanged.
func (m *Model) AdvanceStep() {
	if m.Wizard.Advance() {
		m.announceStep()
		return
	}
	if m.Wizard.Current() == StepPayment {
		return
	}
	if step := m.ActiveStep(); step != nil {
		if h, ok := step.(GateHinter); ok {
			if hint := h.GateHint(m); hint != "" {
				m.SetStatus(hint)
				return
			}
		}
	}
	m.SetStatus("Complete this step before continuing")
}

func (m *Model) RetreatStep() {
	if m.Wizard.Retreat() {
		m.announceStep()
	}
}

func (m *Model) JumpToStep(step WizardStep) {
	if m.Wizard.JumpTo(step) {
		m.announceStep()
	} else {
		m.SetStatus("Finish the steps in between first")
	}
}

func (m *Model) announceStep() {
	cur := m.Wizard.Current()
	m.SetStatus(fmt.Sprintf("Step %d of %d: %s", cur, TotalSteps, cur.Title()))
}
