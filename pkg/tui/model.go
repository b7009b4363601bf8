// Package tui renders the journal as a terminal app over the state store.
// The store stays the single source of truth: key presses dispatch actions,
// and every post-reduction state arrives back as a message.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/health"
)

type tab int

const (
	tabHome tab = iota
	tabDay
	tabReminders
	tabCount
)

// stateMsg carries each published store state into the program.
type stateMsg struct{ state app.AppState }

type storeClosedMsg struct{}

// Model is the root bubbletea model. It holds only view concerns; all
// journal data lives in the store state it mirrors.
type Model struct {
	store  *app.Store
	states <-chan app.AppState

	state app.AppState

	active tab
	width  int
	height int

	spin  spinner.Model
	input textinput.Model
	// typing is set while the quick-note input has focus.
	typing bool
}

// NewModel wires a Model over a running store.
func NewModel(st *app.Store) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	in := textinput.New()
	in.Placeholder = "quick note"
	in.CharLimit = 120

	return Model{
		store:  st,
		states: st.Subscribe(),
		state:  st.State(),
		spin:   sp,
		input:  in,
	}
}

func (m Model) Init() tea.Cmd {
	m.store.Dispatch(app.AppLaunched{})
	m.store.Dispatch(app.HomeOpened{})
	m.store.Dispatch(app.RemindersRequested{})
	return tea.Batch(m.waitForState(), m.spin.Tick)
}

func (m Model) waitForState() tea.Cmd {
	return func() tea.Msg {
		s, ok := <-m.states
		if !ok {
			return storeClosedMsg{}
		}
		return stateMsg{state: s}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = msg.state
		return m, m.waitForState()
	case storeClosedMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.typing {
		switch msg.Type {
		case tea.KeyEsc:
			m.typing = false
			m.input.Blur()
			m.input.Reset()
			return m, nil
		case tea.KeyEnter:
			title := strings.TrimSpace(m.input.Value())
			m.typing = false
			m.input.Blur()
			m.input.Reset()
			if title != "" {
				m.store.Dispatch(app.CreateLogOpened{Category: health.CategoryNote})
				m.store.Dispatch(app.CreateTitleChanged{Title: title})
				m.store.Dispatch(app.CreateSaveRequested{})
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "right", "l":
		m.active = (m.active + 1) % tabCount
		return m, nil
	case "shift+tab", "left", "h":
		m.active = (m.active + tabCount - 1) % tabCount
		return m, nil
	case "r":
		m.refresh()
		return m, nil
	case "n":
		m.typing = true
		m.input.Focus()
		return m, textinput.Blink
	case "[":
		if m.active == tabDay {
			m.store.Dispatch(app.DaySelected{Date: m.state.ViewLogs.Date.AddDate(0, 0, -1)})
		}
		return m, nil
	case "]":
		if m.active == tabDay {
			m.store.Dispatch(app.DaySelected{Date: m.state.ViewLogs.Date.AddDate(0, 0, 1)})
		}
		return m, nil
	case "t":
		if m.active == tabDay {
			m.store.Dispatch(app.DaySelected{Date: time.Now()})
		}
		return m, nil
	case "s":
		if m.active == tabReminders {
			if r := firstOverdue(m.state); r != nil {
				m.store.Dispatch(app.ReminderSkipRequested{Reminder: r})
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) refresh() {
	switch m.active {
	case tabHome:
		m.store.Dispatch(app.HomeOpened{})
	case tabDay:
		m.store.Dispatch(app.DayLogsRequested{})
	case tabReminders:
		m.store.Dispatch(app.RemindersRequested{})
	}
}

func firstOverdue(s app.AppState) *health.Reminder {
	now := time.Now()
	for _, r := range s.Global.Reminders {
		if r.Overdue(now) {
			return r
		}
	}
	return nil
}

// Run blocks until the user quits.
func Run(ctx context.Context, st *app.Store) error {
	p := tea.NewProgram(NewModel(st), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
