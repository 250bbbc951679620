// Package erroralert wraps a tea.Model and shows the reporter's current
// error as a modal dialog on top of it.
package erroralert

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/erralert/internal/errreport"
	"github.com/llehouerou/erralert/internal/keymap"
	"github.com/llehouerou/erralert/internal/ui"
	"github.com/llehouerou/erralert/internal/ui/action"
)

// Source identifies this component in action messages.
const Source = "erroralert"

// Title is the fixed dialog title.
const Title = "Error"

// Acknowledged is sent to the content when the user dismisses the alert.
type Acknowledged struct {
	Err error
}

// ActionType implements action.Action.
func (Acknowledged) ActionType() string { return "erroralert.acknowledged" }

// Model decorates content with the error alert.
type Model struct {
	ui.Base
	content     tea.Model
	reporter    *errreport.Reporter
	acknowledge key.Binding
	quit        key.Binding

	presented   bool
	message     string
	unsubscribe func()
}

// Compile-time check that Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// New wraps content. The same reporter must be shared with every producer.
func New(content tea.Model, reporter *errreport.Reporter) *Model {
	m := &Model{
		content:     content,
		reporter:    reporter,
		acknowledge: keymap.KeyBinding(keymap.ActionAcknowledge),
		quit:        key.NewBinding(key.WithKeys("ctrl+c")),
	}
	m.unsubscribe = reporter.Subscribe(m.onChange)
	return m
}

// onChange follows the emptiness of the current error. Overwrites while the
// alert is up keep the message captured when it was shown.
func (m *Model) onChange(c errreport.Change) {
	showing := c.Current != nil
	if showing == m.presented {
		return
	}
	m.presented = showing
	if showing {
		m.message = c.Current.Error()
	} else {
		m.message = ""
	}
}

// Presented reports whether the alert is visible.
func (m *Model) Presented() bool {
	return m.presented
}

// Message returns the message the alert displays, or "" when the current
// error has been cleared.
func (m *Model) Message() string {
	if m.reporter.Current() == nil {
		return ""
	}
	return m.message
}

// Content returns the wrapped model.
func (m *Model) Content() tea.Model {
	return m.content
}

// Close detaches the alert from the reporter.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.content.Init(), m.reporter.Listen())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case errreport.ReportedMsg:
		return m, m.reporter.Update(msg)

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.presented {
			return m.handleKey(msg)
		}
	}

	return m, m.forward(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.acknowledge):
		err := m.reporter.Current()
		m.reporter.Clear()
		return m, action.Cmd(Source, Acknowledged{Err: err})
	case key.Matches(msg, m.quit):
		return m, m.forward(msg)
	}
	// Modal: everything else is swallowed.
	return m, nil
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return cmd
}
