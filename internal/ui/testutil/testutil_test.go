package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type echoModel struct {
	keys []string
}

func (m *echoModel) Init() tea.Cmd {
	return func() tea.Msg { return "init" }
}

func (m *echoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.keys = append(m.keys, msg.String())
		if msg.Type == tea.KeyEnter {
			return m, func() tea.Msg { return "enter-pressed" }
		}
	case string:
		m.keys = append(m.keys, "msg:"+msg)
	}
	return m, nil
}

func (m *echoModel) View() string {
	return "\x1b[1mkeys\x1b[0m"
}

func TestModelHarness_CapturesInit(t *testing.T) {
	h := NewModelHarness(&echoModel{})
	if len(h.Commands()) != 1 {
		t.Fatalf("expected 1 init command, got %d", len(h.Commands()))
	}
}

func TestModelHarness_Keys(t *testing.T) {
	m := &echoModel{}
	h := NewModelHarness(m)
	h.ClearCommands()

	h.SendKey("a")
	h.SendEscape()
	if h.LastCommand() != nil {
		t.Error("no command expected before enter")
	}
	h.SendEnter()

	want := []string{"a", "esc", "enter"}
	if len(m.keys) != len(want) {
		t.Fatalf("keys = %v, want %v", m.keys, want)
	}
	for i := range want {
		if m.keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, m.keys[i], want[i])
		}
	}

	if msg := h.ExecuteAndSend(h.LastCommand()); msg != "enter-pressed" {
		t.Errorf("ExecuteAndSend returned %v", msg)
	}
	if m.keys[len(m.keys)-1] != "msg:enter-pressed" {
		t.Error("command result should be fed back into the model")
	}
}

func TestModelHarness_ViewStripsANSI(t *testing.T) {
	h := NewModelHarness(&echoModel{})
	if h.View() != "keys" {
		t.Errorf("View() = %q, want %q", h.View(), "keys")
	}
}

func TestContainsAndFindLine(t *testing.T) {
	out := "first line\nsecond match\nthird"
	if !ContainsLine(out, "match") {
		t.Error("ContainsLine should find substring")
	}
	if ContainsLine(out, "missing") {
		t.Error("ContainsLine should not find missing substring")
	}
	if got := FindLine(out, "match"); got != "second match" {
		t.Errorf("FindLine = %q", got)
	}
	if got := FindLine(out, "missing"); got != "" {
		t.Errorf("FindLine = %q, want empty", got)
	}
}
