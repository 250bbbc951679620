package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global" or "alert"
}

// All contains all key bindings for help generation and dispatch.
var All = []Binding{
	// Global
	{ActionFetch, []string{"f"}, "Fetch feed", "global"},
	{ActionSync, []string{"s"}, "Sync library", "global"},
	{ActionBurst, []string{"b"}, "Report two errors", "global"},
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},

	// Error alert
	{ActionAcknowledge, []string{"enter", "esc"}, "OK", "alert"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// HelpLine renders the bindings of a context as "key description · ...".
func HelpLine(context string) string {
	bindings := ByContext(context)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, strings.Join(b.Keys, "/")+" "+b.Description)
	}
	return strings.Join(parts, " · ")
}

// KeyBinding converts the first binding for action into a bubbles key.Binding.
func KeyBinding(action Action) key.Binding {
	for _, b := range All {
		if b.Action == action {
			return key.NewBinding(
				key.WithKeys(b.Keys...),
				key.WithHelp(strings.Join(b.Keys, "/"), b.Description),
			)
		}
	}
	return key.NewBinding(key.WithDisabled())
}
