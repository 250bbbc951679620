package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/erralert/internal/keymap"
	"github.com/llehouerou/erralert/internal/ui/styles"
)

// View implements tea.Model.
func (m *Model) View() string {
	s := styles.T().S()

	lines := []string{
		s.Title.Render("erralert"),
		"",
		s.Muted.Render("Background jobs report failures; the alert shows the latest one."),
		"",
		"jobs started  " + s.Base.Render(fmt.Sprint(m.started)),
		"running       " + s.Base.Render(fmt.Sprint(m.running)),
		"failed        " + s.Error.Render(fmt.Sprint(m.failed)),
		"acknowledged  " + s.Base.Render(fmt.Sprint(m.acknowledged)),
	}
	if m.lastAck != "" {
		lines = append(lines, "", s.Subtle.Render("last dismissed: "+m.lastAck))
	}

	body := strings.Join(lines, "\n")
	help := s.Subtle.Render(keymap.HelpLine("global"))

	if m.Height() == 0 {
		return body + "\n\n" + help
	}

	// Pin the help line to the bottom row.
	gap := max(m.Height()-lipgloss.Height(body), 1)
	return body + strings.Repeat("\n", gap) + help
}
