package erroralert

import (
	"github.com/llehouerou/erralert/internal/keymap"
	"github.com/llehouerou/erralert/internal/ui/popup"
	"github.com/llehouerou/erralert/internal/ui/styles"
)

// maxDialogWidth caps the auto-fit width; longer messages wrap.
const maxDialogWidth = 60

// View implements tea.Model.
func (m *Model) View() string {
	base := m.content.View()
	if !m.presented || m.Width() == 0 || m.Height() == 0 {
		return base
	}
	return popup.Compose(base, m.renderDialog(), m.Width(), m.Height())
}

func (m *Model) renderDialog() string {
	t := styles.T()

	d := popup.New()
	d.Title = styles.ApplyBoldGradient(Title, t.Error, t.Warning)
	d.Content = m.Message()
	d.Footer = t.S().Key.Render("[ OK ]") + "  " + t.S().Subtle.Render(keymap.HelpLine("alert"))
	d.MaxWidth = maxDialogWidth

	return d.Render(m.Width(), m.Height())
}
