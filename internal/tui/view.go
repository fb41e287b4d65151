package tui

import "github.com/Pordilz/habit-tracker/internal/errors"

func (m Model) View() string {
	view := m.list.View()

	if m.err != nil {
		view += "\n" + dangerStyle.Render(errors.Format(m.err))
	} else if m.status != "" {
		view += "\n" + statusStyle.Render(m.status)
	}

	view += "\n" + m.help.View(m.keys)
	return docStyle.Render(view)
}
