package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-2)
		return m, nil

	case tea.KeyMsg:
		// Let the list handle keys while the user is filtering.
		if m.list.FilterState() != list.Filtering {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit

			case key.Matches(msg, m.keys.Mark):
				m.markSelected()
				return m, nil

			case key.Matches(msg, m.keys.Refresh):
				m.status = ""
				m.err = m.reload()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// markSelected checks off the habit under the cursor for the current
// period and persists the change.
func (m *Model) markSelected() {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return
	}

	habit := item.Habit
	recorded, err := habit.CheckOff(m.now())
	if err != nil {
		m.err = err
		return
	}
	if !recorded {
		m.status = fmt.Sprintf("%q is already checked off for this period", habit.Name)
		return
	}

	if err := m.store.UpdateHabit(habit); err != nil {
		m.err = err
		return
	}

	m.status = fmt.Sprintf("Checked off %q", habit.Name)
	m.err = m.reload()
}
