// Package tui implements the interactive habit dashboard: a list of all
// habits with their streaks and today's status, with keys to check off and
// refresh.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Pordilz/habit-tracker/internal/models"
	"github.com/Pordilz/habit-tracker/internal/storage"
)

type Item struct {
	Habit   models.Habit
	Marked  bool
	Current int
	Longest int
}

func (i Item) Title() string {
	marker := "○"
	if i.Marked {
		marker = "✓"
	}
	return fmt.Sprintf("%s %s", marker, i.Habit.Name)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s · current %d · longest %d", i.Habit.Periodicity, i.Current, i.Longest)
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Mark    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Mark: key.NewBinding(
			key.WithKeys("m", "enter"),
			key.WithHelp("m", "mark done"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mark, k.Refresh, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Mark, k.Refresh, k.Quit}}
}

type Model struct {
	store storage.Provider
	now   func() time.Time

	list   list.Model
	keys   KeyMap
	help   help.Model
	status string
	err    error
}

func New(store storage.Provider, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Habits"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	m := Model{
		store: store,
		now:   now,
		list:  l,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	m.err = m.reload()
	return m
}

// reload re-reads all habits from the store and rebuilds the list items.
func (m *Model) reload() error {
	habits, err := m.store.GetAllHabits()
	if err != nil {
		return err
	}

	reference := m.now()
	items := make([]list.Item, 0, len(habits))
	for _, h := range habits {
		current, err := h.CurrentStreak(reference)
		if err != nil {
			return err
		}
		longest, err := h.LongestStreak()
		if err != nil {
			return err
		}
		items = append(items, Item{
			Habit:   h,
			Marked:  current > 0,
			Current: current,
			Longest: longest,
		})
	}
	m.list.SetItems(items)
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}
