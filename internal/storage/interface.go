package storage

import "github.com/Pordilz/habit-tracker/internal/models"

// Provider is the repository boundary: it hydrates habit entities and
// persists them back. The core never performs I/O itself.
//
// GetAllHabits returns habits in creation order so that order-sensitive
// analytics (first-wins tie-breaks) are deterministic across stores.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error

	// Utils
	GetConfigPath() string
}
