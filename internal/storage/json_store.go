package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Pordilz/habit-tracker/internal/models"
)

// Store is the on-disk shape of the JSON file: one record per habit with
// name, periodicity, creation time, and the completion timestamp list.
// Habits are a slice, not a map, so creation order survives round-trips.
type Store struct {
	Version int            `json:"version"`
	Habits  []models.Habit `json:"habits"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{Version: 1}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habits init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) AddHabit(habit models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for _, h := range s.store.Habits {
		if h.ID == habit.ID {
			return fmt.Errorf("habit already exists: %s", habit.ID)
		}
		if h.Name == habit.Name {
			return fmt.Errorf("habit with name %q already exists", habit.Name)
		}
	}

	s.store.Habits = append(s.store.Habits, habit)
	return s.save()
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	if s.store == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	for _, h := range s.store.Habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit not found: %s", id)
}

func (s *JSONStore) GetHabitByName(name string) (models.Habit, error) {
	if s.store == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	for _, h := range s.store.Habits {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit not found: %s", name)
}

func (s *JSONStore) GetAllHabits() ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habits := make([]models.Habit, len(s.store.Habits))
	copy(habits, s.store.Habits)
	return habits, nil
}

func (s *JSONStore) UpdateHabit(habit models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for _, h := range s.store.Habits {
		if h.ID != habit.ID && h.Name == habit.Name {
			return fmt.Errorf("habit with name %q already exists", habit.Name)
		}
	}

	for i, h := range s.store.Habits {
		if h.ID == habit.ID {
			s.store.Habits[i] = habit
			return s.save()
		}
	}
	return fmt.Errorf("habit not found: %s", habit.ID)
}

func (s *JSONStore) DeleteHabit(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i, h := range s.store.Habits {
		if h.ID == id {
			s.store.Habits = append(s.store.Habits[:i], s.store.Habits[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("habit not found: %s", id)
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
