// Package analytics provides pure, side-effect-free queries over a
// collection of habits. Input order is always preserved so results are
// deterministic.
package analytics

import (
	"errors"

	"github.com/Pordilz/habit-tracker/internal/constants"
	"github.com/Pordilz/habit-tracker/internal/models"
)

// ErrEmptyCollection is returned by aggregate queries over zero habits.
// Callers can recover by prompting the user to create a habit first.
var ErrEmptyCollection = errors.New("no habits in collection")

// ListAll returns all habits. The identity view exists so callers and
// tests can treat "list" like every other query.
func ListAll(habits []models.Habit) []models.Habit {
	return habits
}

// FilterByPeriodicity returns the habits with the given periodicity,
// preserving input order.
func FilterByPeriodicity(habits []models.Habit, p constants.Periodicity) []models.Habit {
	var out []models.Habit
	for _, h := range habits {
		if h.Periodicity == p {
			out = append(out, h)
		}
	}
	return out
}

// LongestStreakFor returns the longest streak recorded for a single habit.
func LongestStreakFor(h models.Habit) (int, error) {
	return h.LongestStreak()
}

// HabitWithLongestStreak returns the habit whose longest streak is maximal
// together with that streak. Ties go to the first such habit in input
// order.
func HabitWithLongestStreak(habits []models.Habit) (models.Habit, int, error) {
	if len(habits) == 0 {
		return models.Habit{}, 0, ErrEmptyCollection
	}

	best := habits[0]
	bestStreak, err := habits[0].LongestStreak()
	if err != nil {
		return models.Habit{}, 0, err
	}
	for _, h := range habits[1:] {
		s, err := h.LongestStreak()
		if err != nil {
			return models.Habit{}, 0, err
		}
		if s > bestStreak {
			best = h
			bestStreak = s
		}
	}
	return best, bestStreak, nil
}
