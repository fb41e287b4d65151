// Package seed produces the predefined sample habits loaded on first run.
// Seeding is a repository-boundary concern: the factory only builds
// entities, the caller decides whether (and where) to persist them.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Pordilz/habit-tracker/internal/constants"
	"github.com/Pordilz/habit-tracker/internal/models"
)

// HistoryWeeks is how far back the sample completion history reaches.
const HistoryWeeks = 4

// dailyCompletionRate is the chance a sample daily habit was checked off
// on any given day.
const dailyCompletionRate = 0.8

type definition struct {
	name        string
	periodicity constants.Periodicity
}

var definitions = []definition{
	{"Code Commits", constants.PeriodicityWeekly},
	{"Job Application Sprint", constants.PeriodicityWeekly},
	{"Scent of the Day", constants.PeriodicityDaily},
	{"Anime/Gaming Break", constants.PeriodicityDaily},
	{"Chewing Gum", constants.PeriodicityDaily},
}

// SampleHabits returns five predefined habits with HistoryWeeks of
// completion history ending at now. Daily habits get a realistic partial
// history drawn from rng; weekly habits are completed every week.
func SampleHabits(now time.Time, rng *rand.Rand) ([]models.Habit, error) {
	start := now.AddDate(0, 0, -HistoryWeeks*7)

	habits := make([]models.Habit, 0, len(definitions))
	for _, def := range definitions {
		h, err := models.NewHabit(def.name, def.periodicity, start)
		if err != nil {
			return nil, fmt.Errorf("failed to build sample habit %q: %w", def.name, err)
		}

		switch def.periodicity {
		case constants.PeriodicityDaily:
			for i := 0; i < HistoryWeeks*7; i++ {
				if rng.Float64() < dailyCompletionRate {
					if _, err := h.CheckOff(start.AddDate(0, 0, i)); err != nil {
						return nil, err
					}
				}
			}
		case constants.PeriodicityWeekly:
			for i := 0; i < HistoryWeeks; i++ {
				if _, err := h.CheckOff(start.AddDate(0, 0, i*7)); err != nil {
					return nil, err
				}
			}
		}

		habits = append(habits, h)
	}

	return habits, nil
}
