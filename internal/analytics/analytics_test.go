package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/Pordilz/habit-tracker/internal/constants"
	"github.com/Pordilz/habit-tracker/internal/models"
)

// habitWithStreak builds a daily habit with a completion run of the given
// length ending well in the past, so only the longest streak is non-zero.
func habitWithStreak(t *testing.T, name string, days int) models.Habit {
	t.Helper()
	h, err := models.NewHabit(name, constants.PeriodicityDaily, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewHabit(%q) error = %v", name, err)
	}
	start := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < days; i++ {
		if _, err := h.CheckOff(start.AddDate(0, 0, i)); err != nil {
			t.Fatalf("CheckOff() error = %v", err)
		}
	}
	return h
}

func TestFilterByPeriodicity(t *testing.T) {
	mk := func(name string, p constants.Periodicity) models.Habit {
		h, err := models.NewHabit(name, p, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("NewHabit(%q) error = %v", name, err)
		}
		return h
	}
	habits := []models.Habit{
		mk("Run", constants.PeriodicityDaily),
		mk("Meal Prep", constants.PeriodicityWeekly),
		mk("Read", constants.PeriodicityDaily),
		mk("Review Budget", constants.PeriodicityWeekly),
	}

	tests := []struct {
		name        string
		periodicity constants.Periodicity
		want        []string
	}{
		{"daily preserves order", constants.PeriodicityDaily, []string{"Run", "Read"}},
		{"weekly preserves order", constants.PeriodicityWeekly, []string{"Meal Prep", "Review Budget"}},
		{"no match is empty", constants.Periodicity("monthly"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByPeriodicity(habits, tt.periodicity)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d habits, want %d", len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("result[%d] = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestListAll(t *testing.T) {
	habits := []models.Habit{
		habitWithStreak(t, "Run", 2),
		habitWithStreak(t, "Read", 1),
	}
	got := ListAll(habits)
	if len(got) != 2 || got[0].Name != "Run" || got[1].Name != "Read" {
		t.Errorf("ListAll() changed content or order: %v", got)
	}
}

func TestLongestStreakFor(t *testing.T) {
	h := habitWithStreak(t, "Run", 5)
	got, err := LongestStreakFor(h)
	if err != nil {
		t.Fatalf("LongestStreakFor() error = %v", err)
	}
	if got != 5 {
		t.Errorf("LongestStreakFor() = %d, want 5", got)
	}
}

func TestHabitWithLongestStreak(t *testing.T) {
	tests := []struct {
		name       string
		habits     []models.Habit
		wantName   string
		wantStreak int
	}{
		{
			name: "clear winner",
			habits: []models.Habit{
				habitWithStreak(t, "Run", 2),
				habitWithStreak(t, "Read", 7),
				habitWithStreak(t, "Stretch", 4),
			},
			wantName:   "Read",
			wantStreak: 7,
		},
		{
			name: "tie goes to first in order",
			habits: []models.Habit{
				habitWithStreak(t, "Run", 5),
				habitWithStreak(t, "Read", 5),
			},
			wantName:   "Run",
			wantStreak: 5,
		},
		{
			name: "all zero still picks first",
			habits: []models.Habit{
				habitWithStreak(t, "Run", 0),
				habitWithStreak(t, "Read", 0),
			},
			wantName:   "Run",
			wantStreak: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, err := HabitWithLongestStreak(tt.habits)
			if err != nil {
				t.Fatalf("HabitWithLongestStreak() error = %v", err)
			}
			if h.Name != tt.wantName {
				t.Errorf("winner = %q, want %q", h.Name, tt.wantName)
			}
			if s != tt.wantStreak {
				t.Errorf("streak = %d, want %d", s, tt.wantStreak)
			}
		})
	}
}

func TestHabitWithLongestStreakEmpty(t *testing.T) {
	_, _, err := HabitWithLongestStreak(nil)
	if !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("HabitWithLongestStreak(nil) error = %v, want ErrEmptyCollection", err)
	}
}
