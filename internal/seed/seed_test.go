package seed

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Pordilz/habit-tracker/internal/constants"
)

func TestSampleHabits(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	habits, err := SampleHabits(now, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("SampleHabits() error = %v", err)
	}

	if len(habits) != 5 {
		t.Fatalf("got %d habits, want 5", len(habits))
	}

	var daily, weekly int
	for _, h := range habits {
		switch h.Periodicity {
		case constants.PeriodicityDaily:
			daily++
		case constants.PeriodicityWeekly:
			weekly++
		default:
			t.Errorf("habit %q has unexpected periodicity %s", h.Name, h.Periodicity)
		}

		if len(h.Completions) == 0 {
			t.Errorf("habit %q has no completion history", h.Name)
		}
		for _, c := range h.Completions {
			if c.Before(now.AddDate(0, 0, -HistoryWeeks*7)) || c.After(now) {
				t.Errorf("habit %q completion %v outside the %d-week window", h.Name, c, HistoryWeeks)
			}
		}
	}
	if daily != 3 || weekly != 2 {
		t.Errorf("got %d daily / %d weekly, want 3 / 2", daily, weekly)
	}
}

func TestSampleHabitsWeeklyFullHistory(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	habits, err := SampleHabits(now, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("SampleHabits() error = %v", err)
	}

	for _, h := range habits {
		if h.Periodicity != constants.PeriodicityWeekly {
			continue
		}
		if len(h.Completions) != HistoryWeeks {
			t.Errorf("weekly habit %q has %d completions, want %d", h.Name, len(h.Completions), HistoryWeeks)
		}
		longest, err := h.LongestStreak()
		if err != nil {
			t.Fatalf("LongestStreak() error = %v", err)
		}
		if longest != HistoryWeeks {
			t.Errorf("weekly habit %q longest streak = %d, want %d", h.Name, longest, HistoryWeeks)
		}
	}
}

func TestSampleHabitsDeterministic(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	a, err := SampleHabits(now, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("SampleHabits() error = %v", err)
	}
	b, err := SampleHabits(now, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("SampleHabits() error = %v", err)
	}

	for i := range a {
		if a[i].Name != b[i].Name {
			t.Fatalf("habit order differs: %q vs %q", a[i].Name, b[i].Name)
		}
		if len(a[i].Completions) != len(b[i].Completions) {
			t.Errorf("habit %q history differs with identical seed: %d vs %d",
				a[i].Name, len(a[i].Completions), len(b[i].Completions))
		}
	}
}
