package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Pordilz/habit-tracker/internal/constants"
	"github.com/Pordilz/habit-tracker/internal/streak"
	"github.com/Pordilz/habit-tracker/internal/validation"
)

// Habit represents a recurring practice to track.
//
// Completions is kept normalized at this boundary: sorted ascending with at
// most one entry per period. Streak counts are never stored; they are
// recomputed from Completions on demand.
type Habit struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Periodicity constants.Periodicity `json:"periodicity"`
	CreatedAt   time.Time             `json:"created_at"`
	Completions []time.Time           `json:"completions"`
}

// NewHabit creates a habit with an empty completion history. The name must
// be non-empty and the periodicity one of the closed enum.
func NewHabit(name string, periodicity constants.Periodicity, createdAt time.Time) (Habit, error) {
	if err := validation.Name(name); err != nil {
		return Habit{}, err
	}
	if err := validation.PeriodicityValue(periodicity); err != nil {
		return Habit{}, err
	}
	return Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Periodicity: periodicity,
		CreatedAt:   createdAt,
	}, nil
}

// CheckOff records a completion at ts. Checking off twice in the same
// period (same calendar day for daily, same ISO week for weekly) is a
// no-op. It reports whether a completion was recorded.
func (h *Habit) CheckOff(ts time.Time) (bool, error) {
	anchor, err := streak.Anchor(ts, h.Periodicity)
	if err != nil {
		return false, err
	}
	for _, c := range h.Completions {
		ca, err := streak.Anchor(c, h.Periodicity)
		if err != nil {
			return false, err
		}
		if ca.Equal(anchor) {
			return false, nil
		}
	}
	h.Completions = append(h.Completions, ts)
	// Insertion keeps the history sorted; out-of-order timestamps (e.g.
	// a backdated check-off) are reordered here.
	for i := len(h.Completions) - 1; i > 0 && h.Completions[i].Before(h.Completions[i-1]); i-- {
		h.Completions[i], h.Completions[i-1] = h.Completions[i-1], h.Completions[i]
	}
	return true, nil
}

// Edit replaces the name and/or periodicity. Nil means "leave unchanged".
// The completion history is preserved so existing streak data is not lost.
func (h *Habit) Edit(name *string, periodicity *constants.Periodicity) error {
	if name != nil {
		if err := validation.Name(*name); err != nil {
			return err
		}
	}
	if periodicity != nil {
		if err := validation.PeriodicityValue(*periodicity); err != nil {
			return err
		}
	}
	if name != nil {
		h.Name = *name
	}
	if periodicity != nil {
		h.Periodicity = *periodicity
	}
	return nil
}

// CurrentStreak returns the consecutive-period run ending in the period
// that contains reference, or zero if the streak is broken.
func (h *Habit) CurrentStreak(reference time.Time) (int, error) {
	res, err := streak.Calculate(h.Completions, h.Periodicity, reference)
	if err != nil {
		return 0, err
	}
	return res.Current, nil
}

// LongestStreak returns the maximum consecutive-period run anywhere in the
// completion history.
func (h *Habit) LongestStreak() (int, error) {
	res, err := streak.Calculate(h.Completions, h.Periodicity, time.Time{})
	if err != nil {
		return 0, err
	}
	return res.Longest, nil
}
