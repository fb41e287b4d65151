// Package streak computes streak analytics from a habit's completion
// history. Everything here is pure: callers pass the raw completions, the
// periodicity, and a reference time, and get counts back. No state, no
// clock access.
package streak

import (
	"fmt"
	"sort"
	"time"

	"github.com/Pordilz/habit-tracker/internal/constants"
)

// Result holds the streak counts derived from a completion history.
type Result struct {
	// Current is the consecutive-period run ending in the reference
	// period. Zero when the most recent completion is stale.
	Current int
	// Longest is the maximum consecutive-period run anywhere in the
	// history. Always >= Current.
	Longest int
}

// InvalidPeriodicityError reports a periodicity outside the closed enum
// reaching the calculator. Upstream validation should make this
// unreachable; it is surfaced rather than defaulted so the invariant
// violation is visible.
type InvalidPeriodicityError struct {
	Periodicity constants.Periodicity
}

func (e *InvalidPeriodicityError) Error() string {
	return fmt.Sprintf("invalid periodicity %q reached streak calculator", string(e.Periodicity))
}

// Anchor maps a timestamp to the canonical marker of its period: midnight
// of its calendar day for daily habits, midnight of the Monday of its ISO
// week for weekly habits. Two timestamps share a period exactly when their
// anchors are equal.
func Anchor(t time.Time, p constants.Periodicity) (time.Time, error) {
	switch p {
	case constants.PeriodicityDaily:
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	case constants.PeriodicityWeekly:
		y, m, d := t.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		// Walk back to Monday. time.Weekday numbers Sunday as 0.
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset), nil
	default:
		return time.Time{}, &InvalidPeriodicityError{Periodicity: p}
	}
}

// SamePeriod reports whether a and b fall in the same period.
func SamePeriod(a, b time.Time, p constants.Periodicity) (bool, error) {
	aa, err := Anchor(a, p)
	if err != nil {
		return false, err
	}
	ba, err := Anchor(b, p)
	if err != nil {
		return false, err
	}
	return aa.Equal(ba), nil
}

// Normalize collapses completions to one sorted anchor per period.
// Applying it to already-normalized input returns the same sequence.
func Normalize(completions []time.Time, p constants.Periodicity) ([]time.Time, error) {
	seen := make(map[time.Time]struct{}, len(completions))
	anchors := make([]time.Time, 0, len(completions))
	for _, c := range completions {
		a, err := Anchor(c, p)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		anchors = append(anchors, a)
	}
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].Before(anchors[j]) })
	return anchors, nil
}

// periodStep returns the calendar step between consecutive anchors in days.
func periodStep(p constants.Periodicity) int {
	if p == constants.PeriodicityWeekly {
		return 7
	}
	return 1
}

// Calculate derives the current and longest streaks from a completion
// history. Adjacency is plain date arithmetic on anchors, so ISO week
// 52/53 rolling into week 1 of the next year needs no special casing.
func Calculate(completions []time.Time, p constants.Periodicity, reference time.Time) (Result, error) {
	anchors, err := Normalize(completions, p)
	if err != nil {
		return Result{}, err
	}
	if len(anchors) == 0 {
		return Result{}, nil
	}

	step := periodStep(p)
	run := 1
	longest := 1
	for i := 1; i < len(anchors); i++ {
		if anchors[i].Equal(anchors[i-1].AddDate(0, 0, step)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// The trailing run only counts as current when the last completion
	// falls in the reference period.
	refAnchor, err := Anchor(reference, p)
	if err != nil {
		return Result{}, err
	}
	current := 0
	if anchors[len(anchors)-1].Equal(refAnchor) {
		current = run
	}

	return Result{Current: current, Longest: longest}, nil
}
