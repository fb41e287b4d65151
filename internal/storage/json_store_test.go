package storage

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Pordilz/habit-tracker/internal/constants"
	"github.com/Pordilz/habit-tracker/internal/models"
)

func newTestHabit(t *testing.T, name string, p constants.Periodicity) models.Habit {
	t.Helper()
	h, err := models.NewHabit(name, p, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewHabit(%q) error = %v", name, err)
	}
	return h
}

func newLoadedJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "habits.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return store
}

func TestJSONStoreInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "habits.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	// A second init must refuse to clobber the existing file.
	if err := store.Init(); err == nil {
		t.Error("second Init() should fail on existing storage")
	}
}

func TestJSONStoreLoadUninitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "habits.json"))
	err := store.Load()
	if err == nil {
		t.Fatal("Load() on missing file should fail")
	}
	if !strings.Contains(err.Error(), "habits init") {
		t.Errorf("Load() error = %v, want hint to run 'habits init'", err)
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	h := newTestHabit(t, "Morning Run", constants.PeriodicityDaily)
	if _, err := h.CheckOff(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("CheckOff() error = %v", err)
	}
	if err := store.AddHabit(h); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	// A fresh store reading the same file sees the identical habit.
	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got, err := reopened.GetHabit(h.ID)
	if err != nil {
		t.Fatalf("GetHabit() error = %v", err)
	}
	if got.Name != h.Name || got.Periodicity != h.Periodicity {
		t.Errorf("round-tripped habit = %q/%s, want %q/%s", got.Name, got.Periodicity, h.Name, h.Periodicity)
	}
	if len(got.Completions) != 1 || !got.Completions[0].Equal(h.Completions[0]) {
		t.Errorf("round-tripped completions = %v, want %v", got.Completions, h.Completions)
	}
}

func TestJSONStorePreservesCreationOrder(t *testing.T) {
	store := newLoadedJSONStore(t)

	names := []string{"Zebra", "Alpha", "Middle"}
	for _, name := range names {
		if err := store.AddHabit(newTestHabit(t, name, constants.PeriodicityDaily)); err != nil {
			t.Fatalf("AddHabit(%q) error = %v", name, err)
		}
	}

	habits, err := store.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits() error = %v", err)
	}
	if len(habits) != len(names) {
		t.Fatalf("got %d habits, want %d", len(habits), len(names))
	}
	for i, name := range names {
		if habits[i].Name != name {
			t.Errorf("habits[%d] = %q, want %q (creation order)", i, habits[i].Name, name)
		}
	}
}

func TestJSONStoreDuplicateName(t *testing.T) {
	store := newLoadedJSONStore(t)

	if err := store.AddHabit(newTestHabit(t, "Morning Run", constants.PeriodicityDaily)); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	if err := store.AddHabit(newTestHabit(t, "Morning Run", constants.PeriodicityWeekly)); err == nil {
		t.Error("AddHabit() with duplicate name should fail")
	}
}

func TestJSONStoreUpdateHabit(t *testing.T) {
	store := newLoadedJSONStore(t)

	h := newTestHabit(t, "Morning Run", constants.PeriodicityDaily)
	if err := store.AddHabit(h); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	h.Name = "Evening Run"
	if _, err := h.CheckOff(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("CheckOff() error = %v", err)
	}
	if err := store.UpdateHabit(h); err != nil {
		t.Fatalf("UpdateHabit() error = %v", err)
	}

	got, err := store.GetHabitByName("Evening Run")
	if err != nil {
		t.Fatalf("GetHabitByName() error = %v", err)
	}
	if got.ID != h.ID || len(got.Completions) != 1 {
		t.Errorf("updated habit = %+v, want ID %s with 1 completion", got, h.ID)
	}

	// Renaming over another habit's name must fail.
	other := newTestHabit(t, "Read", constants.PeriodicityDaily)
	if err := store.AddHabit(other); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	other.Name = "Evening Run"
	if err := store.UpdateHabit(other); err == nil {
		t.Error("UpdateHabit() renaming onto an existing name should fail")
	}
}

func TestJSONStoreDeleteHabit(t *testing.T) {
	store := newLoadedJSONStore(t)

	h := newTestHabit(t, "Morning Run", constants.PeriodicityDaily)
	if err := store.AddHabit(h); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	if err := store.DeleteHabit(h.ID); err != nil {
		t.Fatalf("DeleteHabit() error = %v", err)
	}

	if _, err := store.GetHabit(h.ID); err == nil {
		t.Error("GetHabit() after delete should fail")
	}
	if err := store.DeleteHabit(h.ID); err == nil {
		t.Error("DeleteHabit() on missing habit should fail")
	}
}

func TestJSONStoreNotLoaded(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "habits.json"))

	if _, err := store.GetAllHabits(); err == nil {
		t.Error("GetAllHabits() before Load() should fail")
	}
	if err := store.AddHabit(newTestHabit(t, "Run", constants.PeriodicityDaily)); err == nil {
		t.Error("AddHabit() before Load() should fail")
	}
}
