package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Pordilz/habit-tracker/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS habits (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	periodicity TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS completions (
	habit_id     TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
	completed_at TEXT NOT NULL,
	UNIQUE (habit_id, completed_at)
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := openSQLite(s.path)
	if err != nil {
		return err
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habits init' first")
	}

	db, err := openSQLite(s.path)
	if err != nil {
		return err
	}
	s.db = db

	return nil
}

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Cascading deletes require foreign keys, which SQLite disables by
	// default on every new connection.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return db, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) AddHabit(habit models.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO habits (id, name, periodicity, created_at)
		VALUES (?, ?, ?, ?)`,
		habit.ID, habit.Name, string(habit.Periodicity), habit.CreatedAt.Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("failed to insert habit: %w", err)
	}

	if err := insertCompletionsSQLite(tx, habit); err != nil {
		return err
	}

	return tx.Commit()
}

func insertCompletionsSQLite(tx *sql.Tx, habit models.Habit) error {
	for _, c := range habit.Completions {
		if _, err := tx.Exec(`
			INSERT OR IGNORE INTO completions (habit_id, completed_at)
			VALUES (?, ?)`,
			habit.ID, c.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("failed to insert completion: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) scanHabit(row *sql.Row) (models.Habit, error) {
	var h models.Habit
	var createdAt string

	if err := row.Scan(&h.ID, &h.Name, &h.Periodicity, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, fmt.Errorf("habit not found")
		}
		return models.Habit{}, err
	}

	var err error
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	if h.Completions, err = s.loadCompletions(h.ID); err != nil {
		return models.Habit{}, err
	}

	return h, nil
}

func (s *SQLiteStore) loadCompletions(habitID string) ([]time.Time, error) {
	rows, err := s.db.Query(`
		SELECT completed_at FROM completions
		WHERE habit_id = ? ORDER BY completed_at`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []time.Time
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse completed_at: %w", err)
		}
		completions = append(completions, t)
	}
	return completions, rows.Err()
}

func (s *SQLiteStore) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, periodicity, created_at
		FROM habits WHERE id = ?`, id)
	h, err := s.scanHabit(row)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit %s: %w", id, err)
	}
	return h, nil
}

func (s *SQLiteStore) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, periodicity, created_at
		FROM habits WHERE name = ?`, name)
	h, err := s.scanHabit(row)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit %q: %w", name, err)
	}
	return h, nil
}

func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, periodicity, created_at
		FROM habits ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var createdAt string
		if err := rows.Scan(&h.ID, &h.Name, &h.Periodicity, &createdAt); err != nil {
			return nil, err
		}
		h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range habits {
		if habits[i].Completions, err = s.loadCompletions(habits[i].ID); err != nil {
			return nil, err
		}
	}

	return habits, nil
}

func (s *SQLiteStore) UpdateHabit(habit models.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE habits SET name = ?, periodicity = ?, created_at = ?
		WHERE id = ?`,
		habit.Name, string(habit.Periodicity), habit.CreatedAt.Format(time.RFC3339), habit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("habit not found: %s", habit.ID)
	}

	// The entity owns its history, so the stored completions are replaced
	// wholesale with whatever the habit carries.
	if _, err := tx.Exec(`DELETE FROM completions WHERE habit_id = ?`, habit.ID); err != nil {
		return fmt.Errorf("failed to clear completions: %w", err)
	}
	if err := insertCompletionsSQLite(tx, habit); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) DeleteHabit(id string) error {
	res, err := s.db.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("habit not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
