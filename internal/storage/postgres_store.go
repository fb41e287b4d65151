package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/Pordilz/habit-tracker/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS habits (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	periodicity TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS completions (
	habit_id     TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
	completed_at TIMESTAMPTZ NOT NULL,
	UNIQUE (habit_id, completed_at)
);
`

// IsPostgresConnString reports whether s looks like a Postgres connection
// string rather than a file path.
func IsPostgresConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Such strings are rejected so credentials stay in the OS
// keyring or the environment.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

func (s *PostgresStore) Init() error {
	if err := s.connect(); err != nil {
		return err
	}

	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *PostgresStore) Load() error {
	return s.connect()
}

func (s *PostgresStore) connect() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	s.db = db
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) AddHabit(habit models.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO habits (id, name, periodicity, created_at)
		VALUES ($1, $2, $3, $4)`,
		habit.ID, habit.Name, string(habit.Periodicity), habit.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert habit: %w", err)
	}

	if err := insertCompletionsPostgres(tx, habit); err != nil {
		return err
	}

	return tx.Commit()
}

func insertCompletionsPostgres(tx *sql.Tx, habit models.Habit) error {
	for _, c := range habit.Completions {
		if _, err := tx.Exec(`
			INSERT INTO completions (habit_id, completed_at)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			habit.ID, c,
		); err != nil {
			return fmt.Errorf("failed to insert completion: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) scanHabit(row *sql.Row) (models.Habit, error) {
	var h models.Habit
	if err := row.Scan(&h.ID, &h.Name, &h.Periodicity, &h.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, fmt.Errorf("habit not found")
		}
		return models.Habit{}, err
	}

	var err error
	if h.Completions, err = s.loadCompletions(h.ID); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (s *PostgresStore) loadCompletions(habitID string) ([]time.Time, error) {
	rows, err := s.db.Query(`
		SELECT completed_at FROM completions
		WHERE habit_id = $1 ORDER BY completed_at`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		completions = append(completions, t)
	}
	return completions, rows.Err()
}

func (s *PostgresStore) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, periodicity, created_at
		FROM habits WHERE id = $1`, id)
	h, err := s.scanHabit(row)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit %s: %w", id, err)
	}
	return h, nil
}

func (s *PostgresStore) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, periodicity, created_at
		FROM habits WHERE name = $1`, name)
	h, err := s.scanHabit(row)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit %q: %w", name, err)
	}
	return h, nil
}

func (s *PostgresStore) GetAllHabits() ([]models.Habit, error) {
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
		if err := rows.Scan(&h.ID, &h.Name, &h.Periodicity, &h.CreatedAt); err != nil {
			return nil, err
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

func (s *PostgresStore) UpdateHabit(habit models.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE habits SET name = $1, periodicity = $2, created_at = $3
		WHERE id = $4`,
		habit.Name, string(habit.Periodicity), habit.CreatedAt, habit.ID,
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

	if _, err := tx.Exec(`DELETE FROM completions WHERE habit_id = $1`, habit.ID); err != nil {
		return fmt.Errorf("failed to clear completions: %w", err)
	}
	if err := insertCompletionsPostgres(tx, habit); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *PostgresStore) DeleteHabit(id string) error {
	res, err := s.db.Exec(`DELETE FROM habits WHERE id = $1`, id)
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

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
