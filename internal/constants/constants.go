package constants

// Periodicity represents how often a habit should be completed
type Periodicity string

const (
	PeriodicityDaily  Periodicity = "daily"
	PeriodicityWeekly Periodicity = "weekly"
)

// Valid reports whether p is one of the two supported periodicities.
func (p Periodicity) Valid() bool {
	return p == PeriodicityDaily || p == PeriodicityWeekly
}

// Periodicities lists all supported periodicities, in display order.
func Periodicities() []Periodicity {
	return []Periodicity{PeriodicityDaily, PeriodicityWeekly}
}

const (
	AppName            = "habits"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habits/habits.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habits-"

	// EnvDBConnection is the environment variable checked for a Postgres
	// connection string before falling back to the OS keyring.
	EnvDBConnection = "HABITS_DB_CONNECTION"
)
