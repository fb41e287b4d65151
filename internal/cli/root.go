package cli

import (
	"time"

	"github.com/Pordilz/habit-tracker/internal/backup"
	"github.com/Pordilz/habit-tracker/internal/logger"
	"github.com/Pordilz/habit-tracker/internal/storage"
)

type Context struct {
	Store storage.Provider
	// Now supplies the reference time for streak queries. Defaults to
	// time.Now; tests override it.
	Now func() time.Time
}

// ReferenceTime returns the "today" used for current-streak queries.
func (c *Context) ReferenceTime() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
