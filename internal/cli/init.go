package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Pordilz/habit-tracker/internal/logger"
	"github.com/Pordilz/habit-tracker/internal/seed"
)

type InitCmd struct {
	NoSeed bool `help:"Skip loading the predefined sample habits."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	fmt.Printf("Initialized storage at %s\n", ctx.Store.GetConfigPath())

	if c.NoSeed {
		return nil
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}
	if len(habits) > 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	samples, err := seed.SampleHabits(ctx.ReferenceTime(), rng)
	if err != nil {
		return err
	}
	for _, h := range samples {
		if err := ctx.Store.AddHabit(h); err != nil {
			return fmt.Errorf("failed to seed habit %q: %w", h.Name, err)
		}
	}

	logger.Info("Seeded sample habits", "count", len(samples))
	fmt.Printf("Loaded %d sample habits with %d weeks of history.\n", len(samples), seed.HistoryWeeks)
	return nil
}
