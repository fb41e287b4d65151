package cli

import (
	"fmt"

	"github.com/Pordilz/habit-tracker/internal/analytics"
	"github.com/Pordilz/habit-tracker/internal/validation"
)

type AnalyzeCmd struct {
	Streaks AnalyzeStreaksCmd `cmd:"" help:"Show current and longest streaks for every habit." default:"1"`
	Best    AnalyzeBestCmd    `cmd:"" help:"Show the habit with the longest streak."`
	List    AnalyzeListCmd    `cmd:"" help:"List tracked habits, optionally by periodicity."`
}

type AnalyzeStreaksCmd struct{}

func (c *AnalyzeStreaksCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet. Create one with 'habits habit add'.")
		return nil
	}

	reference := ctx.ReferenceTime()

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-24s %-8s %8s %8s", "Habit", "Period", "Current", "Longest")))
	for _, habit := range habits {
		current, err := habit.CurrentStreak(reference)
		if err != nil {
			return err
		}
		longest, err := habit.LongestStreak()
		if err != nil {
			return err
		}

		fmt.Printf("%-24s %-8s %8d %8d\n", truncateName(habit.Name, 24), habit.Periodicity, current, longest)
	}

	return nil
}

// truncateName shortens a habit name to at most max runes for table
// display. Slicing on runes keeps multibyte names valid UTF-8.
func truncateName(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max-3]) + "..."
}

type AnalyzeBestCmd struct{}

func (c *AnalyzeBestCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	best, streak, err := analytics.HabitWithLongestStreak(habits)
	if err == analytics.ErrEmptyCollection {
		fmt.Println("No habits yet. Create one with 'habits habit add'.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("The best habit is %q with a streak of %d!", best.Name, streak)))
	return nil
}

type AnalyzeListCmd struct {
	Periodicity string `help:"Only list habits with this periodicity (daily or weekly)."`
}

func (c *AnalyzeListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	habits = analytics.ListAll(habits)
	if c.Periodicity != "" {
		p, err := validation.ParsePeriodicity(c.Periodicity)
		if err != nil {
			return err
		}
		habits = analytics.FilterByPeriodicity(habits, p)
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		fmt.Println(habit.Name)
	}
	return nil
}
