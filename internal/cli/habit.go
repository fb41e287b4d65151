package cli

import (
	"fmt"
	"time"

	"github.com/Pordilz/habit-tracker/internal/analytics"
	"github.com/Pordilz/habit-tracker/internal/constants"
	"github.com/Pordilz/habit-tracker/internal/models"
	"github.com/Pordilz/habit-tracker/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit a habit's name or periodicity."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its history."`
	Done   HabitDoneCmd   `cmd:"" help:"Check off a habit for today (or a given date)."`
	Log    HabitLogCmd    `cmd:"" help:"Show a habit's completion history and streaks."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Periodicity string `help:"How often the habit recurs (daily or weekly)." default:"daily"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	p, err := validation.ParsePeriodicity(c.Periodicity)
	if err != nil {
		return err
	}

	// Check if habit with same name already exists
	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit, err := models.NewHabit(c.Name, p, ctx.ReferenceTime())
	if err != nil {
		return err
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added %s habit: %s\n", p, c.Name)
	return nil
}

type HabitListCmd struct {
	Periodicity string `help:"Only list habits with this periodicity (daily or weekly)."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

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
		fmt.Printf("%s %s\n", habit.Name, subtleStyle.Render("("+string(habit.Periodicity)+")"))
	}

	return nil
}

type HabitEditCmd struct {
	Name        string `arg:"" help:"Habit to edit."`
	NewName     string `help:"New name for the habit."`
	Periodicity string `help:"New periodicity (daily or weekly)."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if c.NewName == "" && c.Periodicity == "" {
		return fmt.Errorf("nothing to change: provide --new-name and/or --periodicity")
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	var name *string
	if c.NewName != "" {
		if other, err := ctx.Store.GetHabitByName(c.NewName); err == nil && other.ID != habit.ID {
			return fmt.Errorf("habit with name %q already exists", c.NewName)
		}
		name = &c.NewName
	}

	var periodicity *constants.Periodicity
	if c.Periodicity != "" {
		p, err := validation.ParsePeriodicity(c.Periodicity)
		if err != nil {
			return err
		}
		periodicity = &p
	}

	if err := habit.Edit(name, periodicity); err != nil {
		return err
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Name)
	return nil
}

type HabitDoneCmd struct {
	Name string `arg:"" help:"Habit to check off."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	ts := ctx.ReferenceTime()
	if c.Date != "" {
		day, err := time.ParseInLocation(constants.DateFormat, c.Date, ts.Location())
		if err != nil {
			return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", c.Date)
		}
		ts = day
	}

	recorded, err := habit.CheckOff(ts)
	if err != nil {
		return err
	}
	if !recorded {
		period := "day"
		if habit.Periodicity == constants.PeriodicityWeekly {
			period = "week"
		}
		fmt.Println(warningStyle.Render(fmt.Sprintf("%q is already checked off for this %s.", c.Name, period)))
		return nil
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	current, err := habit.CurrentStreak(ctx.ReferenceTime())
	if err != nil {
		return err
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("Checked off %q. Current streak: %d.", c.Name, current)))
	return nil
}

type HabitLogCmd struct {
	Name string `arg:"" help:"Habit to show."`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	current, err := habit.CurrentStreak(ctx.ReferenceTime())
	if err != nil {
		return err
	}
	longest, err := habit.LongestStreak()
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(habit.Name))
	fmt.Printf("Periodicity:    %s\n", habit.Periodicity)
	fmt.Printf("Created:        %s\n", habit.CreatedAt.Format(constants.DateFormat))
	fmt.Printf("Current streak: %d\n", current)
	fmt.Printf("Longest streak: %d\n", longest)

	if len(habit.Completions) == 0 {
		fmt.Println("\nNo completions yet.")
		return nil
	}

	fmt.Printf("\nCompletions (%d):\n", len(habit.Completions))
	for _, t := range habit.Completions {
		fmt.Printf("  %s\n", t.Format(constants.DateFormat))
	}

	return nil
}
