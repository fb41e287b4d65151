package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/Pordilz/habit-tracker/internal/analytics"
	"github.com/Pordilz/habit-tracker/internal/constants"
	"github.com/Pordilz/habit-tracker/internal/models"
)

// Menu choices, matched by value below.
const (
	menuCheckOff = "Check-off a habit"
	menuAnalyze  = "Analyze habits"
	menuCreate   = "Create a new habit"
	menuEdit     = "Edit a habit"
	menuDelete   = "Delete a habit"
	menuExit     = "Exit"

	reportListAll       = "List all habits"
	reportByPeriodicity = "List by periodicity"
	reportHabitStreak   = "Longest streak for a specific habit"
	reportBestHabit     = "Longest streak across ALL habits"
)

// MenuCmd runs the interactive menu loop: pick an action, perform it,
// return to the menu until the user exits.
type MenuCmd struct{}

func (c *MenuCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}
	fmt.Printf("Welcome! Loaded %d habits.\n", len(habits))

	for {
		var choice string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(huh.NewOptions(menuCheckOff, menuAnalyze, menuCreate, menuEdit, menuDelete, menuExit)...).
				Value(&choice),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		var actionErr error
		switch choice {
		case menuExit:
			fmt.Println("Bye!")
			return nil
		case menuCheckOff:
			actionErr = c.checkOff(ctx)
		case menuAnalyze:
			actionErr = c.analyze(ctx)
		case menuCreate:
			actionErr = c.create(ctx)
		case menuEdit:
			actionErr = c.edit(ctx)
		case menuDelete:
			actionErr = c.delete(ctx)
		}
		if actionErr != nil {
			if errors.Is(actionErr, huh.ErrUserAborted) {
				continue
			}
			// Surface the failure but stay in the loop; menu errors are
			// recoverable by re-prompting.
			fmt.Println(warningStyle.Render(fmt.Sprintf("Error: %v", actionErr)))
		}
	}
}

// selectHabit prompts for one of the stored habits by name. It returns
// analytics.ErrEmptyCollection when there is nothing to select.
func (c *MenuCmd) selectHabit(ctx *Context, title string) (models.Habit, error) {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return models.Habit{}, err
	}
	if len(habits) == 0 {
		return models.Habit{}, analytics.ErrEmptyCollection
	}

	names := make([]string, len(habits))
	for i, h := range habits {
		names[i] = h.Name
	}

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(huh.NewOptions(names...)...).Value(&selected),
	))
	if err := form.Run(); err != nil {
		return models.Habit{}, err
	}

	return ctx.Store.GetHabitByName(selected)
}

func (c *MenuCmd) checkOff(ctx *Context) error {
	habit, err := c.selectHabit(ctx, "Select habit:")
	if err != nil {
		if err == analytics.ErrEmptyCollection {
			fmt.Println("No habits found!")
			return nil
		}
		return err
	}

	recorded, err := habit.CheckOff(ctx.ReferenceTime())
	if err != nil {
		return err
	}
	if !recorded {
		fmt.Println(warningStyle.Render(fmt.Sprintf("%q is already checked off for this period.", habit.Name)))
		return nil
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("Checked off %q!", habit.Name)))
	return nil
}

func (c *MenuCmd) analyze(ctx *Context) error {
	var report string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which report?").
			Options(huh.NewOptions(reportListAll, reportByPeriodicity, reportHabitStreak, reportBestHabit)...).
			Value(&report),
	))
	if err := form.Run(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	switch report {
	case reportListAll:
		fmt.Println(headerStyle.Render("All Habits:"))
		for _, h := range analytics.ListAll(habits) {
			fmt.Printf("  - %s\n", h.Name)
		}

	case reportByPeriodicity:
		p, err := selectPeriodicity("Which type?")
		if err != nil {
			return err
		}
		fmt.Println(headerStyle.Render(fmt.Sprintf("%s habits:", p)))
		for _, h := range analytics.FilterByPeriodicity(habits, p) {
			fmt.Printf("  - %s\n", h.Name)
		}

	case reportHabitStreak:
		habit, err := c.selectHabit(ctx, "Select habit:")
		if err != nil {
			if err == analytics.ErrEmptyCollection {
				fmt.Println("No habits found!")
				return nil
			}
			return err
		}
		streak, err := analytics.LongestStreakFor(habit)
		if err != nil {
			return err
		}
		fmt.Printf("Longest streak for %q: %d\n", habit.Name, streak)

	case reportBestHabit:
		best, streak, err := analytics.HabitWithLongestStreak(habits)
		if err != nil {
			if err == analytics.ErrEmptyCollection {
				fmt.Println("No habits found!")
				return nil
			}
			return err
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("The best habit is %q with a streak of %d!", best.Name, streak)))
	}

	return nil
}

func (c *MenuCmd) create(ctx *Context) error {
	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Habit name:").Value(&name),
	))
	if err := form.Run(); err != nil {
		return err
	}

	p, err := selectPeriodicity("Periodicity:")
	if err != nil {
		return err
	}

	if _, err := ctx.Store.GetHabitByName(name); err == nil {
		return fmt.Errorf("habit with name %q already exists", name)
	}

	habit, err := models.NewHabit(name, p, ctx.ReferenceTime())
	if err != nil {
		return err
	}
	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Created %q!", name)))
	return nil
}

func (c *MenuCmd) edit(ctx *Context) error {
	habit, err := c.selectHabit(ctx, "Which habit do you want to edit?")
	if err != nil {
		if err == analytics.ErrEmptyCollection {
			fmt.Println("No habits found!")
			return nil
		}
		return err
	}

	var what string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("What would you like to edit?").
			Options(huh.NewOptions("Name", "Periodicity", "Both")...).
			Value(&what),
	))
	if err := form.Run(); err != nil {
		return err
	}

	var newName *string
	var newPeriodicity *constants.Periodicity

	if what == "Name" || what == "Both" {
		name := habit.Name
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("New name:").Value(&name),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if other, err := ctx.Store.GetHabitByName(name); err == nil && other.ID != habit.ID {
			return fmt.Errorf("habit with name %q already exists", name)
		}
		newName = &name
	}

	if what == "Periodicity" || what == "Both" {
		p, err := selectPeriodicity("New periodicity:")
		if err != nil {
			return err
		}
		newPeriodicity = &p
	}

	if err := habit.Edit(newName, newPeriodicity); err != nil {
		return err
	}
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Updated habit to %q (%s).", habit.Name, habit.Periodicity)))
	return nil
}

func (c *MenuCmd) delete(ctx *Context) error {
	habit, err := c.selectHabit(ctx, "Delete which habit?")
	if err != nil {
		if err == analytics.ErrEmptyCollection {
			fmt.Println("No habits found!")
			return nil
		}
		return err
	}

	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q and its history?", habit.Name)).
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted %q.\n", habit.Name)
	return nil
}

func selectPeriodicity(title string) (constants.Periodicity, error) {
	options := make([]huh.Option[constants.Periodicity], 0, 2)
	for _, p := range constants.Periodicities() {
		options = append(options, huh.NewOption(string(p), p))
	}

	var p constants.Periodicity
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[constants.Periodicity]().Title(title).Options(options...).Value(&p),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return p, nil
}
