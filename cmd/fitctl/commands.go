package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/fitness"
	"github.com/fittrack/fittrack/pkg/fitclient"

	"github.com/spf13/pflag"
)

func newFlagSet(name string) *pflag.FlagSet {
	return pflag.NewFlagSet("fitctl "+name, pflag.ContinueOnError)
}

func runSignup(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("signup")
	req := fitclient.SignupRequest{}
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.StringVar(&req.Location, "location", "", "location")
	fs.Float64Var(&req.Height, "height", 0, "height in cm")
	if err := fs.Parse(args); err != nil {
		return err
	}

	session, err := a.client.Signup(ctx, req)
	if err != nil {
		return err
	}
	if err := a.sessions.Save(session); err != nil {
		return err
	}
	a.printf("signed up as %s (%s), session saved to %s\n", session.Name, session.Email, a.sessions.Path())
	return nil
}

func runLogin(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("--email and --password are required")
	}

	session, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if err := a.sessions.Save(session); err != nil {
		return err
	}
	a.printf("logged in as %s, session saved to %s\n", session.Name, a.sessions.Path())
	return nil
}

func runLogout(_ context.Context, a *app, _ []string) error {
	if err := a.sessions.Clear(); err != nil {
		return err
	}
	a.printf("logged out\n")
	return nil
}

// runPull refreshes the saved profile from the server, then loads every collection.
func runPull(ctx context.Context, a *app, _ []string) error {
	session, err := a.session()
	if err != nil {
		return err
	}
	profile, err := a.client.Profile(ctx)
	if err != nil {
		return err
	}
	session.User = *profile
	if err := a.sessions.Save(session); err != nil {
		return err
	}

	store, err := a.store(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(store.State())
}

func runMeasure(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("measure")
	m := domain.Measurement{}
	fs.StringVar(&m.Date, "date", a.today(), "date (YYYY-MM-DD)")
	fs.Float64Var(&m.Weight, "weight", 0, "weight in kg")
	fs.Float64Var(&m.WaistUpper, "waist-upper", 0, "upper waist")
	fs.Float64Var(&m.WaistLower, "waist-lower", 0, "lower waist")
	fs.Float64Var(&m.Chest, "chest", 0, "chest")
	fs.Float64Var(&m.Hip, "hip", 0, "hip")
	fs.StringVar(&m.Notes, "notes", "", "notes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := a.store(ctx)
	if err != nil {
		return err
	}
	if _, err := store.AddMeasurement(ctx, m); err != nil {
		return err
	}
	return a.printJSON(store.State().Measurements)
}

func runWorkout(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("workout")
	w := domain.WorkoutLog{}
	fs.StringVar(&w.Date, "date", a.today(), "date (YYYY-MM-DD)")
	fs.StringVar(&w.Type, "type", "", "workout type, e.g. Push")
	fs.IntVar(&w.Duration, "duration", 0, "duration in minutes")
	fs.BoolVar(&w.Completed, "completed", false, "mark the workout done")
	exercises := fs.StringArray("exercise", nil, "exercise as name:sets:reps:kg (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, raw := range *exercises {
		ex, err := parseExercise(raw)
		if err != nil {
			return err
		}
		w.Exercises = append(w.Exercises, ex)
	}

	store, err := a.store(ctx)
	if err != nil {
		return err
	}
	if _, err := store.AddWorkout(ctx, w); err != nil {
		return err
	}
	return a.printJSON(store.State().Workouts)
}

func runDiet(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("diet")
	d := domain.DietLog{}
	fs.StringVar(&d.Date, "date", a.today(), "date (YYYY-MM-DD)")
	fs.Float64Var(&d.Water, "water", 0, "water in litres")
	fs.IntVar(&d.Eggs, "eggs", 0, "eggs eaten")
	slots := map[string]*[]string{}
	for _, slot := range []string{"breakfast", "lunch", "snacks", "dinner", "junk"} {
		slots[slot] = fs.StringArray(slot, nil, slot+" item as name:qty:unit (repeatable)")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	targets := map[string]*[]domain.MealItem{
		"breakfast": &d.Meals.Breakfast,
		"lunch":     &d.Meals.Lunch,
		"snacks":    &d.Meals.Snacks,
		"dinner":    &d.Meals.Dinner,
		"junk":      &d.Meals.Junk,
	}
	for slot, values := range slots {
		if *targets[slot], err = parseMealItems(*values); err != nil {
			return err
		}
	}

	store, err := a.store(ctx)
	if err != nil {
		return err
	}
	saved, err := store.AddDiet(ctx, d)
	if err != nil {
		return err
	}
	a.printf("diet score for %s: %d/10 (%d days logged)\n", saved.Date, saved.Score, len(store.State().Diet))
	return nil
}

func runSettings(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("settings")
	targetDate := fs.String("target-date", "", "goal date (YYYY-MM-DD)")
	targetWeight := fs.Float64("target-weight", 0, "goal weight in kg")
	targetWaist := fs.Float64("target-waist", 0, "goal waist")
	startWeight := fs.Float64("start-weight", 0, "starting weight in kg")
	height := fs.Float64("height", 0, "height in cm")
	if err := fs.Parse(args); err != nil {
		return err
	}

	patch := domain.SettingsPatch{}
	if fs.Changed("target-date") {
		patch.TargetDate = targetDate
	}
	if fs.Changed("target-weight") {
		patch.TargetWeight = targetWeight
	}
	if fs.Changed("target-waist") {
		patch.TargetWaist = targetWaist
	}
	if fs.Changed("start-weight") {
		patch.StartWeight = startWeight
	}
	if fs.Changed("height") {
		patch.Height = height
	}

	session, err := a.session()
	if err != nil {
		return err
	}
	store := fitclient.NewStore(a.client, session, a.sessions)
	if fs.NFlag() > 0 {
		if err := store.UpdateSettings(ctx, patch); err != nil {
			return fmt.Errorf("saved locally, server update failed: %w", err)
		}
	}
	return a.printJSON(store.State().Settings)
}

func runSchedule(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("schedule")
	day := fs.String("day", "", "weekday, e.g. Monday")
	focus := fs.String("focus", "", "focus for the day, e.g. Legs")
	exercises := fs.StringArray("exercise", nil, "planned exercise (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	session, err := a.session()
	if err != nil {
		return err
	}
	store := fitclient.NewStore(a.client, session, a.sessions)
	if *day == "" {
		return a.printJSON(store.State().Schedule)
	}

	weekday, err := normalizeWeekday(*day)
	if err != nil {
		return err
	}
	plan := domain.DayPlan{Focus: *focus, Exercises: append([]string{}, *exercises...)}
	if err := store.UpdateSchedule(ctx, weekday, plan); err != nil {
		return fmt.Errorf("saved locally, server update failed: %w", err)
	}
	a.printf("%s: %s %s\n", weekday, plan.Focus, strings.Join(plan.Exercises, ", "))
	return nil
}

func runDashboard(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("dashboard")
	days := fs.Int("days", fitness.DefaultChartDays, "chart range in days, 0 for all")
	local := fs.Bool("local", false, "compute from freshly pulled data instead of asking the server")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var summary fitness.Summary
	if *local {
		store, err := a.store(ctx)
		if err != nil {
			return err
		}
		summary = store.Summary(a.now(), *days)
	} else {
		if _, err := a.session(); err != nil {
			return err
		}
		s, err := a.client.Dashboard(ctx, *days)
		if err != nil {
			return err
		}
		summary = *s
	}
	printSummary(a, summary)
	return nil
}

func printSummary(a *app, s fitness.Summary) {
	a.printf("%s (%s), %d days to goal\n", s.Today, s.DayName, s.DaysLeft)
	a.printf("today: %s", s.TodayPlan.Focus)
	if len(s.TodayPlan.Exercises) > 0 {
		a.printf(" [%s]", strings.Join(s.TodayPlan.Exercises, ", "))
	}
	a.printf(" (suggested: %s), workout done: %t\n", s.SuggestedFocus, s.WorkoutDone)
	a.printf("diet score: %d/10, water: %.1fL\n", s.DietScore, s.Water)
	a.printf("weight: %.1f -> %.1f (target %.1f), lost %.1f of %.1f kg, %.0f%%\n",
		s.StartWeight, s.CurrentWeight, s.TargetWeight, s.WeightLost, s.WeightGoal, s.WeightProgress)
	a.printf("BMI %.1f, waist/hip %.2f\n", s.BMI, s.WaistHipRatio)
	a.printf("this week: %d workouts, diet avg %.1f, %d clean days, waist %+.1f, weight %+.1f\n",
		s.Weekly.WorkoutCount, s.Weekly.DietAvg, s.Weekly.CleanDietDays, s.Weekly.WaistChange, s.Weekly.WeightChange)
	for _, b := range s.Badges {
		a.printf("%s %s\n", b.Icon, b.Text)
	}
	for _, p := range s.Chart {
		a.printf("  %s  %5.1f kg  %5.1f waist\n", p.Date, p.Weight, p.WaistLower)
	}
}

func runExport(ctx context.Context, a *app, _ []string) error {
	if _, err := a.session(); err != nil {
		return err
	}
	res, err := a.client.Export(ctx)
	if err != nil {
		return err
	}
	a.printf("export %s ready until %s:\n%s\n", res.Key, res.ExpiresAt.Local().Format("15:04"), res.URL)
	return nil
}

func runPhoto(_ context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return errors.New("expected add, list or rm")
	}
	store, err := a.photos()
	if err != nil {
		return err
	}

	switch args[0] {
	case "add":
		fs := newFlagSet("photo add")
		file := fs.String("file", "", "image file")
		date := fs.String("date", a.today(), "date (YYYY-MM-DD)")
		note := fs.String("note", "", "note")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *file == "" {
			return errors.New("--file is required")
		}
		img, err := os.ReadFile(*file)
		if err != nil {
			return err
		}
		p, err := store.AddImage(*date, img, *note)
		if err != nil {
			return err
		}
		a.printf("added photo %d for %s\n", p.ID, p.Date)
	case "list":
		for _, p := range store.List() {
			a.printf("%d  %s  %s  (%d bytes)\n", p.ID, p.Date, p.Note, len(p.ImgData))
		}
	case "rm":
		fs := newFlagSet("photo rm")
		id := fs.String("id", "", "photo id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		n, err := strconv.ParseInt(*id, 10, 64)
		if err != nil {
			return fmt.Errorf("bad --id %q", *id)
		}
		if err := store.Delete(n); err != nil {
			return err
		}
		a.printf("removed photo %d\n", n)
	default:
		return fmt.Errorf("unknown photo command %q", args[0])
	}
	return nil
}
