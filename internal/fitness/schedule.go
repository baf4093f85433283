package fitness

import (
	"time"

	"github.com/fittrack/fittrack/internal/domain"
)

// RestDay is shown when the schedule has nothing for today.
var RestDay = domain.DayPlan{Focus: "Rest Day", Exercises: []string{}}

var suggestedFocus = map[time.Weekday]string{
	time.Sunday:    "Rest & Recovery 🧘",
	time.Monday:    "Chest & Triceps 🦁",
	time.Tuesday:   "Back & Biceps 🦍",
	time.Wednesday: "Active Recovery / Abs 🏃",
	time.Thursday:  "Legs & Shoulders 🦵",
	time.Friday:    "Full Body / Cardio 🔥",
	time.Saturday:  "Core & Abs 🍫",
}

// TodayPlan returns the user's plan for the weekday, falling back to RestDay.
func TodayPlan(schedule domain.WorkoutSchedule, day time.Weekday) domain.DayPlan {
	plan, ok := schedule[day.String()]
	if !ok {
		return RestDay
	}
	if plan.Exercises == nil {
		plan.Exercises = []string{}
	}
	return plan
}

// SuggestedFocus is the built-in split used before a user has set up a schedule.
func SuggestedFocus(day time.Weekday) string {
	return suggestedFocus[day]
}
