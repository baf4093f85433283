package domain

import "time"

// DayPlan is what the user intends to train on a given weekday.
type DayPlan struct {
	Focus     string   `bson:"focus" json:"focus"`
	Exercises []string `bson:"exercises" json:"exercises"`
}

// WorkoutSchedule maps an English weekday name ("Monday") to its plan.
type WorkoutSchedule map[string]DayPlan

// Weekdays in the order the schedule editor shows them.
var Weekdays = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

// IsWeekday reports whether name is a valid schedule key.
func IsWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}
