package fitness

import (
	"time"

	"github.com/fittrack/fittrack/internal/domain"
)

// Weekly is the rollup of entries dated on or after WindowStart. Entries dated
// after today are not excluded.
type Weekly struct {
	WorkoutCount  int     `json:"workoutCount"`
	DietAvg       float64 `json:"dietAvg"`
	WaistChange   float64 `json:"waistChange"`
	WeightChange  float64 `json:"weightChange"`
	CleanDietDays int     `json:"cleanDietDays"`
}

// WindowStart returns the first date key of the trailing 7-day window ending on now.
func WindowStart(now time.Time) string {
	return now.AddDate(0, 0, -6).Format(DateLayout)
}

// WeeklyStats computes the weekly rollup. Measurements must be ordered
// newest-first: the change values compare the newest measurement overall
// with the oldest one inside the window.
func WeeklyStats(now time.Time, measurements []domain.Measurement, workouts []domain.WorkoutLog, diet []domain.DietLog) Weekly {
	start := WindowStart(now)
	var w Weekly

	var oldestInWeek *domain.Measurement
	for i := range measurements {
		if measurements[i].Date >= start {
			oldestInWeek = &measurements[i]
		}
	}
	if len(measurements) > 0 && oldestInWeek != nil {
		newest := measurements[0]
		w.WaistChange = round(newest.WaistLower-oldestInWeek.WaistLower, 1)
		w.WeightChange = round(newest.Weight-oldestInWeek.Weight, 1)
	}

	for _, wo := range workouts {
		if wo.Completed && wo.Date >= start {
			w.WorkoutCount++
		}
	}

	var scoreSum, days int
	for _, d := range diet {
		if d.Date < start {
			continue
		}
		days++
		scoreSum += d.Score
		if IsCleanDay(d) {
			w.CleanDietDays++
		}
	}
	if days > 0 {
		w.DietAvg = round(float64(scoreSum)/float64(days), 1)
	}

	return w
}
