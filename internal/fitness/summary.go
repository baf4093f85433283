package fitness

import (
	"math"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
)

// DefaultChartDays is the dashboard's default chart range.
const DefaultChartDays = 30

// Data is everything the dashboard is computed from. Measurements are
// newest-first; workouts and diet are looked up by date.
type Data struct {
	Settings     domain.Settings
	Schedule     domain.WorkoutSchedule
	Measurements []domain.Measurement
	Workouts     []domain.WorkoutLog
	Diet         []domain.DietLog
}

// ChartPoint is one measurement on the progress chart.
type ChartPoint struct {
	Date       string  `json:"date"`
	Weight     float64 `json:"weight"`
	WaistLower float64 `json:"waistLower"`
}

// Summary is the full dashboard payload.
type Summary struct {
	Today          string         `json:"today"`
	DayName        string         `json:"dayName"`
	DaysLeft       int            `json:"daysLeft"`
	TodayPlan      domain.DayPlan `json:"todayPlan"`
	SuggestedFocus string         `json:"suggestedFocus"`
	WorkoutDone    bool           `json:"workoutDone"`
	DietScore      int            `json:"dietScore"`
	DietOnTrack    bool           `json:"dietOnTrack"`
	Water          float64        `json:"water"`

	StartWeight    float64 `json:"startWeight"`
	CurrentWeight  float64 `json:"currentWeight"`
	TargetWeight   float64 `json:"targetWeight"`
	WeightLost     float64 `json:"weightLost"`
	WeightGoal     float64 `json:"weightGoal"`
	WeightProgress float64 `json:"weightProgress"` // percent, 0..100

	BMI           float64 `json:"bmi"`
	WaistHipRatio float64 `json:"waistHipRatio"`

	Weekly Weekly       `json:"weekly"`
	Badges []Badge      `json:"badges"`
	Chart  []ChartPoint `json:"chart"`
}

// Summarize builds the dashboard. chartDays <= 0 plots every measurement.
func Summarize(now time.Time, data Data, chartDays int) Summary {
	today := now.Format(DateLayout)
	s := Summary{
		Today:          today,
		DayName:        now.Weekday().String(),
		DaysLeft:       DaysBetween(now, data.Settings.TargetDate),
		TodayPlan:      TodayPlan(data.Schedule, now.Weekday()),
		SuggestedFocus: SuggestedFocus(now.Weekday()),
		TargetWeight:   data.Settings.TargetWeight,
		Weekly:         WeeklyStats(now, data.Measurements, data.Workouts, data.Diet),
		Badges:         Badges(data.Workouts, data.Diet, data.Measurements, data.Settings),
		Chart:          chart(now, data.Measurements, chartDays),
	}

	for _, w := range data.Workouts {
		if w.Date == today {
			s.WorkoutDone = w.Completed
			break
		}
	}
	for _, d := range data.Diet {
		if d.Date == today {
			s.DietScore = d.Score
			s.Water = d.Water
			s.DietOnTrack = IsCleanDay(d)
			break
		}
	}

	var last domain.Measurement
	if len(data.Measurements) > 0 {
		last = data.Measurements[0]
	}
	s.CurrentWeight = last.Weight
	s.StartWeight = data.Settings.StartWeight
	if s.StartWeight == 0 {
		s.StartWeight = last.Weight
	}
	s.WeightLost = round(s.StartWeight-s.CurrentWeight, 1)
	s.WeightGoal = round(s.StartWeight-s.TargetWeight, 1)
	if s.WeightGoal != 0 {
		s.WeightProgress = math.Min(100, math.Max(0, s.WeightLost/s.WeightGoal*100))
	}

	s.BMI = BMI(s.CurrentWeight, data.Settings.Height)
	s.WaistHipRatio = WaistHipRatio(last.WaistLower, last.Hip)

	return s
}

// DaysBetween returns the number of calendar days from now's date to the
// given date key; negative when the date is in the past, 0 when it does not parse.
func DaysBetween(now time.Time, date string) int {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return 0
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(math.Round(d.Sub(today).Hours() / 24))
}

func chart(now time.Time, measurements []domain.Measurement, days int) []ChartPoint {
	points := []ChartPoint{}
	for i := len(measurements) - 1; i >= 0; i-- {
		m := measurements[i]
		if _, err := time.Parse(DateLayout, m.Date); err != nil {
			continue
		}
		if days > 0 && -DaysBetween(now, m.Date) > days {
			continue
		}
		points = append(points, ChartPoint{Date: m.Date, Weight: m.Weight, WaistLower: m.WaistLower})
	}
	return points
}
