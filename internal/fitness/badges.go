package fitness

import "github.com/fittrack/fittrack/internal/domain"

// Badge is a gamification marker earned by crossing a fixed threshold.
type Badge struct {
	Key  string `json:"key"`
	Icon string `json:"icon"`
	Text string `json:"text"`
}

var (
	BadgeWorkoutStarter  = Badge{Key: "workout_starter", Icon: "🔥", Text: "Workout Starter"}
	BadgeConsistencyKing = Badge{Key: "consistency_king", Icon: "🚀", Text: "Consistency King"}
	BadgeTwoKgDown       = Badge{Key: "two_kg_down", Icon: "📉", Text: "2kg Down!"}
	BadgeCleanEater      = Badge{Key: "clean_eater", Icon: "🥦", Text: "Clean Eater"}
)

const (
	starterWorkouts     = 5
	consistencyWorkouts = 20
	weightLossKg        = 2
	cleanEaterDays      = 7
)

// Badges returns the earned badges in display order. Measurements are newest-first.
func Badges(workouts []domain.WorkoutLog, diet []domain.DietLog, measurements []domain.Measurement, settings domain.Settings) []Badge {
	badges := []Badge{}

	if len(workouts) >= starterWorkouts {
		badges = append(badges, BadgeWorkoutStarter)
	}
	if len(workouts) >= consistencyWorkouts {
		badges = append(badges, BadgeConsistencyKing)
	}

	var currentWeight float64
	if len(measurements) > 0 {
		currentWeight = measurements[0].Weight
	}
	if settings.StartWeight-currentWeight >= weightLossKg {
		badges = append(badges, BadgeTwoKgDown)
	}

	perfectDays := 0
	for _, d := range diet {
		if d.Score >= perfectDietScore {
			perfectDays++
		}
	}
	if perfectDays >= cleanEaterDays {
		badges = append(badges, BadgeCleanEater)
	}

	return badges
}
