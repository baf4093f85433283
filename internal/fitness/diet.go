package fitness

import "github.com/fittrack/fittrack/internal/domain"

const (
	maxDietScore     = 10
	junkPenalty      = 2
	lowWaterPenalty  = 1
	minWaterLitres   = 2
	cleanDietScore   = 8
	perfectDietScore = 9
)

// DietScore scores a day out of 10: two points off per junk item, one off
// for drinking less than 2 litres of water, never below 0.
func DietScore(junkCount int, water float64) int {
	score := maxDietScore - junkCount*junkPenalty
	if water < minWaterLitres {
		score -= lowWaterPenalty
	}
	if score < 0 {
		score = 0
	}
	return score
}

// ScoreDietLog is DietScore applied to a log.
func ScoreDietLog(d domain.DietLog) int {
	return DietScore(len(d.Meals.Junk), d.Water)
}

// IsCleanDay reports whether a day counts towards "clean diet days".
func IsCleanDay(d domain.DietLog) bool {
	return d.Score >= cleanDietScore
}
