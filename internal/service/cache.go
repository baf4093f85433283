package service

import (
	"github.com/fittrack/fittrack/internal/fitness"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SummaryCache stores computed dashboard summaries. Implemented by cache.DashboardCache.
type SummaryCache interface {
	// Get also returns the user's cache generation at lookup time.
	Get(userID, day string, chartDays int) (*fitness.Summary, uint64, bool)
	// Set stores summary only if the user's generation is still gen.
	Set(userID string, gen uint64, day string, chartDays int, summary *fitness.Summary)
	Invalidate(userID string)
}

func invalidate(c SummaryCache, userID primitive.ObjectID) {
	if c != nil {
		c.Invalidate(userID.Hex())
	}
}
