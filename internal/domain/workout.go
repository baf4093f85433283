package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultWorkoutType is stored when a workout is saved without a type.
const DefaultWorkoutType = "Unknown Workout"

// WorkoutLog records one day of training. There is at most one per user and date.
type WorkoutLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"-"`
	Date      string             `bson:"date" json:"date"` // YYYY-MM-DD
	Type      string             `bson:"type" json:"type"`
	Duration  int                `bson:"duration" json:"duration"` // minutes
	Exercises []ExerciseEntry    `bson:"exercises" json:"exercises"`
	Completed bool               `bson:"completed" json:"completed"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ExerciseEntry is a single exercise performed during a workout.
type ExerciseEntry struct {
	Name   string  `bson:"name" json:"name"`
	Sets   int     `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps   int     `bson:"reps,omitempty" json:"reps,omitempty"`
	Weight float64 `bson:"weight,omitempty" json:"weight,omitempty"` // kg
}

func (w WorkoutLog) DateKey() string { return w.Date }
