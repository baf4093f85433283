package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account holder. Settings and WorkoutSchedule are per-user
// singletons stored on the user document itself.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	Age          int                `bson:"age,omitempty" json:"age,omitempty"`
	Gender       string             `bson:"gender,omitempty" json:"gender,omitempty"`

	Settings        Settings        `bson:"settings" json:"settings"`
	WorkoutSchedule WorkoutSchedule `bson:"workoutSchedule" json:"workoutSchedule"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
