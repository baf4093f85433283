package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Measurement is a body measurement snapshot. Measurements are append-only.
// Lengths are in cm, weight in kg; zero means "not measured".
type Measurement struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"-"`
	Date       string             `bson:"date" json:"date"` // YYYY-MM-DD
	Weight     float64            `bson:"weight" json:"weight"`
	WaistUpper float64            `bson:"waistUpper,omitempty" json:"waistUpper,omitempty"`
	WaistLower float64            `bson:"waistLower,omitempty" json:"waistLower,omitempty"`
	Chest      float64            `bson:"chest,omitempty" json:"chest,omitempty"`
	Hip        float64            `bson:"hip,omitempty" json:"hip,omitempty"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

func (m Measurement) DateKey() string { return m.Date }
