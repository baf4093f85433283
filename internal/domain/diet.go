package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DietLog records everything eaten on one day. There is at most one per user and date.
type DietLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"-"`
	Date      string             `bson:"date" json:"date"` // YYYY-MM-DD
	Meals     Meals              `bson:"meals" json:"meals"`
	Eggs      int                `bson:"eggs" json:"eggs"`
	Water     float64            `bson:"water" json:"water"` // litres
	Score     int                `bson:"score" json:"score"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Meals groups the food items of a day by slot.
type Meals struct {
	Breakfast []MealItem `bson:"breakfast" json:"breakfast"`
	Lunch     []MealItem `bson:"lunch" json:"lunch"`
	Snacks    []MealItem `bson:"snacks" json:"snacks"`
	Dinner    []MealItem `bson:"dinner" json:"dinner"`
	Junk      []MealItem `bson:"junk" json:"junk"`
}

// MealItem is one food entry, e.g. {"Dal", 1, "bowl"}.
type MealItem struct {
	Name string  `bson:"name" json:"name"`
	Qty  float64 `bson:"qty" json:"qty"`
	Unit string  `bson:"unit" json:"unit"`
}

// Units offered by the diet form.
var Units = []string{"gm", "ml", "pcs", "bowl", "cup", "slice", "scoop", "tbsp", "serving"}

// Slots returns the meal slots in display order, keyed by their JSON name.
func (m Meals) Slots() map[string][]MealItem {
	return map[string][]MealItem{
		"breakfast": m.Breakfast,
		"lunch":     m.Lunch,
		"snacks":    m.Snacks,
		"dinner":    m.Dinner,
		"junk":      m.Junk,
	}
}

// Normalize replaces nil slices with empty ones so they encode as [] instead of null.
func (m *Meals) Normalize() {
	for _, s := range []*[]MealItem{&m.Breakfast, &m.Lunch, &m.Snacks, &m.Dinner, &m.Junk} {
		if *s == nil {
			*s = []MealItem{}
		}
	}
}

func (d DietLog) DateKey() string { return d.Date }
