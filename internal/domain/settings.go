package domain

// Settings holds the user's goals.
type Settings struct {
	TargetDate   string  `bson:"targetDate" json:"targetDate"` // YYYY-MM-DD
	TargetWeight float64 `bson:"targetWeight" json:"targetWeight"`
	TargetWaist  float64 `bson:"targetWaist" json:"targetWaist"`
	StartWeight  float64 `bson:"startWeight" json:"startWeight"`
	Height       float64 `bson:"height" json:"height"` // cm
}

// DefaultSettings are applied to new accounts.
func DefaultSettings() Settings {
	return Settings{
		TargetDate:   "2025-02-15",
		TargetWeight: 75,
		TargetWaist:  32,
		StartWeight:  0,
		Height:       175,
	}
}

// SettingsPatch is a partial settings update. Nil fields are left untouched.
type SettingsPatch struct {
	TargetDate   *string  `json:"targetDate,omitempty"`
	TargetWeight *float64 `json:"targetWeight,omitempty"`
	TargetWaist  *float64 `json:"targetWaist,omitempty"`
	StartWeight  *float64 `json:"startWeight,omitempty"`
	Height       *float64 `json:"height,omitempty"`
}

// Apply returns s with every non-nil field of p copied over it.
func (s Settings) Apply(p SettingsPatch) Settings {
	if p.TargetDate != nil {
		s.TargetDate = *p.TargetDate
	}
	if p.TargetWeight != nil {
		s.TargetWeight = *p.TargetWeight
	}
	if p.TargetWaist != nil {
		s.TargetWaist = *p.TargetWaist
	}
	if p.StartWeight != nil {
		s.StartWeight = *p.StartWeight
	}
	if p.Height != nil {
		s.Height = *p.Height
	}
	return s
}
