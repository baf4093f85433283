package fitness

import "math"

// DateLayout is the format of every date key in the system.
const DateLayout = "2006-01-02"

// BMI returns weight / height² rounded to one decimal, or 0 when either input is missing.
func BMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return round(weightKg/(heightM*heightM), 1)
}

// WaistHipRatio returns waist / hip rounded to two decimals, or 0 when either input is missing.
func WaistHipRatio(waist, hip float64) float64 {
	if waist <= 0 || hip <= 0 {
		return 0
	}
	return round(waist/hip, 2)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
