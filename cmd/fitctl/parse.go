package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/fittrack/fittrack/internal/domain"
)

// parseExercise reads "name[:sets[:reps[:kg]]]".
func parseExercise(s string) (domain.ExerciseEntry, error) {
	parts := strings.Split(s, ":")
	ex := domain.ExerciseEntry{Name: strings.TrimSpace(parts[0])}
	if ex.Name == "" {
		return ex, fmt.Errorf("exercise %q has no name", s)
	}
	var err error
	if len(parts) > 1 && parts[1] != "" {
		if ex.Sets, err = strconv.Atoi(parts[1]); err != nil {
			return ex, fmt.Errorf("exercise %q: bad sets: %w", s, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if ex.Reps, err = strconv.Atoi(parts[2]); err != nil {
			return ex, fmt.Errorf("exercise %q: bad reps: %w", s, err)
		}
	}
	if len(parts) > 3 && parts[3] != "" {
		if ex.Weight, err = strconv.ParseFloat(parts[3], 64); err != nil {
			return ex, fmt.Errorf("exercise %q: bad weight: %w", s, err)
		}
	}
	if len(parts) > 4 {
		return ex, fmt.Errorf("exercise %q: expected name:sets:reps:kg", s)
	}
	return ex, nil
}

// parseMealItem reads "name[:qty[:unit]]". Quantity defaults to 1 and unit to
// "serving"; other units must be one of domain.Units.
func parseMealItem(s string) (domain.MealItem, error) {
	parts := strings.Split(s, ":")
	item := domain.MealItem{Name: strings.TrimSpace(parts[0]), Qty: 1, Unit: "serving"}
	if item.Name == "" {
		return item, fmt.Errorf("meal item %q has no name", s)
	}
	if len(parts) > 1 && parts[1] != "" {
		qty, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return item, fmt.Errorf("meal item %q: bad quantity: %w", s, err)
		}
		item.Qty = qty
	}
	if len(parts) > 2 && parts[2] != "" {
		item.Unit = strings.ToLower(strings.TrimSpace(parts[2]))
		if !slices.Contains(domain.Units, item.Unit) {
			return item, fmt.Errorf("meal item %q: unit must be one of %s", s, strings.Join(domain.Units, ", "))
		}
	}
	if len(parts) > 3 {
		return item, fmt.Errorf("meal item %q: expected name:qty:unit", s)
	}
	return item, nil
}

func parseMealItems(values []string) ([]domain.MealItem, error) {
	items := make([]domain.MealItem, 0, len(values))
	for _, v := range values {
		item, err := parseMealItem(v)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// normalizeWeekday accepts any casing and three-letter prefixes ("mon").
func normalizeWeekday(day string) (string, error) {
	day = strings.ToLower(strings.TrimSpace(day))
	if len(day) >= 3 {
		for _, d := range domain.Weekdays {
			if strings.HasPrefix(strings.ToLower(d), day) {
				return d, nil
			}
		}
	}
	return "", fmt.Errorf("unknown weekday %q", day)
}
