package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/fitness"
	"github.com/fittrack/fittrack/internal/instrumentation"
	"github.com/fittrack/fittrack/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogService records measurements, workouts and diet logs.
type LogService interface {
	AddMeasurement(ctx context.Context, userID primitive.ObjectID, m domain.Measurement) (*domain.Measurement, error)
	ListMeasurements(ctx context.Context, userID primitive.ObjectID) ([]domain.Measurement, error)

	// SaveWorkout upserts the workout for its date; created reports whether it was new.
	SaveWorkout(ctx context.Context, userID primitive.ObjectID, w domain.WorkoutLog) (saved *domain.WorkoutLog, created bool, err error)
	ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutLog, error)

	// SaveDiet upserts the diet log for its date. The score is always recomputed.
	SaveDiet(ctx context.Context, userID primitive.ObjectID, d domain.DietLog) (saved *domain.DietLog, created bool, err error)
	ListDiet(ctx context.Context, userID primitive.ObjectID) ([]domain.DietLog, error)
}

type logService struct {
	measurementRepo repository.MeasurementRepository
	workoutRepo     repository.WorkoutLogRepository
	dietRepo        repository.DietLogRepository
	cache           SummaryCache
	instr           *instrumentation.Instrumentation
}

func NewLogService(
	measurementRepo repository.MeasurementRepository,
	workoutRepo repository.WorkoutLogRepository,
	dietRepo repository.DietLogRepository,
	cache SummaryCache,
	instr *instrumentation.Instrumentation,
) LogService {
	return &logService{
		measurementRepo: measurementRepo,
		workoutRepo:     workoutRepo,
		dietRepo:        dietRepo,
		cache:           cache,
		instr:           instr,
	}
}

func (s *logService) AddMeasurement(ctx context.Context, userID primitive.ObjectID, m domain.Measurement) (*domain.Measurement, error) {
	if err := validateDate(m.Date); err != nil {
		return nil, err
	}
	if err := validateNonNegative("measurement values", m.Weight, m.WaistUpper, m.WaistLower, m.Chest, m.Hip); err != nil {
		return nil, err
	}

	m.ID = primitive.NilObjectID
	m.UserID = userID
	m.CreatedAt = time.Now().UTC()

	id, err := s.measurementRepo.Create(ctx, &m)
	if err != nil {
		return nil, fmt.Errorf("save measurement: %w", err)
	}
	m.ID = id

	invalidate(s.cache, userID)
	s.instr.EntrySaved("measurement", true)
	return &m, nil
}

func (s *logService) ListMeasurements(ctx context.Context, userID primitive.ObjectID) ([]domain.Measurement, error) {
	list, err := s.measurementRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Measurement{}
	}
	return list, nil
}

func (s *logService) SaveWorkout(ctx context.Context, userID primitive.ObjectID, w domain.WorkoutLog) (*domain.WorkoutLog, bool, error) {
	if err := validateDate(w.Date); err != nil {
		return nil, false, err
	}
	if w.Duration < 0 {
		return nil, false, fmt.Errorf("%w: duration cannot be negative", ErrValidation)
	}
	for i, ex := range w.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return nil, false, fmt.Errorf("%w: exercise %d has no name", ErrValidation, i+1)
		}
		if ex.Sets < 0 || ex.Reps < 0 || ex.Weight < 0 {
			return nil, false, fmt.Errorf("%w: exercise %q has negative values", ErrValidation, ex.Name)
		}
	}

	if strings.TrimSpace(w.Type) == "" {
		w.Type = domain.DefaultWorkoutType
	}
	if w.Exercises == nil {
		w.Exercises = []domain.ExerciseEntry{}
	}
	w.ID = primitive.NilObjectID
	w.UserID = userID
	w.UpdatedAt = time.Now().UTC()

	saved, created, err := s.workoutRepo.UpsertByDate(ctx, &w)
	if err != nil {
		return nil, false, fmt.Errorf("save workout: %w", err)
	}

	invalidate(s.cache, userID)
	s.instr.EntrySaved("workout", created)
	log.Debugf("workout %s for user %s saved (created=%t)", saved.Date, userID.Hex(), created)
	return saved, created, nil
}

func (s *logService) ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutLog, error) {
	list, err := s.workoutRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.WorkoutLog{}
	}
	return list, nil
}

func (s *logService) SaveDiet(ctx context.Context, userID primitive.ObjectID, d domain.DietLog) (*domain.DietLog, bool, error) {
	if err := validateDate(d.Date); err != nil {
		return nil, false, err
	}
	if d.Eggs < 0 || d.Water < 0 {
		return nil, false, fmt.Errorf("%w: eggs and water cannot be negative", ErrValidation)
	}
	for slot, items := range d.Meals.Slots() {
		for _, item := range items {
			if strings.TrimSpace(item.Name) == "" {
				return nil, false, fmt.Errorf("%w: %s item has no name", ErrValidation, slot)
			}
			if item.Qty < 0 {
				return nil, false, fmt.Errorf("%w: %s item %q has negative quantity", ErrValidation, slot, item.Name)
			}
		}
	}

	d.Meals.Normalize()
	d.Score = fitness.ScoreDietLog(d)
	d.ID = primitive.NilObjectID
	d.UserID = userID
	d.UpdatedAt = time.Now().UTC()

	saved, created, err := s.dietRepo.UpsertByDate(ctx, &d)
	if err != nil {
		return nil, false, fmt.Errorf("save diet log: %w", err)
	}

	invalidate(s.cache, userID)
	s.instr.EntrySaved("diet", created)
	return saved, created, nil
}

func (s *logService) ListDiet(ctx context.Context, userID primitive.ObjectID) ([]domain.DietLog, error) {
	list, err := s.dietRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.DietLog{}
	}
	return list, nil
}
