package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/instrumentation"
	"github.com/fittrack/fittrack/internal/repository/mocks"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type logServiceFixture struct {
	measurements *mocks.MockMeasurementRepository
	workouts     *mocks.MockWorkoutLogRepository
	diet         *mocks.MockDietLogRepository
	cache        *recordingCache
	instr        *instrumentation.Instrumentation
	svc          LogService
}

func newLogServiceFixture(t *testing.T) *logServiceFixture {
	ctrl := gomock.NewController(t)
	f := &logServiceFixture{
		measurements: mocks.NewMockMeasurementRepository(ctrl),
		workouts:     mocks.NewMockWorkoutLogRepository(ctrl),
		diet:         mocks.NewMockDietLogRepository(ctrl),
		cache:        newRecordingCache(),
		instr:        instrumentation.NewTestInstrumentation(),
	}
	f.svc = NewLogService(f.measurements, f.workouts, f.diet, f.cache, f.instr)
	return f
}

func TestLogService_AddMeasurement(t *testing.T) {
	f := newLogServiceFixture(t)
	userID := primitive.NewObjectID()
	newID := primitive.NewObjectID()

	f.measurements.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *domain.Measurement) (primitive.ObjectID, error) {
		assert.Equal(t, userID, m.UserID)
		assert.False(t, m.CreatedAt.IsZero())
		return newID, nil
	})

	saved, err := f.svc.AddMeasurement(context.Background(), userID, domain.Measurement{Date: "2025-01-15", Weight: 82.4, WaistLower: 36})
	require.NoError(t, err)
	assert.Equal(t, newID, saved.ID)
	assert.Equal(t, 82.4, saved.Weight)
	assert.Equal(t, []string{userID.Hex()}, f.cache.invalidated)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.instr.CounterEntriesSaved.WithLabelValues("measurement", "create")))
}

func TestLogService_AddMeasurement_Invalid(t *testing.T) {
	f := newLogServiceFixture(t)

	_, err := f.svc.AddMeasurement(context.Background(), primitive.NewObjectID(), domain.Measurement{Date: "yesterday", Weight: 80})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.AddMeasurement(context.Background(), primitive.NewObjectID(), domain.Measurement{Date: "2025-01-15", Weight: -1})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, f.cache.invalidated)
}

func TestLogService_SaveWorkout_DefaultsType(t *testing.T) {
	f := newLogServiceFixture(t)
	userID := primitive.NewObjectID()

	f.workouts.EXPECT().UpsertByDate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.WorkoutLog) (*domain.WorkoutLog, bool, error) {
		assert.Equal(t, domain.DefaultWorkoutType, w.Type)
		assert.Equal(t, userID, w.UserID)
		assert.NotNil(t, w.Exercises)
		out := *w
		out.ID = primitive.NewObjectID()
		return &out, false, nil
	})

	saved, created, err := f.svc.SaveWorkout(context.Background(), userID, domain.WorkoutLog{Date: "2025-01-15", Duration: 45, Completed: true})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, domain.DefaultWorkoutType, saved.Type)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.instr.CounterEntriesSaved.WithLabelValues("workout", "replace")))
}

func TestLogService_SaveWorkout_Invalid(t *testing.T) {
	f := newLogServiceFixture(t)
	userID := primitive.NewObjectID()

	for name, w := range map[string]domain.WorkoutLog{
		"bad date":          {Date: "2025-13-40"},
		"negative duration": {Date: "2025-01-15", Duration: -5},
		"unnamed exercise":  {Date: "2025-01-15", Exercises: []domain.ExerciseEntry{{Sets: 3}}},
		"negative reps":     {Date: "2025-01-15", Exercises: []domain.ExerciseEntry{{Name: "Squat", Reps: -1}}},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := f.svc.SaveWorkout(context.Background(), userID, w)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestLogService_SaveDiet_RecomputesScore(t *testing.T) {
	f := newLogServiceFixture(t)
	userID := primitive.NewObjectID()

	f.diet.EXPECT().UpsertByDate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *domain.DietLog) (*domain.DietLog, bool, error) {
		out := *d
		out.ID = primitive.NewObjectID()
		return &out, true, nil
	})

	saved, created, err := f.svc.SaveDiet(context.Background(), userID, domain.DietLog{
		Date:  "2025-01-15",
		Water: 1.5,
		Score: 10,
		Meals: domain.Meals{
			Junk: []domain.MealItem{{Name: "Chips", Qty: 1, Unit: "pcs"}, {Name: "Soda", Qty: 300, Unit: "ml"}},
		},
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 5, saved.Score) // 10 - 2*2 - 1
	assert.NotNil(t, saved.Meals.Breakfast)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.instr.CounterEntriesSaved.WithLabelValues("diet", "create")))
}

func TestLogService_SaveDiet_Invalid(t *testing.T) {
	f := newLogServiceFixture(t)

	_, _, err := f.svc.SaveDiet(context.Background(), primitive.NewObjectID(), domain.DietLog{
		Date:  "2025-01-15",
		Meals: domain.Meals{Lunch: []domain.MealItem{{Name: " ", Qty: 1}}},
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = f.svc.SaveDiet(context.Background(), primitive.NewObjectID(), domain.DietLog{Date: "2025-01-15", Water: -1})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogService_SaveDiet_RepositoryError(t *testing.T) {
	f := newLogServiceFixture(t)
	boom := errors.New("boom")
	f.diet.EXPECT().UpsertByDate(gomock.Any(), gomock.Any()).Return(nil, false, boom)

	_, _, err := f.svc.SaveDiet(context.Background(), primitive.NewObjectID(), domain.DietLog{Date: "2025-01-15", Water: 3})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, f.cache.invalidated)
}

func TestLogService_ListsNeverNil(t *testing.T) {
	f := newLogServiceFixture(t)
	userID := primitive.NewObjectID()

	f.measurements.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, nil)
	f.workouts.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, nil)
	f.diet.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, nil)

	m, err := f.svc.ListMeasurements(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, m)
	w, err := f.svc.ListWorkouts(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, w)
	d, err := f.svc.ListDiet(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, d)
}
