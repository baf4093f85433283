package mocks

import (
	"context"
	"testing"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

var (
	_ repository.UserRepository        = (*MockUserRepository)(nil)
	_ repository.MeasurementRepository = (*MockMeasurementRepository)(nil)
	_ repository.WorkoutLogRepository  = (*MockWorkoutLogRepository)(nil)
	_ repository.DietLogRepository     = (*MockDietLogRepository)(nil)
)

func TestMockMeasurementRepository_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockMeasurementRepository(ctrl)

	id := primitive.NewObjectID()
	entry := &domain.Measurement{Date: "2025-01-10", Weight: 80}
	repo.EXPECT().Create(gomock.Any(), entry).Return(id, nil)

	got, err := repo.Create(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}
