package repository

//go:generate mockgen -source=$GOFILE -destination=mocks/repository_mocks.go -package=mocks

import (
	"context"

	"github.com/fittrack/fittrack/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound       = RepositoryError("not found")
	ErrDuplicateEmail = RepositoryError("user with this email already exists")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// Update overwrites the profile fields, settings and schedule of an existing user.
	Update(ctx context.Context, user *domain.User) error
}

// MeasurementRepository stores append-only body measurements.
type MeasurementRepository interface {
	Create(ctx context.Context, measurement *domain.Measurement) (primitive.ObjectID, error)
	// ListByUser returns the user's measurements newest-first.
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Measurement, error)
}

// WorkoutLogRepository stores at most one workout log per user and date.
type WorkoutLogRepository interface {
	// UpsertByDate replaces the user's log for w.Date or inserts a new one.
	// It returns the stored document and whether it was newly created.
	UpsertByDate(ctx context.Context, w *domain.WorkoutLog) (*domain.WorkoutLog, bool, error)
	// ListByUser returns the user's logs ordered by date, newest first.
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutLog, error)
}

// DietLogRepository stores at most one diet log per user and date.
type DietLogRepository interface {
	UpsertByDate(ctx context.Context, d *domain.DietLog) (*domain.DietLog, bool, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.DietLog, error)
}
