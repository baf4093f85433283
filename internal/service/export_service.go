package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/instrumentation"
	"github.com/fittrack/fittrack/internal/repository"
	"github.com/fittrack/fittrack/internal/storage"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrExportUnavailable = errors.New("export storage is not configured")

// Snapshot is the JSON document written by an export.
type Snapshot struct {
	ExportedAt   time.Time            `json:"exportedAt"`
	Profile      *domain.User         `json:"profile"`
	Measurements []domain.Measurement `json:"measurements"`
	Workouts     []domain.WorkoutLog  `json:"workouts"`
	Diet         []domain.DietLog     `json:"diet"`
}

// ExportResult points at a stored snapshot.
type ExportResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ExportService interface {
	Export(ctx context.Context, userID primitive.ObjectID) (*ExportResult, error)
}

type exportService struct {
	records   records
	storage   storage.FileStorage
	urlExpiry time.Duration
	instr     *instrumentation.Instrumentation
	now       func() time.Time
}

func NewExportService(
	userRepo repository.UserRepository,
	measurementRepo repository.MeasurementRepository,
	workoutRepo repository.WorkoutLogRepository,
	dietRepo repository.DietLogRepository,
	fileStorage storage.FileStorage,
	urlExpiry time.Duration,
	instr *instrumentation.Instrumentation,
) ExportService {
	if urlExpiry <= 0 {
		urlExpiry = storage.DefaultPresignedURLExpiry
	}
	return &exportService{
		records: records{
			users:        userRepo,
			measurements: measurementRepo,
			workouts:     workoutRepo,
			diet:         dietRepo,
		},
		storage:   fileStorage,
		urlExpiry: urlExpiry,
		instr:     instr,
		now:       time.Now,
	}
}

func (s *exportService) Export(ctx context.Context, userID primitive.ObjectID) (*ExportResult, error) {
	all, err := s.records.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	body, err := json.MarshalIndent(Snapshot{
		ExportedAt:   now,
		Profile:      all.user,
		Measurements: all.measurements,
		Workouts:     all.workouts,
		Diet:         all.diet,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	key := path.Join("exports", userID.Hex(), fmt.Sprintf("%s-%s.json", now.Format("20060102T150405Z"), uuid.NewString()))
	if err := s.storage.PutObject(ctx, key, "application/json", body); err != nil {
		if errors.Is(err, storage.ErrStorageDisabled) {
			return nil, ErrExportUnavailable
		}
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	url, err := s.storage.GeneratePresignedDownloadURL(ctx, key, s.urlExpiry)
	if err != nil {
		log.Errorf("presign export %s: %v", key, err)
		// don't leave an unreachable snapshot behind
		if delErr := s.storage.DeleteObject(ctx, key); delErr != nil {
			log.Warnf("delete export %s: %v", key, delErr)
		}
		return nil, fmt.Errorf("presign snapshot: %w", err)
	}

	s.instr.ExportWritten()
	log.Infof("export written for user %s: %s (%d bytes)", userID.Hex(), key, len(body))
	return &ExportResult{Key: key, URL: url, ExpiresAt: now.Add(s.urlExpiry)}, nil
}
