package service

import (
	"context"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/fitness"
	"github.com/fittrack/fittrack/internal/instrumentation"
	"github.com/fittrack/fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	// Summary returns the dashboard for the user as of now. chartDays <= 0 charts everything.
	Summary(ctx context.Context, userID primitive.ObjectID, chartDays int) (*fitness.Summary, error)
}

type dashboardService struct {
	records records
	cache   SummaryCache
	instr   *instrumentation.Instrumentation
	now     func() time.Time
}

func NewDashboardService(
	userRepo repository.UserRepository,
	measurementRepo repository.MeasurementRepository,
	workoutRepo repository.WorkoutLogRepository,
	dietRepo repository.DietLogRepository,
	cache SummaryCache,
	instr *instrumentation.Instrumentation,
) DashboardService {
	return &dashboardService{
		records: records{
			users:        userRepo,
			measurements: measurementRepo,
			workouts:     workoutRepo,
			diet:         dietRepo,
		},
		cache: cache,
		instr: instr,
		now:   time.Now,
	}
}

func (s *dashboardService) Summary(ctx context.Context, userID primitive.ObjectID, chartDays int) (*fitness.Summary, error) {
	now := s.now()
	today := now.Format(fitness.DateLayout)

	var gen uint64
	if s.cache != nil {
		cached, g, ok := s.cache.Get(userID.Hex(), today, chartDays)
		if ok {
			s.instr.DashboardCacheLookup(true)
			return cached, nil
		}
		s.instr.DashboardCacheLookup(false)
		gen = g
	}

	all, err := s.records.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := fitness.Summarize(now, fitness.Data{
		Settings:     all.user.Settings,
		Schedule:     all.user.WorkoutSchedule,
		Measurements: all.measurements,
		Workouts:     all.workouts,
		Diet:         all.diet,
	}, chartDays)

	if s.cache != nil {
		s.cache.Set(userID.Hex(), gen, today, chartDays, &summary)
	}
	return &summary, nil
}

// records loads everything stored for one user.
type records struct {
	users        repository.UserRepository
	measurements repository.MeasurementRepository
	workouts     repository.WorkoutLogRepository
	diet         repository.DietLogRepository
}

type userRecords struct {
	user         *domain.User
	measurements []domain.Measurement
	workouts     []domain.WorkoutLog
	diet         []domain.DietLog
}

func (r records) load(ctx context.Context, userID primitive.ObjectID) (*userRecords, error) {
	out := &userRecords{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.user, err = r.users.GetByID(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		out.measurements, err = r.measurements.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		out.workouts, err = r.workouts.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		out.diet, err = r.diet.ListByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.user.PasswordHash = ""
	if out.measurements == nil {
		out.measurements = []domain.Measurement{}
	}
	if out.workouts == nil {
		out.workouts = []domain.WorkoutLog{}
	}
	if out.diet == nil {
		out.diet = []domain.DietLog{}
	}
	return out, nil
}
