package fitclient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/fitness"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrNotLoggedIn = errors.New("not logged in")

// State is the local copy of the user's data.
type State struct {
	Settings     domain.Settings        `json:"settings"`
	Schedule     domain.WorkoutSchedule `json:"workoutSchedule"`
	Measurements []domain.Measurement   `json:"measurements"`
	Workouts     []domain.WorkoutLog    `json:"workouts"`
	Diet         []domain.DietLog       `json:"diet"`
}

func initialState() State {
	return State{
		Settings:     domain.DefaultSettings(),
		Schedule:     domain.WorkoutSchedule{},
		Measurements: []domain.Measurement{},
		Workouts:     []domain.WorkoutLog{},
		Diet:         []domain.DietLog{},
	}
}

// Store keeps the local state in sync with the server.
type Store struct {
	client   *Client
	sessions *SessionFile

	mu      sync.RWMutex
	session *Session
	state   State
}

// NewStore builds a store for a logged-in session. sessions may be nil when
// the session should not be persisted.
func NewStore(client *Client, session *Session, sessions *SessionFile) *Store {
	s := &Store{
		client:   client,
		sessions: sessions,
		session:  session,
		state:    initialState(),
	}
	if session != nil {
		client.SetToken(session.Token)
		s.applySession(session)
	}
	return s
}

func (s *Store) applySession(session *Session) {
	if session.Settings != (domain.Settings{}) {
		s.state.Settings = session.Settings
	}
	if session.WorkoutSchedule != nil {
		s.state.Schedule = session.WorkoutSchedule
	}
}

// State returns a copy of the current local state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state
	out.Schedule = make(domain.WorkoutSchedule, len(s.state.Schedule))
	for day, plan := range s.state.Schedule {
		out.Schedule[day] = plan
	}
	out.Measurements = append([]domain.Measurement{}, s.state.Measurements...)
	out.Workouts = append([]domain.WorkoutLog{}, s.state.Workouts...)
	out.Diet = append([]domain.DietLog{}, s.state.Diet...)
	return out
}

// Summary computes the dashboard from local state.
func (s *Store) Summary(now time.Time, chartDays int) fitness.Summary {
	st := s.State()
	return fitness.Summarize(now, fitness.Data{
		Settings:     st.Settings,
		Schedule:     st.Schedule,
		Measurements: st.Measurements,
		Workouts:     st.Workouts,
		Diet:         st.Diet,
	}, chartDays)
}

// Load fetches workouts, diet logs and measurements in parallel. A collection
// the server answers with an error or a non-list body becomes empty. On a
// transport failure the local state is left untouched.
func (s *Store) Load(ctx context.Context) error {
	if s.session == nil {
		return ErrNotLoggedIn
	}

	var (
		workouts     []domain.WorkoutLog
		diet         []domain.DietLog
		measurements []domain.Measurement
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.client.FetchWorkouts(gctx)
		workouts, err = tolerateAPIError(list, err)
		return err
	})
	g.Go(func() error {
		list, err := s.client.FetchDiet(gctx)
		diet, err = tolerateAPIError(list, err)
		return err
	})
	g.Go(func() error {
		list, err := s.client.FetchMeasurements(gctx)
		measurements, err = tolerateAPIError(list, err)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Workouts = workouts
	s.state.Diet = diet
	s.state.Measurements = measurements
	s.applySession(s.session)
	return nil
}

func tolerateAPIError[T any](list []T, err error) ([]T, error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		log.Debugf("fitclient: ignoring failed fetch: %s", apiErr)
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

// AddMeasurement posts m and prepends the saved measurement. Nothing is
// merged when the post fails.
func (s *Store) AddMeasurement(ctx context.Context, m domain.Measurement) (*domain.Measurement, error) {
	saved, err := s.client.PostMeasurement(ctx, m)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.state.Measurements = Prepend(s.state.Measurements, *saved)
	s.mu.Unlock()
	return saved, nil
}

// AddWorkout posts w and merges the saved log by date.
func (s *Store) AddWorkout(ctx context.Context, w domain.WorkoutLog) (*domain.WorkoutLog, error) {
	if strings.TrimSpace(w.Type) == "" {
		w.Type = domain.DefaultWorkoutType
	}
	saved, err := s.client.PostWorkout(ctx, w)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.state.Workouts = UpsertByDate(s.state.Workouts, *saved)
	s.mu.Unlock()
	return saved, nil
}

// AddDiet scores d, posts it and merges the saved log by date.
func (s *Store) AddDiet(ctx context.Context, d domain.DietLog) (*domain.DietLog, error) {
	d.Meals.Normalize()
	d.Score = fitness.ScoreDietLog(d)
	saved, err := s.client.PostDiet(ctx, d)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.state.Diet = UpsertByDate(s.state.Diet, *saved)
	s.mu.Unlock()
	return saved, nil
}

// UpdateSettings merges patch into the local settings, then sends the merged
// settings to the server. The local change is kept even if the server call
// fails; that error is returned.
func (s *Store) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) error {
	s.mu.Lock()
	merged := s.state.Settings.Apply(patch)
	s.state.Settings = merged
	if s.session != nil {
		s.session.Settings = merged
	}
	s.mu.Unlock()

	s.persistSession()
	_, err := s.client.UpdateProfile(ctx, ProfileUpdate{Settings: &merged})
	return err
}

// UpdateSchedule replaces the plan for one weekday, optimistically like UpdateSettings.
func (s *Store) UpdateSchedule(ctx context.Context, day string, plan domain.DayPlan) error {
	if !domain.IsWeekday(day) {
		return fmt.Errorf("unknown weekday %q", day)
	}
	if plan.Exercises == nil {
		plan.Exercises = []string{}
	}

	s.mu.Lock()
	schedule := make(domain.WorkoutSchedule, len(s.state.Schedule)+1)
	for d, p := range s.state.Schedule {
		schedule[d] = p
	}
	schedule[day] = plan
	s.state.Schedule = schedule
	if s.session != nil {
		s.session.WorkoutSchedule = schedule
	}
	s.mu.Unlock()

	s.persistSession()
	_, err := s.client.UpdateProfile(ctx, ProfileUpdate{WorkoutSchedule: schedule})
	return err
}

func (s *Store) persistSession() {
	if s.sessions == nil || s.session == nil {
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.sessions.Save(s.session); err != nil {
		log.Warnf("fitclient: save session: %s", err)
	}
}
