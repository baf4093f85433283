package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileUpdate is a partial profile update. Nil fields are left untouched;
// a non-nil WorkoutSchedule replaces the stored one wholesale.
type ProfileUpdate struct {
	Name            *string
	Location        *string
	Age             *int
	Gender          *string
	Settings        *domain.SettingsPatch
	WorkoutSchedule domain.WorkoutSchedule
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, upd ProfileUpdate) (*domain.User, error)
}

type profileService struct {
	userRepo repository.UserRepository
	cache    SummaryCache
}

func NewProfileService(userRepo repository.UserRepository, cache SummaryCache) ProfileService {
	return &profileService{userRepo: userRepo, cache: cache}
}

func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	if user.WorkoutSchedule == nil {
		user.WorkoutSchedule = domain.WorkoutSchedule{}
	}
	return user, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, upd ProfileUpdate) (*domain.User, error) {
	if err := validateProfileUpdate(upd); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Location != nil {
		user.Location = *upd.Location
	}
	if upd.Age != nil {
		user.Age = *upd.Age
	}
	if upd.Gender != nil {
		user.Gender = *upd.Gender
	}
	if upd.Settings != nil {
		user.Settings = user.Settings.Apply(*upd.Settings)
	}
	if upd.WorkoutSchedule != nil {
		user.WorkoutSchedule = normalizeSchedule(upd.WorkoutSchedule)
	}
	if user.WorkoutSchedule == nil {
		user.WorkoutSchedule = domain.WorkoutSchedule{}
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	invalidate(s.cache, userID)
	log.Debugf("profile updated for user %s", userID.Hex())

	user.PasswordHash = ""
	return user, nil
}

func validateProfileUpdate(upd ProfileUpdate) error {
	if upd.Name != nil && *upd.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if upd.Age != nil && *upd.Age < 0 {
		return fmt.Errorf("%w: age cannot be negative", ErrValidation)
	}
	if p := upd.Settings; p != nil {
		if p.TargetDate != nil {
			if err := validateDate(*p.TargetDate); err != nil {
				return err
			}
		}
		for name, v := range map[string]*float64{
			"targetWeight": p.TargetWeight,
			"targetWaist":  p.TargetWaist,
			"startWeight":  p.StartWeight,
			"height":       p.Height,
		} {
			if v != nil {
				if err := validateNonNegative(name, *v); err != nil {
					return err
				}
			}
		}
	}
	for day := range upd.WorkoutSchedule {
		if !domain.IsWeekday(day) {
			return fmt.Errorf("%w: %q is not a weekday", ErrValidation, day)
		}
	}
	return nil
}

func normalizeSchedule(in domain.WorkoutSchedule) domain.WorkoutSchedule {
	out := make(domain.WorkoutSchedule, len(in))
	for day, plan := range in {
		if plan.Exercises == nil {
			plan.Exercises = []string{}
		}
		out[day] = plan
	}
	return out
}
