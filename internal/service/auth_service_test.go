package service

import (
	"context"
	"testing"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/repository"
	"github.com/fittrack/fittrack/internal/repository/mocks"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func parseUID(t *testing.T, token string) string {
	t.Helper()
	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	return claims.UserID
}

func TestAuthService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(users, testSecret, time.Hour)

	newID := primitive.NewObjectID()
	users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(nil, repository.ErrNotFound)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (primitive.ObjectID, error) {
		assert.Equal(t, "ana@example.com", u.Email)
		assert.NotEqual(t, "secret123", u.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
		assert.Equal(t, 168.0, u.Settings.Height)
		assert.Equal(t, 75.0, u.Settings.TargetWeight)
		assert.NotNil(t, u.WorkoutSchedule)
		return newID, nil
	})

	user, token, err := svc.Signup(context.Background(), SignupInput{
		Name:     "Ana",
		Email:    " Ana@Example.com ",
		Password: "secret123",
		Height:   168,
	})
	require.NoError(t, err)
	assert.Equal(t, newID, user.ID)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, newID.Hex(), parseUID(t, token))
}

func TestAuthService_Signup_DefaultHeight(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(users, testSecret, time.Hour)

	users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, repository.ErrNotFound)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(primitive.NewObjectID(), nil)

	user, _, err := svc.Signup(context.Background(), SignupInput{Name: "Bo", Email: "bo@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), user.Settings)
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(users, testSecret, time.Hour)

	users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(&domain.User{}, nil)
	_, _, err := svc.Signup(context.Background(), SignupInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(nil, repository.ErrNotFound)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(primitive.NilObjectID, repository.ErrDuplicateEmail)
	_, _, err = svc.Signup(context.Background(), SignupInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Signup_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewAuthService(mocks.NewMockUserRepository(ctrl), testSecret, time.Hour)

	for name, in := range map[string]SignupInput{
		"missing name":    {Email: "a@b.c", Password: "secret123"},
		"missing email":   {Name: "A", Password: "secret123"},
		"short password":  {Name: "A", Email: "a@b.c", Password: "123"},
		"negative height": {Name: "A", Email: "a@b.c", Password: "secret123", Height: -1},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := svc.Signup(context.Background(), in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(users, testSecret, time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: primitive.NewObjectID(), Email: "ana@example.com", PasswordHash: string(hash)}

	users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(stored, nil)
	token, user, err := svc.Login(context.Background(), "ana@example.com", "secret123")
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, stored.ID.Hex(), parseUID(t, token))
}

func TestAuthService_Login_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(users, testSecret, time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(&domain.User{PasswordHash: string(hash)}, nil)
	_, _, err = svc.Login(context.Background(), "ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	users.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, repository.ErrNotFound)
	_, _, err = svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}
