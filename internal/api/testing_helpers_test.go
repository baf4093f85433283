package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fittrack/fittrack/internal/instrumentation"
	"github.com/fittrack/fittrack/internal/repository/mocks"
	"github.com/fittrack/fittrack/internal/service"
	"github.com/fittrack/fittrack/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

const testJWTSecret = "api-test-secret"

type testServer struct {
	router       *gin.Engine
	instr        *instrumentation.Instrumentation
	users        *mocks.MockUserRepository
	measurements *mocks.MockMeasurementRepository
	workouts     *mocks.MockWorkoutLogRepository
	diet         *mocks.MockDietLogRepository
}

func newTestServer(t *testing.T, fileStorage storage.FileStorage) *testServer {
	ctrl := gomock.NewController(t)
	ts := &testServer{
		router:       gin.New(),
		instr:        instrumentation.NewTestInstrumentation(),
		users:        mocks.NewMockUserRepository(ctrl),
		measurements: mocks.NewMockMeasurementRepository(ctrl),
		workouts:     mocks.NewMockWorkoutLogRepository(ctrl),
		diet:         mocks.NewMockDietLogRepository(ctrl),
	}

	SetupRoutes(ts.router, testJWTSecret, Services{
		Auth:      service.NewAuthService(ts.users, testJWTSecret, time.Hour),
		Profile:   service.NewProfileService(ts.users, nil),
		Logs:      service.NewLogService(ts.measurements, ts.workouts, ts.diet, nil, ts.instr),
		Dashboard: service.NewDashboardService(ts.users, ts.measurements, ts.workouts, ts.diet, nil, ts.instr),
		Export:    service.NewExportService(ts.users, ts.measurements, ts.workouts, ts.diet, fileStorage, time.Minute, ts.instr),
	}, ts.instr)
	return ts
}

func testToken(t *testing.T, userID primitive.ObjectID, ttl time.Duration) string {
	t.Helper()
	claims := &jwtClaims{
		UserID: userID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decode(t, rr, &body)
	return body["error"]
}
