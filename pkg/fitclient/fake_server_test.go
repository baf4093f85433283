package fitclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/fittrack/fittrack/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeAPI is a minimal in-memory FitTrack server.
type fakeAPI struct {
	t *testing.T

	mu            sync.Mutex
	token         string
	measurements  []domain.Measurement
	workouts      []domain.WorkoutLog
	diet          []domain.DietLog
	profileBody   []ProfileUpdate
	postedDiet    []domain.DietLog
	dashboardDays []string

	// overrides keyed by "METHOD path"
	status map[string]int
	raw    map[string]string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	f := &fakeAPI{t: t, token: "tok-123", status: map[string]int{}, raw: map[string]string{}}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users", f.auth(http.StatusCreated))
	mux.HandleFunc("POST /api/users/login", f.auth(http.StatusOK))
	mux.HandleFunc("GET /api/users/profile", f.protected(f.profile))
	mux.HandleFunc("PUT /api/users/profile", f.protected(f.updateProfile))
	mux.HandleFunc("GET /api/dashboard", f.protected(f.dashboard))
	mux.HandleFunc("GET /api/measurements", f.protected(func(w http.ResponseWriter, r *http.Request) { f.list(w, r, f.measurements) }))
	mux.HandleFunc("GET /api/workouts", f.protected(func(w http.ResponseWriter, r *http.Request) { f.list(w, r, f.workouts) }))
	mux.HandleFunc("GET /api/diet", f.protected(func(w http.ResponseWriter, r *http.Request) { f.list(w, r, f.diet) }))
	mux.HandleFunc("POST /api/measurements", f.protected(f.postMeasurement))
	mux.HandleFunc("POST /api/workouts", f.protected(f.postWorkout))
	mux.HandleFunc("POST /api/diet", f.protected(f.postDiet))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeAPI) overridden(w http.ResponseWriter, r *http.Request) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := r.Method + " " + r.URL.Path
	if status, ok := f.status[key]; ok {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(f.raw[key]))
		return true
	}
	if body, ok := f.raw[key]; ok {
		_, _ = w.Write([]byte(body))
		return true
	}
	return false
}

func (f *fakeAPI) protected(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+f.token {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
			return
		}
		if f.overridden(w, r) {
			return
		}
		next(w, r)
	}
}

func (f *fakeAPI) auth(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if f.overridden(w, r) {
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, status, Session{
			User: domain.User{
				ID:       primitive.NewObjectID(),
				Name:     "Ana",
				Email:    body["email"].(string),
				Settings: domain.DefaultSettings(),
				WorkoutSchedule: domain.WorkoutSchedule{
					"Monday": {Focus: "Chest", Exercises: []string{"Bench"}},
				},
			},
			Token: f.token,
		})
	}
}

func (f *fakeAPI) list(w http.ResponseWriter, _ *http.Request, v any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, v)
}

func (f *fakeAPI) profile(w http.ResponseWriter, _ *http.Request) {
	settings := domain.DefaultSettings()
	settings.TargetWeight = 70
	writeJSON(w, http.StatusOK, domain.User{Name: "Ana", Settings: settings})
}

func (f *fakeAPI) dashboard(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.dashboardDays = append(f.dashboardDays, r.URL.Query().Get("days"))
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"today": "2025-01-15"})
}

func (f *fakeAPI) updateProfile(w http.ResponseWriter, r *http.Request) {
	var upd ProfileUpdate
	_ = json.NewDecoder(r.Body).Decode(&upd)
	f.mu.Lock()
	f.profileBody = append(f.profileBody, upd)
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, domain.User{})
}

func (f *fakeAPI) postMeasurement(w http.ResponseWriter, r *http.Request) {
	var m domain.Measurement
	_ = json.NewDecoder(r.Body).Decode(&m)
	m.ID = primitive.NewObjectID()
	writeJSON(w, http.StatusCreated, m)
}

func (f *fakeAPI) postWorkout(w http.ResponseWriter, r *http.Request) {
	var wl domain.WorkoutLog
	_ = json.NewDecoder(r.Body).Decode(&wl)
	wl.ID = primitive.NewObjectID()
	writeJSON(w, http.StatusCreated, wl)
}

func (f *fakeAPI) postDiet(w http.ResponseWriter, r *http.Request) {
	var d domain.DietLog
	_ = json.NewDecoder(r.Body).Decode(&d)
	f.mu.Lock()
	f.postedDiet = append(f.postedDiet, d)
	f.mu.Unlock()
	d.ID = primitive.NewObjectID()
	writeJSON(w, http.StatusCreated, d)
}

func (f *fakeAPI) override(key string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if status != 0 {
		f.status[key] = status
	}
	f.raw[key] = body
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
