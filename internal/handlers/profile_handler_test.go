package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachconnect/backend/internal/models"
	"github.com/coachconnect/backend/internal/services"
	"github.com/coachconnect/backend/internal/store"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	st, err := store.NewFileProfileStore(t.TempDir(), "profiles.json")
	require.NoError(t, err)
	h := NewProfileHandler(services.NewProfileService(st), true)

	r := chi.NewRouter()
	r.Get("/api/health", h.Health)
	r.Route("/api/profile", func(r chi.Router) {
		r.Put("/", h.UpdateProfile)
		r.Post("/onboarding", h.Onboarding)
		r.Get("/onboarding-status/{userId}", h.OnboardingStatus)
		r.Get("/{userId}", h.GetProfile)
	})
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Backend is running!"}`, rec.Body.String())
}

func TestUpdateProfileRequiresUserID(t *testing.T) {
	r := newTestRouter(t)

	rec, env := doJSON(t, r, http.MethodPut, "/api/profile", map[string]interface{}{
		"fullName": "No ID",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "User ID is required", env.Error)
}

func TestUpdateProfileRejectsBadBody(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProfilePartialMerge(t *testing.T) {
	r := newTestRouter(t)

	rec, _ := doJSON(t, r, http.MethodPut, "/api/profile", map[string]interface{}{
		"userId":   "u1",
		"fullName": "A",
		"bio":      "x",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doJSON(t, r, http.MethodPut, "/api/profile", map[string]interface{}{
		"userId": "u1",
		"bio":    "y",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Profile updated successfully", env.Message)

	var prof models.Profile
	require.NoError(t, json.Unmarshal(env.Data, &prof))
	assert.Equal(t, "A", prof.FullName)
	assert.Equal(t, "y", prof.Bio)
}

func TestGetProfileNotFound(t *testing.T) {
	r := newTestRouter(t)

	rec, env := doJSON(t, r, http.MethodGet, "/api/profile/ghost", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Profile not found", env.Error)
}

func TestOnboardingClientHappyPath(t *testing.T) {
	r := newTestRouter(t)

	rec, env := doJSON(t, r, http.MethodPost, "/api/profile/onboarding", map[string]interface{}{
		"userId":   "uid-1",
		"userType": "client",
		"email":    "a@b.com",
		"fullName": "Jane Doe",
		"goals":    []string{"leadership"},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Onboarding completed successfully", env.Message)

	var result models.OnboardingResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "/dashboard/client", result.RedirectTo)
	assert.Equal(t, models.UserTypeClient, result.UserType)
	require.NotNil(t, result.Profile)
	assert.True(t, result.Profile.OnboardingComplete)
	assert.Equal(t, []string{"leadership"}, result.Profile.Goals)

	// The record is now fetchable and the status endpoint reflects it.
	rec, env = doJSON(t, r, http.MethodGet, "/api/profile/uid-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = doJSON(t, r, http.MethodGet, "/api/profile/onboarding-status/uid-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status models.OnboardingStatus
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.True(t, status.OnboardingComplete)
	assert.False(t, status.ProfileComplete)
	assert.Equal(t, models.UserTypeClient, status.UserType)
}

func TestOnboardingClientEmptyGoalsRejected(t *testing.T) {
	r := newTestRouter(t)

	rec, env := doJSON(t, r, http.MethodPost, "/api/profile/onboarding", map[string]interface{}{
		"userId":   "uid-2",
		"userType": "client",
		"email":    "a@b.com",
		"fullName": "Jane Doe",
		"goals":    []string{},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "At least one coaching goal is required", env.Error)

	// No record was created.
	rec, _ = doJSON(t, r, http.MethodGet, "/api/profile/uid-2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOnboardingCoachEmptySpecialtiesRejected(t *testing.T) {
	r := newTestRouter(t)

	rec, env := doJSON(t, r, http.MethodPost, "/api/profile/onboarding", map[string]interface{}{
		"userId":      "u2",
		"userType":    "coach",
		"fullName":    "Bob",
		"email":       "b@c.com",
		"specialties": []string{},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error, "specialty")

	rec, _ = doJSON(t, r, http.MethodGet, "/api/profile/u2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOnboardingIdempotent(t *testing.T) {
	r := newTestRouter(t)

	payload := map[string]interface{}{
		"userId":   "uid-3",
		"userType": "coach",
		"email":    "c@d.com",
		"fullName": "Carol",
		"specialties": []string{
			"executive",
		},
	}

	rec, _ := doJSON(t, r, http.MethodPost, "/api/profile/onboarding", payload)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, env := doJSON(t, r, http.MethodPost, "/api/profile/onboarding", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var result models.OnboardingResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "/dashboard/coach", result.RedirectTo)
	assert.Equal(t, []string{"executive"}, result.Profile.Specialties)
}

func TestOnboardingStatusNotFoundBody(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/profile/onboarding-status/ghost", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body models.OnboardingStatusNotFound
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Profile not found", body.Error)
	assert.False(t, body.OnboardingComplete)
}
