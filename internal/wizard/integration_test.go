package wizard

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachconnect/backend/internal/handlers"
	"github.com/coachconnect/backend/internal/identity"
	"github.com/coachconnect/backend/internal/models"
	"github.com/coachconnect/backend/internal/services"
	"github.com/coachconnect/backend/internal/store"
)

// TestWizardAgainstRealServer runs the whole saga end to end: local
// identity provider, HTTP onboarding client, real handlers, file store.
func TestWizardAgainstRealServer(t *testing.T) {
	st, err := store.NewFileProfileStore(t.TempDir(), "profiles.json")
	require.NoError(t, err)
	svc := services.NewProfileService(st)
	h := handlers.NewProfileHandler(svc, true)

	r := chi.NewRouter()
	r.Route("/api/profile", func(r chi.Router) {
		r.Post("/onboarding", h.Onboarding)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	provider := identity.NewLocalProvider("test-secret", time.Hour)
	w := New(provider, NewClient(srv.URL))

	d := w.Draft()
	d.Email = "a@b.com"
	d.Password = "secret1"
	d.ConfirmPassword = "secret1"
	require.NoError(t, w.Next())
	require.NoError(t, w.SelectRole(models.UserTypeClient))
	d.FullName = "Jane Doe"
	require.NoError(t, w.Next())
	w.Toggle("leadership")
	require.NoError(t, w.Next())

	redirect, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/dashboard/client", redirect)
	assert.Equal(t, StepSuccess, w.Step())

	result := w.Result()
	require.NotNil(t, result)
	require.NotNil(t, result.Profile)

	stored, err := st.FindByUserID(context.Background(), result.Profile.UserID)
	require.NoError(t, err)
	assert.True(t, stored.OnboardingComplete)
	assert.False(t, stored.ProfileComplete)
	assert.Equal(t, models.UserTypeClient, stored.UserType)
	assert.Equal(t, []string{"leadership"}, stored.Goals)
	assert.Equal(t, "a@b.com", stored.Email)
}
