package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/coachconnect/backend/internal/models"
	"github.com/coachconnect/backend/internal/services"
	"github.com/coachconnect/backend/internal/store"
)

const requestTimeout = 10 * time.Second

type ProfileHandler struct {
	profiles *services.ProfileService
	// devMode exposes store error details in responses.
	devMode bool
}

func NewProfileHandler(profiles *services.ProfileService, devMode bool) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, devMode: devMode}
}

// UpdateProfile handles PUT /api/profile: a merge-only upsert keyed by the
// userId in the body. Only the user id is validated.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	prof, err := h.profiles.UpdateProfile(ctx, &req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(verr.Message))
			return
		}
		log.Printf("[UpdateProfile] user=%s error=%v", req.UserID, err)
		h.writeStoreError(w, "Failed to update profile", err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewMessageResponse("Profile updated successfully", prof))
}

// GetProfile handles GET /api/profile/{userId}.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("User ID is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	prof, err := h.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Profile not found"))
			return
		}
		log.Printf("[GetProfile] user=%s error=%v", userID, err)
		h.writeStoreError(w, "Failed to fetch profile", err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(prof))
}

// Onboarding handles POST /api/profile/onboarding: the questionnaire's
// one-time submit. Responds 201 with the stored profile and a role-specific
// redirect hint.
func (h *ProfileHandler) Onboarding(w http.ResponseWriter, r *http.Request) {
	var req models.OnboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	prof, redirect, err := h.profiles.OnboardingUpsert(ctx, &req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(verr.Message))
			return
		}
		log.Printf("[Onboarding] user=%s error=%v", req.UserID, err)
		h.writeStoreError(w, "Failed to complete onboarding", err)
		return
	}

	writeJSON(w, http.StatusCreated, models.NewMessageResponse("Onboarding completed successfully", models.OnboardingResult{
		Profile:    prof,
		UserType:   prof.UserType,
		RedirectTo: redirect,
	}))
}

// OnboardingStatus handles GET /api/profile/onboarding-status/{userId}.
// The 404 body carries onboardingComplete:false at the top level.
func (h *ProfileHandler) OnboardingStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	status, err := h.profiles.OnboardingStatus(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			writeJSON(w, http.StatusNotFound, models.OnboardingStatusNotFound{
				Success:            false,
				Error:              "Profile not found",
				OnboardingComplete: false,
			})
			return
		}
		log.Printf("[OnboardingStatus] user=%s error=%v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to check onboarding status"))
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(status))
}

// Health handles GET /api/health.
func (h *ProfileHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Backend is running!"})
}

// writeStoreError responds 500 with a generic message; the underlying
// detail is only exposed outside production.
func (h *ProfileHandler) writeStoreError(w http.ResponseWriter, message string, err error) {
	resp := models.NewErrorResponse(message)
	if h.devMode {
		resp.Details = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, resp)
}
