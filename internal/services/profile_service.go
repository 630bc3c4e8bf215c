package services

import (
	"context"

	"github.com/coachconnect/backend/internal/models"
	"github.com/coachconnect/backend/internal/store"
)

const (
	clientDashboard = "/dashboard/client"
	coachDashboard  = "/dashboard/coach"
)

// ProfileService implements the profile upsert contract on top of a
// ProfileStore: the one-time onboarding upsert with role-specific
// validation, the general merge-only update, and the two fetch operations.
type ProfileService struct {
	store store.ProfileStore
}

func NewProfileService(st store.ProfileStore) *ProfileService {
	return &ProfileService{store: st}
}

// OnboardingUpsert validates the questionnaire payload and upserts the
// profile keyed by user id, marking onboarding complete. It is idempotent:
// resubmitting the same payload converges on the same stored record. The
// returned redirect is the role-specific dashboard path.
func (s *ProfileService) OnboardingUpsert(ctx context.Context, req *models.OnboardingRequest) (*models.Profile, string, error) {
	if req.UserID == "" {
		return nil, "", missingField("userId", "User ID is required")
	}
	if !req.UserType.Valid() {
		return nil, "", invalidField("userType", "Valid user type (coach or client) is required")
	}
	if req.FullName == "" || req.Email == "" {
		return nil, "", missingField("fullName", "Full name and email are required")
	}

	patch := &store.ProfilePatch{
		UserType:           &req.UserType,
		FullName:           &req.FullName,
		Email:              &req.Email,
		Location:           &req.Location,
		OnboardingComplete: boolPtr(true),
		// They still need to complete their full profile later.
		ProfileComplete: boolPtr(false),
	}

	switch req.UserType {
	case models.UserTypeClient:
		if len(req.Goals) == 0 {
			return nil, "", missingField("goals", "At least one coaching goal is required")
		}
		patch.Company = &req.Company
		patch.Role = &req.Role
		patch.TeamSize = &req.TeamSize
		patch.Goals = req.Goals
		patch.Budget = &req.Budget
		patch.Timeline = &req.Timeline
		patch.Industry = &req.Industry
		patch.ClientExperience = &req.Experience

	case models.UserTypeCoach:
		if len(req.Specialties) == 0 {
			return nil, "", missingField("specialties", "At least one specialty is required")
		}
		patch.Title = &req.Title
		patch.Specialties = req.Specialties
		patch.Industries = orEmpty(req.Industries)
		patch.CoachExperience = &req.CoachExperience
		patch.HourlyRate = &req.HourlyRate
	}

	prof, err := s.store.Upsert(ctx, req.UserID, patch)
	if err != nil {
		return nil, "", err
	}

	redirect := clientDashboard
	if req.UserType == models.UserTypeCoach {
		redirect = coachDashboard
	}
	return prof, redirect, nil
}

// UpdateProfile merges the provided fields over the stored record, creating
// it if absent. Only the user id is required; fields not present in the
// request are left untouched.
func (s *ProfileService) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) (*models.Profile, error) {
	if req.UserID == "" {
		return nil, missingField("userId", "User ID is required")
	}

	patch := &store.ProfilePatch{
		UserType:           req.UserType,
		FullName:           req.FullName,
		Email:              req.Email,
		Location:           req.Location,
		Company:            req.Company,
		Role:               req.Role,
		TeamSize:           req.TeamSize,
		Goals:              req.Goals,
		Budget:             req.Budget,
		Timeline:           req.Timeline,
		ClientExperience:   req.ClientExperience,
		Industry:           req.Industry,
		Title:              req.Title,
		Specialties:        req.Specialties,
		Industries:         req.Industries,
		CoachExperience:    req.CoachExperience,
		HourlyRate:         req.HourlyRate,
		Certifications:     req.Certifications,
		CoachingStyle:      req.CoachingStyle,
		IdealClient:        req.IdealClient,
		Tagline:            req.Tagline,
		SuccessRate:        req.SuccessRate,
		Clients:            req.Clients,
		Bio:                req.Bio,
		ContactEmail:       req.ContactEmail,
		Phone:              req.Phone,
		Website:            req.Website,
		SocialLinks:        req.SocialLinks,
		Education:          req.Education,
		Languages:          req.Languages,
		ProfileComplete:    req.ProfileComplete,
		OnboardingComplete: req.OnboardingComplete,
	}

	return s.store.Upsert(ctx, req.UserID, patch)
}

// GetByUserID returns the stored record or store.ErrProfileNotFound.
func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	if userID == "" {
		return nil, missingField("userId", "User ID is required")
	}
	return s.store.FindByUserID(ctx, userID)
}

// OnboardingStatus reports how far the user has gotten, or
// store.ErrProfileNotFound when no record exists yet.
func (s *ProfileService) OnboardingStatus(ctx context.Context, userID string) (*models.OnboardingStatus, error) {
	prof, err := s.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.OnboardingStatus{
		OnboardingComplete: prof.OnboardingComplete,
		UserType:           prof.UserType,
		ProfileComplete:    prof.ProfileComplete,
	}, nil
}

func boolPtr(b bool) *bool {
	return &b
}

// orEmpty normalizes a nil slice to empty so optional tag lists are still
// written on onboarding (matching the stored shape for new coaches).
func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
