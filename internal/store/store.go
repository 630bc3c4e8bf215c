package store

import (
	"context"
	"errors"

	"github.com/coachconnect/backend/internal/models"
)

// ErrProfileNotFound is returned by FindByUserID when no record exists for
// the given user id.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore persists one profile record per user id. Upsert creates the
// record when absent and merges the patch over it when present; each call
// is a single atomic per-document write.
type ProfileStore interface {
	Upsert(ctx context.Context, userID string, patch *ProfilePatch) (*models.Profile, error)
	FindByUserID(ctx context.Context, userID string) (*models.Profile, error)
	Close(ctx context.Context) error
}

// ProfilePatch is a merge patch over a profile record. Nil fields are left
// untouched; provided fields overwrite the stored value. Slice fields use
// nil (not empty) to mean "leave untouched".
type ProfilePatch struct {
	UserType *models.UserType

	FullName *string
	Email    *string
	Location *string

	Company          *string
	Role             *string
	TeamSize         *string
	Goals            []string
	Budget           *string
	Timeline         *string
	ClientExperience *string
	Industry         *string

	Title           *string
	Specialties     []string
	Industries      []string
	CoachExperience *string
	HourlyRate      *string
	Certifications  []string
	CoachingStyle   *string
	IdealClient     *string

	Tagline      *string
	SuccessRate  *string
	Clients      *string
	Bio          *string
	ContactEmail *string
	Phone        *string
	Website      *string
	SocialLinks  *models.SocialLinks
	Education    *string
	Languages    []string

	ProfileComplete    *bool
	OnboardingComplete *bool
}

// Apply merges the patch into prof in place.
func (p *ProfilePatch) Apply(prof *models.Profile) {
	if p.UserType != nil {
		prof.UserType = *p.UserType
	}
	if p.FullName != nil {
		prof.FullName = *p.FullName
	}
	if p.Email != nil {
		prof.Email = *p.Email
	}
	if p.Location != nil {
		prof.Location = *p.Location
	}
	if p.Company != nil {
		prof.Company = *p.Company
	}
	if p.Role != nil {
		prof.Role = *p.Role
	}
	if p.TeamSize != nil {
		prof.TeamSize = *p.TeamSize
	}
	if p.Goals != nil {
		prof.Goals = p.Goals
	}
	if p.Budget != nil {
		prof.Budget = *p.Budget
	}
	if p.Timeline != nil {
		prof.Timeline = *p.Timeline
	}
	if p.ClientExperience != nil {
		prof.ClientExperience = *p.ClientExperience
	}
	if p.Industry != nil {
		prof.Industry = *p.Industry
	}
	if p.Title != nil {
		prof.Title = *p.Title
	}
	if p.Specialties != nil {
		prof.Specialties = p.Specialties
	}
	if p.Industries != nil {
		prof.Industries = p.Industries
	}
	if p.CoachExperience != nil {
		prof.CoachExperience = *p.CoachExperience
	}
	if p.HourlyRate != nil {
		prof.HourlyRate = *p.HourlyRate
	}
	if p.Certifications != nil {
		prof.Certifications = p.Certifications
	}
	if p.CoachingStyle != nil {
		prof.CoachingStyle = *p.CoachingStyle
	}
	if p.IdealClient != nil {
		prof.IdealClient = *p.IdealClient
	}
	if p.Tagline != nil {
		prof.Tagline = *p.Tagline
	}
	if p.SuccessRate != nil {
		prof.SuccessRate = *p.SuccessRate
	}
	if p.Clients != nil {
		prof.Clients = *p.Clients
	}
	if p.Bio != nil {
		prof.Bio = *p.Bio
	}
	if p.ContactEmail != nil {
		prof.ContactEmail = *p.ContactEmail
	}
	if p.Phone != nil {
		prof.Phone = *p.Phone
	}
	if p.Website != nil {
		prof.Website = *p.Website
	}
	if p.SocialLinks != nil {
		prof.SocialLinks = p.SocialLinks
	}
	if p.Education != nil {
		prof.Education = *p.Education
	}
	if p.Languages != nil {
		prof.Languages = p.Languages
	}
	if p.ProfileComplete != nil {
		prof.ProfileComplete = *p.ProfileComplete
	}
	if p.OnboardingComplete != nil {
		prof.OnboardingComplete = *p.OnboardingComplete
	}
}
