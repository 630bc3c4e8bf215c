package models

import "time"

// UserType discriminates which optional field group of a Profile is active.
type UserType string

const (
	UserTypeClient UserType = "client"
	UserTypeCoach  UserType = "coach"
)

// Valid reports whether t is one of the two supported roles.
func (t UserType) Valid() bool {
	return t == UserTypeClient || t == UserTypeCoach
}

// SocialLinks holds optional social media URLs shown on profile pages.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
}

// Profile is one user's marketplace profile, stored in Mongo and keyed by
// the Firebase UID. Client-specific fields are meaningful only when
// UserType is "client", coach-specific fields only when it is "coach".
type Profile struct {
	UserID   string   `json:"userId" bson:"user_id"`
	UserType UserType `json:"userType" bson:"user_type"`

	FullName string `json:"fullName" bson:"full_name"`
	Email    string `json:"email" bson:"email"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`

	// Client fields.
	Company          string   `json:"company,omitempty" bson:"company,omitempty"`
	Role             string   `json:"role,omitempty" bson:"role,omitempty"`
	TeamSize         string   `json:"teamSize,omitempty" bson:"team_size,omitempty"`
	Goals            []string `json:"goals,omitempty" bson:"goals,omitempty"`
	Budget           string   `json:"budget,omitempty" bson:"budget,omitempty"`
	Timeline         string   `json:"timeline,omitempty" bson:"timeline,omitempty"`
	ClientExperience string   `json:"clientExperience,omitempty" bson:"client_experience,omitempty"`
	Industry         string   `json:"industry,omitempty" bson:"industry,omitempty"`

	// Coach fields.
	Title           string   `json:"title,omitempty" bson:"title,omitempty"`
	Specialties     []string `json:"specialties,omitempty" bson:"specialties,omitempty"`
	Industries      []string `json:"industries,omitempty" bson:"industries,omitempty"`
	CoachExperience string   `json:"coachExperience,omitempty" bson:"coach_experience,omitempty"`
	HourlyRate      string   `json:"hourlyRate,omitempty" bson:"hourly_rate,omitempty"`
	Certifications  []string `json:"certifications,omitempty" bson:"certifications,omitempty"`
	CoachingStyle   string   `json:"coachingStyle,omitempty" bson:"coaching_style,omitempty"`
	IdealClient     string   `json:"idealClient,omitempty" bson:"ideal_client,omitempty"`

	// Shared display fields kept for existing data.
	Tagline      string       `json:"tagline,omitempty" bson:"tagline,omitempty"`
	SuccessRate  string       `json:"successRate,omitempty" bson:"success_rate,omitempty"`
	Clients      string       `json:"clients,omitempty" bson:"clients,omitempty"`
	Bio          string       `json:"bio,omitempty" bson:"bio,omitempty"`
	ContactEmail string       `json:"contactEmail,omitempty" bson:"contact_email,omitempty"`
	Phone        string       `json:"phone,omitempty" bson:"phone,omitempty"`
	Website      string       `json:"website,omitempty" bson:"website,omitempty"`
	SocialLinks  *SocialLinks `json:"socialLinks,omitempty" bson:"social_links,omitempty"`
	Education    string       `json:"education,omitempty" bson:"education,omitempty"`
	Languages    []string     `json:"languages,omitempty" bson:"languages,omitempty"`

	ProfileComplete    bool `json:"profileComplete" bson:"profile_complete"`
	OnboardingComplete bool `json:"onboardingComplete" bson:"onboarding_complete"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// OnboardingRequest is the payload the signup wizard posts once, at the end
// of the questionnaire. Role-specific fields outside the active role are
// ignored by the service.
type OnboardingRequest struct {
	UserID   string   `json:"userId"`
	UserType UserType `json:"userType"`
	Email    string   `json:"email"`
	FullName string   `json:"fullName"`
	Location string   `json:"location"`

	// Client fields.
	Company    string   `json:"company"`
	Role       string   `json:"role"`
	TeamSize   string   `json:"teamSize"`
	Goals      []string `json:"goals"`
	Budget     string   `json:"budget"`
	Timeline   string   `json:"timeline"`
	Industry   string   `json:"industry"`
	Experience string   `json:"experience"`

	// Coach fields.
	Title           string   `json:"title"`
	Specialties     []string `json:"specialties"`
	Industries      []string `json:"industries"`
	CoachExperience string   `json:"coachExperience"`
	HourlyRate      string   `json:"hourlyRate"`
}

// UpdateProfileRequest is a partial profile update. Nil fields are left
// untouched in the stored record; only provided fields are merged.
type UpdateProfileRequest struct {
	UserID   string    `json:"userId"`
	UserType *UserType `json:"userType"`

	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Location *string `json:"location"`

	Company          *string  `json:"company"`
	Role             *string  `json:"role"`
	TeamSize         *string  `json:"teamSize"`
	Goals            []string `json:"goals"`
	Budget           *string  `json:"budget"`
	Timeline         *string  `json:"timeline"`
	ClientExperience *string  `json:"clientExperience"`
	Industry         *string  `json:"industry"`

	Title           *string  `json:"title"`
	Specialties     []string `json:"specialties"`
	Industries      []string `json:"industries"`
	CoachExperience *string  `json:"coachExperience"`
	HourlyRate      *string  `json:"hourlyRate"`
	Certifications  []string `json:"certifications"`
	CoachingStyle   *string  `json:"coachingStyle"`
	IdealClient     *string  `json:"idealClient"`

	Tagline      *string      `json:"tagline"`
	SuccessRate  *string      `json:"successRate"`
	Clients      *string      `json:"clients"`
	Bio          *string      `json:"bio"`
	ContactEmail *string      `json:"contactEmail"`
	Phone        *string      `json:"phone"`
	Website      *string      `json:"website"`
	SocialLinks  *SocialLinks `json:"socialLinks"`
	Education    *string      `json:"education"`
	Languages    []string     `json:"languages"`

	ProfileComplete    *bool `json:"profileComplete"`
	OnboardingComplete *bool `json:"onboardingComplete"`
}

// OnboardingResult is returned after a successful onboarding submit so the
// front end can route the user to the right dashboard.
type OnboardingResult struct {
	Profile    *Profile `json:"profile"`
	UserType   UserType `json:"userType"`
	RedirectTo string   `json:"redirectTo"`
}

// OnboardingStatus summarizes how far a user has gotten.
type OnboardingStatus struct {
	OnboardingComplete bool     `json:"onboardingComplete"`
	UserType           UserType `json:"userType"`
	ProfileComplete    bool     `json:"profileComplete"`
}
