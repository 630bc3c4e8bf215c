package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/coachconnect/backend/internal/identity"
	"github.com/coachconnect/backend/internal/models"
)

// Step identifies where the signup questionnaire currently is.
type Step int

const (
	StepCredentials Step = iota + 1
	StepRoleSelect
	StepBasicInfo
	StepRoleDetails
	StepPreferences
	StepSubmitting
	StepSuccess
)

// StepCount is the number of user-facing questionnaire steps.
const StepCount = 5

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission is still outstanding.
var ErrSubmitInFlight = errors.New("submission already in progress")

// Option is a selectable tag shown on the role-details step.
type Option struct {
	ID    string
	Label string
}

// ClientGoals are the coaching goals a client can pick at step 4.
var ClientGoals = []Option{
	{ID: "leadership", Label: "Leadership Development"},
	{ID: "team", Label: "Team Management"},
	{ID: "communication", Label: "Communication Skills"},
	{ID: "career", Label: "Career Advancement"},
	{ID: "strategy", Label: "Strategic Thinking"},
	{ID: "balance", Label: "Work-Life Balance"},
}

// CoachSpecialties are the specialties a coach can pick at step 4.
var CoachSpecialties = []Option{
	{ID: "executive", Label: "Executive Leadership"},
	{ID: "startup", Label: "Startup Coaching"},
	{ID: "team-building", Label: "Team Building"},
	{ID: "career-transition", Label: "Career Transition"},
	{ID: "communication", Label: "Communication"},
	{ID: "performance", Label: "Performance Coaching"},
}

// Industries is the shared industry catalog used on the preferences step.
var Industries = []string{
	"Technology", "Finance", "Healthcare", "Manufacturing",
	"Consulting", "Real Estate", "Education", "Non-profit", "Other",
}

// Draft accumulates everything the user has entered across the steps. Back
// navigation never clears it.
type Draft struct {
	Email           string
	Password        string
	ConfirmPassword string

	FullName string
	Location string

	// Client answers.
	Company    string
	Role       string
	TeamSize   string
	Industry   string
	Goals      []string
	Budget     string
	Timeline   string
	Experience string

	// Coach answers.
	Title       string
	Specialties []string
	Industries  []string
	HourlyRate  string
}

// Wizard is the onboarding questionnaire state machine. Transitions are
// validated: a step only advances once its required inputs are present.
// Submission is a two-call saga (create the account, then post the
// profile); on failure the wizard returns to the preferences step with the
// credentials retained so the user can retry without starting over.
type Wizard struct {
	mu         sync.Mutex
	step       Step
	userType   models.UserType
	draft      Draft
	errMsg     string
	identity   identity.Provider
	api        OnboardingAPI
	acct       *identity.Account
	lastResult *models.OnboardingResult
}

func New(provider identity.Provider, api OnboardingAPI) *Wizard {
	return &Wizard{
		step:     StepCredentials,
		identity: provider,
		api:      api,
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// UserType returns the role chosen at the role-select step, or "" before
// one is chosen.
func (w *Wizard) UserType() models.UserType {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.userType
}

// Draft returns the accumulated answers for editing. The wizard is
// cooperative (one UI action at a time); edits and transitions are not
// expected concurrently.
func (w *Wizard) Draft() *Draft {
	return &w.draft
}

// Err returns the message to surface in the error banner, if any.
func (w *Wizard) Err() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}

// Result returns the onboarding result from a successful submit.
func (w *Wizard) Result() *models.OnboardingResult {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastResult
}

// CanContinue reports whether the current step's gate is satisfied, i.e.
// whether the Continue action should be enabled.
func (w *Wizard) CanContinue() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gate() == nil
}

// Next advances to the following step after validating the current one.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step < StepCredentials || w.step >= StepPreferences {
		return fmt.Errorf("cannot continue from step %d", w.step)
	}
	if err := w.gate(); err != nil {
		return err
	}
	w.step++
	return nil
}

// Back returns to the previous step, preserving all entered data. It is a
// no-op on the first step and while submitting.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step > StepCredentials && w.step <= StepPreferences {
		w.step--
	}
}

// SelectRole records the chosen role at the role-select step and advances.
// The choice fixes which option catalog the role-details step presents.
func (w *Wizard) SelectRole(t models.UserType) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepRoleSelect {
		return fmt.Errorf("role can only be selected at step %d", StepRoleSelect)
	}
	if !t.Valid() {
		return fmt.Errorf("unknown role %q", t)
	}
	w.userType = t
	w.step = StepBasicInfo
	return nil
}

// Options returns the tag catalog for the role-details step: goals for
// clients, specialties for coaches.
func (w *Wizard) Options() []Option {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.userType == models.UserTypeCoach {
		return CoachSpecialties
	}
	return ClientGoals
}

// Toggle adds the tag to the active role's selection if absent, removes it
// if present. Selections stay unique.
func (w *Wizard) Toggle(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.userType == models.UserTypeCoach {
		w.draft.Specialties = toggleTag(w.draft.Specialties, id)
	} else {
		w.draft.Goals = toggleTag(w.draft.Goals, id)
	}
}

// gate validates the current step's required inputs. Callers hold w.mu.
func (w *Wizard) gate() error {
	switch w.step {
	case StepCredentials:
		if w.draft.Email == "" || w.draft.Password == "" {
			return errors.New("email and password are required")
		}
		if w.draft.Password != w.draft.ConfirmPassword {
			return errors.New("passwords do not match")
		}
	case StepRoleSelect:
		if !w.userType.Valid() {
			return errors.New("choose a role to continue")
		}
	case StepBasicInfo:
		if w.draft.FullName == "" {
			return errors.New("full name is required")
		}
	case StepRoleDetails:
		if w.userType == models.UserTypeCoach {
			if len(w.draft.Specialties) == 0 {
				return errors.New("select at least one specialty")
			}
		} else if len(w.draft.Goals) == 0 {
			return errors.New("select at least one goal")
		}
	}
	// The preferences step has no required fields.
	return nil
}

// Submit runs the final saga: create the account with the identity
// provider, then post the role-shaped profile payload. Only one submission
// may be in flight. On failure the wizard lands back on the preferences
// step with a banner message; the already-entered credentials (and, once
// account creation has succeeded, the created account) are reused on retry.
func (w *Wizard) Submit(ctx context.Context) (string, error) {
	w.mu.Lock()
	if w.step == StepSubmitting {
		w.mu.Unlock()
		return "", ErrSubmitInFlight
	}
	if w.step != StepPreferences {
		w.mu.Unlock()
		return "", fmt.Errorf("cannot submit from step %d", w.step)
	}
	w.step = StepSubmitting
	w.errMsg = ""
	draft := w.draft
	userType := w.userType
	acct := w.acct
	w.mu.Unlock()

	// A retry after a failed profile submit reuses the account created on
	// the earlier attempt instead of recreating it.
	if acct == nil {
		var err error
		acct, err = w.identity.CreateAccount(ctx, draft.Email, draft.Password)
		if err != nil {
			return "", w.fail(err)
		}
		w.mu.Lock()
		w.acct = acct
		w.mu.Unlock()
	}

	res, err := w.api.SubmitOnboarding(ctx, buildPayload(userType, acct.UserID, &draft))
	if err != nil {
		return "", w.fail(err)
	}

	redirect := res.RedirectTo
	if redirect == "" {
		// Fallback navigation based on user type.
		if userType == models.UserTypeCoach {
			redirect = "/dashboard/coach"
		} else {
			redirect = "/dashboard/client"
		}
	}

	w.mu.Lock()
	w.step = StepSuccess
	w.lastResult = res
	w.mu.Unlock()
	return redirect, nil
}

// fail records the banner message for the failure kind and returns the
// wizard to the preferences step for retry.
func (w *Wizard) fail(err error) error {
	msg := failureMessage(err)

	w.mu.Lock()
	w.errMsg = msg
	w.step = StepPreferences
	w.mu.Unlock()
	return err
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, identity.ErrEmailInUse):
		return "An account with this email already exists."
	case errors.Is(err, identity.ErrWeakPassword):
		return "Password is too weak. Please choose a stronger password."
	case errors.Is(err, identity.ErrInvalidEmail):
		return "Please enter a valid email address."
	default:
		return "Failed to create account. Please try again."
	}
}

// buildPayload assembles the onboarding request from the collected answers,
// filtered to the active role's field set.
func buildPayload(userType models.UserType, userID string, d *Draft) *models.OnboardingRequest {
	req := &models.OnboardingRequest{
		UserID:   userID,
		UserType: userType,
		Email:    d.Email,
		FullName: d.FullName,
		Location: d.Location,
	}

	if userType == models.UserTypeCoach {
		req.Title = d.Title
		req.Specialties = d.Specialties
		req.Industries = d.Industries
		req.CoachExperience = d.Experience
		req.HourlyRate = d.HourlyRate
	} else {
		req.Company = d.Company
		req.Role = d.Role
		req.TeamSize = d.TeamSize
		req.Goals = d.Goals
		req.Budget = d.Budget
		req.Timeline = d.Timeline
		req.Industry = d.Industry
		req.Experience = d.Experience
	}
	return req
}

func toggleTag(tags []string, id string) []string {
	for i, t := range tags {
		if t == id {
			return append(tags[:i:i], tags[i+1:]...)
		}
	}
	return append(tags, id)
}
