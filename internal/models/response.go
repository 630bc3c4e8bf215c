package models

// APIResponse is a generic API response wrapper
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

// NewMessageResponse creates a success response with a human-readable message
func NewMessageResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Error:   message,
	}
}

// OnboardingStatusNotFound is the 404 body for the onboarding-status
// endpoint; it carries onboardingComplete at the top level so the front end
// can route signed-in users with no profile back into the questionnaire.
type OnboardingStatusNotFound struct {
	Success            bool   `json:"success"`
	Error              string `json:"error"`
	OnboardingComplete bool   `json:"onboardingComplete"`
}
