package services

// ValidationError is a request validation failure. Handlers map it to a
// 400 with the message as the response error string.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
