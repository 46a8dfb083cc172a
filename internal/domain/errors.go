package domain

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrEventNotFound         = errors.New("event not found")
	ErrClubNotFound          = errors.New("club not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrPreferencesNotFound   = errors.New("preferences not found")
	ErrConversationNotFound  = errors.New("conversation not found")
	ErrCalendarEventNotFound = errors.New("event not found in user's calendar")
	ErrEmailOnWaitlist       = errors.New("email already on waitlist")
)

// ValidationError reports malformed input rejected before any store write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
