package httperr

import "errors"

// ValidationError is a request problem the caller can fix; its message is
// safe to send back verbatim.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e ValidationError) Error() string {
	return e.Message
}

func ErrValidation(message string, fields ...string) error {
	return ValidationError{Message: message, Fields: fields}
}

func AsValidation(err error) (ValidationError, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return ValidationError{}, false
}
