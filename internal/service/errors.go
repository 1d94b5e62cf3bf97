package service

import "fmt"

// Business error codes; handlers map these onto HTTP statuses.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeUniqueViolation  = "UNIQUE_VIOLATION"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeValidation       = "VALIDATION_ERROR"
)

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func NewNotFound(resource string, id int64) *BusinessError {
	return &BusinessError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %d not found", resource, id),
		Details: map[string]any{
			"resource": resource,
			"id":       id,
		},
	}
}

func NewUniqueViolation(field, value string) *BusinessError {
	return &BusinessError{
		Code:    CodeUniqueViolation,
		Message: fmt.Sprintf("%s %q already exists", field, value),
		Details: map[string]any{
			"field": field,
			"value": value,
		},
	}
}

func NewInvalidReference(field string, id int64) *BusinessError {
	return &BusinessError{
		Code:    CodeInvalidReference,
		Message: fmt.Sprintf("%s %d does not exist", field, id),
		Details: map[string]any{
			"field": field,
			"id":    id,
		},
	}
}

func NewValidationError(field, reason string) *BusinessError {
	return &BusinessError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("invalid value for %q: %s", field, reason),
		Details: map[string]any{
			"field":  field,
			"reason": reason,
		},
	}
}
