package errors

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

// Categories. Every error surfaced by a service wraps exactly one of these.
var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrForbidden         = errors.New("forbidden")
	ErrTokenExpired      = errors.New("token has expired")
	ErrInvalidToken      = errors.New("invalid token")
	ErrConflict          = errors.New("conflict")
	ErrInternal          = errors.New("internal error")
)

var (
	// ErrUserNotFound is returned when a referenced user no longer exists.
	ErrUserNotFound = New(ErrNotFound, "User not found", "USER_NOT_FOUND")
	// ErrEmailNotFound is returned by login for an unknown email.
	ErrEmailNotFound = New(ErrNotFound, "No account found with this email", "EMAIL_NOT_FOUND")
	// ErrIncorrectPassword is returned by login on a password mismatch.
	ErrIncorrectPassword = New(ErrInvalidCredential, "Incorrect password", "INCORRECT_PASSWORD")
	// ErrInvalidCompanySecret is returned when a company secret key does not match.
	ErrInvalidCompanySecret = New(ErrInvalidCredential, "Invalid Company Secret Key!", "INVALID_COMPANY_SECRET")
	// ErrIncorrectCurrentSecret is returned by secret rotation.
	ErrIncorrectCurrentSecret = New(ErrInvalidCredential, "Current secret key is incorrect", "INCORRECT_CURRENT_SECRET")
	// ErrInvalidAdminKey is returned when the admin registration secret does not match.
	ErrInvalidAdminKey = New(ErrInvalidCredential, "Invalid admin secret key!", "INVALID_ADMIN_KEY")
	// ErrRecruiterInactive is returned when a deactivated recruiter tries to log in.
	ErrRecruiterInactive = New(ErrForbidden, "You can no longer login into the portal.", "ACCOUNT_DEACTIVATED")
	// ErrRecruiterProfileMissing is returned when a recruiter user has no recruiter record.
	ErrRecruiterProfileMissing = New(ErrNotFound, "Recruiter profile not found", "RECRUITER_NOT_FOUND")
	// ErrEmailTaken is returned when registering an email that is already in use.
	ErrEmailTaken = New(ErrConflict, "A user with this email already exists", "EMAIL_TAKEN")
	// ErrInvalidResetToken is returned when a password reset code is unknown or expired.
	ErrInvalidResetToken = New(ErrValidation, "Invalid or expired reset token", "INVALID_RESET_TOKEN")
)

// Error is a domain error with a client-facing message and a stable code.
type Error struct {
	kind    error
	message string
	code    string
}

// New builds a domain error belonging to the given category.
func New(kind error, message, code string) *Error {
	return &Error{kind: kind, message: message, code: code}
}

func (e *Error) Error() string { return e.message }

// Unwrap exposes the category to errors.Is.
func (e *Error) Unwrap() error { return e.kind }

// Code returns the machine readable code.
func (e *Error) Code() string { return e.code }

// ValidationError reports bad or missing input, keyed by field.
type ValidationError struct {
	Fields map[string]string
}

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add records another field problem and returns the receiver.
func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = message
	return e
}

// Empty reports whether no field problem was recorded.
func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything it does not
// recognise becomes a generic 500 so internals never leak.
func MapErrorToHTTP(err error) *HTTPError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		he := NewHTTPError(http.StatusBadRequest, "validation failed", "VALIDATION_ERROR")
		he.Fields = verr.Fields
		return he
	}

	var derr *Error
	if errors.As(err, &derr) {
		return NewHTTPError(statusFor(derr.kind, derr), derr.message, derr.code)
	}

	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrInvalidCredential):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIAL")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrTokenExpired):
		return NewHTTPError(http.StatusUnauthorized, "Token has expired", "TOKEN_EXPIRED")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, "Invalid token", "INVALID_TOKEN")
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusConflict, err.Error(), "CONFLICT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

func statusFor(kind error, derr *Error) int {
	switch kind {
	case ErrValidation:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	case ErrInvalidCredential:
		// registration secrets are a malformed request, not a failed login
		if derr == ErrInvalidCompanySecret || derr == ErrInvalidAdminKey || derr == ErrIncorrectCurrentSecret {
			return http.StatusBadRequest
		}
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrTokenExpired, ErrInvalidToken:
		return http.StatusUnauthorized
	case ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
