package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates the operation conflicts with existing state,
	// e.g. a product that is already assigned to a location.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCreationFailed indicates the store could not persist a new entity.
	ErrCreationFailed = errors.New("creation failed")

	// ErrNotImplemented indicates a required collaborator is not configured.
	ErrNotImplemented = errors.New("not implemented")

	// Authentication Errors.

	// ErrAuthRequired indicates a request carried no credentials.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthExpired indicates the presented token has expired.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrAuthInvalid indicates the credentials or token are invalid.
	ErrAuthInvalid = errors.New("authentication invalid")
)

// Error is a domain failure carrying a client-facing message.
// Kind is one of the sentinel errors above so callers can branch with errors.Is.
type Error struct {
	// Kind classifies the failure (ErrNotFound, ErrAlreadyExists, ...).
	Kind error

	// Message is echoed back to the caller verbatim.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewNotFound creates an ErrNotFound failure with the given message.
func NewNotFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// NewConflict creates an ErrAlreadyExists failure with the given message.
func NewConflict(message string) error {
	return &Error{Kind: ErrAlreadyExists, Message: message}
}

// NewCreationError creates an ErrCreationFailed failure wrapping cause.
func NewCreationError(message string, cause error) error {
	return &Error{Kind: ErrCreationFailed, Message: message, Err: cause}
}

// ValidationError reports a missing, blank or malformed request field.
type ValidationError struct {
	// Field is the wire name of the offending parameter.
	Field string

	// Reason is empty for missing/blank values.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return InvalidParameter + e.Field + "': " + e.Reason
	}
	return RequiredParameter + e.Field + IsNullOrBlank
}

// Unwrap makes every ValidationError match ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewRequiredParameter reports a missing or blank field.
func NewRequiredParameter(field string) error {
	return &ValidationError{Field: field}
}

// NewInvalidParameter reports a present but malformed field.
func NewInvalidParameter(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NewAuthError creates an authentication failure of the given kind.
func NewAuthError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}
