package domain

import "fmt"

// ValidationError reports missing or invalid input. Field names the first
// offending field so clients can highlight it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// NewMissingFieldError reports a required field that was absent or empty.
func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// ConflictError reports a write that would duplicate a unique field.
type ConflictError struct {
	Resource string
	Field    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with this %s already exists", e.Resource, e.Field)
}

// NotFoundError reports a lookup or update against a missing record.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// AuthError reports failed credential verification.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	if e.Reason == "" {
		return "invalid credentials"
	}
	return e.Reason
}

// DeliveryError reports a failure from the transactional mail provider.
// Delivery failures are surfaced to the caller rather than swallowed.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("mail delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
