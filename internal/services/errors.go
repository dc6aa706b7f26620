package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrDuplicateIdentity  = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrAlreadyResolved    = errors.New("invitation already resolved")
	ErrInvitationExpired  = errors.New("invitation expired")
	ErrSessionExpired     = errors.New("session expired")
)

// ValidationError carries per-field detail for 400 responses.
type ValidationError struct {
	Fields map[string]string
}

func (validation *ValidationError) Error() string {
	paths := make([]string, 0, len(validation.Fields))
	for path := range validation.Fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return fmt.Sprintf("validation failed: %s", strings.Join(paths, ", "))
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (validation *ValidationError) addMissing(path string) {
	validation.Fields[path] = "required"
}

func (validation *ValidationError) errOrNil() error {
	if len(validation.Fields) == 0 {
		return nil
	}
	return validation
}
