package models

import "errors"

// Validation errors for outgoing requests
var (
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrNothingToUpdate  = errors.New("no fields to update")
	ErrEmptyProjectName = errors.New("project name cannot be empty")
	ErrEmptyProjectID   = errors.New("project ID cannot be empty")
	ErrEmptyInviteCode  = errors.New("invite code cannot be empty")
	ErrNoCollaborators  = errors.New("at least one collaborator email is required")
	ErrEmptyTaskDesc    = errors.New("task description cannot be empty")
	ErrEmptyTaskID      = errors.New("task ID cannot be empty")
	ErrEmptyResponsible = errors.New("responsible user cannot be empty")
	ErrMissingDeadline  = errors.New("task deadline is required")
	ErrInvalidDate      = errors.New("invalid date")
	ErrEmptyTitle       = errors.New("proposal title cannot be empty")
	ErrMissingFile      = errors.New("proposal file is required")
	ErrInvalidID        = errors.New("invalid ID")
	ErrEmptyPhoto       = errors.New("photo file has no content")
)

var validationErrors = []error{
	ErrEmptyEmail, ErrInvalidEmail, ErrEmptyPassword, ErrEmptyName, ErrNothingToUpdate,
	ErrEmptyProjectName, ErrEmptyProjectID, ErrEmptyInviteCode, ErrNoCollaborators,
	ErrEmptyTaskDesc, ErrEmptyTaskID, ErrEmptyResponsible, ErrMissingDeadline, ErrInvalidDate,
	ErrEmptyTitle, ErrMissingFile, ErrInvalidID, ErrEmptyPhoto,
}

// IsValidationError reports whether err was raised by request validation
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
