package cli

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/tbtb-research/riset/internal/api"
	"github.com/tbtb-research/riset/internal/app"
	"github.com/tbtb-research/riset/internal/models"
	"github.com/tbtb-research/riset/internal/repository"
	"github.com/tbtb-research/riset/internal/session"
)

// CommandError carries the process exit code of a failed command.
// The error has already been reported to the user when it is returned.
type CommandError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the reported error
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCodeOf returns the exit code for an error returned by a command.
// Errors that were never reported (flag parsing, unknown commands) are usage errors.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}

// Classify maps an error to an exit code and an optional suggestion
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return ExitUnauthorized, "Run 'riset auth login' to sign in"
	case errors.Is(err, app.ErrSessionExpired):
		return ExitUnauthorized, "Run 'riset auth login' to sign in again"
	case errors.Is(err, repository.ErrInvalidCredentials):
		return ExitUnauthorized, "Check your email and password"
	case errors.Is(err, repository.ErrServerUnavailable):
		return ExitUnavailable, "Check your connection or the api.base_url setting"
	case errors.Is(err, repository.ErrLoginFailed):
		return ExitError, ""
	case models.IsValidationError(err):
		return ExitValidation, ""
	}

	switch api.KindOf(err) {
	case api.KindTransport:
		return ExitUnavailable, "Check your connection or the api.base_url setting"
	case api.KindEmptyBody, api.KindInvalidBody:
		return ExitDataErr, ""
	}

	switch status := api.StatusOf(err); {
	case status == http.StatusUnauthorized:
		return ExitUnauthorized, "Run 'riset auth login' to sign in again"
	case status == http.StatusNotFound:
		return ExitNotFound, ""
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ExitValidation, ""
	case status >= http.StatusInternalServerError:
		return ExitUnavailable, "The server is having trouble, try again later"
	}

	return ExitError, ""
}

// Fail reports err through the formatter under code and returns the CommandError for the command
func Fail(formatter *OutputFormatter, code string, err error) error {
	exitCode, suggestion := Classify(err)
	if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return &CommandError{Code: exitCode, Err: err}
}

// UsageError reports a usage problem detected by the command itself
func UsageError(formatter *OutputFormatter, format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	if fmtErr := formatter.Error("USAGE_ERROR", err.Error()); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return &CommandError{Code: ExitUsage, Err: err}
}
