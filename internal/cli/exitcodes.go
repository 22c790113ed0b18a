package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: unexpected failures, or any error that doesn't fit the
	// specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: the server answered 404 for a project or task.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a 2xx response without a body or with an unreadable one.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: input rejected before sending, or a 400/422 from the server.
	ExitValidation = 5

	// ExitUnauthorized indicates missing or rejected credentials.
	// Use for: not logged in, expired session, 401, wrong password.
	ExitUnauthorized = 6

	// ExitUnavailable indicates the server could not be reached.
	// Use for: transport failures, an open circuit breaker, 5xx.
	ExitUnavailable = 7
)
