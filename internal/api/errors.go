package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a failed call
type Kind int

const (
	// KindTransport means no response was received (DNS, timeout, reset, open breaker)
	KindTransport Kind = iota + 1
	// KindHTTPStatus is a non-2xx status without a usable error message in the body
	KindHTTPStatus
	// KindEmptyBody is a 2xx status whose body or data is missing
	KindEmptyBody
	// KindDecoded is a non-2xx status whose body carried a message
	KindDecoded
	// KindInvalidBody is a 2xx status whose body is not a valid envelope
	KindInvalidBody
)

// String returns the kind name used in logs and JSON output
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http_status"
	case KindEmptyBody:
		return "empty_body"
	case KindDecoded:
		return "decoded"
	case KindInvalidBody:
		return "invalid_body"
	default:
		return "unknown"
	}
}

// User-facing messages shared by every repository
const (
	MsgUnauthorized = "Invalid or expired token"
	MsgForbidden    = "Access denied"
	MsgEmptyBody    = "Response body is null"
)

// ErrCircuitOpen is wrapped by transport errors rejected by an open breaker
var ErrCircuitOpen = errors.New("circuit breaker open")

// Error is the normalized failure of an API call. Message is always non-empty
// and suitable for display.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying transport or decode error
func (e *Error) Unwrap() error {
	return e.Err
}

// Classify maps the outcome of one round trip to a normalized error.
// It returns nil only for a 2xx response with a body.
func Classify(resp *Response, err error) error {
	if err != nil {
		return &Error{
			Kind:    KindTransport,
			Message: fmt.Sprintf("Network error: %v", err),
			Err:     err,
		}
	}
	if resp == nil {
		return &Error{Kind: KindTransport, Message: "Network error: no response received"}
	}

	if resp.IsSuccessful() {
		if !resp.hasBody() {
			return emptyBodyError(resp.StatusCode)
		}
		return nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return &Error{Kind: KindHTTPStatus, StatusCode: resp.StatusCode, Message: MsgUnauthorized}
	}

	if msg := decodeErrorMessage(resp.Body); msg != "" {
		return &Error{Kind: KindDecoded, StatusCode: resp.StatusCode, Message: msg}
	}

	if resp.StatusCode == http.StatusForbidden {
		return &Error{Kind: KindHTTPStatus, StatusCode: resp.StatusCode, Message: MsgForbidden}
	}

	return &Error{
		Kind:       KindHTTPStatus,
		StatusCode: resp.StatusCode,
		Message:    "Error: " + statusLine(resp),
	}
}

func emptyBodyError(status int) *Error {
	return &Error{Kind: KindEmptyBody, StatusCode: status, Message: MsgEmptyBody}
}

// decodeErrorMessage pulls a message out of a JSON error body, or returns ""
func decodeErrorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if msg := strings.TrimSpace(payload.Message); msg != "" {
		return msg
	}
	return strings.TrimSpace(payload.Error)
}

// statusLine renders "404 Not Found" whether or not the server sent a reason phrase
func statusLine(resp *Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return fmt.Sprintf("%d %s", resp.StatusCode, text)
	}
	return fmt.Sprintf("%d", resp.StatusCode)
}

// KindOf returns the kind of an *Error anywhere in err's chain, or 0
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// StatusOf returns the HTTP status of an *Error in err's chain, or 0
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err is an HTTP 401
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

// IsTransport reports whether err means no response was received
func IsTransport(err error) bool {
	return KindOf(err) == KindTransport
}

// IsKind reports whether err carries an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
