package api

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// Response is a received HTTP response with its body fully read
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// IsSuccessful reports a 2xx status
func (r *Response) IsSuccessful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// hasBody reports whether the body carries anything besides whitespace or null
func (r *Response) hasBody() bool {
	trimmed := bytes.TrimSpace(r.Body)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// Envelope is the {message, data} wrapper around every JSON payload
type Envelope[T any] struct {
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

// Unit is the payload type of endpoints whose data the client ignores.
// It accepts any JSON value, including null.
type Unit = json.RawMessage

// Decode classifies the response and unwraps its envelope.
// A nil error guarantees a non-nil envelope; Data may still be nil.
func Decode[T any](resp *Response, err error) (*Envelope[T], error) {
	if cerr := Classify(resp, err); cerr != nil {
		return nil, cerr
	}

	var env Envelope[T]
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return nil, &Error{
			Kind:       KindInvalidBody,
			StatusCode: resp.StatusCode,
			Message:    "Malformed response body",
			Err:        err,
		}
	}
	return &env, nil
}

// DecodeData is Decode for endpoints that must return a payload.
// A null data field is a contract violation and reported as KindEmptyBody.
func DecodeData[T any](resp *Response, err error) (*T, string, error) {
	env, err := Decode[T](resp, err)
	if err != nil {
		return nil, "", err
	}
	if env.Data == nil {
		return nil, env.Message, emptyBodyError(resp.StatusCode)
	}
	return env.Data, env.Message, nil
}
