package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

// RecordedRequest is what the mock API saw for one call
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	RequestID     string
	Body          []byte
	// Form and Files are filled for multipart bodies; Files maps field to file name
	Form  map[string]string
	Files map[string]string
	// FileContents maps field to the uploaded bytes
	FileContents map[string][]byte
}

// JSON decodes the recorded body into a generic map
func (r RecordedRequest) JSON(t *testing.T) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal(r.Body, &result); err != nil {
		t.Fatalf("Failed to parse request body: %v\nBody: %s", err, r.Body)
	}
	return result
}

// MockAPI is an httptest server routed with gorilla/mux that records every request
type MockAPI struct {
	t      *testing.T
	Server *httptest.Server
	Router *mux.Router

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewMockAPI starts a mock API server that is closed when the test ends
func NewMockAPI(t *testing.T) *MockAPI {
	t.Helper()

	m := &MockAPI{t: t, Router: mux.NewRouter()}
	m.Router.Use(m.record)
	m.Server = httptest.NewServer(m.Router)
	t.Cleanup(m.Server.Close)

	return m
}

// URL returns the base URL clients should be configured with
func (m *MockAPI) URL() string {
	return m.Server.URL + "/"
}

// Handle registers a handler for method and path (mux template syntax)
func (m *MockAPI) Handle(method, path string, h http.HandlerFunc) {
	m.Router.HandleFunc(path, h).Methods(method)
}

// Respond registers a fixed raw response
func (m *MockAPI) Respond(method, path string, status int, body string) {
	m.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// RespondJSON registers a fixed response encoded from v
func (m *MockAPI) RespondJSON(method, path string, status int, v interface{}) {
	m.t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		m.t.Fatalf("Failed to encode mock response: %v", err)
	}
	m.Respond(method, path, status, string(data))
}

// RespondEnvelope registers a 200 response wrapping data in the {message, data} envelope
func (m *MockAPI) RespondEnvelope(method, path, message string, data interface{}) {
	m.RespondJSON(method, path, http.StatusOK, Envelope(message, data))
}

// Requests returns a copy of every recorded request in arrival order
func (m *MockAPI) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]RecordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// LastRequest returns the most recent request, failing the test if there is none
func (m *MockAPI) LastRequest() RecordedRequest {
	m.t.Helper()

	reqs := m.Requests()
	if len(reqs) == 0 {
		m.t.Fatal("Expected at least one request to the mock API")
	}
	return reqs[len(reqs)-1]
}

// RequestCount returns how many requests reached the server
func (m *MockAPI) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *MockAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		rec := RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			RequestID:     r.Header.Get("X-Request-ID"),
			Body:          body,
		}
		parseMultipart(&rec)

		m.mu.Lock()
		m.requests = append(m.requests, rec)
		m.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func parseMultipart(rec *RecordedRequest) {
	mediaType, params, err := mime.ParseMediaType(rec.ContentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return
	}

	rec.Form = map[string]string{}
	rec.Files = map[string]string{}
	rec.FileContents = map[string][]byte{}

	reader := multipart.NewReader(bytes.NewReader(rec.Body), params["boundary"])
	for {
		part, err := reader.NextPart()
		if err != nil {
			return
		}
		data, _ := io.ReadAll(part)
		if part.FileName() != "" {
			rec.Files[part.FormName()] = part.FileName()
			rec.FileContents[part.FormName()] = data
			continue
		}
		rec.Form[part.FormName()] = string(data)
	}
}

// Envelope builds a {message, data} response body
func Envelope(message string, data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"message": message,
		"data":    data,
	}
}
