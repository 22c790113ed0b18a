package api

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbtb-research/riset/internal/models"
	"github.com/tbtb-research/riset/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()

	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.ConnectTimeout = 2 * time.Second
	cfg.ReadTimeout = 2 * time.Second
	cfg.WriteTimeout = 2 * time.Second

	client, err := New(cfg, opts...)
	require.NoError(t, err)
	return client
}

// closedServerURL returns the URL of a server that no longer accepts connections
func closedServerURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/"
	srv.Close()
	return url
}

func strPtr(s string) *string { return &s }

// ============================================================================
// CONSTRUCTION
// ============================================================================

func TestNew_Defaults(t *testing.T) {
	client, err := New(Config{})
	require.NoError(t, err)

	cfg := client.Config()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 90*time.Second, client.httpClient.Timeout)
	assert.Nil(t, client.breaker)
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "ftp://example.com"})
	assert.Error(t, err)

	_, err = New(Config{BaseURL: "://bad"})
	assert.Error(t, err)
}

func TestCall_BaseURLWithPrefix(t *testing.T) {
	mock := testutil.NewMockAPI(t)
	mock.RespondEnvelope(http.MethodGet, "/v1/api/projects", "ok", []interface{}{})

	client := newTestClient(t, mock.Server.URL+"/v1")
	resp, err := client.ListProjects(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/v1/api/projects", mock.LastRequest().Path)
}

// ============================================================================
// HEADERS AND BODIES
// ============================================================================

func TestCall_Headers(t *testing.T) {
	mock := testutil.NewMockAPI(t)
	mock.RespondEnvelope(http.MethodGet, "/api/me", "ok", map[string]interface{}{"id": "1"})
	mock.RespondEnvelope(http.MethodPost, "/api/login", "ok", map[string]interface{}{"token": "abc"})

	client := newTestClient(t, mock.URL())
	ctx := context.Background()

	_, err := client.CurrentUser(ctx, "secret-token")
	require.NoError(t, err)
	me := mock.LastRequest()
	assert.Equal(t, "Bearer secret-token", me.Authorization)
	assert.NotEmpty(t, me.RequestID)

	_, err = client.Login(ctx, models.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	login := mock.LastRequest()
	assert.Empty(t, login.Authorization)
	assert.Contains(t, login.ContentType, "application/json")
	assert.NotEqual(t, me.RequestID, login.RequestID)

	body := login.JSON(t)
	assert.Equal(t, "a@b.c", body["email"])
	assert.Equal(t, "pw", body["password"])
}

func TestCall_ReturnsNon2xxAsResponse(t *testing.T) {
	mock := testutil.NewMockAPI(t)
	mock.Respond(http.MethodGet, "/api/me", http.StatusUnauthorized, `{"message":"expired"}`)

	client := newTestClient(t, mock.URL())
	resp, err := client.CurrentUser(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, resp.IsSuccessful())
	assert.JSONEq(t, `{"message":"expired"}`, string(resp.Body))
}

func TestCreateProject_SerializesEmptyCollaborators(t *testing.T) {
	mock := testutil.NewMockAPI(t)
	mock.RespondEnvelope(http.MethodPost, "/api/projects", "created", map[string]interface{}{"id": "p1"})

	client := newTestClient(t, mock.URL())
	_, err := client.CreateProject(context.Background(), "tok", models.CreateProjectRequest{
		Name:        "Survey",
		Description: "desc",
		ObjectType:  "padi",
	})
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"nama_project":"Survey","deskripsi":"desc","object":"padi","collaborators":[]}`,
		string(mock.LastRequest().Body))
}

func TestUpdateUser_SendsOnlyProvidedFields(t *testing.T) {
	mock := testutil.NewMockAPI(t)
	mock.RespondEnvelope(http.MethodPatch, "/api/me", "updated", map[string]interface{}{"id": "1"})

	client := newTestClient(t, mock.URL())

	t.Run("name only", func(t *testing.T) {
		_, err := client.UpdateUser(context.Background(), "tok", models.UpdateUserRequest{Name: strPtr("Budi")})
		require.NoError(t, err)

		req := mock.LastRequest()
		assert.Contains(t, req.ContentType, "multipart/form-data")
		assert.Equal(t, map[string]string{"nama": "Budi"}, req.Form)
		assert.Empty(t, req.Files)
	})

	t.Run("photo and email", func(t *testing.T) {
		_, err := client.UpdateUser(context.Background(), "tok", models.UpdateUserRequest{
			Email: strPtr("new@mail.com"),
			Photo: &models.File{Name: "me.png", Content: strings.NewReader("png-bytes")},
		})
		require.NoError(t, err)

		req := mock.LastRequest()
		assert.Equal(t, map[string]string{"email": "new@mail.com"}, req.Form)
		assert.Equal(t, "me.png", req.Files["photo_url"])
		assert.Equal(t, []byte("png-bytes"), req.FileContents["photo_url"])
	})
}

func TestCreateProposal_Multipart(t *testing.T) {
	mock := testutil.NewMockAPI(t)
	mock.RespondEnvelope(http.MethodPost, "/api/{project_id}/proposal", "created", map[string]interface{}{"id": "pr1"})

	client := newTestClient(t, mock.URL())
	_, err := client.CreateProposal(context.Background(), "tok", "p1", models.ProposalUpload{
		Title:       "Judul",
		Description: "Isi",
		File:        &models.File{Name: "/tmp/proposal.pdf", Content: strings.NewReader("%PDF")},
	})
	require.NoError(t, err)

	req := mock.LastRequest()
	assert.Equal(t, "/api/p1/proposal", req.Path)
	assert.Equal(t, "Judul", req.Form["judul"])
	assert.Equal(t, "Isi", req.Form["deskripsi"])
	assert.Equal(t, "proposal.pdf", req.Files["file"])
}

func TestEncodeBody_MissingBody(t *testing.T) {
	_, err := encodeBody(Endpoints[OpLogin], Request{})
	assert.Error(t, err)

	_, err = encodeBody(Endpoints[OpUpdateUser], Request{})
	assert.Error(t, err)
}

// ============================================================================
// FAILURES
// ============================================================================

func TestCall_TransportFailure(t *testing.T) {
	client := newTestClient(t, closedServerURL(t))

	resp, err := client.ListProjects(context.Background(), "tok")
	require.Error(t, err)
	assert.Nil(t, resp)

	cerr := Classify(resp, err)
	assert.True(t, IsTransport(cerr))
	assert.True(t, strings.HasPrefix(cerr.Error(), "Network error: "))
	assert.Equal(t, int64(1), client.Metrics().Snapshot().TransportFailures)
}

func TestCall_ContextCancelled(t *testing.T) {
	mock := testutil.NewMockAPI(t)
	mock.Handle(http.MethodGet, "/api/projects", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	client := newTestClient(t, mock.URL())
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.ListProjects(ctx, "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestCall_MissingPathParam(t *testing.T) {
	mock := testutil.NewMockAPI(t)
	client := newTestClient(t, mock.URL())

	_, err := client.GetProject(context.Background(), "tok", "")
	assert.ErrorIs(t, err, ErrInvalidPathParam)
	assert.Equal(t, 0, mock.RequestCount())
}

func TestCall_DotSegmentNeverLeavesTheRoute(t *testing.T) {
	mock := testutil.NewMockAPI(t)
	mock.RespondEnvelope(http.MethodDelete, "/api/", "wiped", nil)
	client := newTestClient(t, mock.URL())

	_, err := client.DeleteProject(context.Background(), "tok", "..")
	assert.ErrorIs(t, err, ErrInvalidPathParam)
	assert.Equal(t, 0, mock.RequestCount())
}

// ============================================================================
// BREAKER
// ============================================================================

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseURL = closedServerURL(t)
	cfg.Breaker = BreakerConfig{Enabled: true, MaxFailures: 2, OpenTimeout: time.Minute}

	client, err := New(cfg)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := client.ListProjects(ctx, "tok")
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrCircuitOpen), "attempt %d", i)
	}

	_, err = client.ListProjects(ctx, "tok")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.True(t, IsTransport(Classify(nil, err)))
}

func TestBreaker_ServerErrorsCountButClientErrorsDoNot(t *testing.T) {
	mock := testutil.NewMockAPI(t)
	mock.Respond(http.MethodGet, "/api/projects", http.StatusInternalServerError, "")
	mock.Respond(http.MethodGet, "/api/me", http.StatusNotFound, "")

	cfg := DefaultConfig()
	cfg.BaseURL = mock.URL()
	cfg.Breaker = BreakerConfig{Enabled: true, MaxFailures: 3, OpenTimeout: time.Minute}
	client, err := New(cfg)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		resp, err := client.CurrentUser(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}

	for i := 0; i < 3; i++ {
		resp, err := client.ListProjects(ctx, "tok")
		require.NoError(t, err, "a 5xx is still a received response")
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	}

	_, err = client.ListProjects(ctx, "tok")
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 8, mock.RequestCount())
}

// ============================================================================
// LOGGING AND METRICS
// ============================================================================

func TestCall_LogsRedactedBodies(t *testing.T) {
	mock := testutil.NewMockAPI(t)
	mock.RespondEnvelope(http.MethodPost, "/api/login", "ok",
		map[string]interface{}{"token": "server-token", "user": map[string]interface{}{"id": "1"}})

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	client := newTestClient(t, mock.URL(), WithLogger(logger))
	_, err := client.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "hunter2"})
	require.NoError(t, err)

	logged := buf.String()
	assert.Contains(t, logged, "api request")
	assert.Contains(t, logged, "api response")
	assert.Contains(t, logged, "a@b.c")
	assert.NotContains(t, logged, "hunter2")
	assert.NotContains(t, logged, "server-token")
	assert.Contains(t, logged, redacted)
}

func TestMetrics_Record(t *testing.T) {
	m := NewMetrics()
	m.record(&Response{StatusCode: 200}, nil)
	m.record(&Response{StatusCode: 401}, nil)
	m.record(&Response{StatusCode: 404}, nil)
	m.record(nil, errors.New("reset"))

	snap := m.Snapshot()
	assert.Equal(t, int64(4), snap.RequestsSent)
	assert.Equal(t, int64(1), snap.TransportFailures)
	assert.Equal(t, int64(2), snap.HTTPFailures)
	assert.Equal(t, int64(1), snap.Unauthorized)
}

// ============================================================================
// DECODING
// ============================================================================

func TestDecode(t *testing.T) {
	t.Run("payload", func(t *testing.T) {
		resp := &Response{StatusCode: 200, Body: []byte(`{"message":"ok","data":{"id":"t1","deskripsi":"Sampling"}}`)}
		task, msg, err := DecodeData[models.Task](resp, nil)
		require.NoError(t, err)
		assert.Equal(t, "ok", msg)
		assert.Equal(t, "t1", task.ID)
	})

	t.Run("null data", func(t *testing.T) {
		resp := &Response{StatusCode: 200, Body: []byte(`{"message":"ok","data":null}`)}
		_, _, err := DecodeData[models.Task](resp, nil)
		assert.True(t, IsKind(err, KindEmptyBody))

		env, err := Decode[[]models.Task](resp, nil)
		require.NoError(t, err)
		assert.Nil(t, env.Data)
	})

	t.Run("malformed", func(t *testing.T) {
		resp := &Response{StatusCode: 200, Body: []byte(`{"message":`)}
		_, err := Decode[models.Task](resp, nil)
		assert.True(t, IsKind(err, KindInvalidBody))
	})

	t.Run("unit data", func(t *testing.T) {
		resp := &Response{StatusCode: 200, Body: []byte(`{"message":"Project deleted","data":true}`)}
		env, err := Decode[Unit](resp, nil)
		require.NoError(t, err)
		assert.Equal(t, "Project deleted", env.Message)
	})
}

func TestRedactJSON(t *testing.T) {
	out := redactJSON([]byte(`{"email":"x","password":"p","nested":{"token":"t"},"list":[{"password":"q"}]}`))
	assert.NotContains(t, out, `"p"`)
	assert.NotContains(t, out, `"t"`)
	assert.NotContains(t, out, `"q"`)
	assert.Contains(t, out, `"email":"x"`)

	assert.Equal(t, "plain text", redactJSON([]byte("plain text")))
	assert.True(t, strings.HasSuffix(redactJSON(bytes.Repeat([]byte("a"), maxLoggedBody+10)), "...(truncated)"))
}
