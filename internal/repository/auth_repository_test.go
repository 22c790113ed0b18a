package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbtb-research/riset/internal/api"
	"github.com/tbtb-research/riset/internal/models"
)

func TestLogin_Success(t *testing.T) {
	mock, repo, _ := setupRepo(t)
	mock.RespondEnvelope(http.MethodPost, "/api/login", "Login berhasil", map[string]interface{}{
		"token": "abc",
		"user":  map[string]interface{}{"id": "1", "email": "a@x.com", "nama": "A"},
	})

	session, err := repo.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, &models.Session{Token: "abc", UserID: "1"}, session)

	body := mock.LastRequest().JSON(t)
	assert.Equal(t, "a@x.com", body["email"])
	assert.Equal(t, "pw", body["password"])
}

func TestLogin_NullTokenIsInvalidCredentials(t *testing.T) {
	mock, repo, _ := setupRepo(t)
	mock.RespondEnvelope(http.MethodPost, "/api/login", "ok", map[string]interface{}{"token": nil})

	_, err := repo.Login(context.Background(), "a@x.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"401", http.StatusUnauthorized, `{"message":"wrong password"}`, ErrInvalidCredentials},
		{"404", http.StatusNotFound, `{"message":"user not found"}`, ErrInvalidCredentials},
		{"500", http.StatusInternalServerError, "", ErrServerUnavailable},
		{"503", http.StatusServiceUnavailable, "", ErrServerUnavailable},
		{"400", http.StatusBadRequest, `{"message":"bad"}`, ErrLoginFailed},
		{"2xx without body", http.StatusOK, "", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, repo, inv := setupRepo(t)
			mock.Respond(http.MethodPost, "/api/login", tt.status, tt.body)

			_, err := repo.Login(context.Background(), "a@x.com", "pw")
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, int32(0), inv.calls.Load())
		})
	}
}

func TestLogin_TransportFailureIsServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL + "/"
	srv.Close()

	client, err := api.New(api.Config{BaseURL: baseURL})
	require.NoError(t, err)
	repo := NewAuthRepo(client, nil, nil)

	_, err = repo.Login(context.Background(), "a@x.com", "pw")
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.True(t, api.IsTransport(err))
}

func TestLogin_ValidatesBeforeCalling(t *testing.T) {
	mock, repo, _ := setupRepo(t)

	_, err := repo.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, models.ErrEmptyEmail)

	_, err = repo.Login(context.Background(), "a@x.com", "")
	assert.ErrorIs(t, err, models.ErrEmptyPassword)

	assert.Equal(t, 0, mock.RequestCount())
}

func TestRegister(t *testing.T) {
	t.Run("with token", func(t *testing.T) {
		mock, repo, _ := setupRepo(t)
		mock.RespondEnvelope(http.MethodPost, "/api/register", "Registered", map[string]interface{}{
			"token": "tok",
			"user":  map[string]interface{}{"id": "7", "email": "b@x.com", "nama": "Budi"},
		})

		result, err := repo.Register(context.Background(), models.RegisterRequest{Name: "Budi", Email: "b@x.com", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "Budi", result.User.Name)
		require.NotNil(t, result.Session)
		assert.Equal(t, "7", result.Session.UserID)

		body := mock.LastRequest().JSON(t)
		assert.Equal(t, "Budi", body["nama"])
	})

	t.Run("without token", func(t *testing.T) {
		mock, repo, _ := setupRepo(t)
		mock.RespondEnvelope(http.MethodPost, "/api/register", "Registered", map[string]interface{}{
			"user": map[string]interface{}{"id": "7"},
		})

		result, err := repo.Register(context.Background(), models.RegisterRequest{Name: "Budi", Email: "b@x.com", Password: "pw"})
		require.NoError(t, err)
		assert.Nil(t, result.Session)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock, repo, _ := setupRepo(t)
		mock.Respond(http.MethodPost, "/api/register", http.StatusConflict, `{"message":"Email already registered"}`)

		_, err := repo.Register(context.Background(), models.RegisterRequest{Name: "Budi", Email: "b@x.com", Password: "pw"})
		apiErr := requireAPIError(t, err)
		assert.Equal(t, "Email already registered", apiErr.Message)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, repo, _ := setupRepo(t)
		_, err := repo.Register(context.Background(), models.RegisterRequest{Name: "Budi", Email: "nope", Password: "pw"})
		assert.ErrorIs(t, err, models.ErrInvalidEmail)
	})
}

func TestGetCurrentUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock, repo, _ := setupRepo(t)
		mock.RespondEnvelope(http.MethodGet, "/api/me", "ok", map[string]interface{}{"id": "1", "email": "a@x.com", "nama": "A"})

		user, err := repo.GetCurrentUser(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, "A", user.Name)
		assert.Equal(t, "Bearer abc", mock.LastRequest().Authorization)
	})

	t.Run("401 invalidates the session", func(t *testing.T) {
		mock, repo, inv := setupRepo(t)
		mock.Respond(http.MethodGet, "/api/me", http.StatusUnauthorized, "")

		_, err := repo.GetCurrentUser(context.Background(), "expired")
		apiErr := requireAPIError(t, err)
		assert.Equal(t, "Invalid or expired token", err.Error())
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, int32(1), inv.calls.Load())
	})

	t.Run("403", func(t *testing.T) {
		mock, repo, inv := setupRepo(t)
		mock.Respond(http.MethodGet, "/api/me", http.StatusForbidden, "")

		_, err := repo.GetCurrentUser(context.Background(), "abc")
		assert.Equal(t, "Access denied", err.Error())
		assert.Equal(t, int32(0), inv.calls.Load())
	})

	t.Run("other status", func(t *testing.T) {
		mock, repo, _ := setupRepo(t)
		mock.Respond(http.MethodGet, "/api/me", http.StatusBadGateway, "")

		_, err := repo.GetCurrentUser(context.Background(), "abc")
		assert.Equal(t, "Error: 502 Bad Gateway", err.Error())
	})

	t.Run("invalidator failure still returns the api error", func(t *testing.T) {
		mock, repo, inv := setupRepo(t)
		inv.err = errors.New("disk full")
		mock.Respond(http.MethodGet, "/api/me", http.StatusUnauthorized, "")

		_, err := repo.GetCurrentUser(context.Background(), "expired")
		assert.True(t, api.IsUnauthorized(err))
	})
}

func TestUpdateUser(t *testing.T) {
	mock, repo, _ := setupRepo(t)
	mock.RespondEnvelope(http.MethodPatch, "/api/me", "updated", map[string]interface{}{"id": "1", "nama": "New"})

	name := "New"
	user, err := repo.UpdateUser(context.Background(), "abc", models.UpdateUserRequest{
		Name:  &name,
		Photo: &models.File{Name: "avatar.jpg", Content: strings.NewReader("jpg")},
	})
	require.NoError(t, err)
	assert.Equal(t, "New", user.Name)

	req := mock.LastRequest()
	assert.Equal(t, map[string]string{"nama": "New"}, req.Form)
	assert.Equal(t, "avatar.jpg", req.Files["photo_url"])

	_, err = repo.UpdateUser(context.Background(), "abc", models.UpdateUserRequest{})
	assert.ErrorIs(t, err, models.ErrNothingToUpdate)

	_, err = repo.UpdateUser(context.Background(), "abc", models.UpdateUserRequest{
		Photo: &models.File{Name: "avatar.jpg"},
	})
	assert.ErrorIs(t, err, models.ErrEmptyPhoto)
	assert.Equal(t, 1, mock.RequestCount())
}

func TestSessionFrom(t *testing.T) {
	empty := ""
	tok := "t"
	assert.Nil(t, sessionFrom(nil))
	assert.Nil(t, sessionFrom(&models.AuthData{}))
	assert.Nil(t, sessionFrom(&models.AuthData{Token: &empty}))
	assert.Equal(t, &models.Session{Token: "t"}, sessionFrom(&models.AuthData{Token: &tok}))
}

