package repository

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tbtb-research/riset/internal/api"
	"github.com/tbtb-research/riset/internal/models"
)

// AuthRepo handles login, registration and the signed-in user's profile.
type AuthRepo struct {
	base
}

// NewAuthRepo creates an AuthRepo
func NewAuthRepo(client *api.Client, invalidator SessionInvalidator, logger *slog.Logger) *AuthRepo {
	return &AuthRepo{base: newBase(client, invalidator, logger)}
}

// Login exchanges credentials for a session.
// 401 and 404 mean invalid credentials, 5xx and transport failures mean the
// server is unavailable, anything else is ErrLoginFailed. A 2xx without a
// token is also treated as invalid credentials.
func (r *AuthRepo) Login(ctx context.Context, email, password string) (*models.Session, error) {
	req := models.LoginRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := r.client.Login(ctx, req)
	if err != nil {
		r.logger.Warn("login transport failure", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrServerUnavailable, api.Classify(nil, err))
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusNotFound:
		return nil, ErrInvalidCredentials
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: %w", ErrServerUnavailable, api.Classify(resp, nil))
	case !resp.IsSuccessful():
		return nil, fmt.Errorf("%w: %w", ErrLoginFailed, api.Classify(resp, nil))
	}

	env, err := api.Decode[models.AuthData](resp, nil)
	if err != nil {
		if api.IsKind(err, api.KindEmptyBody) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	session := sessionFrom(env.Data)
	if session == nil {
		return nil, ErrInvalidCredentials
	}

	r.logger.Info("login succeeded", "user_id", session.UserID)
	return session, nil
}

// Register creates an account. The session is set only when the server
// hands back a token with the new user.
func (r *AuthRepo) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := r.client.Register(ctx, req)
	data, err := payload[models.AuthData](&r.base, "register", resp, err)
	if err != nil {
		return nil, err
	}

	return &models.AuthResult{
		User:    data.User,
		Session: sessionFrom(data),
	}, nil
}

// GetCurrentUser fetches the profile behind token
func (r *AuthRepo) GetCurrentUser(ctx context.Context, token string) (*models.User, error) {
	resp, err := r.client.CurrentUser(ctx, token)
	return payload[models.User](&r.base, "current_user", resp, err)
}

// UpdateUser sends only the provided fields as a multipart form
func (r *AuthRepo) UpdateUser(ctx context.Context, token string, req models.UpdateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := r.client.UpdateUser(ctx, token, req)
	return payload[models.User](&r.base, "update_user", resp, err)
}

// sessionFrom builds a session from auth data, or nil without a token
func sessionFrom(data *models.AuthData) *models.Session {
	if data == nil || data.Token == nil || *data.Token == "" {
		return nil
	}
	session := &models.Session{Token: *data.Token}
	if data.User != nil {
		session.UserID = data.User.ID
	}
	return session
}
