package auth

import (
	"context"
	"errors"

	"github.com/sewakita/rentweb/internal/apiclient"
	"github.com/sewakita/rentweb/internal/models"
)

// ErrNoToken means the backend accepted the credentials but returned no
// access token; treated as a failed login.
var ErrNoToken = errors.New("auth: empty access token in response")

// Service exchanges credentials with the backend auth endpoints.
type Service struct {
	api *apiclient.Client
}

// NewService creates the auth service.
func NewService(api *apiclient.Client) *Service {
	return &Service{api: api}
}

// Login exchanges credentials for a bearer token and profile.
func (s *Service) Login(ctx context.Context, dto *LoginDTO) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.api.PostJSON(ctx, "/auth/login", "", dto, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, ErrNoToken
	}
	return &resp, nil
}

// Register creates an account and returns the issued token when the backend
// logs the new user straight in.
func (s *Service) Register(ctx context.Context, dto *RegisterDTO) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.api.PostJSON(ctx, "/auth/register", "", dto, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout notifies the backend. Best-effort: the local session is discarded
// regardless of what the server answers.
func (s *Service) Logout(ctx context.Context, token string) {
	_ = s.api.PostJSON(ctx, "/auth/logout", token, nil, nil)
}
