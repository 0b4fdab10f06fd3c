package ports

import (
	"context"

	"github.com/shopease/console-gateway/internal/core/domain"
)

// TokenPair is the credential pair issued by the backend on login.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// BackendClient is the remote REST backend the gateway authenticates against.
// The backend re-verifies the token signature and role on every call; the
// gateway never treats its own decoding as authoritative.
type BackendClient interface {
	// Login exchanges credentials for a token pair via POST /v1/Auth/login.
	Login(ctx context.Context, email, password string) (TokenPair, error)
	// FetchProfile resolves the bearer token to a full user profile via
	// GET /v1/Auth/me.
	FetchProfile(ctx context.Context, token string) (*domain.UserProfile, error)
}
