package ports

import (
	"context"

	"github.com/shopease/console-gateway/internal/core/domain"
)

// SessionService owns the gateway's single session and all transitions on it.
type SessionService interface {
	// Load materializes a session from the token store: read, decode, check
	// expiry, fetch profile. Concurrent calls collapse into one in-flight load.
	Load(ctx context.Context) (domain.Session, error)
	// Login authenticates against the backend, persists the issued token pair,
	// and publishes a valid session.
	Login(ctx context.Context, email, password string) (domain.Session, error)
	// Logout clears the token store and resets the session. Any in-flight load
	// started before the logout discards its result.
	Logout(ctx context.Context) error
	// Current returns a snapshot of the session as of the most recently
	// completed transition.
	Current() domain.Session
}
