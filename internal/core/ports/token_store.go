package ports

import "context"

// TokenStore persists the operator's credential pair across gateway restarts.
// Writes and clears are transactional: both the access token and the refresh
// token are written or removed together, never one without the other.
type TokenStore interface {
	// Save stores the token pair atomically.
	Save(ctx context.Context, token, refreshToken string) error
	// Load returns the stored pair, or domain.ErrTokenMissing when absent.
	Load(ctx context.Context) (token, refreshToken string, err error)
	// Clear removes both keys atomically. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
