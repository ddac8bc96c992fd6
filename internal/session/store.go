package session

import "context"

// Package session holds the ephemeral admin authentication state: a keyed
// flag store (token -> logged-in) plus the signed-cookie token codec. Session
// state is never written to durable storage.

// Store maps opaque session tokens to the admin flag. Implementations expire
// entries after the configured TTL; Destroy is idempotent.
type Store interface {
	// Create establishes a new authenticated session and returns its token.
	Create(ctx context.Context) (string, error)

	// Valid reports whether token marks an authenticated session. Lookup
	// failures count as not authenticated.
	Valid(ctx context.Context, token string) bool

	// Destroy removes the session; destroying an unknown token is a no-op.
	Destroy(ctx context.Context, token string) error
}
