package ports

import (
	"context"

	"github.com/promptvault/prompt-library/internal/core/domain"
)

// SessionService manages the single authenticated session and the credential
// registry behind it.
//
// Login and Register block for a configured latency before resolving, keeping
// the remote-call boundary of a real identity provider; once invoked they
// always run to completion. Both return the secret-stripped Principal on
// success and a recoverable sentinel error (domain.ErrInvalidCredentials,
// domain.ErrEmailTaken) on failure, with no state change.
type SessionService interface {
	Login(ctx context.Context, email, secret string) (*domain.Principal, error)
	Register(ctx context.Context, email, secret, name string) (*domain.Principal, error)
	// Logout clears the current principal and removes its snapshot. The
	// registry snapshot is untouched. Logging out of an unauthenticated
	// session is a no-op.
	Logout(ctx context.Context)

	// Load hydrates the principal and the registry from storage. Idempotent;
	// missing or corrupt snapshots leave the seeded defaults in place.
	Load(ctx context.Context) error

	IsAuthenticated() bool
	// Current returns the authenticated principal, or nil.
	Current() *domain.Principal
}
