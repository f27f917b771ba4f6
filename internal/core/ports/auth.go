package ports

import (
	"context"

	"github.com/luxurydeals/catalog-console/internal/core/domain"
)

// AuthService maintains the single current-session slot and resolves
// role-based permissions. States are Anonymous and Authenticated, nothing in
// between.
type AuthService interface {
	// Login validates the credentials, persists the session with the secret
	// stripped, and returns a bearer token for the transport layer. Any
	// mismatch is domain.ErrInvalidCredentials with no further detail.
	Login(ctx context.Context, username, password string) (string, *domain.Session, error)
	// Logout clears the session slot. Idempotent.
	Logout(ctx context.Context) error
	// Resume rehydrates the persisted session. A corrupt record is discarded
	// and (nil, nil) returned; this is never fatal.
	Resume(ctx context.Context) (*domain.Session, error)
	// HasPermission resolves the static role table. A nil session is denied
	// every permission.
	HasPermission(session *domain.Session, p domain.Permission) bool
}
