package ports

import (
	"context"

	"github.com/luxurydeals/catalog-console/internal/core/domain"
)

// CreateAccountInput carries the fields supplied when adding an account.
type CreateAccountInput struct {
	Username string
	Password string
	Email    string
	Role     string
}

// UpdateAccountInput is a shallow partial update: nil fields are left
// untouched on the stored record.
type UpdateAccountInput struct {
	Username *string
	Password *string
	Email    *string
	Role     *string
}

// IdentityStore owns the persisted account collection. Every operation reads
// the full collection, mutates it in memory, and writes it back whole; there
// is no partial or append persistence.
type IdentityStore interface {
	// Seed writes the bootstrap admin account, only when no collection has
	// ever been stored. Invoked explicitly at startup.
	Seed(ctx context.Context) error
	// ListAll returns accounts with secrets present. Use Account.Sanitize
	// for display.
	ListAll(ctx context.Context) ([]domain.Account, error)
	// Create assigns id = max(existing)+1 (minimum 1), stamps the creation
	// time, and persists. Duplicate usernames are accepted.
	Create(ctx context.Context, input CreateAccountInput) (domain.Account, error)
	Update(ctx context.Context, id int, input UpdateAccountInput) (domain.Account, error)
	// Remove filters the account out. Removing an absent id succeeds.
	Remove(ctx context.Context, id int) error
}
