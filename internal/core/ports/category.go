package ports

import (
	"context"

	"github.com/luxurydeals/catalog-console/internal/core/domain"
)

// SaveCategoryInput carries the editable category fields.
type SaveCategoryInput struct {
	Name        string
	Description string
}

// CategoryStore owns the persisted category records, with the same
// full-collection read/mutate/write idiom as the identity store.
type CategoryStore interface {
	Seed(ctx context.Context) error
	ListAll(ctx context.Context) ([]domain.CategoryRecord, error)
	Create(ctx context.Context, input SaveCategoryInput) (domain.CategoryRecord, error)
	Update(ctx context.Context, id int, input SaveCategoryInput) (domain.CategoryRecord, error)
	// Remove deletes the record unless its cached product count is non-zero
	// (domain.ErrCategoryInUse). Removing an absent id succeeds.
	Remove(ctx context.Context, id int) error
	// RefreshCounts recomputes each record's cached product count from the
	// given catalog snapshot and persists the result. Must run whenever the
	// catalog changes.
	RefreshCounts(ctx context.Context, listings []domain.Listing) error
}
