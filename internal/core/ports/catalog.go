package ports

import (
	"context"

	"github.com/luxurydeals/catalog-console/internal/core/domain"
)

// CatalogSource fetches the catalog document from its fixed, well-known
// origin. The fetch happens read-only, once per process.
type CatalogSource interface {
	Fetch(ctx context.Context) ([]domain.Listing, error)
}

// SaveListingInput carries the editable fields of a listing from the admin
// console. ID zero means create; the discount percentage is always derived
// from the two prices, never taken from the form.
type SaveListingInput struct {
	ID            int
	Title         string
	Description   string
	OriginalPrice float64
	FinalPrice    float64
	Category      string
	DealType      string
	ProductURL    string
	Brand         string
	Condition     string
	Featured      bool
	ImageURL      string
}

// CatalogService owns the in-memory listing collection for the lifetime of
// one process. Admin edits mutate the working copy only; the sole persistence
// path is the explicit export.
type CatalogService interface {
	// Load fetches and caches the catalog on first call; later calls return
	// the cached snapshot. A failed fetch is not cached, so a later call
	// retries.
	Load(ctx context.Context) ([]domain.Listing, error)
	// Snapshot returns a copy of the current working collection without
	// triggering a fetch.
	Snapshot() []domain.Listing
	// ReplaceAll swaps the working collection. Callers guarantee id
	// uniqueness; the repository does not deduplicate.
	ReplaceAll(listings []domain.Listing)
	// ExportSnapshot renders the full working collection as a pretty-printed
	// JSON document, ready to be placed back at the catalog source path.
	ExportSnapshot() ([]byte, error)
	SaveListing(input SaveListingInput) (domain.Listing, error)
	// DeleteListing removes the listing with the given id. Deleting an
	// absent id is a silent no-op.
	DeleteListing(id int)
}
