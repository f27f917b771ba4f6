package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/luxurydeals/catalog-console/internal/core/domain"
	"github.com/luxurydeals/catalog-console/internal/core/ports"
)

// CatalogService holds the in-memory listing collection fetched once from the
// catalog document. Admin edits mutate the working copy only; persistence
// back to the origin happens solely through the explicit export.
//
// The mutex exists because the HTTP collaborator serves requests
// concurrently; the original single-tab design had no concurrent callers.
type CatalogService struct {
	source ports.CatalogSource
	log    zerolog.Logger

	mu       sync.RWMutex
	loaded   bool
	listings []domain.Listing
}

func NewCatalogService(source ports.CatalogSource, log zerolog.Logger) *CatalogService {
	return &CatalogService{source: source, log: log}
}

// Load fetches the catalog document on first call and caches the result for
// the process lifetime. A failed fetch is reported as domain.ErrCatalogLoad
// and not cached, so the next call retries.
func (s *CatalogService) Load(ctx context.Context) ([]domain.Listing, error) {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return cloneListings(s.listings), nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return cloneListings(s.listings), nil
	}

	listings, err := s.source.Fetch(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("catalog fetch failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogLoad, err)
	}

	s.listings = listings
	s.loaded = true
	s.log.Info().Int("listings", len(listings)).Msg("catalog loaded")
	return cloneListings(s.listings), nil
}

// Snapshot returns a copy of the current working collection without touching
// the source. Before the first successful Load it is empty.
func (s *CatalogService) Snapshot() []domain.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneListings(s.listings)
}

// ReplaceAll swaps the working collection. Id uniqueness is the caller's
// responsibility; the repository does not deduplicate.
func (s *CatalogService) ReplaceAll(listings []domain.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = cloneListings(listings)
	s.loaded = true
}

// ExportSnapshot renders the full working collection pretty-printed, in the
// exact shape of the origin document. Placing the download back at the
// catalog source path is the system's only commit mechanism.
func (s *CatalogService) ExportSnapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.MarshalIndent(s.listings, "", "  ")
}

// SaveListing creates (input.ID == 0) or updates a listing in the working
// collection. The discount percentage is always recomputed from the prices;
// the form never supplies it.
func (s *CatalogService) SaveListing(input ports.SaveListingInput) (domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing := domain.Listing{
		ID:                 input.ID,
		Title:              input.Title,
		Description:        input.Description,
		OriginalPrice:      input.OriginalPrice,
		FinalPrice:         input.FinalPrice,
		DiscountPercentage: domain.ComputeDiscount(input.OriginalPrice, input.FinalPrice),
		Category:           input.Category,
		DealType:           input.DealType,
		ProductURL:         input.ProductURL,
		Brand:              input.Brand,
		Condition:          input.Condition,
		Featured:           input.Featured,
		ImageURL:           input.ImageURL,
	}

	if input.ID == 0 {
		listing.ID = nextListingID(s.listings)
		s.listings = append(s.listings, listing)
		s.log.Info().Int("id", listing.ID).Str("title", listing.Title).Msg("listing created")
		return listing, nil
	}

	for i := range s.listings {
		if s.listings[i].ID == input.ID {
			s.listings[i] = listing
			s.log.Info().Int("id", listing.ID).Msg("listing updated")
			return listing, nil
		}
	}
	return domain.Listing{}, domain.ErrListingNotFound
}

// DeleteListing filters the listing out of the working collection. An absent
// id is a silent no-op.
func (s *CatalogService) DeleteListing(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.listings[:0]
	for _, l := range s.listings {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	s.listings = kept
}

func nextListingID(listings []domain.Listing) int {
	next := 1
	for _, l := range listings {
		if l.ID >= next {
			next = l.ID + 1
		}
	}
	return next
}

func cloneListings(listings []domain.Listing) []domain.Listing {
	out := make([]domain.Listing, len(listings))
	copy(out, listings)
	return out
}
