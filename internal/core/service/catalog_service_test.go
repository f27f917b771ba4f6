package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/luxurydeals/catalog-console/internal/core/domain"
	"github.com/luxurydeals/catalog-console/internal/core/ports"
)

type stubSource struct {
	listings []domain.Listing
	err      error
	calls    int
}

func (s *stubSource) Fetch(context.Context) ([]domain.Listing, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.listings, nil
}

func sampleListings() []domain.Listing {
	return []domain.Listing{
		{ID: 1, Title: "Submariner", Category: "Luxury Watches", OriginalPrice: 12000, FinalPrice: 9000, DiscountPercentage: 25},
		{ID: 3, Title: "Classic Flap", Category: "Designer Handbags", OriginalPrice: 9000, FinalPrice: 7200, DiscountPercentage: 20},
	}
}

func TestCatalogService_LoadFetchesOnce(t *testing.T) {
	source := &stubSource{listings: sampleListings()}
	svc := NewCatalogService(source, zerolog.Nop())
	ctx := context.Background()

	first, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(first))
	}

	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("expected a single fetch, got %d", source.calls)
	}
}

func TestCatalogService_LoadFailure(t *testing.T) {
	source := &stubSource{err: errors.New("connection refused")}
	svc := NewCatalogService(source, zerolog.Nop())

	_, err := svc.Load(context.Background())
	if !errors.Is(err, domain.ErrCatalogLoad) {
		t.Fatalf("expected ErrCatalogLoad, got %v", err)
	}

	// A failed fetch is not cached: the next Load retries the source.
	source.err = nil
	source.listings = sampleListings()
	listings, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if len(listings) != 2 || source.calls != 2 {
		t.Fatalf("retry did not refetch: listings=%d calls=%d", len(listings), source.calls)
	}
}

func TestCatalogService_SnapshotIsACopy(t *testing.T) {
	svc := NewCatalogService(&stubSource{listings: sampleListings()}, zerolog.Nop())
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	snap := svc.Snapshot()
	snap[0].Title = "mutated"

	if svc.Snapshot()[0].Title != "Submariner" {
		t.Fatalf("snapshot aliases internal state")
	}
}

func TestCatalogService_ReplaceAll(t *testing.T) {
	svc := NewCatalogService(&stubSource{}, zerolog.Nop())

	svc.ReplaceAll(sampleListings())
	if got := svc.Snapshot(); len(got) != 2 {
		t.Fatalf("expected 2 listings after replace, got %d", len(got))
	}

	// ReplaceAll marks the collection loaded; Load must not refetch over it.
	source := &stubSource{listings: nil}
	svc = NewCatalogService(source, zerolog.Nop())
	svc.ReplaceAll(sampleListings())
	listings, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(listings) != 2 || source.calls != 0 {
		t.Fatalf("load refetched over replaced collection")
	}
}

func TestCatalogService_SaveListingCreates(t *testing.T) {
	svc := NewCatalogService(&stubSource{}, zerolog.Nop())
	svc.ReplaceAll(sampleListings())

	created, err := svc.SaveListing(ports.SaveListingInput{
		Title:         "Aviators",
		Category:      "Designer Sunglasses",
		OriginalPrice: 200,
		FinalPrice:    150,
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	// Existing ids are [1,3], so the new listing gets 4.
	if created.ID != 4 {
		t.Fatalf("expected id 4, got %d", created.ID)
	}
	if created.DiscountPercentage != 25 {
		t.Fatalf("discount not derived: %d", created.DiscountPercentage)
	}
	if len(svc.Snapshot()) != 3 {
		t.Fatalf("listing not appended")
	}
}

func TestCatalogService_SaveListingUpdatesAndRecomputes(t *testing.T) {
	svc := NewCatalogService(&stubSource{}, zerolog.Nop())
	svc.ReplaceAll(sampleListings())

	updated, err := svc.SaveListing(ports.SaveListingInput{
		ID:            1,
		Title:         "Submariner Date",
		Category:      "Luxury Watches",
		OriginalPrice: 100,
		FinalPrice:    75,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.DiscountPercentage != 25 {
		t.Fatalf("expected recomputed discount 25, got %d", updated.DiscountPercentage)
	}

	// Zero original price clamps instead of dividing by zero.
	clamped, err := svc.SaveListing(ports.SaveListingInput{ID: 1, OriginalPrice: 0, FinalPrice: 50})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if clamped.DiscountPercentage != 0 {
		t.Fatalf("expected clamped discount 0, got %d", clamped.DiscountPercentage)
	}
}

func TestCatalogService_SaveListingMissing(t *testing.T) {
	svc := NewCatalogService(&stubSource{}, zerolog.Nop())
	svc.ReplaceAll(sampleListings())

	_, err := svc.SaveListing(ports.SaveListingInput{ID: 99, Title: "nope"})
	if !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestCatalogService_DeleteListing(t *testing.T) {
	svc := NewCatalogService(&stubSource{}, zerolog.Nop())
	svc.ReplaceAll(sampleListings())

	svc.DeleteListing(1)
	if got := svc.Snapshot(); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("unexpected collection after delete: %+v", got)
	}

	// Absent id is a silent no-op.
	svc.DeleteListing(99)
	if len(svc.Snapshot()) != 1 {
		t.Fatalf("no-op delete changed the collection")
	}
}

func TestCatalogService_ExportSnapshot(t *testing.T) {
	svc := NewCatalogService(&stubSource{}, zerolog.Nop())
	svc.ReplaceAll(sampleListings())

	data, err := svc.ExportSnapshot()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var decoded []domain.Listing
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0].ID != 1 {
		t.Fatalf("export content mismatch: %+v", decoded)
	}

	// Pretty-printed, ready to drop back at the origin path.
	if data[0] != '[' || !json.Valid(data) || len(data) < 3 || data[1] != '\n' {
		t.Fatalf("expected indented array output, got %q", data[:min(len(data), 16)])
	}
}
