package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/luxurydeals/catalog-console/internal/core/domain"
	"github.com/luxurydeals/catalog-console/internal/core/ports"
)

// categoriesKey is the store key for the category record collection.
const categoriesKey = "luxury_deals_categories"

// seedCategories is written on first ever run, matching the console's
// original starter set.
var seedCategories = []domain.CategoryRecord{
	{ID: 1, Name: "Luxury Watches", Description: "Premium timepieces from top brands"},
	{ID: 2, Name: "Designer Handbags", Description: "Luxury handbags and accessories"},
	{ID: 3, Name: "Designer Sunglasses", Description: "High-end eyewear"},
	{ID: 4, Name: "Fine Jewelry", Description: "Precious jewelry and accessories"},
	{ID: 5, Name: "Designer Shoes", Description: "Luxury footwear"},
}

// CategoryService implements ports.CategoryStore with the same
// full-collection read/mutate/write idiom as the identity store. The cached
// product counts are refreshed from the catalog, never maintained
// incrementally.
type CategoryService struct {
	store ports.Store
	log   zerolog.Logger
}

func NewCategoryService(store ports.Store, log zerolog.Logger) *CategoryService {
	return &CategoryService{store: store, log: log}
}

// Seed writes the starter records when the key has never been stored.
func (s *CategoryService) Seed(ctx context.Context) error {
	_, ok, err := s.store.Get(ctx, categoriesKey)
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if ok {
		return nil
	}
	if err := s.store.Set(ctx, categoriesKey, seedCategories); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	s.log.Info().Int("categories", len(seedCategories)).Msg("seeded category records")
	return nil
}

func (s *CategoryService) ListAll(ctx context.Context) ([]domain.CategoryRecord, error) {
	return s.load(ctx)
}

// Create appends a record with id = max(existing)+1 and a zero product count
// until the next refresh.
func (s *CategoryService) Create(ctx context.Context, input ports.SaveCategoryInput) (domain.CategoryRecord, error) {
	records, err := s.load(ctx)
	if err != nil {
		return domain.CategoryRecord{}, err
	}

	nextID := 1
	for _, r := range records {
		if r.ID >= nextID {
			nextID = r.ID + 1
		}
	}

	record := domain.CategoryRecord{ID: nextID, Name: input.Name, Description: input.Description}
	records = append(records, record)
	if err := s.store.Set(ctx, categoriesKey, records); err != nil {
		return domain.CategoryRecord{}, fmt.Errorf("persist categories: %w", err)
	}

	s.log.Info().Int("id", record.ID).Str("name", record.Name).Msg("category created")
	return record, nil
}

func (s *CategoryService) Update(ctx context.Context, id int, input ports.SaveCategoryInput) (domain.CategoryRecord, error) {
	records, err := s.load(ctx)
	if err != nil {
		return domain.CategoryRecord{}, err
	}

	for i := range records {
		if records[i].ID != id {
			continue
		}
		records[i].Name = input.Name
		records[i].Description = input.Description
		if err := s.store.Set(ctx, categoriesKey, records); err != nil {
			return domain.CategoryRecord{}, fmt.Errorf("persist categories: %w", err)
		}
		return records[i], nil
	}

	return domain.CategoryRecord{}, domain.ErrCategoryNotFound
}

// Remove deletes the record unless listings are still counted against it.
// The count consulted is the cached one, so callers should refresh counts
// before destructive decisions. Removing an absent id succeeds.
func (s *CategoryService) Remove(ctx context.Context, id int) error {
	records, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.CategoryRecord, 0, len(records))
	for _, r := range records {
		if r.ID == id {
			if r.ProductCount > 0 {
				return fmt.Errorf("%w: %q has %d products", domain.ErrCategoryInUse, r.Name, r.ProductCount)
			}
			continue
		}
		kept = append(kept, r)
	}

	if err := s.store.Set(ctx, categoriesKey, kept); err != nil {
		return fmt.Errorf("persist categories: %w", err)
	}
	return nil
}

// RefreshCounts recomputes every cached product count from the given catalog
// snapshot and persists the collection. Categories absent from the snapshot
// drop to zero.
func (s *CategoryService) RefreshCounts(ctx context.Context, listings []domain.Listing) error {
	records, err := s.load(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	counts := make(map[string]int, len(records))
	for _, l := range listings {
		counts[l.Category]++
	}
	for i := range records {
		records[i].ProductCount = counts[records[i].Name]
	}

	if err := s.store.Set(ctx, categoriesKey, records); err != nil {
		return fmt.Errorf("persist categories: %w", err)
	}
	return nil
}

func (s *CategoryService) load(ctx context.Context) ([]domain.CategoryRecord, error) {
	raw, ok, err := s.store.Get(ctx, categoriesKey)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var records []domain.CategoryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptRecord, categoriesKey, err)
	}
	return records, nil
}
