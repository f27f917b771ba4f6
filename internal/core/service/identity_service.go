package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/luxurydeals/catalog-console/internal/core/domain"
	"github.com/luxurydeals/catalog-console/internal/core/ports"
)

// usersKey is the store key for the full account collection. The name is
// kept from the original profile store format.
const usersKey = "luxury_deals_users"

// Bootstrap credentials written on first ever run. A convenience for a
// fresh profile, not a security boundary.
const (
	seedUsername = "admin"
	seedPassword = "admin123"
	seedEmail    = "admin@luxurydeals.com"
)

// IdentityService implements ports.IdentityStore over the key-value store.
// Every operation reads the whole collection, mutates in memory, and writes
// the whole collection back. Two concurrent writers can overwrite each other
// at full-collection granularity; single-profile use is a standing
// precondition, not an enforced invariant.
type IdentityService struct {
	store ports.Store
	log   zerolog.Logger
}

func NewIdentityService(store ports.Store, log zerolog.Logger) *IdentityService {
	return &IdentityService{store: store, log: log}
}

// Seed writes the default admin account, only when no collection has ever
// been stored. Called explicitly from startup wiring rather than hidden in a
// getter.
func (s *IdentityService) Seed(ctx context.Context) error {
	_, ok, err := s.store.Get(ctx, usersKey)
	if err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}
	if ok {
		return nil
	}

	seed := []domain.Account{{
		ID:        1,
		Username:  seedUsername,
		Password:  seedPassword,
		Email:     seedEmail,
		Role:      domain.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}}
	if err := s.store.Set(ctx, usersKey, seed); err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}

	s.log.Info().Str("username", seedUsername).Msg("seeded bootstrap admin account")
	return nil
}

// ListAll returns the account collection with secrets present. An absent key
// is an empty collection, not an error.
func (s *IdentityService) ListAll(ctx context.Context) ([]domain.Account, error) {
	return s.load(ctx)
}

// Create appends a new account with id = max(existing)+1 (minimum 1) and the
// creation time stamped once. Username uniqueness is intentionally not
// enforced; at login the first match wins.
func (s *IdentityService) Create(ctx context.Context, input ports.CreateAccountInput) (domain.Account, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	nextID := 1
	for _, a := range accounts {
		if a.ID >= nextID {
			nextID = a.ID + 1
		}
	}

	account := domain.Account{
		ID:        nextID,
		Username:  input.Username,
		Password:  input.Password,
		Email:     input.Email,
		Role:      input.Role,
		CreatedAt: time.Now().UTC(),
	}

	accounts = append(accounts, account)
	if err := s.store.Set(ctx, usersKey, accounts); err != nil {
		return domain.Account{}, fmt.Errorf("persist accounts: %w", err)
	}

	s.log.Info().Int("id", account.ID).Str("username", account.Username).Str("role", account.Role).Msg("account created")
	return account, nil
}

// Update shallow-merges the non-nil fields of input into the matching
// record. CreatedAt is immutable and never touched.
func (s *IdentityService) Update(ctx context.Context, id int, input ports.UpdateAccountInput) (domain.Account, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	for i := range accounts {
		if accounts[i].ID != id {
			continue
		}
		if input.Username != nil {
			accounts[i].Username = *input.Username
		}
		if input.Password != nil {
			accounts[i].Password = *input.Password
		}
		if input.Email != nil {
			accounts[i].Email = *input.Email
		}
		if input.Role != nil {
			accounts[i].Role = *input.Role
		}
		if err := s.store.Set(ctx, usersKey, accounts); err != nil {
			return domain.Account{}, fmt.Errorf("persist accounts: %w", err)
		}
		return accounts[i], nil
	}

	return domain.Account{}, domain.ErrAccountNotFound
}

// Remove filters the account out and persists. Removing an absent id leaves
// the collection unchanged and still succeeds.
func (s *IdentityService) Remove(ctx context.Context, id int) error {
	accounts, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}

	if err := s.store.Set(ctx, usersKey, kept); err != nil {
		return fmt.Errorf("persist accounts: %w", err)
	}
	return nil
}

func (s *IdentityService) load(ctx context.Context) ([]domain.Account, error) {
	raw, ok, err := s.store.Get(ctx, usersKey)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var accounts []domain.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptRecord, usersKey, err)
	}
	return accounts, nil
}
