package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/luxurydeals/catalog-console/internal/core/domain"
	"github.com/luxurydeals/catalog-console/internal/core/ports"
)

// sessionKey is the store key for the single current-session slot.
const sessionKey = "luxury_deals_auth"

// AuthService validates credentials against the identity store, owns the
// persisted session slot, and resolves role permissions. The bearer token it
// issues only identifies the caller between HTTP requests; the session slot
// stays the source of truth and logout clears it.
type AuthService struct {
	identity  ports.IdentityStore
	store     ports.Store
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(identity ports.IdentityStore, store ports.Store, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		identity:  identity,
		store:     store,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Login scans the account collection for the first record matching both
// username and password verbatim. Any mismatch, including an empty
// collection, is domain.ErrInvalidCredentials with no detail on the cause.
// On success the session is persisted with the secret stripped.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Session, error) {
	accounts, err := s.identity.ListAll(ctx)
	if err != nil {
		return "", nil, err
	}

	for _, a := range accounts {
		if a.Username != username || a.Password != password {
			continue
		}

		session := &domain.Session{User: a.Sanitize()}
		if err := s.store.Set(ctx, sessionKey, session); err != nil {
			return "", nil, fmt.Errorf("persist session: %w", err)
		}

		token, err := s.generateToken(session.User)
		if err != nil {
			return "", nil, err
		}

		s.log.Info().Str("username", a.Username).Str("role", a.Role).Msg("login succeeded")
		return token, session, nil
	}

	s.log.Warn().Str("username", username).Msg("login rejected")
	return "", nil, domain.ErrInvalidCredentials
}

// Logout clears the persisted session slot. Calling it while anonymous is a
// no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.Remove(ctx, sessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Resume rehydrates the persisted session on process start. A corrupt record
// is discarded along with its key and (nil, nil) is returned; the caller
// lands in the anonymous state.
func (s *AuthService) Resume(ctx context.Context) (*domain.Session, error) {
	raw, ok, err := s.store.Get(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		s.log.Warn().Err(err).Msg("discarding corrupt session record")
		if removeErr := s.store.Remove(ctx, sessionKey); removeErr != nil {
			return nil, fmt.Errorf("discard corrupt session: %w", removeErr)
		}
		return nil, nil
	}
	return &session, nil
}

// HasPermission resolves the static role→permission table. A nil session
// (anonymous caller) is denied everything.
func (s *AuthService) HasPermission(session *domain.Session, p domain.Permission) bool {
	if session == nil {
		return false
	}
	return domain.RoleAllows(session.User.Role, p)
}

func (s *AuthService) generateToken(user domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     user.Role,
		"user_id":  user.ID,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
