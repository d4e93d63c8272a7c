package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/omshealth/medcore/internal/domain/entities"
	"github.com/omshealth/medcore/internal/infrastructure/observability"
	apperrors "github.com/omshealth/medcore/pkg/errors"
)

// SessionService holds the single active identity. There is no credential
// store: login takes a role and a display name at face value, so this is
// session bookkeeping, not authentication.
type SessionService struct {
	mu      sync.RWMutex
	current entities.Identity
}

// NewSessionService creates a new session service with no active identity
func NewSessionService() *SessionService {
	return &SessionService{}
}

// Login validates the role, replaces the active identity and returns it.
// An unknown role is rejected with a validation error and leaves the
// previous identity untouched. An empty name falls back to the upper-cased
// role, the same default the login form applies.
func (s *SessionService) Login(ctx context.Context, role, name string) (entities.Identity, error) {
	parsed, ok := entities.ParseRole(role)
	if !ok {
		return entities.Identity{}, apperrors.NewValidationError(fmt.Sprintf("unknown role %q", role))
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = strings.ToUpper(string(parsed))
	}

	identity := entities.Identity{Role: parsed, Name: name}

	s.mu.Lock()
	s.current = identity
	s.mu.Unlock()

	observability.LoggerFromContext(ctx).Info().
		Str("role", string(identity.Role)).
		Str("name", identity.Name).
		Msg("identity logged in")

	return identity, nil
}

// Logout resets the active identity to empty
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	previous := s.current
	s.current = entities.Identity{}
	s.mu.Unlock()

	if !previous.IsZero() {
		observability.LoggerFromContext(ctx).Info().
			Str("role", string(previous.Role)).
			Str("name", previous.Name).
			Msg("identity logged out")
	}
}

// Current returns the active identity, which is zero when nobody is logged in
func (s *SessionService) Current() entities.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
