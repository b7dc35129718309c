package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/promptvault/prompt-library/internal/core/domain"
	"github.com/promptvault/prompt-library/internal/core/ports"
)

// DefaultAuthDelay is the simulated remote-call latency for login/register.
const DefaultAuthDelay = time.Second

// SessionService holds at most one authenticated principal and the
// credential registry it validates against. Both are persisted through the
// snapshot store; registry defaults are seeded when storage is empty.
type SessionService struct {
	store ports.SnapshotStore
	log   zerolog.Logger
	delay time.Duration

	mu        sync.Mutex
	principal *domain.Principal
	registry  []domain.Credential
	loaded    bool
}

// NewSessionService creates a session service. delay is the simulated
// latency applied to Login and Register; negative values fall back to
// DefaultAuthDelay (zero disables the delay, which tests rely on).
func NewSessionService(store ports.SnapshotStore, delay time.Duration, log zerolog.Logger) *SessionService {
	if delay < 0 {
		delay = DefaultAuthDelay
	}
	return &SessionService{store: store, delay: delay, log: log}
}

// Login validates the credentials against the registry after the simulated
// latency. On success the secret-stripped principal becomes current and is
// persisted; on failure nothing changes.
func (s *SessionService) Login(ctx context.Context, email, secret string) (*domain.Principal, error) {
	s.simulateLatency()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	for i := range s.registry {
		cred := &s.registry[i]
		if cred.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(cred.SecretHash), []byte(secret)) != nil {
			break
		}
		s.principal = cred.Principal()
		s.persistPrincipal(ctx)
		s.log.Info().Str("email", email).Msg("login succeeded")
		return s.principal, nil
	}

	s.log.Info().Str("email", email).Msg("login rejected")
	return nil, domain.ErrInvalidCredentials
}

// Register appends a new registry entry and signs it in as the current
// principal. Email uniqueness is checked case-insensitively; a duplicate
// leaves the registry untouched.
func (s *SessionService) Register(ctx context.Context, email, secret, name string) (*domain.Principal, error) {
	s.simulateLatency()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	for i := range s.registry {
		if strings.EqualFold(s.registry[i].Email, email) {
			return nil, domain.ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	cred := domain.Credential{
		ID:         uuid.NewString(),
		Email:      email,
		Name:       name,
		SecretHash: string(hash),
		CreatedAt:  time.Now().UTC(),
	}
	s.registry = append(s.registry, cred)
	s.principal = cred.Principal()

	s.persistRegistry(ctx)
	s.persistPrincipal(ctx)

	s.log.Info().Str("email", email).Msg("user registered")
	return s.principal, nil
}

// Logout clears the current principal and removes its snapshot. The registry
// snapshot is untouched.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.principal = nil
	if err := s.store.Remove(ctx, ports.KeyPrincipal); err != nil {
		s.log.Error().Err(err).Msg("failed to remove principal snapshot")
	}
}

// Load hydrates the principal and the registry from their snapshots. Safe to
// call any number of times; missing or corrupt snapshots leave the seeded
// defaults in place.
func (s *SessionService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate(ctx)
	return nil
}

// IsAuthenticated reports whether a principal is signed in.
func (s *SessionService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(context.Background())
	return s.principal != nil
}

// Current returns the authenticated principal, or nil.
func (s *SessionService) Current() *domain.Principal {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(context.Background())
	if s.principal == nil {
		return nil
	}
	p := *s.principal
	return &p
}

// simulateLatency blocks for the configured delay, standing in for the remote
// call boundary. Once started, login/register always run to completion.
func (s *SessionService) simulateLatency() {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}

// --- internals (callers hold s.mu) ---

func (s *SessionService) ensureLoaded(ctx context.Context) {
	if !s.loaded {
		s.hydrate(ctx)
	}
}

func (s *SessionService) hydrate(ctx context.Context) {
	s.loaded = true

	if data, err := s.store.Get(ctx, ports.KeyCredentials); err == nil {
		var registry []domain.Credential
		if jsonErr := json.Unmarshal(data, &registry); jsonErr != nil {
			s.log.Warn().Err(jsonErr).Msg("corrupt registry snapshot, keeping defaults")
		} else if len(registry) > 0 {
			s.registry = registry
		}
	} else if !errors.Is(err, ports.ErrSnapshotNotFound) {
		s.log.Warn().Err(err).Msg("failed to read registry snapshot, keeping defaults")
	}
	if s.registry == nil {
		s.registry = seedRegistry()
	}

	if data, err := s.store.Get(ctx, ports.KeyPrincipal); err == nil {
		var principal domain.Principal
		if jsonErr := json.Unmarshal(data, &principal); jsonErr != nil {
			s.log.Warn().Err(jsonErr).Msg("corrupt principal snapshot, staying signed out")
		} else {
			s.principal = &principal
		}
	} else if !errors.Is(err, ports.ErrSnapshotNotFound) {
		s.log.Warn().Err(err).Msg("failed to read principal snapshot, staying signed out")
	}
}

// Write-through is best-effort: failures are logged, in-memory state stands.
func (s *SessionService) persistPrincipal(ctx context.Context) {
	data, err := json.Marshal(s.principal)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to serialize principal snapshot")
		return
	}
	if err := s.store.Set(ctx, ports.KeyPrincipal, data); err != nil {
		s.log.Error().Err(err).Msg("failed to write principal snapshot")
	}
}

func (s *SessionService) persistRegistry(ctx context.Context) {
	data, err := json.Marshal(s.registry)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to serialize registry snapshot")
		return
	}
	if err := s.store.Set(ctx, ports.KeyCredentials, data); err != nil {
		s.log.Error().Err(err).Msg("failed to write registry snapshot")
	}
}

// seedRegistry builds the demo accounts present before anyone registers.
func seedRegistry() []domain.Credential {
	now := time.Now().UTC()
	return []domain.Credential{
		mustCredential("1", "admin@example.com", "admin123", "Administrator", now),
		mustCredential("2", "user@example.com", "user123", "User", now),
	}
}

func mustCredential(id, email, secret, name string, createdAt time.Time) domain.Credential {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	if err != nil {
		// bcrypt only fails on invalid cost or oversized secrets; neither
		// applies to the fixed seed data.
		panic(err)
	}
	return domain.Credential{
		ID:         id,
		Email:      email,
		Name:       name,
		SecretHash: string(hash),
		CreatedAt:  createdAt,
	}
}
