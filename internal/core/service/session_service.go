package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/shopease/console-gateway/internal/core/domain"
	"github.com/shopease/console-gateway/internal/core/ports"
)

// SessionService owns the gateway's single session. Every transition replaces
// the session value wholesale under one lock, so readers never observe a
// half-updated mix of fields. An epoch counter fences in-flight loads: a load
// that started before a login or logout discards its result instead of writing
// into a session belonging to a different context.
//
// Failure policy is uniform: any failure that leaves the session unable to
// reach Valid — malformed token, expired token, failed profile fetch — purges
// the token store. Expired or broken credentials are indistinguishable from
// being logged out.
type SessionService struct {
	store   ports.TokenStore
	backend ports.BackendClient
	decoder *TokenDecoder
	audit   ports.AuditRecorder
	log     zerolog.Logger
	now     func() time.Time

	mu      sync.RWMutex
	session domain.Session
	epoch   uint64

	group singleflight.Group
}

func NewSessionService(store ports.TokenStore, backend ports.BackendClient, decoder *TokenDecoder, audit ports.AuditRecorder, log zerolog.Logger) *SessionService {
	return &SessionService{
		store:   store,
		backend: backend,
		decoder: decoder,
		audit:   audit,
		log:     log,
		now:     time.Now,
		session: domain.Session{Status: domain.SessionIdle},
	}
}

// Current returns a snapshot of the session as of the most recently completed
// transition.
func (s *SessionService) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Load materializes a session from the token store. Concurrent calls collapse
// into a single in-flight load via singleflight; every caller receives the
// same resolved session.
func (s *SessionService) Load(ctx context.Context) (domain.Session, error) {
	v, err, _ := s.group.Do("session-load", func() (any, error) {
		return s.load(ctx)
	})
	sess, _ := v.(domain.Session)
	return sess, err
}

func (s *SessionService) load(ctx context.Context) (domain.Session, error) {
	epoch := s.currentEpoch()

	token, refresh, err := s.store.Load(ctx)
	if errors.Is(err, domain.ErrTokenMissing) {
		// No stored credential: resolved locally, no network call.
		return s.fail(ctx, epoch, domain.AuditSessionLoad, domain.ErrTokenMissing, false), nil
	}
	if err != nil {
		return s.Current(), fmt.Errorf("token store read: %w", err)
	}

	claims, err := s.decoder.DecodeValid(token, s.now())
	if err != nil {
		return s.fail(ctx, epoch, domain.AuditSessionLoad, err, true), nil
	}

	s.publish(epoch, domain.Session{
		Token:        token,
		RefreshToken: refresh,
		Status:       domain.SessionLoading,
	})

	profile, err := s.backend.FetchProfile(ctx, token)
	if err != nil {
		return s.fail(ctx, epoch, domain.AuditSessionLoad, fmt.Errorf("%w: %v", domain.ErrProfileFetchFailed, err), true), nil
	}

	sess := domain.Session{
		Token:        token,
		RefreshToken: refresh,
		Role:         claims.Role,
		User:         profile,
		Status:       domain.SessionValid,
	}
	if !s.publish(epoch, sess) {
		// Logged out (or re-logged-in) while the fetch was in flight: the
		// result belongs to a stale context and is discarded on arrival.
		return s.Current(), nil
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:     domain.AuditSessionLoad,
		Role:       sess.Role,
		UserID:     profile.ID,
		Outcome:    "valid",
		OccurredAt: s.now(),
	})
	s.log.Info().Str("role", sess.Role).Msg("session restored from stored token")
	return sess, nil
}

// Login authenticates against the backend, persists the issued pair
// transactionally, and publishes a valid session.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	epoch := s.advanceEpoch(domain.Session{Status: domain.SessionLoading})

	pair, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return s.fail(ctx, epoch, domain.AuditLogin, err, false), err
	}

	claims, err := s.decoder.DecodeValid(pair.Token, s.now())
	if err != nil {
		// The backend issued a token the gateway cannot use; treat it the
		// same as any other failure to reach Valid.
		return s.fail(ctx, epoch, domain.AuditLogin, err, true), err
	}

	if err := s.store.Save(ctx, pair.Token, pair.RefreshToken); err != nil {
		return s.fail(ctx, epoch, domain.AuditLogin, err, false), fmt.Errorf("persist token pair: %w", err)
	}

	profile, err := s.backend.FetchProfile(ctx, pair.Token)
	if err != nil {
		wrapped := fmt.Errorf("%w: %v", domain.ErrProfileFetchFailed, err)
		return s.fail(ctx, epoch, domain.AuditLogin, wrapped, true), wrapped
	}

	sess := domain.Session{
		Token:        pair.Token,
		RefreshToken: pair.RefreshToken,
		Role:         claims.Role,
		User:         profile,
		Status:       domain.SessionValid,
	}
	if !s.publish(epoch, sess) {
		return s.Current(), nil
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:     domain.AuditLogin,
		Role:       sess.Role,
		UserID:     profile.ID,
		Outcome:    "valid",
		OccurredAt: s.now(),
	})
	s.log.Info().Str("role", sess.Role).Msg("operator logged in")
	return sess, nil
}

// Logout clears the token store and resets the session. Bumping the epoch
// fences out any load still in flight.
func (s *SessionService) Logout(ctx context.Context) error {
	prev := s.Current()
	s.advanceEpoch(domain.Session{Status: domain.SessionIdle})

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear token store: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:     domain.AuditLogout,
		Role:       prev.Role,
		Outcome:    "ok",
		OccurredAt: s.now(),
	})
	s.log.Info().Msg("operator logged out")
	return nil
}

// fail publishes an invalid session for cause, purging the token store when
// the credential can no longer reach Valid. The purge is skipped when the
// epoch has moved on: clearing now could destroy a newer login's tokens.
func (s *SessionService) fail(ctx context.Context, epoch uint64, action string, cause error, purge bool) domain.Session {
	sess := domain.Session{Status: domain.SessionInvalid, Err: cause}
	if !s.publish(epoch, sess) {
		return s.Current()
	}
	if purge {
		if err := s.store.Clear(ctx); err != nil {
			s.log.Warn().Err(err).Msg("token store purge failed")
		}
	}
	s.audit.Record(ctx, domain.AuditEvent{
		Action:     action,
		Outcome:    "invalid",
		OccurredAt: s.now(),
	})
	return sess
}

// publish installs sess if epoch is still current. It reports false when a
// newer transition has superseded the caller.
func (s *SessionService) publish(epoch uint64, sess domain.Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return false
	}
	s.session = sess
	return true
}

func (s *SessionService) currentEpoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// advanceEpoch starts a new session context, installing sess as its initial
// state, and returns the new epoch.
func (s *SessionService) advanceEpoch(sess domain.Session) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.session = sess
	return s.epoch
}
