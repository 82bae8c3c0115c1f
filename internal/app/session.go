package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"vista_hostel/internal/adapters/observability"
	"vista_hostel/internal/domain"
)

// SessionService owns the single authenticated-user slot and its durable
// mirror. There is no real backend: login and register validate locally,
// after a simulated network delay, and persist the user record so a restart
// rehydrates the same session.
//
// Only one authenticating operation is authoritative at a time. A call
// issued while another is in flight supersedes it: the stale completion is
// still delivered on its channel but no longer touches state or storage.
type SessionService struct {
	storage domain.SessionStorage
	delay   time.Duration
	limiter *rate.Limiter

	mu    sync.Mutex
	state domain.AuthState
	user  *domain.User
	seq   uint64 // bumped by every login/register/logout; guards stale completions
}

func NewSessionService(storage domain.SessionStorage, delay time.Duration, attemptsPerSec int) *SessionService {
	if attemptsPerSec <= 0 {
		attemptsPerSec = 5
	}
	return &SessionService{
		storage: storage,
		delay:   delay,
		limiter: rate.NewLimiter(rate.Limit(attemptsPerSec), attemptsPerSec),
		state:   domain.StateLoading,
	}
}

// Init checks the durable slot once and settles the store into Anonymous or
// Authenticated. A blob that fails to parse is discarded, not surfaced.
func (s *SessionService) Init(ctx context.Context) {
	u, err := s.storage.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case err == nil && u != nil:
		s.user = u
		s.state = domain.StateAuthenticated
		log.Info().Str("email", u.Email).Msg("session rehydrated")
	case err != nil:
		log.Warn().Err(err).Msg("discarding unreadable session record")
		_ = s.storage.Clear(ctx)
		fallthrough
	default:
		s.user = nil
		s.state = domain.StateAnonymous
	}
}

// Login validates email/password after the simulated delay and delivers the
// outcome once on the returned channel. Success persists the user record.
func (s *SessionService) Login(ctx context.Context, email, password string) <-chan domain.AuthResult {
	return s.authenticate(ctx, "login", func() (domain.User, error) {
		if !strings.Contains(email, "@") || password == "" {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		name := strings.SplitN(email, "@", 2)[0]
		return domain.User{ID: uuid.NewString(), Name: name, Email: email}, nil
	})
}

// Register behaves like Login with the additional non-empty name rule; the
// given name is used verbatim instead of being derived from the email.
func (s *SessionService) Register(ctx context.Context, name, email, password string) <-chan domain.AuthResult {
	return s.authenticate(ctx, "register", func() (domain.User, error) {
		if name == "" || !strings.Contains(email, "@") || password == "" {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{ID: uuid.NewString(), Name: name, Email: email}, nil
	})
}

func (s *SessionService) authenticate(ctx context.Context, op string, check func() (domain.User, error)) <-chan domain.AuthResult {
	ch := make(chan domain.AuthResult, 1)

	if !s.limiter.Allow() {
		observability.ObserveAuth(op, "rate_limited")
		ch <- domain.AuthResult{Err: domain.ErrRateLimited}
		return ch
	}

	s.mu.Lock()
	s.seq++
	my := s.seq
	s.state = domain.StateAuthenticating
	s.mu.Unlock()

	go func() {
		if !sleepCtx(ctx, s.delay) {
			s.finish(ctx, my, op, domain.User{}, ctx.Err(), ch)
			return
		}
		u, err := check()
		s.finish(ctx, my, op, u, err, ch)
	}()
	return ch
}

// finish applies the transition if this operation is still the latest one,
// then delivers the result. Stale completions only deliver.
func (s *SessionService) finish(ctx context.Context, my uint64, op string, u domain.User, err error, ch chan<- domain.AuthResult) {
	s.mu.Lock()
	current := s.seq == my
	if current {
		switch {
		case err == nil:
			cp := u
			s.user = &cp
			s.state = domain.StateAuthenticated
		case s.user != nil:
			// a failed re-auth keeps the existing session; the durable slot
			// still holds that user, so memory and mirror stay in sync
			s.state = domain.StateAuthenticated
		default:
			s.state = domain.StateAnonymous
		}
	}
	s.mu.Unlock()

	if current && err == nil {
		// keep persisting even if the caller walked away mid-operation
		if serr := s.storage.Save(context.WithoutCancel(ctx), u); serr != nil {
			log.Warn().Err(serr).Msg("session record not persisted")
		}
		observability.ObserveAuth(op, "ok")
		log.Info().Str("op", op).Str("email", u.Email).Msg("authenticated")
	} else if err != nil {
		observability.ObserveAuth(op, "rejected")
		log.Info().Str("op", op).Err(err).Msg("authentication rejected")
	}

	ch <- domain.AuthResult{User: u, Err: err}
}

// Logout always succeeds: it clears the in-memory user, erases the persisted
// record and supersedes any in-flight authentication.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.seq++
	s.user = nil
	s.state = domain.StateAnonymous
	s.mu.Unlock()

	if err := s.storage.Clear(ctx); err != nil {
		log.Warn().Err(err).Msg("session record not cleared")
	}
	observability.ObserveAuth("logout", "ok")
}

// Current returns a snapshot of the session. The user is only exposed in
// StateAuthenticated, never mid-transition.
func (s *SessionService) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := domain.Session{State: s.state}
	if s.state == domain.StateAuthenticated && s.user != nil {
		cp := *s.user
		snap.User = &cp
	}
	return snap
}

func (s *SessionService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == domain.StateAuthenticated
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
