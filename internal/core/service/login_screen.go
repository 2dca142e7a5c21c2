package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
)

const defaultScreenTTL = 30 * time.Minute

type sessionStarter interface {
	Start(c domain.Credential) (domain.Navigation, error)
}

// LoginOutcome is the result of a login submission. Discarded is set when
// the screen was disposed while the submission was pending; nothing else is
// populated in that case.
type LoginOutcome struct {
	Navigation domain.Navigation
	User       domain.Profile
	Discarded  bool
}

// LoginScreen is one open login form. It allows at most one in-flight
// authentication at a time.
type LoginScreen struct {
	id       string
	auth     ports.Authenticator
	sessions sessionStarter
	now      func() time.Time

	ctx      context.Context
	dispose  context.CancelFunc
	inFlight atomic.Bool
	// lastActive is unix nanoseconds of the last open or submit.
	lastActive atomic.Int64
}

func newLoginScreen(auth ports.Authenticator, sessions sessionStarter, now func() time.Time) *LoginScreen {
	ctx, cancel := context.WithCancel(context.Background())
	s := &LoginScreen{
		id:       uuid.NewString(),
		auth:     auth,
		sessions: sessions,
		now:      now,
		ctx:      ctx,
		dispose:  cancel,
	}
	s.touch()
	return s
}

func (s *LoginScreen) touch() { s.lastActive.Store(s.now().UnixNano()) }

func (s *LoginScreen) idleSince() time.Time { return time.Unix(0, s.lastActive.Load()) }

func (s *LoginScreen) ID() string { return s.id }

// Busy reports whether a submission is pending.
func (s *LoginScreen) Busy() bool { return s.inFlight.Load() }

// Disposed reports whether Dispose has been called.
func (s *LoginScreen) Disposed() bool { return s.ctx.Err() != nil }

// Dispose closes the screen. A pending submission is cancelled and its
// result discarded.
func (s *LoginScreen) Dispose() { s.dispose() }

// Submit authenticates and, on success, routes to the role dashboard.
func (s *LoginScreen) Submit(ctx context.Context, email, password string) (LoginOutcome, error) {
	if s.Disposed() {
		return LoginOutcome{Discarded: true}, nil
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return LoginOutcome{}, domain.ErrAuthInProgress
	}
	defer s.inFlight.Store(false)
	s.touch()
	defer s.touch()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	cred, err := s.auth.Authenticate(ctx, email, password)
	if s.Disposed() {
		return LoginOutcome{Discarded: true}, nil
	}
	if err != nil {
		return LoginOutcome{}, err
	}

	nav, err := s.sessions.Start(*cred)
	if err != nil {
		return LoginOutcome{}, err
	}

	return LoginOutcome{Navigation: nav, User: cred.Profile()}, nil
}

// ScreenRegistry tracks open login screens by id.
type ScreenRegistry struct {
	auth     ports.Authenticator
	sessions sessionStarter
	ttl      time.Duration
	now      func() time.Time

	mu      sync.Mutex
	screens map[string]*LoginScreen
}

// NewScreenRegistry builds a registry. Screens with no open or submit for
// longer than ttl are disposed the next time a screen is opened.
func NewScreenRegistry(auth ports.Authenticator, sessions sessionStarter, ttl time.Duration) *ScreenRegistry {
	if ttl <= 0 {
		ttl = defaultScreenTTL
	}
	return &ScreenRegistry{
		auth:     auth,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
		screens:  make(map[string]*LoginScreen),
	}
}

// Open registers a new login screen.
func (r *ScreenRegistry) Open() *LoginScreen {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()

	s := newLoginScreen(r.auth, r.sessions, r.now)
	r.screens[s.id] = s
	return s
}

// Ephemeral returns an unregistered screen for one-shot submissions.
func (r *ScreenRegistry) Ephemeral() *LoginScreen {
	return newLoginScreen(r.auth, r.sessions, r.now)
}

func (r *ScreenRegistry) Get(id string) (*LoginScreen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.screens[id]
	if !ok {
		return nil, domain.ErrScreenNotFound
	}
	return s, nil
}

// Close disposes and forgets a screen.
func (r *ScreenRegistry) Close(id string) error {
	r.mu.Lock()
	s, ok := r.screens[id]
	delete(r.screens, id)
	r.mu.Unlock()

	if !ok {
		return domain.ErrScreenNotFound
	}
	s.Dispose()
	return nil
}

func (r *ScreenRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.screens)
}

func (r *ScreenRegistry) sweepLocked() {
	cutoff := r.now().Add(-r.ttl)
	for id, s := range r.screens {
		if s.idleSince().Before(cutoff) && !s.Busy() {
			s.Dispose()
			delete(r.screens, id)
		}
	}
}
