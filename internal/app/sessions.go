package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pms_marketplace/internal/adapters/observability"
	"pms_marketplace/internal/domain"
)

// ActionResult is what one interaction hands back to the caller.
type ActionResult struct {
	View          PageView              `json:"view"`
	Notifications []domain.Notification `json:"notifications"`
}

// SessionService owns the per-visitor state. Updates to one session are serialised;
// different sessions run in parallel.
type SessionService struct {
	catalog  *CatalogService
	store    domain.SessionStore
	notifier domain.Notifier
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	locks map[string]*sessionLock
}

// sessionLock is dropped from the table once the last holder or waiter releases it.
type sessionLock struct {
	sync.Mutex
	refs int
}

func NewSessionService(c *CatalogService, st domain.SessionStore, n domain.Notifier, ttl time.Duration) *SessionService {
	return &SessionService{
		catalog:  c,
		store:    st,
		notifier: n,
		ttl:      ttl,
		now:      time.Now,
		locks:    map[string]*sessionLock{},
	}
}

// Create starts a session with its own copy of the property listings and greets the visitor.
func (s *SessionService) Create(ctx context.Context) (ActionResult, error) {
	props, err := s.catalog.ListProperties(ctx)
	if err != nil {
		return ActionResult{}, err
	}
	vendors, err := s.catalog.ListVendors(ctx)
	if err != nil {
		return ActionResult{}, err
	}
	now := s.now()
	sess := domain.NewSession(uuid.NewString(), props, now)
	if err := s.store.Save(ctx, sess, s.ttl); err != nil {
		return ActionResult{}, fmt.Errorf("save session: %w", err)
	}
	observability.ObserveAction("create_session", "ok")

	notes := []domain.Notification{{
		Kind: domain.NotifySuccess, Message: WelcomeMessage, SessionID: sess.ID, At: now,
	}}
	s.deliver(ctx, notes)
	return ActionResult{View: BuildPageView(sess, vendors), Notifications: notes}, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (PageView, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return PageView{}, err
	}
	vendors, err := s.catalog.ListVendors(ctx)
	if err != nil {
		return PageView{}, err
	}
	return BuildPageView(sess, vendors), nil
}

// Dispatch applies a to session id: load, apply, save, then deliver notifications.
// Invalid actions return domain.ErrInvalidAction and leave the stored session untouched.
func (s *SessionService) Dispatch(ctx context.Context, id string, a domain.Action) (ActionResult, error) {
	defer s.acquire(id)()

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return ActionResult{}, err
	}
	vendors, err := s.catalog.ListVendors(ctx)
	if err != nil {
		return ActionResult{}, err
	}

	notes, err := Apply(&sess, vendors, a, s.now())
	if err != nil {
		observability.ObserveAction(string(a.Type), "rejected")
		return ActionResult{}, err
	}
	if err := s.store.Save(ctx, sess, s.ttl); err != nil {
		observability.ObserveAction(string(a.Type), "error")
		return ActionResult{}, fmt.Errorf("save session: %w", err)
	}
	observability.ObserveAction(string(a.Type), "ok")

	s.deliver(ctx, notes)
	if notes == nil {
		notes = []domain.Notification{}
	}
	return ActionResult{View: BuildPageView(sess, vendors), Notifications: notes}, nil
}

// Delete removes session id. It waits for any in-flight Dispatch on the same id.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	defer s.acquire(id)()

	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// acquire locks session id and returns the matching release.
func (s *SessionService) acquire(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sessionLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.mu.Lock()
		if l.refs--; l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

// deliver hands notifications to the side channel. Failures are logged, never returned.
func (s *SessionService) deliver(ctx context.Context, notes []domain.Notification) {
	if s.notifier == nil {
		return
	}
	for _, n := range notes {
		if err := s.notifier.Notify(ctx, n); err != nil && !errors.Is(err, context.Canceled) {
			log.Warn().Err(err).Str("session", n.SessionID).Str("kind", string(n.Kind)).Msg("notification delivery failed")
		}
	}
}
