package memory

import (
	"context"
	"sync"
	"time"

	"pms_marketplace/internal/domain"
)

type entry struct {
	s   domain.Session
	exp time.Time
}

// Sessions keeps sessions in process memory. Used for dev and tests; state is lost on restart.
type Sessions struct {
	mu  sync.Mutex
	m   map[string]entry
	now func() time.Time
}

func NewSessions() *Sessions {
	return &Sessions{m: map[string]entry{}, now: time.Now}
}

func (st *Sessions) Get(ctx context.Context, id string) (domain.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.m[id]
	if !ok {
		return domain.Session{}, domain.ErrNotFound
	}
	if !e.exp.IsZero() && st.now().After(e.exp) {
		delete(st.m, id)
		return domain.Session{}, domain.ErrNotFound
	}
	return e.s.Clone(), nil
}

func (st *Sessions) Save(ctx context.Context, s domain.Session, ttl time.Duration) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	var exp time.Time
	if ttl > 0 {
		exp = st.now().Add(ttl)
	}
	st.m[s.ID] = entry{s: s.Clone(), exp: exp}
	return nil
}

func (st *Sessions) Delete(ctx context.Context, id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.m, id)
	return nil
}
