package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pms_marketplace/internal/domain"
	"pms_marketplace/internal/storage/memory"
)

// gatedSessions blocks the next Save once armed until release is closed.
type gatedSessions struct {
	*memory.Sessions
	armed   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func newGatedSessions() *gatedSessions {
	return &gatedSessions{
		Sessions: memory.NewSessions(),
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
	}
}

func (g *gatedSessions) Save(ctx context.Context, s domain.Session, ttl time.Duration) error {
	if g.armed.CompareAndSwap(true, false) {
		close(g.entered)
		<-g.release
	}
	return g.Sessions.Save(ctx, s, ttl)
}

func lockCount(s *SessionService) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}

func newLockedService(st domain.SessionStore) *SessionService {
	return NewSessionService(NewCatalogService(memory.NewSeedCatalog(), nil, time.Minute), st, nil, time.Hour)
}

func TestSessionLocks_UnknownIDsLeaveNoEntries(t *testing.T) {
	svc := newLockedService(memory.NewSessions())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 2000; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Dispatch(ctx, fmt.Sprintf("unknown-%d", i%50), domain.Action{Type: domain.ActionToggleFilters})
			assert.ErrorIs(t, err, domain.ErrNotFound)
		}(i)
	}
	wg.Wait()
	assert.Zero(t, lockCount(svc))

	assert.ErrorIs(t, svc.Delete(ctx, "unknown-0"), domain.ErrNotFound)
	assert.Zero(t, lockCount(svc))
}

func TestSessionLocks_ReleasedAfterLiveSessionTraffic(t *testing.T) {
	svc := newLockedService(memory.NewSessions())
	ctx := context.Background()

	res, err := svc.Create(ctx)
	require.NoError(t, err)
	id := res.View.SessionID

	for i := 0; i < 5; i++ {
		_, err := svc.Dispatch(ctx, id, domain.Action{Type: domain.ActionToggleFilters})
		require.NoError(t, err)
	}
	assert.Zero(t, lockCount(svc))

	require.NoError(t, svc.Delete(ctx, id))
	assert.Zero(t, lockCount(svc))
}

func TestDelete_WaitsForInFlightDispatch(t *testing.T) {
	st := newGatedSessions()
	svc := newLockedService(st)
	ctx := context.Background()

	res, err := svc.Create(ctx)
	require.NoError(t, err)
	id := res.View.SessionID

	st.armed.Store(true)
	dispatched := make(chan error, 1)
	go func() {
		_, err := svc.Dispatch(ctx, id, domain.Action{Type: domain.ActionToggleFilters})
		dispatched <- err
	}()
	<-st.entered

	deleted := make(chan error, 1)
	go func() { deleted <- svc.Delete(ctx, id) }()

	select {
	case err := <-deleted:
		t.Fatalf("Delete returned %v while a Dispatch was saving", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(st.release)
	require.NoError(t, <-dispatched)
	require.NoError(t, <-deleted)

	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, lockCount(svc))
}
