package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
	"github.com/m04kA/SMC-WorkoutBooking/internal/infra/storage/session"
)

// fakeClock управляемый провайдер времени
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, time.November, 12, 10, 0, 0, 0, time.UTC)}
}

func TestStore_CreateAndGet(t *testing.T) {
	store := session.NewStore(time.Hour, 10)

	id, err := store.Create(context.Background())
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	state, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.NewFormState(), state)
	assert.Equal(t, 1, store.Len())
}

func TestStore_WithSessionMutatesState(t *testing.T) {
	store := session.NewStore(time.Hour, 10)
	id, err := store.Create(context.Background())
	require.NoError(t, err)

	err = store.WithSession(context.Background(), id, func(state *domain.FormState) error {
		state.FirstName = "Anna"
		return nil
	})
	require.NoError(t, err)

	state, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Anna", state.FirstName)
}

func TestStore_WithSessionReturnsCallbackError(t *testing.T) {
	store := session.NewStore(time.Hour, 10)
	id, err := store.Create(context.Background())
	require.NoError(t, err)

	expected := errors.New("boom")
	err = store.WithSession(context.Background(), id, func(state *domain.FormState) error {
		return expected
	})
	assert.ErrorIs(t, err, expected)
}

func TestStore_UnknownSession(t *testing.T) {
	store := session.NewStore(time.Hour, 10)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	err = store.WithSession(context.Background(), "missing", func(state *domain.FormState) error { return nil })
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestStore_ExpiresIdleSessions(t *testing.T) {
	clock := newClock()
	store := session.NewStoreWithClock(30*time.Minute, 10, clock)

	id, err := store.Create(context.Background())
	require.NoError(t, err)

	// Обращение продлевает жизнь сессии
	clock.Advance(20 * time.Minute)
	_, err = store.Get(context.Background(), id)
	require.NoError(t, err)

	clock.Advance(20 * time.Minute)
	_, err = store.Get(context.Background(), id)
	require.NoError(t, err)

	clock.Advance(31 * time.Minute)
	_, err = store.Get(context.Background(), id)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestStore_CapacityExceeded(t *testing.T) {
	clock := newClock()
	store := session.NewStoreWithClock(time.Minute, 2, clock)

	_, err := store.Create(context.Background())
	require.NoError(t, err)
	_, err = store.Create(context.Background())
	require.NoError(t, err)

	_, err = store.Create(context.Background())
	assert.ErrorIs(t, err, session.ErrCapacityExceeded)

	// После истечения старых сессий место освобождается
	clock.Advance(2 * time.Minute)
	_, err = store.Create(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestStore_CancelledContext(t *testing.T) {
	store := session.NewStore(time.Hour, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Create(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_WithSessionSerializesAccess(t *testing.T) {
	store := session.NewStore(time.Hour, 10)
	id, err := store.Create(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.WithSession(context.Background(), id, func(state *domain.FormState) error {
				state.Age++
				return nil
			})
		}()
	}
	wg.Wait()

	state, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAge+50, state.Age)
}
