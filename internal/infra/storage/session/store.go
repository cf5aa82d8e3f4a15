package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

type entry struct {
	mu       sync.Mutex // сериализует изменения одной формы
	state    domain.FormState
	lastSeen time.Time
}

// Store хранилище сессий форм в памяти
// Сессия живет, пока к ней обращаются чаще, чем раз в ttl
// Истекшие сессии удаляются лениво, при обращении к хранилищу
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*entry
	ttl         time.Duration
	maxSessions int
	clock       TimeProvider
}

// NewStore создает новое хранилище сессий
// ttl <= 0 отключает истечение, maxSessions <= 0 снимает лимит
func NewStore(ttl time.Duration, maxSessions int) *Store {
	return NewStoreWithClock(ttl, maxSessions, &RealTimeProvider{})
}

// NewStoreWithClock создает хранилище с заданным провайдером времени
func NewStoreWithClock(ttl time.Duration, maxSessions int, clock TimeProvider) *Store {
	return &Store{
		sessions:    make(map[string]*entry),
		ttl:         ttl,
		maxSessions: maxSessions,
		clock:       clock,
	}
}

// Create создает новую сессию с формой по умолчанию и возвращает её идентификатор
func (s *Store) Create(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.evictExpiredLocked(now)

	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		return "", fmt.Errorf("%w: limit is %d", ErrCapacityExceeded, s.maxSessions)
	}

	id := uuid.NewString()
	s.sessions[id] = &entry{
		state:    domain.NewFormState(),
		lastSeen: now,
	}

	return id, nil
}

// Get возвращает копию состояния формы
func (s *Store) Get(ctx context.Context, id string) (domain.FormState, error) {
	var snapshot domain.FormState
	err := s.WithSession(ctx, id, func(state *domain.FormState) error {
		snapshot = *state
		return nil
	})
	return snapshot, err
}

// WithSession выполняет fn, удерживая блокировку сессии
// Одновременно изменять одну форму может только один вызов
func (s *Store) WithSession(ctx context.Context, id string, fn func(state *domain.FormState) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e, err := s.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	err = fn(&e.state)
	s.touch(e)
	return err
}

// Len количество активных сессий
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked(s.clock.Now())
	return len(s.sessions)
}

func (s *Store) lookup(id string) (*entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrSessionNotFound, id)
	}

	now := s.clock.Now()
	if s.expired(e, now) {
		delete(s.sessions, id)
		return nil, fmt.Errorf("%w: id=%s expired", ErrSessionNotFound, id)
	}

	e.lastSeen = now
	return e, nil
}

func (s *Store) touch(e *entry) {
	s.mu.Lock()
	e.lastSeen = s.clock.Now()
	s.mu.Unlock()
}

func (s *Store) evictExpiredLocked(now time.Time) {
	for id, e := range s.sessions {
		if s.expired(e, now) {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}
