package state

import "sync"

// Service owns access to conversation states. Get never fails and
// returns the Idle default for unknown users.
//
// Two events for the same user may be processed concurrently, so the
// read-mutate-write sequence is a critical section: WithUser holds a
// per-user lock for the whole of fn, including any I/O fn performs.
// A stalled fn blocks only that user.
type Service struct {
	storage Storage

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(storage Storage) *Service {
	return &Service{
		storage: storage,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *Service) Get(userID string) State {
	st, _ := s.storage.Get(userID)
	return st
}

// WithUser runs fn under the user's lock and stores the state fn returns.
func (s *Service) WithUser(userID string, fn func(State) State) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	st, _ := s.storage.Get(userID)
	s.storage.Set(userID, fn(st))
}

func (s *Service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// InMemStorage keeps states in a process-local map.
type InMemStorage struct {
	mu     sync.RWMutex
	states map[string]State
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{states: make(map[string]State)}
}

func (s *InMemStorage) Get(userID string) (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[userID]
	return st, ok
}

func (s *InMemStorage) Set(userID string, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = st
}
