package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"max.ks1230/expense-bot/internal/entity/expense"
)

// InMemStorage is the single-instance ledger backing. It implements the
// same gateway contract as PostgresStorage.
type InMemStorage struct {
	mu       sync.RWMutex
	lastID   int64
	expenses map[string][]expense.Record

	now func() time.Time
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		expenses: make(map[string][]expense.Record),
		now:      time.Now,
	}
}

func (s *InMemStorage) CreateExpense(_ context.Context, userID string, amount float64, category, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	s.expenses[userID] = append(s.expenses[userID], expense.Record{
		ID:          s.lastID,
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: description,
		CreatedAt:   s.now(),
	})
	return nil
}

func (s *InMemStorage) QueryExpenses(_ context.Context, userID string, from, to time.Time) ([]expense.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]expense.Record, 0)
	for _, e := range s.expenses[userID] {
		if e.CreatedAt.Before(from) || e.CreatedAt.After(to) {
			continue
		}
		res = append(res, e)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}
