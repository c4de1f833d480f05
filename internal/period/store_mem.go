package period

import (
	"context"
	"sort"
	"sync"
)

type memoryStore struct {
	mu      sync.RWMutex
	periods map[string]Period
}

// NewInMemoryStore backs the period API without a database, for tests
// and single-user dev runs.
func NewInMemoryStore() Store {
	return &memoryStore{periods: map[string]Period{}}
}

func (m *memoryStore) Get(_ context.Context, id string) (Period, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.periods[id]
	if !ok {
		return Period{}, ErrNotFound
	}
	return p, nil
}

func (m *memoryStore) List(_ context.Context) ([]Period, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Period, 0, len(m.periods))
	for _, p := range m.periods {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryStore) Put(_ context.Context, p Period) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.periods[p.ID] = p
	return nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.periods, id)
	return nil
}
