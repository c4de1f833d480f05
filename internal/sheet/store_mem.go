package sheet

import (
	"context"
	"sort"
	"sync"
)

type memoryStore struct {
	mu     sync.RWMutex
	sheets map[string]Sheet
}

// NewInMemoryStore keeps sheets in a map, for tests and dev runs.
func NewInMemoryStore() Store {
	return &memoryStore{sheets: map[string]Sheet{}}
}

func (m *memoryStore) Get(_ context.Context, studentID, periodID string) (Sheet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sh, ok := m.sheets[SheetID(studentID, periodID)]
	if !ok {
		return Sheet{}, ErrNotFound
	}
	return sh, nil
}

func (m *memoryStore) Put(_ context.Context, sh Sheet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sheets[sh.ID] = sh
	return nil
}

func (m *memoryStore) List(_ context.Context, opts ListOpts) ([]Sheet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Sheet
	for _, sh := range m.sheets {
		if opts.PeriodID != "" && sh.PeriodID != opts.PeriodID {
			continue
		}
		if opts.StudentID != "" && sh.StudentID != opts.StudentID {
			continue
		}
		if opts.Status != StatusNone && sh.Status != opts.Status {
			continue
		}
		out = append(out, sh)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return nil, nil
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}
