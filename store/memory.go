package store

import (
	"context"
	"sync"

	"empregoja-backend/models"
)

// Memory keeps the ledger in process memory. Everything is lost on restart;
// this is the default backing when LEDGER_DB is not set.
type Memory struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*models.Payment
}

func NewMemory() *Memory {
	return &Memory{byID: make(map[string]*models.Payment)}
}

func (m *Memory) Create(_ context.Context, p *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *p
	m.byID[cp.ID] = &cp
	m.order = append(m.order, cp.ID)
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (models.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.byID[id]
	if !ok {
		return models.Payment{}, ErrNotFound
	}
	return *p, nil
}

func (m *Memory) Update(_ context.Context, id string, fn func(*models.Payment) error) (models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.byID[id]
	if !ok {
		return models.Payment{}, ErrNotFound
	}

	cp := *p
	if err := fn(&cp); err != nil {
		return models.Payment{}, err
	}
	*p = cp
	return cp, nil
}

func (m *Memory) List(_ context.Context) ([]models.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Payment, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.byID[id])
	}
	return out, nil
}
