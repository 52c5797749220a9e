package storage

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/appliedlogix/component-requests/internal/request"
)

// MemoryRepository is an in-memory implementation of Repository.
// Useful for testing and development.
type MemoryRepository struct {
	mu       sync.RWMutex
	requests map[primitive.ObjectID]*request.ComponentRequest
}

// NewMemoryRepository creates a new in-memory request repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		requests: make(map[primitive.ObjectID]*request.ComponentRequest),
	}
}

func (m *MemoryRepository) Insert(ctx context.Context, r *request.ComponentRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}

	// Store a copy to prevent external modification
	cp := *r
	m.requests[r.ID] = &cp
	return nil
}

func (m *MemoryRepository) Get(ctx context.Context, id primitive.ObjectID) (*request.ComponentRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, exists := m.requests[id]
	if !exists {
		return nil, request.ErrNotFound
	}

	cp := *r
	return &cp, nil
}

func (m *MemoryRepository) ListAll(ctx context.Context) ([]*request.ComponentRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*request.ComponentRequest, 0, len(m.requests))
	for _, r := range m.requests {
		cp := *r
		result = append(result, &cp)
	}
	return result, nil
}

func (m *MemoryRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status request.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, exists := m.requests[id]
	if !exists {
		return request.ErrNotFound
	}

	r.Status = status
	return nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.requests[id]; !exists {
		return request.ErrNotFound
	}

	delete(m.requests, id)
	return nil
}
