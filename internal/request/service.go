package request

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the storage contract the service drives. It is satisfied by
// storage.MongoRepository and storage.MemoryRepository.
type Store interface {
	Insert(ctx context.Context, r *ComponentRequest) error
	Get(ctx context.Context, id primitive.ObjectID) (*ComponentRequest, error)
	ListAll(ctx context.Context) ([]*ComponentRequest, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Service enforces the schema on every write before it reaches storage.
// Validation failures come back as *ValidationError, missing documents as
// ErrNotFound, illegal status moves as *TransitionError; anything else is a
// storage failure, logged here and returned wrapped.
type Service struct {
	store Store
}

// NewService creates a request service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create builds a request from p with defaults applied, validates it, and
// persists it. The created request, with its store-assigned identifier and
// request date, is returned.
func (s *Service) Create(ctx context.Context, p Params) (*ComponentRequest, error) {
	r := New(p)
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Insert(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to persist request: %w", err)
	}
	return r, nil
}

// CreateSample persists the fixed canonical example record. It exists to
// smoke-test the pipeline end to end and is the only entry point that
// ignores caller input; Create never substitutes fields.
func (s *Service) CreateSample(ctx context.Context) (*ComponentRequest, error) {
	r := Sample()
	if err := s.store.Insert(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to persist sample request: %w", err)
	}
	return r, nil
}

// ListAll returns every request in the collection, in store order.
func (s *Service) ListAll(ctx context.Context) ([]*ComponentRequest, error) {
	return s.store.ListAll(ctx)
}

// Get retrieves a single request by identifier.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*ComponentRequest, error) {
	return s.store.Get(ctx, id)
}

// UpdateStatus moves the request with the given identifier to status.
// Outcomes are distinct: nil on confirmed persistence, ErrNotFound when the
// identifier has no document, *ValidationError when status is outside the
// vocabulary, *TransitionError when the move is illegal from the current
// status. Storage failures are logged and returned wrapped.
func (s *Service) UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status) error {
	if !status.Valid() {
		return NewEnumError("status", string(status))
	}

	current, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		slog.Error("Storage failure looking up request for status update",
			"id", id.Hex(), "error", err)
		return fmt.Errorf("failed to look up request: %w", err)
	}

	if !CanTransition(current.Status, status) {
		return &TransitionError{From: current.Status, To: status}
	}

	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, ErrNotFound) {
			// Deleted between the lookup and the update.
			return ErrNotFound
		}
		slog.Error("Storage failure updating request status",
			"id", id.Hex(), "status", status, "error", err)
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

// Delete removes the request with the given identifier permanently.
// Returns nil only when the document existed and was removed; ErrNotFound
// when it did not exist. Storage failures are logged and returned wrapped.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		slog.Error("Storage failure deleting request",
			"id", id.Hex(), "error", err)
		return fmt.Errorf("failed to delete request: %w", err)
	}
	return nil
}
