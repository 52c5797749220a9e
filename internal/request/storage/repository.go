package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/appliedlogix/component-requests/internal/request"
)

// Repository defines the interface for component request storage.
type Repository interface {
	// Insert persists a new request and assigns its identifier.
	Insert(ctx context.Context, r *request.ComponentRequest) error

	// Get retrieves a request by identifier. Returns request.ErrNotFound
	// if no document matches.
	Get(ctx context.Context, id primitive.ObjectID) (*request.ComponentRequest, error)

	// ListAll returns every request in the collection, in store order.
	// The result is an eager snapshot taken at call time.
	ListAll(ctx context.Context) ([]*request.ComponentRequest, error)

	// UpdateStatus atomically sets the status of the request with the
	// given identifier. Returns request.ErrNotFound if no document matches.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status request.Status) error

	// Delete removes a request permanently. This is a hard delete.
	// Returns request.ErrNotFound if no document matches.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
