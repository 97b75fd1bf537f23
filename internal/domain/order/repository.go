package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository provides read/write access to the host platform's order store
type Repository interface {
	// FindByID loads a full order including items, fees and addresses.
	// Returns shared.ErrNotFound when the order does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// Create persists a new order with all of its lines
	Create(ctx context.Context, o *Order) error
}
