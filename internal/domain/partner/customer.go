package partner

import (
	"context"

	"github.com/google/uuid"
)

// Customer is a host platform customer record used to prefill POS orders
type Customer struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Repository provides read access to the host customer store
type Repository interface {
	// FindByID returns shared.ErrNotFound when the customer does not exist
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	// Search matches name, email and phone
	Search(ctx context.Context, query string, limit int) ([]*Customer, error)
}
