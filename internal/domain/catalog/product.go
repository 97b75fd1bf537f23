package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the host platform's catalog entry as needed by the POS cart
type Product struct {
	ID      uuid.UUID
	Name    string
	SKU     string
	Price   decimal.Decimal
	ImageID uuid.UUID // host media attachment, uuid.Nil when absent
	Active  bool
}

// Repository provides read access to the host catalog
type Repository interface {
	// FindByID returns shared.ErrNotFound when the product does not exist
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// Search matches against name and SKU, newest first
	Search(ctx context.Context, query string, limit int) ([]*Product, error)
}
