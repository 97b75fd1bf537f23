package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/srpos/backend/internal/domain/catalog"
	"github.com/srpos/backend/internal/domain/order"
	"github.com/srpos/backend/internal/domain/partner"
	"github.com/srpos/backend/internal/domain/settings"
	"github.com/srpos/backend/internal/domain/shared"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubOrderRepo struct {
	orders  map[uuid.UUID]*order.Order
	created []*order.Order
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	if o, ok := r.orders[id]; ok {
		return o, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubOrderRepo) Create(_ context.Context, o *order.Order) error {
	r.created = append(r.created, o)
	return nil
}

type stubProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubProductRepo) Search(_ context.Context, _ string, _ int) ([]*catalog.Product, error) {
	out := make([]*catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

type stubCustomerRepo struct {
	customers map[uuid.UUID]*partner.Customer
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Customer, error) {
	if c, ok := r.customers[id]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubCustomerRepo) Search(_ context.Context, _ string, _ int) ([]*partner.Customer, error) {
	out := make([]*partner.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

type stubSettingsRepo struct {
	current settings.Settings
	saved   []settings.Settings
	err     error
}

func (r *stubSettingsRepo) Get(_ context.Context) (settings.Settings, error) {
	if r.err != nil {
		return settings.Settings{}, r.err
	}
	return r.current, nil
}

func (r *stubSettingsRepo) Save(_ context.Context, s settings.Settings) error {
	if r.err != nil {
		return r.err
	}
	r.current = s
	r.saved = append(r.saved, s)
	return nil
}
