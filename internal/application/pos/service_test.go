package pos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srpos/backend/internal/domain/catalog"
	"github.com/srpos/backend/internal/domain/order"
	"github.com/srpos/backend/internal/domain/partner"
	"github.com/srpos/backend/internal/domain/settings"
	"github.com/srpos/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	created []*order.Order
	err     error
}

func (s *stubOrderRepo) FindByID(context.Context, uuid.UUID) (*order.Order, error) {
	return nil, shared.ErrNotFound
}

func (s *stubOrderRepo) Create(_ context.Context, o *order.Order) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, o)
	return nil
}

type stubProductRepo struct {
	byID map[uuid.UUID]*catalog.Product
	list []*catalog.Product
}

func (s *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubProductRepo) Search(context.Context, string, int) ([]*catalog.Product, error) {
	return s.list, nil
}

type stubCustomerRepo struct {
	byID map[uuid.UUID]*partner.Customer
	list []*partner.Customer
}

func (s *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Customer, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubCustomerRepo) Search(context.Context, string, int) ([]*partner.Customer, error) {
	return s.list, nil
}

type stubSettingsRepo struct {
	current settings.Settings
}

func (s *stubSettingsRepo) Get(context.Context) (settings.Settings, error) {
	return s.current, nil
}

func (s *stubSettingsRepo) Save(_ context.Context, v settings.Settings) error {
	s.current = v
	return nil
}

func newTestService(t *testing.T) (*Service, *stubOrderRepo, uuid.UUID) {
	t.Helper()

	productID := uuid.New()
	products := &stubProductRepo{byID: map[uuid.UUID]*catalog.Product{
		productID: {
			ID:     productID,
			Name:   "Cotton Panjabi",
			SKU:    "PNJ-01",
			Price:  decimal.NewFromInt(750),
			Active: true,
		},
	}}
	orders := &stubOrderRepo{}

	svc := NewService(orders, products, &stubCustomerRepo{}, &stubSettingsRepo{current: settings.Defaults()}, "BDT", nil)
	svc.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	svc.newNumber = func() string { return "1042" }

	return svc, orders, productID
}

func TestService_CreateOrder(t *testing.T) {
	t.Run("prices the cart from the catalog", func(t *testing.T) {
		svc, orders, productID := newTestService(t)

		resp, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
			Items: []CartItemRequest{{ProductID: productID.String(), Quantity: 2}},
		})

		require.NoError(t, err)
		assert.Equal(t, "1042", resp.Number)
		assert.Equal(t, "1500.00", resp.Subtotal)
		assert.Equal(t, "1500.00", resp.GrandTotal)
		// defaults fill in status and payment
		assert.Equal(t, "processing", resp.Status)
		assert.Equal(t, "pos_cash", resp.PaymentMethod)
		assert.Equal(t, "Cash", resp.PaymentLabel)

		require.Len(t, orders.created, 1)
		o := orders.created[0]
		require.Len(t, o.Items, 1)
		assert.Equal(t, "Cotton Panjabi", o.Items[0].Name)
		assert.True(t, o.Items[0].UnitPrice.Equal(decimal.NewFromInt(750)))
	})

	t.Run("records a percent discount as a negative fee", func(t *testing.T) {
		svc, orders, productID := newTestService(t)

		resp, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
			Items:    []CartItemRequest{{ProductID: productID.String(), Quantity: 2}},
			Discount: &DiscountRequest{Type: "percent", Value: 10},
		})

		require.NoError(t, err)
		assert.Equal(t, "150.00", resp.DiscountTotal)
		assert.Equal(t, "1350.00", resp.GrandTotal)

		o := orders.created[0]
		require.Len(t, o.Fees, 1)
		assert.Equal(t, "POS Discount", o.Fees[0].Name)
		assert.True(t, o.Fees[0].Total.Equal(decimal.NewFromInt(-150)))
	})

	t.Run("caps a fixed discount at the subtotal", func(t *testing.T) {
		svc, _, productID := newTestService(t)

		resp, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
			Items:    []CartItemRequest{{ProductID: productID.String(), Quantity: 1}},
			Discount: &DiscountRequest{Type: "fixed", Value: 9000},
		})

		require.NoError(t, err)
		assert.Equal(t, "750.00", resp.DiscountTotal)
		assert.Equal(t, "0.00", resp.GrandTotal)
	})

	t.Run("adds a manual shipping amount", func(t *testing.T) {
		svc, _, productID := newTestService(t)

		resp, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
			Items:          []CartItemRequest{{ProductID: productID.String(), Quantity: 1}},
			ShippingAmount: 60,
		})

		require.NoError(t, err)
		assert.Equal(t, "60.00", resp.ShippingTotal)
		assert.Equal(t, "810.00", resp.GrandTotal)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{})

		assert.Equal(t, shared.ErrEmptyCart, err)
	})

	t.Run("rejects an unknown product", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
			Items: []CartItemRequest{{ProductID: uuid.NewString(), Quantity: 1}},
		})

		require.Error(t, err)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "NOT_FOUND", derr.Code)
	})

	t.Run("rejects an inactive product", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		inactiveID := uuid.New()
		svc.products.(*stubProductRepo).byID[inactiveID] = &catalog.Product{
			ID:     inactiveID,
			Name:   "Old Stock",
			Price:  decimal.NewFromInt(100),
			Active: false,
		}

		_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
			Items: []CartItemRequest{{ProductID: inactiveID.String(), Quantity: 1}},
		})

		require.Error(t, err)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INVALID_STATE", derr.Code)
	})
}

func TestService_SearchProducts(t *testing.T) {
	imageID := uuid.New()
	products := &stubProductRepo{list: []*catalog.Product{
		{ID: uuid.New(), Name: "Cotton Panjabi", SKU: "PNJ-01", Price: decimal.NewFromInt(750), ImageID: imageID, Active: true},
		{ID: uuid.New(), Name: "Silk Panjabi", SKU: "PNJ-02", Price: decimal.NewFromInt(1900), Active: true},
	}}
	svc := NewService(&stubOrderRepo{}, products, &stubCustomerRepo{}, &stubSettingsRepo{current: settings.Defaults()}, "BDT", nil)

	out, err := svc.SearchProducts(context.Background(), SearchRequest{Query: "panjabi"}, func(id uuid.UUID) string {
		return "http://shop.example/media/" + id.String()
	})

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "750.00", out[0].Price)
	assert.Contains(t, out[0].ImageURL, imageID.String())
	assert.Empty(t, out[1].ImageURL)
}

func TestService_SearchCustomers(t *testing.T) {
	customers := &stubCustomerRepo{list: []*partner.Customer{
		{ID: uuid.New(), FirstName: "Rahim", LastName: "Uddin", Email: "rahim@example.com", Phone: "01712345678"},
	}}
	svc := NewService(&stubOrderRepo{}, &stubProductRepo{}, customers, &stubSettingsRepo{current: settings.Defaults()}, "BDT", nil)

	out, err := svc.SearchCustomers(context.Background(), SearchRequest{Query: "rahim"})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Rahim", out[0].FirstName)
}
