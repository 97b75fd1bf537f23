package pos

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/srpos/backend/internal/domain/catalog"
	"github.com/srpos/backend/internal/domain/order"
	"github.com/srpos/backend/internal/domain/partner"
	"github.com/srpos/backend/internal/domain/settings"
	"github.com/srpos/backend/internal/domain/shared"
)

// discountFeeName labels the negative fee line a register discount is
// recorded as. Documents derive the displayed discount from these lines.
const discountFeeName = "POS Discount"

// paymentLabels maps register payment methods to their display names
var paymentLabels = map[string]string{
	"pos_cash":   "Cash",
	"cod":        "Cash on Delivery",
	"pos_card":   "Card",
	"pos_bank":   "Bank",
	"pos_custom": "Custom POS",
}

// PaymentLabel returns the display name for a register payment method,
// falling back to the raw method string.
func PaymentLabel(method string) string {
	if label, ok := paymentLabels[method]; ok {
		return label
	}
	return method
}

// Service handles register checkouts and the product/customer lookups
// behind the register screen.
type Service struct {
	orders    order.Repository
	products  catalog.Repository
	customers partner.Repository
	settings  settings.Repository
	currency  string
	// now and newNumber are swappable for tests
	now       func() time.Time
	newNumber func() string
	logger    *zap.Logger
}

// NewService creates a POS Service. currency is the shop currency code
// applied to every register order.
func NewService(
	orders order.Repository,
	products catalog.Repository,
	customers partner.Repository,
	settingsRepo settings.Repository,
	currency string,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if currency == "" {
		currency = "BDT"
	}
	return &Service{
		orders:    orders,
		products:  products,
		customers: customers,
		settings:  settingsRepo,
		currency:  currency,
		now:       time.Now,
		newNumber: func() string {
			return strconv.FormatInt(time.Now().UnixMilli(), 10)
		},
		logger: logger,
	}
}

// CreateOrder turns a register cart into a persisted order. Unit prices come
// from the catalog, never from the request. A discount is stored as a
// negative fee line so the host's totals stay reconstructable.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.ErrEmptyCart
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	cfg = cfg.Normalized()

	items, subtotal, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	shipping := decimal.Zero
	if cfg.POSEnableShipping && req.ShippingAmount > 0 {
		shipping = decimal.NewFromFloat(req.ShippingAmount).Round(2)
	}

	var fees []order.FeeLine
	discount := decimal.Zero
	if cfg.POSEnableDiscount && req.Discount != nil {
		discount = discountAmount(subtotal, req.Discount)
		if discount.GreaterThan(decimal.Zero) {
			fees = append(fees, order.FeeLine{
				ID:    uuid.New(),
				Name:  discountFeeName,
				Total: discount.Neg(),
			})
		}
	}

	status := order.Status(req.Status)
	if !status.IsValid() {
		status = order.Status(cfg.POSDefaultStatus)
		if !status.IsValid() {
			status = order.StatusProcessing
		}
	}

	payment := req.PaymentMethod
	if payment == "" {
		payment = cfg.POSDefaultPayment
	}

	customerID := parseOptionalUUID(req.CustomerID)
	if customerID == uuid.Nil {
		customerID = cfg.POSDefaultCustomer
	}

	o := &order.Order{
		ID:            uuid.New(),
		Number:        s.newNumber(),
		Status:        status,
		Currency:      s.currency,
		CreatedAt:     s.now(),
		Items:         items,
		Fees:          fees,
		Subtotal:      subtotal,
		ShippingTotal: shipping,
		DiscountTotal: discount,
		GrandTotal:    subtotal.Add(shipping).Sub(discount),
		Billing:       toAddress(req.Billing),
		Shipping:      toAddress(req.Shipping),
		PaymentMethod: payment,
		CustomerID:    customerID,
	}

	if o.Billing.IsEmpty() && customerID != uuid.Nil {
		s.prefillBilling(ctx, o, customerID)
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("POS order created",
		zap.String("order_id", o.ID.String()),
		zap.String("number", o.Number),
		zap.String("grand_total", o.GrandTotal.StringFixed(2)))

	return toOrderResponse(o), nil
}

// SearchProducts looks up active catalog entries for the register grid
func (s *Service) SearchProducts(ctx context.Context, req SearchRequest, imageURL func(uuid.UUID) string) ([]ProductResponse, error) {
	products, err := s.products.Search(ctx, req.Query, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp := ProductResponse{
			ID:    p.ID.String(),
			Name:  p.Name,
			SKU:   p.SKU,
			Price: p.Price.StringFixed(2),
		}
		if imageURL != nil && p.ImageID != uuid.Nil {
			resp.ImageURL = imageURL(p.ImageID)
		}
		out = append(out, resp)
	}
	return out, nil
}

// SearchCustomers looks up customers for register checkout prefill
func (s *Service) SearchCustomers(ctx context.Context, req SearchRequest) ([]CustomerResponse, error) {
	customers, err := s.customers.Search(ctx, req.Query, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerResponse{
			ID:        c.ID.String(),
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
		})
	}
	return out, nil
}

// buildItems prices the cart lines from the catalog
func (s *Service) buildItems(ctx context.Context, reqItems []CartItemRequest) ([]order.LineItem, decimal.Decimal, error) {
	items := make([]order.LineItem, 0, len(reqItems))
	subtotal := decimal.Zero
	for _, line := range reqItems {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, decimal.Zero, shared.NewDomainError("INVALID_INPUT", "Invalid product id")
		}
		p, err := s.products.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, decimal.Zero, shared.NewDomainError("NOT_FOUND", "Product not found")
			}
			return nil, decimal.Zero, fmt.Errorf("failed to load product: %w", err)
		}
		if !p.Active {
			return nil, decimal.Zero, shared.NewDomainError("INVALID_STATE", "Product is not available for sale")
		}
		total := p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, order.LineItem{
			ID:        uuid.New(),
			ProductID: p.ID,
			Name:      p.Name,
			SKU:       p.SKU,
			ImageID:   p.ImageID,
			Quantity:  line.Quantity,
			UnitPrice: p.Price,
			Total:     total,
		})
		subtotal = subtotal.Add(total)
	}
	return items, subtotal, nil
}

// prefillBilling fills the billing contact from the customer record when the
// register sent no address. A lookup failure just leaves it empty.
func (s *Service) prefillBilling(ctx context.Context, o *order.Order, customerID uuid.UUID) {
	c, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return
	}
	o.Billing.FirstName = c.FirstName
	o.Billing.LastName = c.LastName
	o.Billing.Email = c.Email
	o.Billing.Phone = c.Phone
}

// discountAmount resolves a discount request into an absolute amount,
// capped at the subtotal so the grand total never goes negative.
func discountAmount(subtotal decimal.Decimal, req *DiscountRequest) decimal.Decimal {
	value := decimal.NewFromFloat(req.Value)
	var amount decimal.Decimal
	if req.Type == "percent" {
		amount = subtotal.Mul(value).Div(decimal.NewFromInt(100)).Round(2)
	} else {
		amount = value.Round(2)
	}
	if amount.GreaterThan(subtotal) {
		return subtotal
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

func toAddress(req *AddressRequest) order.Address {
	if req == nil {
		return order.Address{}
	}
	return order.Address{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Line1:     req.Line1,
		Line2:     req.Line2,
		City:      req.City,
		Region:    req.Region,
		Postcode:  req.Postcode,
		Country:   req.Country,
		Email:     req.Email,
		Phone:     req.Phone,
	}
}

func toOrderResponse(o *order.Order) *OrderResponse {
	return &OrderResponse{
		ID:            o.ID.String(),
		Number:        o.Number,
		Status:        o.Status.String(),
		Currency:      o.Currency,
		Subtotal:      o.Subtotal.StringFixed(2),
		ShippingTotal: o.ShippingTotal.StringFixed(2),
		DiscountTotal: o.DiscountTotal.StringFixed(2),
		GrandTotal:    o.GrandTotal.StringFixed(2),
		PaymentMethod: o.PaymentMethod,
		PaymentLabel:  PaymentLabel(o.PaymentMethod),
		CreatedAt:     o.CreatedAt,
	}
}
