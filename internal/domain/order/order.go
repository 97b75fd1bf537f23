package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of an order as reported by the host
// platform. The document pipeline only displays it; transitions are owned by
// the host.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusOnHold     Status = "on-hold"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
	StatusFailed     Status = "failed"
)

// IsValid checks if the Status is a recognized value
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusOnHold, StatusCompleted,
		StatusCancelled, StatusRefunded, StatusFailed:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// DisplayName returns the human readable status label
func (s Status) DisplayName() string {
	switch s {
	case StatusOnHold:
		return "On Hold"
	default:
		if s == "" {
			return ""
		}
		return strings.ToUpper(string(s[0])) + string(s[1:])
	}
}

// Color returns the badge color used for the status on rendered documents
func (s Status) Color() string {
	switch s {
	case StatusCompleted:
		return "#16a34a"
	case StatusProcessing, StatusOnHold:
		return "#f59e0b"
	case StatusCancelled, StatusFailed, StatusRefunded:
		return "#ef4444"
	default:
		return "#3b82f6"
	}
}

// Address is a postal address embedded in an order
type Address struct {
	FirstName string
	LastName  string
	Company   string
	Line1     string
	Line2     string
	City      string
	Region    string
	Postcode  string
	Country   string // ISO 3166-1 alpha-2
	Email     string
	Phone     string
}

// FullName returns the concatenated first and last name
func (a Address) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(a.FirstName) + " " + strings.TrimSpace(a.LastName))
}

// IsEmpty reports whether the address carries no location information
func (a Address) IsEmpty() bool {
	return strings.TrimSpace(a.Line1) == "" && strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.Postcode) == "" && strings.TrimSpace(a.Country) == ""
}

// LineItem is a product line in an order
type LineItem struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Name      string
	SKU       string
	ImageID   uuid.UUID // host media attachment, uuid.Nil when absent
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// FeeLine is an order-level adjustment. POS discounts are stored as fee lines
// with a negative total.
type FeeLine struct {
	ID    uuid.UUID
	Name  string
	Total decimal.Decimal
}

// Order is the host platform's order as consumed by the document pipeline.
// Totals are trusted as computed by the host and never recomputed here.
type Order struct {
	ID            uuid.UUID
	Number        string
	Status        Status
	Currency      string
	CreatedAt     time.Time
	Items         []LineItem
	Fees          []FeeLine
	Subtotal      decimal.Decimal
	ShippingTotal decimal.Decimal
	DiscountTotal decimal.Decimal
	GrandTotal    decimal.Decimal
	Billing       Address
	Shipping      Address
	PaymentMethod string
	CustomerID    uuid.UUID
}

// DisplayDiscount resolves the discount amount shown on invoices. The host
// sometimes records a true discount total and sometimes encodes the discount
// as a negative fee line; the discount field wins when it is positive,
// otherwise the absolute sum of negative fee totals is used. This precedence
// must not change or displayed totals on existing orders would shift.
func (o *Order) DisplayDiscount() decimal.Decimal {
	if o.DiscountTotal.GreaterThan(decimal.Zero) {
		return o.DiscountTotal
	}
	sum := decimal.Zero
	for _, f := range o.Fees {
		if f.Total.IsNegative() {
			sum = sum.Add(f.Total.Abs())
		}
	}
	return sum
}

// HasShippingAddress reports whether a distinct shipping address exists
func (o *Order) HasShippingAddress() bool {
	return !o.Shipping.IsEmpty()
}
