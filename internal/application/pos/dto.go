package pos

import (
	"time"

	"github.com/google/uuid"
)

// CartItemRequest is one line in a POS cart
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// DiscountRequest is an optional register discount applied to the whole cart
type DiscountRequest struct {
	// Type is "percent" or "fixed"
	Type  string  `json:"type" binding:"required,oneof=percent fixed"`
	Value float64 `json:"value" binding:"required,gt=0"`
}

// AddressRequest carries a postal address from the register screen
type AddressRequest struct {
	FirstName string `json:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
	Company   string `json:"company" binding:"max=200"`
	Line1     string `json:"address_1" binding:"max=255"`
	Line2     string `json:"address_2" binding:"max=255"`
	City      string `json:"city" binding:"max=100"`
	Region    string `json:"state" binding:"max=100"`
	Postcode  string `json:"postcode" binding:"max=20"`
	Country   string `json:"country" binding:"omitempty,len=2"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"max=50"`
}

// CreateOrderRequest is the register checkout payload
type CreateOrderRequest struct {
	Items          []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerID     string            `json:"customer_id" binding:"omitempty,uuid"`
	ShippingAmount float64           `json:"shipping_amount" binding:"omitempty,gte=0"`
	Discount       *DiscountRequest  `json:"discount"`
	Billing        *AddressRequest   `json:"billing"`
	Shipping       *AddressRequest   `json:"shipping"`
	PaymentMethod  string            `json:"payment_method" binding:"omitempty,oneof=pos_cash cod pos_card pos_bank pos_custom"`
	Status         string            `json:"status" binding:"omitempty,oneof=pending processing on-hold completed"`
}

// OrderResponse is the created order as returned to the register
type OrderResponse struct {
	ID            string    `json:"id"`
	Number        string    `json:"number"`
	Status        string    `json:"status"`
	Currency      string    `json:"currency"`
	Subtotal      string    `json:"subtotal"`
	ShippingTotal string    `json:"shipping_total"`
	DiscountTotal string    `json:"discount_total"`
	GrandTotal    string    `json:"grand_total"`
	PaymentMethod string    `json:"payment_method"`
	PaymentLabel  string    `json:"payment_label"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProductResponse is a catalog entry on the register screen
type ProductResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Price string `json:"price"`
	// ImageURL is the thumbnail shown on the product grid, empty when the
	// product has no image.
	ImageURL string `json:"image_url,omitempty"`
}

// CustomerResponse is a customer match on the register screen
type CustomerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// SearchRequest is the shared search query shape
type SearchRequest struct {
	Query string `form:"q" binding:"max=200"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func parseOptionalUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
