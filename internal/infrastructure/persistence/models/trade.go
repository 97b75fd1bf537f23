package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/srpos/backend/internal/domain/order"
)

// OrderModel is the persistence model for the Order aggregate.
type OrderModel struct {
	BaseModel
	Number        string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'BDT'"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ShippingTotal decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountTotal decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	GrandTotal    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;index"`

	BillingFirstName string `gorm:"type:varchar(100)"`
	BillingLastName  string `gorm:"type:varchar(100)"`
	BillingCompany   string `gorm:"type:varchar(200)"`
	BillingLine1     string `gorm:"type:varchar(255)"`
	BillingLine2     string `gorm:"type:varchar(255)"`
	BillingCity      string `gorm:"type:varchar(100)"`
	BillingRegion    string `gorm:"type:varchar(100)"`
	BillingPostcode  string `gorm:"type:varchar(20)"`
	BillingCountry   string `gorm:"type:varchar(2)"`
	BillingEmail     string `gorm:"type:varchar(200)"`
	BillingPhone     string `gorm:"type:varchar(50)"`

	ShippingFirstName string `gorm:"type:varchar(100)"`
	ShippingLastName  string `gorm:"type:varchar(100)"`
	ShippingCompany   string `gorm:"type:varchar(200)"`
	ShippingLine1     string `gorm:"type:varchar(255)"`
	ShippingLine2     string `gorm:"type:varchar(255)"`
	ShippingCity      string `gorm:"type:varchar(100)"`
	ShippingRegion    string `gorm:"type:varchar(100)"`
	ShippingPostcode  string `gorm:"type:varchar(20)"`
	ShippingCountry   string `gorm:"type:varchar(2)"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Fees  []OrderFeeModel  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is one product line on an order.
type OrderItemModel struct {
	BaseModel
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	SKU       string          `gorm:"type:varchar(100)"`
	ImageID   uuid.UUID       `gorm:"type:uuid"`
	Quantity  int             `gorm:"not null;default:1"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Total     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderFeeModel is one fee line on an order. Negative totals encode
// discounts applied at the register.
type OrderFeeModel struct {
	BaseModel
	OrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name    string          `gorm:"type:varchar(255);not null"`
	Total   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (OrderFeeModel) TableName() string {
	return "order_fees"
}

// ToDomain converts the persistence model to a domain Order aggregate.
func (m *OrderModel) ToDomain() *order.Order {
	o := &order.Order{
		ID:            m.ID,
		Number:        m.Number,
		Status:        order.Status(m.Status),
		Currency:      m.Currency,
		CreatedAt:     m.CreatedAt,
		Subtotal:      m.Subtotal,
		ShippingTotal: m.ShippingTotal,
		DiscountTotal: m.DiscountTotal,
		GrandTotal:    m.GrandTotal,
		PaymentMethod: m.PaymentMethod,
		CustomerID:    m.CustomerID,
		Billing: order.Address{
			FirstName: m.BillingFirstName,
			LastName:  m.BillingLastName,
			Company:   m.BillingCompany,
			Line1:     m.BillingLine1,
			Line2:     m.BillingLine2,
			City:      m.BillingCity,
			Region:    m.BillingRegion,
			Postcode:  m.BillingPostcode,
			Country:   m.BillingCountry,
			Email:     m.BillingEmail,
			Phone:     m.BillingPhone,
		},
		Shipping: order.Address{
			FirstName: m.ShippingFirstName,
			LastName:  m.ShippingLastName,
			Company:   m.ShippingCompany,
			Line1:     m.ShippingLine1,
			Line2:     m.ShippingLine2,
			City:      m.ShippingCity,
			Region:    m.ShippingRegion,
			Postcode:  m.ShippingPostcode,
			Country:   m.ShippingCountry,
		},
	}
	for _, item := range m.Items {
		o.Items = append(o.Items, order.LineItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			SKU:       item.SKU,
			ImageID:   item.ImageID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		})
	}
	for _, fee := range m.Fees {
		o.Fees = append(o.Fees, order.FeeLine{
			ID:    fee.ID,
			Name:  fee.Name,
			Total: fee.Total,
		})
	}
	return o
}

// FromDomain populates the persistence model from a domain Order aggregate.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.ID = o.ID
	m.Number = o.Number
	m.Status = string(o.Status)
	m.Currency = o.Currency
	m.Subtotal = o.Subtotal
	m.ShippingTotal = o.ShippingTotal
	m.DiscountTotal = o.DiscountTotal
	m.GrandTotal = o.GrandTotal
	m.PaymentMethod = o.PaymentMethod
	m.CustomerID = o.CustomerID

	m.BillingFirstName = o.Billing.FirstName
	m.BillingLastName = o.Billing.LastName
	m.BillingCompany = o.Billing.Company
	m.BillingLine1 = o.Billing.Line1
	m.BillingLine2 = o.Billing.Line2
	m.BillingCity = o.Billing.City
	m.BillingRegion = o.Billing.Region
	m.BillingPostcode = o.Billing.Postcode
	m.BillingCountry = o.Billing.Country
	m.BillingEmail = o.Billing.Email
	m.BillingPhone = o.Billing.Phone

	m.ShippingFirstName = o.Shipping.FirstName
	m.ShippingLastName = o.Shipping.LastName
	m.ShippingCompany = o.Shipping.Company
	m.ShippingLine1 = o.Shipping.Line1
	m.ShippingLine2 = o.Shipping.Line2
	m.ShippingCity = o.Shipping.City
	m.ShippingRegion = o.Shipping.Region
	m.ShippingPostcode = o.Shipping.Postcode
	m.ShippingCountry = o.Shipping.Country

	m.Items = m.Items[:0]
	for _, item := range o.Items {
		m.Items = append(m.Items, OrderItemModel{
			BaseModel: BaseModel{ID: item.ID},
			OrderID:   o.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			SKU:       item.SKU,
			ImageID:   item.ImageID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		})
	}
	m.Fees = m.Fees[:0]
	for _, fee := range o.Fees {
		m.Fees = append(m.Fees, OrderFeeModel{
			BaseModel: BaseModel{ID: fee.ID},
			OrderID:   o.ID,
			Name:      fee.Name,
			Total:     fee.Total,
		})
	}
}
