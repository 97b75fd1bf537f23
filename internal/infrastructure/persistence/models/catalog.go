package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/srpos/backend/internal/domain/catalog"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name    string          `gorm:"type:varchar(255);not null;index"`
	SKU     string          `gorm:"type:varchar(100);index"`
	Price   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ImageID uuid.UUID       `gorm:"type:uuid"`
	Active  bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		ID:      m.ID,
		Name:    m.Name,
		SKU:     m.SKU,
		Price:   m.Price,
		ImageID: m.ImageID,
		Active:  m.Active,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.ID = p.ID
	m.Name = p.Name
	m.SKU = p.SKU
	m.Price = p.Price
	m.ImageID = p.ImageID
	m.Active = p.Active
}
