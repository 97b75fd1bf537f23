package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/srpos/backend/internal/domain/catalog"
	"github.com/srpos/backend/internal/domain/shared"
	"github.com/srpos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.Repository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Search matches active products against name and SKU, newest first
func (r *GormProductRepository) Search(ctx context.Context, query string, limit int) ([]*catalog.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []models.ProductModel
	q := r.db.WithContext(ctx).Where("active = ?", true)
	if term := strings.TrimSpace(query); term != "" {
		pattern := "%" + term + "%"
		q = q.Where("name ILIKE ? OR sku ILIKE ?", pattern, pattern)
	}
	if err := q.Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	products := make([]*catalog.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].ToDomain())
	}
	return products, nil
}
