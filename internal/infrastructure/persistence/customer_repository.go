package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/srpos/backend/internal/domain/partner"
	"github.com/srpos/backend/internal/domain/shared"
	"github.com/srpos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements partner.Repository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Search matches customers against name, email and phone
func (r *GormCustomerRepository) Search(ctx context.Context, query string, limit int) ([]*partner.Customer, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []models.CustomerModel
	q := r.db.WithContext(ctx)
	if term := strings.TrimSpace(query); term != "" {
		pattern := "%" + term + "%"
		q = q.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if err := q.Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	customers := make([]*partner.Customer, 0, len(records))
	for i := range records {
		customers = append(customers, records[i].ToDomain())
	}
	return customers, nil
}
