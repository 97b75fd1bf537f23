package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/srpos/backend/internal/domain/media"
	"github.com/srpos/backend/internal/domain/shared"
	"github.com/srpos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAttachmentRepository implements media.Repository using GORM
type GormAttachmentRepository struct {
	db *gorm.DB
}

// NewGormAttachmentRepository creates a new GormAttachmentRepository
func NewGormAttachmentRepository(db *gorm.DB) *GormAttachmentRepository {
	return &GormAttachmentRepository{db: db}
}

// FindByID finds an attachment by its ID
func (r *GormAttachmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*media.Attachment, error) {
	var model models.AttachmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &media.Attachment{
		ID:       model.ID,
		FileName: model.FileName,
		FilePath: model.FilePath,
		MimeType: model.MimeType,
	}, nil
}
