package media

import (
	"context"

	"github.com/google/uuid"
)

// Attachment is a host media library record. FilePath is relative to the
// uploads directory.
type Attachment struct {
	ID       uuid.UUID
	FileName string
	FilePath string
	MimeType string
}

// Repository provides read access to the host media library
type Repository interface {
	// FindByID returns shared.ErrNotFound when the attachment does not exist
	FindByID(ctx context.Context, id uuid.UUID) (*Attachment, error)
}
