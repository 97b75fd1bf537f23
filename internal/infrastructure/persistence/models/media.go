package models

// AttachmentModel is the host media library record. FilePath is relative to
// the uploads directory.
type AttachmentModel struct {
	BaseModel
	FileName string `gorm:"type:varchar(255);not null"`
	FilePath string `gorm:"type:varchar(500);not null"`
	MimeType string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (AttachmentModel) TableName() string {
	return "attachments"
}
