package models

import "time"

// SettingModel stores a configuration record as a JSON document keyed by
// name. The POS settings live under a single well-known key.
type SettingModel struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (SettingModel) TableName() string {
	return "settings"
}
