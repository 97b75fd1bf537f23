// Package models contains GORM-specific persistence models that map to
// database tables. These models are separate from domain entities to keep
// the domain layer free from ORM concerns.
//
// Structure:
// - base.go: shared persistence fields
// - trade.go: order models (order, line items, fee lines)
// - catalog.go: product model
// - partner.go: customer model
// - setting.go: key/value settings record
// - media.go: media attachment model
package models
