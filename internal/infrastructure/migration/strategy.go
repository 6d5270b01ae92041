package migration

import "gorm.io/gorm"

// Strategy defines how schema migrations are applied.
type Strategy interface {
	// Migrate applies the schema for the given models
	Migrate(db *gorm.DB, models ...interface{}) error

	// GetName returns the strategy name for logging
	GetName() string
}
