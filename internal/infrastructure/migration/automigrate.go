package migration

import (
	"fmt"

	"gorm.io/gorm"

	"storeops/internal/shared/logger"
)

// GormAutoMigrateStrategy applies the schema directly from the model
// structs. Convenient for development; never used in release mode where
// versioned scripts are authoritative.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().Named("migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		s.logger.Warn("no models provided for auto migration")
		return nil
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	s.logger.Infow("auto migration completed", "models_count", len(models))
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
