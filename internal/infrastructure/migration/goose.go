package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"storeops/internal/shared/logger"
)

//go:embed scripts/*.sql
var migrationScripts embed.FS

// GooseStrategy runs the versioned SQL scripts embedded in the binary.
// Models passed to Migrate are ignored; the scripts are authoritative.
type GooseStrategy struct {
	dialect string
	logger  logger.Interface
}

func NewGooseStrategy(dialect string) *GooseStrategy {
	if dialect == "" {
		dialect = "mysql"
	}
	return &GooseStrategy{
		dialect: dialect,
		logger:  logger.NewLogger().Named("migration.goose"),
	}
}

func (s *GooseStrategy) Migrate(db *gorm.DB, _ ...interface{}) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationScripts)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("goose migration failed: %w", err)
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	s.logger.Infow("versioned migration completed", "db_version", version)
	return nil
}

// Down rolls back the most recent migration.
func (s *GooseStrategy) Down(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationScripts)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Down(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("goose rollback failed: %w", err)
	}

	s.logger.Infow("rolled back one migration")
	return nil
}

// Status prints the applied/pending state of every script.
func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationScripts)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Status(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("goose status failed: %w", err)
	}
	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}
