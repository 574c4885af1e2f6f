package migrations

import (
	"fmt"
	"time"

	"github.com/DJSYT/MineCloud/internal/domain/inquiry"
	"github.com/DJSYT/MineCloud/internal/domain/tracking"
	"github.com/DJSYT/MineCloud/internal/domain/user"
	"github.com/DJSYT/MineCloud/internal/infrastructure/persistence/postgres/connection"
	"go.uber.org/zap"
)

// MigrationRecord tracks the migration history
type MigrationRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null;unique"`
	Version   int       `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for migration records
func (MigrationRecord) TableName() string {
	return "schema_migrations"
}

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *connection.Database, logger *zap.Logger) error {
	logger.Info("Starting automatic database migration...")

	if err := db.AutoMigrate(&MigrationRecord{}); err != nil {
		return fmt.Errorf("failed to create migration record table: %v", err)
	}

	models := []interface{}{
		&user.User{},
		&inquiry.ServiceInquiry{},
		&tracking.DiscordJoin{},
		&tracking.PageView{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			logger.Error("Migration failed", zap.Any("model", fmt.Sprintf("%T", model)), zap.Error(err))
			return fmt.Errorf("failed to migrate %T: %v", model, err)
		}
	}

	record := MigrationRecord{
		Name:      "auto_migrate",
		Version:   1,
		AppliedAt: time.Now(),
	}
	if err := db.Where("name = ?", record.Name).FirstOrCreate(&record).Error; err != nil {
		logger.Warn("Could not record migration", zap.Error(err))
	}

	logger.Info("Database migration completed successfully")
	return nil
}
