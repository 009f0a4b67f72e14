package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"match-service/internal/domain"
)

type modelInfo struct {
	model     interface{}
	tableName string
}

func models() []modelInfo {
	return []modelInfo{
		{&domain.Match{}, "matches"},
		{&domain.Participation{}, "participations"},
		{&domain.Invitation{}, "invitations"},
	}
}

// AutoMigrate creates or updates the match tables, their indexes and check
// constraints from the domain struct tags
func AutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	for _, m := range models() {
		existed := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", existed),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Info("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", existed),
		)
	}
	return nil
}

// AutoMigrateWithRetry runs AutoMigrate up to maxRetries times with a linear backoff
func AutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = AutoMigrate(db, logger); err == nil {
			return nil
		}
		if attempt < maxRetries {
			wait := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying...",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Duration("backoff", wait),
				zap.Error(err),
			)
			time.Sleep(wait)
		}
	}
	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
