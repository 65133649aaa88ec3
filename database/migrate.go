package database

import (
	"parttime_backend/internal/logger"
	"parttime_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectGorm opens the postgres pool via pgx.
func ConnectGorm(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema. Order matters: users before the
// tables that reference them.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 lives in uuid-ossp.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Job{},
		&models.Application{},
	)
	if err != nil {
		return err
	}

	logger.Info("Database migration complete")
	return nil
}
