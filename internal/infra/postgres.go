package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"itinera/internal/models/db_models"
)

// InitPostgresql opens the durable preference store. The vector extension
// must exist before the embedding column can be migrated.
func InitPostgresql(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&db_models.PreferenceRow{}); err != nil {
		return nil, err
	}

	return db, nil
}

func ClosePostgresql(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
