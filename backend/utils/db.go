package utils

import (
	"fmt"
	"samvidhan-sarathi/backend/config"
	"samvidhan-sarathi/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Content{},
		&models.Question{},
		&models.Progress{},
		&models.Badge{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
