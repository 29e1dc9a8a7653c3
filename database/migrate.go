package database

import (
	"lagnasohalaa/internal/models"

	"github.com/sirupsen/logrus"
)

func MigrateDatabase() error {
	logrus.Info("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.WeddingService{},
		&models.BlogPost{},
		&models.SuccessStory{},
		&models.PricingPlan{},
	)
	if err != nil {
		logrus.Errorf("Error during migration: %v", err)
		return err
	}

	logrus.Info("Database migrations completed")
	return nil
}
