package main

import (
	"lagnasohalaa/database"
	"lagnasohalaa/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			logrus.Warnf("No .env file found: %v", err)
		}
	}
}

func main() {
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		logrus.Fatalf("Failed to run database migrations: %v", err)
	}

	if err := utils.SeedDatabase(database.DB); err != nil {
		logrus.Fatalf("Error seeding database: %v", err)
	}
}
