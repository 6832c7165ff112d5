package main

import (
	"log"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/config"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/database"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Post{},
		&models.Comment{},
		&models.Reaction{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	if _, err := seeds.GetOrCreateSystemAdmin(); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if err := seeds.SeedSubjects(); err != nil {
		log.Fatalf("Failed to seed subjects: %v", err)
	}

	log.Println("Seeding complete")
}
