package main

import (
	"flag"
	"log"
	"os"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Grants a role (ADMIN or TEACHER) to an existing user, looked up by email.
func main() {
	email := flag.String("email", "", "email of the user to promote")
	role := flag.String("role", string(models.RoleAdmin), "role to grant (ADMIN or TEACHER)")
	flag.Parse()

	if *email == "" {
		log.Fatal("usage: promote -email user@example.com [-role ADMIN|TEACHER]")
	}
	newRole := models.Role(*role)
	if newRole != models.RoleAdmin && newRole != models.RoleTeacher {
		log.Fatalf("Invalid role %q, must be ADMIN or TEACHER", *role)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=modcheckup port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var user models.User
	if err := db.Where("email = ?", *email).First(&user).Error; err != nil {
		log.Fatalf("User with email %s not found: %v", *email, err)
	}

	if err := db.Model(&user).Update("role", newRole).Error; err != nil {
		log.Fatalf("Failed to update role: %v", err)
	}

	log.Printf("Granted %s to %s", newRole, user.Email)
}
