package seeds

import (
	"log"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/database"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	"github.com/google/uuid"
)

// GetOrCreateSystemAdmin ensures the curation account exists.
func GetOrCreateSystemAdmin() (models.User, error) {
	log.Println("Checking system admin user...")

	email := "admin@modcheckup.app"

	var user models.User
	err := database.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		log.Printf("System admin found: %s", user.Email)
		return user, nil
	}

	user = models.User{
		ID:          uuid.New().String(),
		Email:       email,
		DisplayName: "Mod Checkup Team",
		Role:        models.RoleAdmin,
		Active:      true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	log.Printf("System admin created: %s", user.Email)
	return user, nil
}
