package seeds

import (
	"log"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/database"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
)

// SeedSubjects inserts a starter catalogue of subjects, skipping any
// abbreviation that already exists.
func SeedSubjects() error {
	log.Println("Seeding subjects...")

	subjects := []models.Subject{
		{Abbr: "CS1101S", Name: "Programming Methodology"},
		{Abbr: "CS2030", Name: "Programming Methodology II"},
		{Abbr: "CS2040", Name: "Data Structures and Algorithms"},
		{Abbr: "CS2103T", Name: "Software Engineering"},
		{Abbr: "CS3219", Name: "Software Engineering Principles and Patterns"},
		{Abbr: "ST2334", Name: "Probability and Statistics"},
	}

	created := 0
	for _, s := range subjects {
		var existing models.Subject
		if err := database.DB.Where("abbr = ?", s.Abbr).First(&existing).Error; err == nil {
			continue
		}
		s.Active = true
		if err := database.DB.Create(&s).Error; err != nil {
			return err
		}
		created++
	}

	log.Printf("Subjects seeded: %d new", created)
	return nil
}
