package main

import (
	"github.com/Artser/ProStore/internal/models"
	"github.com/Artser/ProStore/pkg/config"
	"github.com/Artser/ProStore/pkg/logging"
	"github.com/rs/zerolog/log"
)

// Seeds demo data: a default category and a few notes. Existing notes
// are replaced so the command stays idempotent.
func main() {
	cfg := config.Load()
	logging.Setup(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := config.InitDB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.CloseDB()

	pg := db.Postgres
	if err := pg.AutoMigrate(&models.Category{}, &models.Note{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate seed models")
	}

	var category models.Category
	err = pg.Where(models.Category{Category: models.DefaultCategoryName}).
		FirstOrCreate(&category).Error
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure default category")
	}

	if err := pg.Where("1 = 1").Unscoped().Delete(&models.Note{}).Error; err != nil {
		log.Fatal().Err(err).Msg("Failed to clear notes")
	}

	notes := []models.Note{
		{Title: "First note"},
		{Title: "Second note"},
		{Title: "Third note"},
	}
	if err := pg.Create(&notes).Error; err != nil {
		log.Fatal().Err(err).Msg("Failed to create notes")
	}

	log.Info().Int("notes", len(notes)).Msg("Seeding completed")
}
