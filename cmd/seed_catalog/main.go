package main

import (
	"work_exchange/configs"
	"work_exchange/internal/catalog"
	"work_exchange/internal/db"
	"work_exchange/internal/db/repositories"
	"work_exchange/internal/di"
)

// seed_catalog writes the built-in texts, buttons and occupations so editors
// have rows to change. Rows that already exist are overwritten.
func main() {
	config, err := configs.LoadSeedCatalogConfig()
	logger := di.NewLogger(config.Logger, "")
	defer func() { _ = logger.Sync() }()

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}

	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer database.Close()

	catalogRepository := repositories.NewCatalogRepository(database)

	if err := catalogRepository.UpsertTexts(catalog.DefaultTexts); err != nil {
		logger.Fatalw("failed to seed texts", "error", err)
	}
	if err := catalogRepository.UpsertButtons(catalog.DefaultButtons); err != nil {
		logger.Fatalw("failed to seed buttons", "error", err)
	}
	if err := catalogRepository.UpsertOccupations(catalog.DefaultOccupations); err != nil {
		logger.Fatalw("failed to seed occupations", "error", err)
	}

	logger.Infow("catalog seeded",
		"texts", len(catalog.DefaultTexts),
		"buttons", len(catalog.DefaultButtons),
		"occupations", len(catalog.DefaultOccupations),
	)
}
