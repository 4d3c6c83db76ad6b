package main

import (
	"github.com/Divyakd12/calorie-tracker/config"
	"github.com/Divyakd12/calorie-tracker/logger"
	"github.com/Divyakd12/calorie-tracker/routes"
	"github.com/Divyakd12/calorie-tracker/services"
	"github.com/Divyakd12/calorie-tracker/storage"

	"github.com/joho/godotenv"
)

func main() {
	log := logger.New("calorie-tracker")

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	records := services.NewRecordStore(storage.NewFileStore(cfg.UsersFile), log)
	catalog := services.NewFoodCatalog(storage.NewFileStore(cfg.FoodsFile), log)

	r := routes.SetupRouter(records, catalog)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
