package services

import (
	"encoding/json"
	"errors"
	"io/fs"

	"github.com/Divyakd12/calorie-tracker/models"
	"github.com/Divyakd12/calorie-tracker/storage"

	"github.com/rs/zerolog"
)

// FoodCatalog serves the static food list. The document is seeded on first
// access and re-read on every call, mirroring the record store's
// reload-per-request policy. There is no mutation path.
type FoodCatalog struct {
	store storage.DocumentStore
	log   zerolog.Logger
}

func NewFoodCatalog(store storage.DocumentStore, log zerolog.Logger) *FoodCatalog {
	return &FoodCatalog{store: store, log: log}
}

func seedFoods() []models.FoodItem {
	return []models.FoodItem{
		{ID: 1, Name: "Apple", Calories: 95, Protein: 0.5, Carbs: 25, Fats: 0.3},
		{ID: 2, Name: "Egg", Calories: 70, Protein: 6, Carbs: 1, Fats: 5},
		{ID: 3, Name: "Chicken Breast (100g)", Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6},
		{ID: 4, Name: "Rice (1 cup)", Calories: 200, Protein: 4, Carbs: 45, Fats: 0.5},
	}
}

// ListFoods returns the catalog, creating it with the seed set if the
// document does not exist yet. An unreadable or malformed document yields an
// empty sequence and an error for the handler to map to a read failure.
func (fc *FoodCatalog) ListFoods() ([]models.FoodItem, error) {
	data, err := fc.store.ReadAll()
	if errors.Is(err, fs.ErrNotExist) {
		seed := seedFoods()
		out, merr := json.MarshalIndent(seed, "", "  ")
		if merr == nil {
			merr = fc.store.WriteAll(out)
		}
		if merr != nil {
			fc.log.Error().Err(merr).Msg("could not seed food database")
		}
		return seed, nil
	}
	if err != nil {
		fc.log.Error().Err(err).Msg("error reading food database")
		return []models.FoodItem{}, err
	}

	var foods []models.FoodItem
	if err := json.Unmarshal(data, &foods); err != nil {
		fc.log.Error().Err(err).Msg("error parsing food database")
		return []models.FoodItem{}, err
	}
	return foods, nil
}
