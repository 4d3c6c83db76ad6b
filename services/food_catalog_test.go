package services

import (
	"encoding/json"
	"testing"

	"github.com/Divyakd12/calorie-tracker/models"
	"github.com/Divyakd12/calorie-tracker/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFoodsSeedsOnFirstAccess(t *testing.T) {
	mem := storage.NewMemStore()
	fc := NewFoodCatalog(mem, zerolog.Nop())

	foods, err := fc.ListFoods()
	require.NoError(t, err)
	require.Len(t, foods, 4)
	for i, f := range foods {
		assert.Equal(t, i+1, f.ID)
	}
	assert.Equal(t, "Apple", foods[0].Name)
	assert.Equal(t, 95.0, foods[0].Calories)

	// the seed was persisted
	data, err := mem.ReadAll()
	require.NoError(t, err)
	var stored []models.FoodItem
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, foods, stored)
}

func TestListFoodsRereadsDocumentEveryCall(t *testing.T) {
	mem := storage.NewMemStore()
	fc := NewFoodCatalog(mem, zerolog.Nop())

	_, err := fc.ListFoods()
	require.NoError(t, err)

	// replace the document behind the catalog's back; the next call must
	// reflect it because nothing is cached
	custom := []models.FoodItem{{ID: 9, Name: "Banana", Calories: 105, Protein: 1.3, Carbs: 27, Fats: 0.4}}
	data, err := json.Marshal(custom)
	require.NoError(t, err)
	require.NoError(t, mem.WriteAll(data))

	foods, err := fc.ListFoods()
	require.NoError(t, err)
	assert.Equal(t, custom, foods)
}

func TestListFoodsCorruptDocument(t *testing.T) {
	mem := storage.NewMemStore()
	require.NoError(t, mem.WriteAll([]byte(`not json at all`)))
	fc := NewFoodCatalog(mem, zerolog.Nop())

	foods, err := fc.ListFoods()
	assert.Error(t, err)
	assert.Empty(t, foods)
}
