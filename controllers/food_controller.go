package controllers

import (
	"net/http"

	"github.com/Divyakd12/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	catalog *services.FoodCatalog
}

func NewFoodController(catalog *services.FoodCatalog) *FoodController {
	return &FoodController{catalog: catalog}
}

// GET /foods
func (fc *FoodController) ListFoods(c *gin.Context) {
	foods, err := fc.catalog.ListFoods()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error reading foods data"})
		return
	}
	c.JSON(http.StatusOK, foods)
}
