package controllers

import (
	"errors"
	"net/http"

	"github.com/Divyakd12/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	records *services.RecordStore
}

func NewMealController(records *services.RecordStore) *MealController {
	return &MealController{records: records}
}

type AddMealInput struct {
	Email         string   `json:"email" binding:"required"`
	Date          string   `json:"date" binding:"required"`
	TotalCalories *float64 `json:"totalCalories" binding:"required"`
}

func (mc *MealController) GetUserMeals(c *gin.Context) {
	meals, err := mc.records.GetMeals(c.Query("email"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) AddMeal(c *gin.Context) {
	var input AddMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required."})
		return
	}

	meals, err := mc.records.LogMeal(input.Email, input.Date, *input.TotalCalories)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}
	if errors.Is(err, services.ErrDuplicateMealDate) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "You have already logged a meal for this date."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal logged successfully", "meals": meals})
}
