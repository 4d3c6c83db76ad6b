package controllers

import (
	"math"
	"net/http"

	"github.com/Divyakd12/calorie-tracker/services"
	"github.com/Divyakd12/calorie-tracker/utils"

	"github.com/gin-gonic/gin"
)

type BMIController struct {
	records *services.RecordStore
}

func NewBMIController(records *services.RecordStore) *BMIController {
	return &BMIController{records: records}
}

type SaveBMIInput struct {
	Email  string   `json:"email" binding:"required"`
	BMI    *float64 `json:"bmi" binding:"required"`
	Status string   `json:"status" binding:"required"`
}

type CalculateBMIInput struct {
	HeightCm float64 `json:"height_cm" binding:"required"`
	WeightKg float64 `json:"weight_kg" binding:"required"`
}

func (bc *BMIController) GetBMI(c *gin.Context) {
	bmi, status, err := bc.records.GetBMI(c.Query("email"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bmi": bmi, "status": status})
}

// SaveBMI stores the caller-supplied value and label verbatim. A zero BMI is
// rejected here at the boundary; the store itself never validates the value.
func (bc *BMIController) SaveBMI(c *gin.Context) {
	var input SaveBMIInput
	if err := c.ShouldBindJSON(&input); err != nil || *input.BMI == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing email, bmi, or status"})
		return
	}

	user, err := bc.records.SetBMI(input.Email, *input.BMI, input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "BMI saved successfully", "updatedUser": user})
}

// CalculateBMI is a pure helper: it computes the value and classification
// from height and weight without touching any stored record.
func (bc *BMIController) CalculateBMI(c *gin.Context) {
	var input CalculateBMIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing height_cm or weight_kg"})
		return
	}

	bmi, err := utils.CalculateBMI(input.HeightCm, input.WeightKg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bmi":    math.Round(bmi*10) / 10,
		"status": utils.BMICategory(bmi),
	})
}
