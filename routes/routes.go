package routes

import (
	"net/http"

	"github.com/Divyakd12/calorie-tracker/controllers"
	"github.com/Divyakd12/calorie-tracker/middlewares"
	"github.com/Divyakd12/calorie-tracker/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(records *services.RecordStore, catalog *services.FoodCatalog) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middlewares.RequestID())

	auth := controllers.NewAuthController(records)
	bmi := controllers.NewBMIController(records)
	meals := controllers.NewMealController(records)
	foods := controllers.NewFoodController(catalog)
	users := controllers.NewUserController(records)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Accounts
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	// Food catalog
	r.GET("/foods", foods.ListFoods)

	// Meals
	r.GET("/user-meals", meals.GetUserMeals)
	r.POST("/add-meal", meals.AddMeal)

	// BMI
	r.GET("/user-bmi", bmi.GetBMI)
	r.POST("/save-bmi", bmi.SaveBMI)
	r.POST("/calculate-bmi", bmi.CalculateBMI)

	// Debug
	r.GET("/users", users.ListUsers)

	return r
}
