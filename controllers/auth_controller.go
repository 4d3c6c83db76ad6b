package controllers

import (
	"net/http"

	"github.com/Divyakd12/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	records *services.RecordStore
}

func NewAuthController(records *services.RecordStore) *AuthController {
	return &AuthController{records: records}
}

type SignupInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
		return
	}

	if _, err := ac.records.CreateAccount(input.Email, input.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Signup successful. Redirecting to login..."})
}

// Login deliberately answers missing fields, unknown emails and wrong
// passwords with the same 401 so the response leaks nothing about which
// part failed.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
		return
	}

	if _, err := ac.records.VerifyCredentials(input.Email, input.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful."})
}
