package controllers

import (
	"net/http"

	"github.com/Divyakd12/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	records *services.RecordStore
}

func NewUserController(records *services.RecordStore) *UserController {
	return &UserController{records: records}
}

// ListUsers dumps the whole collection, passwords and all. Debugging aid
// only.
func (uc *UserController) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, uc.records.ListUsers())
}
