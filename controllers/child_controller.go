package controllers

import (
	"KidSpace/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var childService *services.ChildService

func SetChildService(service *services.ChildService) {
	childService = service
}

// GetChildren возвращает детские аккаунты родителя
func GetChildren(c *gin.Context) {
	parentID, err := strconv.ParseUint(c.Param("parentId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parent id"})
		return
	}

	children, err := childService.ListChildren(uint(parentID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, children)
}

// AddChild создает детский аккаунт, привязанный к родителю
func AddChild(c *gin.Context) {
	var input struct {
		ParentID uint   `json:"parentId" binding:"required"`
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	child, err := childService.AddChild(input.ParentID, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, child)
}
