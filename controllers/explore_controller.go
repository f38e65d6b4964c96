package controllers

import (
	"KidSpace/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var exploreService *services.ExploreService

func SetExploreService(service *services.ExploreService) {
	exploreService = service
}

// ExploreSearch выполняет безопасный поиск видео
func ExploreSearch(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	results, err := exploreService.Search(userID.(uint), c.Query("q"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExploreDisabled):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, results)
}

// ExploreCategories возвращает список детских категорий
func ExploreCategories(c *gin.Context) {
	c.JSON(http.StatusOK, exploreService.Categories())
}
