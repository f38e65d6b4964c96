package controllers

import (
	"KidSpace/models"
	"KidSpace/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var settingsService *services.SettingsService

func SetSettingsService(service *services.SettingsService) {
	settingsService = service
}

// GetSettings возвращает действующие настройки ребенка.
// Если явной записи нет, отдаются значения по умолчанию
func GetSettings(c *gin.Context) {
	childID, err := strconv.ParseUint(c.Param("childId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid child id"})
		return
	}

	settings, err := settingsService.GetEffectiveSettings(uint(childID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings применяет частичное обновление настроек (upsert)
func UpdateSettings(c *gin.Context) {
	childID, err := strconv.ParseUint(c.Param("childId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid child id"})
		return
	}

	var update models.SettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := settingsService.UpdateSettings(uint(childID), update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, settings)
}
