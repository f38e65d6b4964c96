package controllers

import (
	"KidSpace/models"
	"KidSpace/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

var contentService *services.ContentService

func SetContentService(service *services.ContentService) {
	contentService = service
}

// GetContent возвращает полноформатные видео, сначала новые
func GetContent(c *gin.Context) {
	items, err := contentService.GetContent(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetShorts возвращает короткие видео, сначала новые
func GetShorts(c *gin.Context) {
	items, err := contentService.GetShorts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateContent создает запись контента
func CreateContent(c *gin.Context) {
	var input struct {
		Title        string `json:"title" binding:"required"`
		Description  string `json:"description"`
		Type         string `json:"type" binding:"required"`
		ThumbnailURL string `json:"thumbnail_url"`
		VideoURL     string `json:"video_url" binding:"required"`
		IsShort      bool   `json:"is_short"`
		Duration     *int   `json:"duration"`
		CreatorID    uint   `json:"creator_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := contentService.CreateContent(models.Content{
		Title:        input.Title,
		Description:  input.Description,
		Type:         input.Type,
		ThumbnailURL: input.ThumbnailURL,
		VideoURL:     input.VideoURL,
		IsShort:      input.IsShort,
		Duration:     input.Duration,
		CreatorID:    input.CreatorID,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}
