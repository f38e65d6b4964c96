package controllers

import (
	"KidSpace/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var chatbotService *services.ChatbotService

func SetChatbotService(service *services.ChatbotService) {
	chatbotService = service
}

// Chat выполняет обмен сообщением с чат-ботом
func Chat(c *gin.Context) {
	var input struct {
		UserID  uint   `json:"userId" binding:"required"`
		Message string `json:"message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := chatbotService.Chat(input.UserID, input.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChatbotDisabled):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}

// ChatHistory возвращает журнал переписки пользователя с ботом
func ChatHistory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	history, err := chatbotService.GetHistory(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, history)
}
