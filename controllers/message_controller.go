package controllers

import (
	"KidSpace/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var messageService *services.MessageService

func SetMessageService(service *services.MessageService) {
	messageService = service
}

// GetMessages возвращает переписку пары, от старых к новым
func GetMessages(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	friendID, err := strconv.ParseUint(c.Param("friendId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid friend id"})
		return
	}

	messages, err := messageService.GetConversation(uint(userID), uint(friendID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// SendMessage сохраняет новое сообщение между друзьями
func SendMessage(c *gin.Context) {
	var input struct {
		SenderID   uint   `json:"senderId" binding:"required"`
		ReceiverID uint   `json:"receiverId" binding:"required"`
		Content    string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := messageService.SendMessage(input.SenderID, input.ReceiverID, input.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFriends):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrMessagingDisabled):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, message)
}
