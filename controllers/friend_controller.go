package controllers

import (
	"KidSpace/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var friendService *services.FriendService

func SetFriendService(service *services.FriendService) {
	friendService = service
}

// GetFriends возвращает одобренные связи пользователя
func GetFriends(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	friends, err := friendService.ListFriends(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, friends)
}

// GetFriendRequests возвращает pending-заявки, адресованные пользователю
func GetFriendRequests(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	requests, err := friendService.ListIncomingRequests(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// GetPendingApproval возвращает заявки, ожидающие решения этого родителя
func GetPendingApproval(c *gin.Context) {
	parentID, err := strconv.ParseUint(c.Param("parentId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parent id"})
		return
	}

	requests, err := friendService.ListPendingApproval(uint(parentID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// SendFriendRequest создает заявку в друзья
func SendFriendRequest(c *gin.Context) {
	var input struct {
		FromUserID uint `json:"fromUserId" binding:"required"`
		ToUserID   uint `json:"toUserId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := friendService.SendRequest(input.FromUserID, input.ToUserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrDuplicateRequest):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ApproveFriendRequest одобряет заявку от имени родителя
func ApproveFriendRequest(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("requestId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	parentID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	request, err := friendService.ApproveRequest(uint(requestID), parentID.(uint))
	if err != nil {
		respondFriendRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "friend request approved", "request": request})
}

// RejectFriendRequest отклоняет заявку
func RejectFriendRequest(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("requestId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	request, err := friendService.RejectRequest(uint(requestID))
	if err != nil {
		respondFriendRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "friend request rejected", "request": request})
}

func respondFriendRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrRequestAlreadyResolved):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
