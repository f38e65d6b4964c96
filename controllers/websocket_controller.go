package controllers

import (
	ws "KidSpace/websocket"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var wsHub *ws.Hub

func SetWebSocketHub(hub *ws.Hub) {
	wsHub = hub
}

// ServeWs регистрирует WebSocket-соединение авторизованного пользователя
func ServeWs(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := ws.Upgrade(c.Writer, c.Request)
	if err != nil {
		log.Printf("[WebSocket] upgrade failed: %v", err)
		return
	}

	client := ws.NewClient(wsHub, conn, userID.(uint))
	wsHub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
