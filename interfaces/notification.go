package interfaces

import (
	"KidSpace/models"
	"time"
)

// Notifier определяет интерфейс для отправки push-уведомлений.
// Реализация может отсутствовать (push выключен) — вызывающие стороны
// обязаны переживать nil-значение.
type Notifier interface {
	NotifyPendingApproval(parent models.User, request models.FriendRequest) error
	NotifyNewMessage(receiver models.User, message models.Message) error
}

// MessagePusher определяет интерфейс доставки сообщений по WebSocket
type MessagePusher interface {
	PushMessage(message models.Message)
}

// WebSocketMessage определяет структуру исходящего кадра WebSocket
type WebSocketMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
