package services

import (
	"KidSpace/models"
	"context"
	"fmt"
	"strconv"

	"firebase.google.com/go/v4/messaging"
	"github.com/sirupsen/logrus"
)

// NotificationService отправляет push-уведомления через Firebase Cloud Messaging.
// Реализует interfaces.Notifier
type NotificationService struct {
	FCMClient *messaging.Client
}

func NewNotificationService(fcmClient *messaging.Client) *NotificationService {
	return &NotificationService{FCMClient: fcmClient}
}

// NotifyPendingApproval сообщает родителю о заявке, ожидающей его решения
func (s *NotificationService) NotifyPendingApproval(parent models.User, request models.FriendRequest) error {
	return s.send(parent,
		"New friend request",
		"A friend request is waiting for your approval",
		map[string]string{
			"type":       "pending_approval",
			"request_id": strconv.FormatUint(uint64(request.ID), 10),
		})
}

// NotifyNewMessage сообщает получателю о новом сообщении
func (s *NotificationService) NotifyNewMessage(receiver models.User, message models.Message) error {
	return s.send(receiver,
		"New message",
		"You have a new message from a friend",
		map[string]string{
			"type":      "message",
			"sender_id": strconv.FormatUint(uint64(message.SenderID), 10),
		})
}

func (s *NotificationService) send(user models.User, title, body string, data map[string]string) error {
	if user.DeviceToken == "" {
		return nil // Пропускаем отправку, если нет токена устройства
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:  data,
		Token: user.DeviceToken,
	}

	resp, err := s.FCMClient.Send(context.Background(), message)
	if err != nil {
		return fmt.Errorf("fcm send failed: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"message_id": resp,
	}).Debug("push notification sent")
	return nil
}
