package services

import (
	"KidSpace/interfaces"
	"KidSpace/models"
	"KidSpace/repositories"
	"errors"

	"github.com/sirupsen/logrus"
)

type MessageService struct {
	MessageRepo repositories.MessageRepository
	FriendRepo  repositories.FriendRepository
	UserRepo    repositories.UserRepository
	SettingsSrv *SettingsService
	Pusher      interfaces.MessagePusher // nil, если live-доставка выключена
	Notifier    interfaces.Notifier      // nil, если push-уведомления выключены
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	friendRepo repositories.FriendRepository,
	userRepo repositories.UserRepository,
	settingsSrv *SettingsService,
	pusher interfaces.MessagePusher,
	notifier interfaces.Notifier,
) *MessageService {
	return &MessageService{
		MessageRepo: messageRepo,
		FriendRepo:  friendRepo,
		UserRepo:    userRepo,
		SettingsSrv: settingsSrv,
		Pusher:      pusher,
		Notifier:    notifier,
	}
}

// SendMessage сохраняет сообщение между одобренными друзьями.
// Переписка разрешена только при наличии связи, а детский аккаунт
// дополнительно проверяется на allow_messaging
func (s *MessageService) SendMessage(senderID, receiverID uint, content string) (models.Message, error) {
	if content == "" {
		return models.Message{}, errors.New("message content cannot be empty")
	}

	linked, err := s.FriendRepo.EdgeExists(senderID, receiverID)
	if err != nil {
		return models.Message{}, err
	}
	if !linked {
		return models.Message{}, ErrNotFriends
	}

	sender, err := s.UserRepo.FindByID(senderID)
	if err != nil {
		return models.Message{}, ErrUserNotFound
	}

	if sender.IsChild() {
		settings, err := s.SettingsSrv.GetEffectiveSettings(senderID)
		if err != nil {
			return models.Message{}, err
		}
		if !settings.AllowMessaging {
			return models.Message{}, ErrMessagingDisabled
		}
	}

	message := models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}

	if err := s.MessageRepo.Save(&message); err != nil {
		return models.Message{}, err
	}

	// Live-доставка обоим участникам, best-effort
	if s.Pusher != nil {
		s.Pusher.PushMessage(message)
	}

	if s.Notifier != nil {
		if receiver, err := s.UserRepo.FindByID(receiverID); err == nil {
			if err := s.Notifier.NotifyNewMessage(receiver, message); err != nil {
				logrus.WithField("receiver_id", receiverID).
					WithError(err).Warn("failed to send message notification")
			}
		}
	}

	return message, nil
}

// GetConversation возвращает переписку пары, отсортированную по времени
// создания. Результат не зависит от порядка аргументов
func (s *MessageService) GetConversation(userID, friendID uint) ([]models.Message, error) {
	return s.MessageRepo.FindConversation(userID, friendID)
}
