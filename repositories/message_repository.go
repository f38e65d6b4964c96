package repositories

import "KidSpace/models"

type MessageRepository interface {
	Save(message *models.Message) error
	// FindConversation возвращает переписку неупорядоченной пары {userID, friendID},
	// отсортированную по времени создания по возрастанию
	FindConversation(userID, friendID uint) ([]models.Message, error)
}
