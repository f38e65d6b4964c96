package impl

import (
	"KidSpace/models"
	"KidSpace/repositories"

	"gorm.io/gorm"
)

type MessageRepositoryImpl struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) repositories.MessageRepository {
	return &MessageRepositoryImpl{DB: db}
}

func (r *MessageRepositoryImpl) Save(message *models.Message) error {
	return r.DB.Save(message).Error
}

func (r *MessageRepositoryImpl) FindConversation(userID, friendID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.DB.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, friendID, friendID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
