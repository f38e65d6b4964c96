package impl

import (
	"KidSpace/models"
	"KidSpace/repositories"

	"gorm.io/gorm"
)

type ChatbotRepositoryImpl struct {
	DB *gorm.DB
}

func NewChatbotRepository(db *gorm.DB) repositories.ChatbotRepository {
	return &ChatbotRepositoryImpl{DB: db}
}

func (r *ChatbotRepositoryImpl) SaveConversation(conversation *models.ChatbotConversation) error {
	return r.DB.Create(conversation).Error
}

func (r *ChatbotRepositoryImpl) FindByUser(userID uint) ([]models.ChatbotConversation, error) {
	var conversations []models.ChatbotConversation
	err := r.DB.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&conversations).Error
	return conversations, err
}
