package repositories

import "KidSpace/models"

type ChatbotRepository interface {
	SaveConversation(conversation *models.ChatbotConversation) error
	FindByUser(userID uint) ([]models.ChatbotConversation, error)
}
