package mocks

import (
	"KidSpace/models"

	"github.com/stretchr/testify/mock"
)

type ChatbotRepository struct {
	mock.Mock
}

func (m *ChatbotRepository) SaveConversation(conversation *models.ChatbotConversation) error {
	args := m.Called(conversation)
	return args.Error(0)
}

func (m *ChatbotRepository) FindByUser(userID uint) ([]models.ChatbotConversation, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.ChatbotConversation), args.Error(1)
}
