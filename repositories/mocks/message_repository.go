package mocks

import (
	"KidSpace/models"

	"github.com/stretchr/testify/mock"
)

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Save(message *models.Message) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MessageRepository) FindConversation(userID, friendID uint) ([]models.Message, error) {
	args := m.Called(userID, friendID)
	return args.Get(0).([]models.Message), args.Error(1)
}
