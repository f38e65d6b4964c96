package mocks

import (
	"KidSpace/models"

	"github.com/stretchr/testify/mock"
)

type ContentRepository struct {
	mock.Mock
}

func (m *ContentRepository) ListLongForm(contentType string) ([]models.Content, error) {
	args := m.Called(contentType)
	return args.Get(0).([]models.Content), args.Error(1)
}

func (m *ContentRepository) ListShorts() ([]models.Content, error) {
	args := m.Called()
	return args.Get(0).([]models.Content), args.Error(1)
}

func (m *ContentRepository) Save(item *models.Content) error {
	args := m.Called(item)
	return args.Error(0)
}
