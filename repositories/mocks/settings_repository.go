package mocks

import (
	"KidSpace/models"

	"github.com/stretchr/testify/mock"
)

type SettingsRepository struct {
	mock.Mock
}

func (m *SettingsRepository) FindByChildID(childID uint) (models.ParentalSettings, error) {
	args := m.Called(childID)
	return args.Get(0).(models.ParentalSettings), args.Error(1)
}

func (m *SettingsRepository) Save(settings *models.ParentalSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}
