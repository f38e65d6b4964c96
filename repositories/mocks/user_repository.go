package mocks

import (
	"KidSpace/models"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(id uint) (models.User, error) {
	args := m.Called(id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *UserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *UserRepository) FindByUsername(username string) (models.User, error) {
	args := m.Called(username)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *UserRepository) CountByUsername(username string, count *int64) error {
	args := m.Called(username, count)
	return args.Error(0)
}

func (m *UserRepository) Save(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *UserRepository) FindChildrenByParent(parentID uint) ([]models.User, error) {
	args := m.Called(parentID)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *UserRepository) UpdateDeviceToken(userID uint, token string) error {
	args := m.Called(userID, token)
	return args.Error(0)
}
