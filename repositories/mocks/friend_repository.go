package mocks

import (
	"KidSpace/models"

	"github.com/stretchr/testify/mock"
)

type FriendRepository struct {
	mock.Mock
}

func (m *FriendRepository) SaveRequest(request *models.FriendRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *FriendRepository) FindRequestByID(id uint) (models.FriendRequest, error) {
	args := m.Called(id)
	return args.Get(0).(models.FriendRequest), args.Error(1)
}

func (m *FriendRepository) FindPendingByToUser(userID uint) ([]models.FriendRequest, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.FriendRequest), args.Error(1)
}

func (m *FriendRepository) FindPendingByUsers(userIDs []uint) ([]models.FriendRequest, error) {
	args := m.Called(userIDs)
	return args.Get(0).([]models.FriendRequest), args.Error(1)
}

func (m *FriendRepository) PendingOrLinked(userID, friendID uint) (bool, error) {
	args := m.Called(userID, friendID)
	return args.Bool(0), args.Error(1)
}

func (m *FriendRepository) ApproveRequest(request *models.FriendRequest, parentID uint) error {
	args := m.Called(request, parentID)
	return args.Error(0)
}

func (m *FriendRepository) FindFriendsByUser(userID uint) ([]models.Friend, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Friend), args.Error(1)
}

func (m *FriendRepository) EdgeExists(userID, friendID uint) (bool, error) {
	args := m.Called(userID, friendID)
	return args.Bool(0), args.Error(1)
}
