package repositories

import "KidSpace/models"

type FriendRepository interface {
	SaveRequest(request *models.FriendRequest) error
	FindRequestByID(id uint) (models.FriendRequest, error)
	FindPendingByToUser(userID uint) ([]models.FriendRequest, error)
	// FindPendingByUsers возвращает pending-заявки, где любая сторона входит в userIDs
	FindPendingByUsers(userIDs []uint) ([]models.FriendRequest, error)
	// PendingOrLinked проверяет, есть ли между парой pending-заявка или готовая связь
	PendingOrLinked(userID, friendID uint) (bool, error)
	// ApproveRequest выполняет обновление заявки и создание связи одной транзакцией
	ApproveRequest(request *models.FriendRequest, parentID uint) error
	FindFriendsByUser(userID uint) ([]models.Friend, error)
	EdgeExists(userID, friendID uint) (bool, error)
}
