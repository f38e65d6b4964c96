package repositories

import "KidSpace/models"

type UserRepository interface {
	FindByID(id uint) (models.User, error)
	FindAll() ([]models.User, error)
	FindByUsername(username string) (models.User, error)
	CountByUsername(username string, count *int64) error
	Save(user *models.User) error
	FindChildrenByParent(parentID uint) ([]models.User, error)
	UpdateDeviceToken(userID uint, token string) error
}
