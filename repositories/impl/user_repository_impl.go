package impl

import (
	"KidSpace/models"
	"KidSpace/repositories"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepositoryImpl{DB: db}
}

func (r *UserRepositoryImpl) FindByID(id uint) (models.User, error) {
	var user models.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepositoryImpl) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.DB.Order("id ASC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) FindByUsername(username string) (models.User, error) {
	var user models.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepositoryImpl) CountByUsername(username string, count *int64) error {
	return r.DB.Model(&models.User{}).Where("username = ?", username).Count(count).Error
}

func (r *UserRepositoryImpl) Save(user *models.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepositoryImpl) FindChildrenByParent(parentID uint) ([]models.User, error) {
	var children []models.User
	err := r.DB.Where("parent_id = ?", parentID).Find(&children).Error
	return children, err
}

func (r *UserRepositoryImpl) UpdateDeviceToken(userID uint, token string) error {
	return r.DB.Model(&models.User{}).Where("id = ?", userID).Update("device_token", token).Error
}
