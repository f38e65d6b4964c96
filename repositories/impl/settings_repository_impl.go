package impl

import (
	"KidSpace/models"
	"KidSpace/repositories"

	"gorm.io/gorm"
)

type SettingsRepositoryImpl struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) repositories.SettingsRepository {
	return &SettingsRepositoryImpl{DB: db}
}

func (r *SettingsRepositoryImpl) FindByChildID(childID uint) (models.ParentalSettings, error) {
	var settings models.ParentalSettings
	if err := r.DB.Where("child_id = ?", childID).First(&settings).Error; err != nil {
		return models.ParentalSettings{}, err
	}
	return settings, nil
}

func (r *SettingsRepositoryImpl) Save(settings *models.ParentalSettings) error {
	return r.DB.Save(settings).Error
}
