package repositories

import "KidSpace/models"

type SettingsRepository interface {
	FindByChildID(childID uint) (models.ParentalSettings, error)
	Save(settings *models.ParentalSettings) error
}
