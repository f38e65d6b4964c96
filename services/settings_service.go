package services

import (
	"KidSpace/models"
	"KidSpace/repositories"
	"errors"

	"gorm.io/gorm"
)

type SettingsService struct {
	SettingsRepo repositories.SettingsRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{SettingsRepo: settingsRepo}
}

// GetEffectiveSettings возвращает действующие настройки ребенка.
// Отсутствие записи — не ошибка: новый аккаунт получает все разрешения
// и лимит времени по умолчанию
func (s *SettingsService) GetEffectiveSettings(childID uint) (models.ParentalSettings, error) {
	settings, err := s.SettingsRepo.FindByChildID(childID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultSettings(childID), nil
		}
		return models.ParentalSettings{}, err
	}
	return settings, nil
}

// UpdateSettings применяет частичное обновление с upsert-семантикой:
// если записи нет, переданные поля накладываются поверх значений по умолчанию
func (s *SettingsService) UpdateSettings(childID uint, update models.SettingsUpdate) (models.ParentalSettings, error) {
	settings, err := s.SettingsRepo.FindByChildID(childID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ParentalSettings{}, err
		}
		settings = models.DefaultSettings(childID)
	}

	update.Apply(&settings)

	if err := s.SettingsRepo.Save(&settings); err != nil {
		return models.ParentalSettings{}, err
	}
	return settings, nil
}
