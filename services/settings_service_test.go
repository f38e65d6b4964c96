package services

import (
	"KidSpace/models"
	"KidSpace/repositories/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestGetEffectiveSettingsDefaults(t *testing.T) {
	mockSettingsRepo := new(mocks.SettingsRepository)
	settingsService := NewSettingsService(mockSettingsRepo)

	// Записи нет — это не ошибка, действуют значения по умолчанию
	mockSettingsRepo.On("FindByChildID", uint(7)).
		Return(models.ParentalSettings{}, gorm.ErrRecordNotFound)

	settings, err := settingsService.GetEffectiveSettings(7)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), settings.ChildID)
	assert.Equal(t, 60, settings.DailyTimeLimitMinutes)
	assert.True(t, settings.AllowStories)
	assert.True(t, settings.AllowLearning)
	assert.True(t, settings.AllowCreativity)
	assert.True(t, settings.AllowMessaging)
	assert.True(t, settings.AllowExplore)
	assert.True(t, settings.AllowShorts)
	assert.True(t, settings.AllowChatbot)
}

func TestGetEffectiveSettingsStored(t *testing.T) {
	mockSettingsRepo := new(mocks.SettingsRepository)
	settingsService := NewSettingsService(mockSettingsRepo)

	stored := models.DefaultSettings(7)
	stored.ID = 3
	stored.AllowShorts = false

	mockSettingsRepo.On("FindByChildID", uint(7)).Return(stored, nil)

	settings, err := settingsService.GetEffectiveSettings(7)

	assert.NoError(t, err)
	assert.False(t, settings.AllowShorts)
	assert.True(t, settings.AllowStories)
}

func TestUpdateSettingsCreatesFromDefaults(t *testing.T) {
	mockSettingsRepo := new(mocks.SettingsRepository)
	settingsService := NewSettingsService(mockSettingsRepo)

	mockSettingsRepo.On("FindByChildID", uint(7)).
		Return(models.ParentalSettings{}, gorm.ErrRecordNotFound)
	mockSettingsRepo.On("Save", mock.MatchedBy(func(s *models.ParentalSettings) bool {
		// Переданное поле накладывается поверх значений по умолчанию
		return s.ChildID == 7 && !s.AllowChatbot && s.AllowStories && s.DailyTimeLimitMinutes == 60
	})).Return(nil)

	settings, err := settingsService.UpdateSettings(7, models.SettingsUpdate{
		AllowChatbot: boolPtr(false),
	})

	assert.NoError(t, err)
	assert.False(t, settings.AllowChatbot)
	assert.True(t, settings.AllowMessaging)
	assert.Equal(t, 60, settings.DailyTimeLimitMinutes)
	mockSettingsRepo.AssertExpectations(t)
}

func TestUpdateSettingsPatchesExisting(t *testing.T) {
	mockSettingsRepo := new(mocks.SettingsRepository)
	settingsService := NewSettingsService(mockSettingsRepo)

	stored := models.DefaultSettings(7)
	stored.ID = 3
	stored.AllowShorts = false

	mockSettingsRepo.On("FindByChildID", uint(7)).Return(stored, nil)
	mockSettingsRepo.On("Save", mock.AnythingOfType("*models.ParentalSettings")).Return(nil)

	settings, err := settingsService.UpdateSettings(7, models.SettingsUpdate{
		DailyTimeLimitMinutes: intPtr(30),
	})

	assert.NoError(t, err)
	assert.Equal(t, 30, settings.DailyTimeLimitMinutes)
	// Незатронутые поля сохраняются
	assert.False(t, settings.AllowShorts)
	assert.True(t, settings.AllowStories)
	assert.Equal(t, uint(3), settings.ID)
}

func TestUpdateSettingsIdempotent(t *testing.T) {
	mockSettingsRepo := new(mocks.SettingsRepository)
	settingsService := NewSettingsService(mockSettingsRepo)

	stored := models.DefaultSettings(7)
	stored.ID = 3
	stored.AllowChatbot = false

	mockSettingsRepo.On("FindByChildID", uint(7)).Return(stored, nil)
	mockSettingsRepo.On("Save", mock.AnythingOfType("*models.ParentalSettings")).Return(nil)

	update := models.SettingsUpdate{AllowChatbot: boolPtr(false)}

	first, err := settingsService.UpdateSettings(7, update)
	assert.NoError(t, err)

	second, err := settingsService.UpdateSettings(7, update)
	assert.NoError(t, err)

	// Повторный идентичный патч не меняет наблюдаемое состояние
	assert.Equal(t, first, second)
}
