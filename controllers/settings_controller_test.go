package controllers

import (
	"KidSpace/models"
	"KidSpace/repositories/mocks"
	"KidSpace/services"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupSettingsTestRouter(mockSettingsRepo *mocks.SettingsRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	SetSettingsService(services.NewSettingsService(mockSettingsRepo))

	router.GET("/api/settings/:childId", GetSettings)
	router.PATCH("/api/settings/:childId", UpdateSettings)

	return router
}

func TestGetSettingsDefaultsEndpoint(t *testing.T) {
	mockSettingsRepo := new(mocks.SettingsRepository)
	router := setupSettingsTestRouter(mockSettingsRepo)

	mockSettingsRepo.On("FindByChildID", uint(7)).
		Return(models.ParentalSettings{}, gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/settings/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var settings models.ParentalSettings
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	// Отсутствие записи отдается как полные разрешения по умолчанию
	assert.True(t, settings.AllowChatbot)
	assert.True(t, settings.AllowMessaging)
	assert.Equal(t, 60, settings.DailyTimeLimitMinutes)
}

func TestUpdateSettingsPartialEndpoint(t *testing.T) {
	mockSettingsRepo := new(mocks.SettingsRepository)
	router := setupSettingsTestRouter(mockSettingsRepo)

	stored := models.DefaultSettings(7)
	stored.ID = 3

	mockSettingsRepo.On("FindByChildID", uint(7)).Return(stored, nil)
	mockSettingsRepo.On("Save", mock.AnythingOfType("*models.ParentalSettings")).Return(nil)

	body := bytes.NewBufferString(`{"allow_chatbot": false}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/api/settings/7", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var settings models.ParentalSettings
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.False(t, settings.AllowChatbot)
	// Остальные поля не затронуты
	assert.True(t, settings.AllowStories)
	assert.True(t, settings.AllowShorts)
}

func TestGetSettingsInvalidID(t *testing.T) {
	mockSettingsRepo := new(mocks.SettingsRepository)
	router := setupSettingsTestRouter(mockSettingsRepo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/settings/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
