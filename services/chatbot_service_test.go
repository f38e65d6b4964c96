package services

import (
	"KidSpace/models"
	"KidSpace/repositories/mocks"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newChatbotServiceForTest(apiURL string, user models.User, settings models.ParentalSettings) (*ChatbotService, *mocks.ChatbotRepository) {
	mockChatbotRepo := new(mocks.ChatbotRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockSettingsRepo := new(mocks.SettingsRepository)

	mockUserRepo.On("FindByID", user.ID).Return(user, nil)
	mockSettingsRepo.On("FindByChildID", user.ID).Return(settings, nil)

	settingsService := NewSettingsService(mockSettingsRepo)
	return NewChatbotService(mockChatbotRepo, mockUserRepo, settingsService, apiURL), mockChatbotRepo
}

func TestChatBlockedWordReturnsFallback(t *testing.T) {
	parentID := uint(1)
	child := models.User{ID: 7, Role: models.RoleChild, ParentID: &parentID}

	chatbotService, mockChatbotRepo := newChatbotServiceForTest("", child, models.DefaultSettings(7))
	mockChatbotRepo.On("SaveConversation", mock.MatchedBy(func(conv *models.ChatbotConversation) bool {
		return conv.UserID == 7 && conv.Response == SafeFallbackReply
	})).Return(nil)

	response, err := chatbotService.Chat(7, "I love violence")

	assert.NoError(t, err)
	// Текст закреплен побайтово, включая типографский апостроф
	assert.Equal(t, "Let’s talk about something fun and safe 😊", response)
	// Журнал пишется и для заблокированных сообщений
	mockChatbotRepo.AssertExpectations(t)
}

func TestChatForwardsToBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":"Rainbows form when sunlight passes through raindrops!"}`))
	}))
	defer backend.Close()

	parentID := uint(1)
	child := models.User{ID: 7, Role: models.RoleChild, ParentID: &parentID}

	chatbotService, mockChatbotRepo := newChatbotServiceForTest(backend.URL, child, models.DefaultSettings(7))
	mockChatbotRepo.On("SaveConversation", mock.AnythingOfType("*models.ChatbotConversation")).Return(nil)

	response, err := chatbotService.Chat(7, "How do rainbows form?")

	assert.NoError(t, err)
	assert.Equal(t, "Rainbows form when sunlight passes through raindrops!", response)
}

func TestChatBackendErrorReturnsFallback(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	parentID := uint(1)
	child := models.User{ID: 7, Role: models.RoleChild, ParentID: &parentID}

	chatbotService, mockChatbotRepo := newChatbotServiceForTest(backend.URL, child, models.DefaultSettings(7))
	mockChatbotRepo.On("SaveConversation", mock.MatchedBy(func(conv *models.ChatbotConversation) bool {
		return conv.Response == SafeFallbackReply
	})).Return(nil)

	// Сбой бэкенда для ребенка неотличим от блокировки — тот же безопасный ответ
	response, err := chatbotService.Chat(7, "How do rainbows form?")

	assert.NoError(t, err)
	assert.Equal(t, SafeFallbackReply, response)
	mockChatbotRepo.AssertExpectations(t)
}

func TestChatBackendUnreachableReturnsFallback(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // Сервер уже остановлен

	parentID := uint(1)
	child := models.User{ID: 7, Role: models.RoleChild, ParentID: &parentID}

	chatbotService, mockChatbotRepo := newChatbotServiceForTest(backend.URL, child, models.DefaultSettings(7))
	mockChatbotRepo.On("SaveConversation", mock.AnythingOfType("*models.ChatbotConversation")).Return(nil)

	response, err := chatbotService.Chat(7, "How do rainbows form?")

	assert.NoError(t, err)
	assert.Equal(t, SafeFallbackReply, response)
}

func TestChatDisabledByParentalSettings(t *testing.T) {
	parentID := uint(1)
	child := models.User{ID: 7, Role: models.RoleChild, ParentID: &parentID}

	settings := models.DefaultSettings(7)
	settings.AllowChatbot = false

	chatbotService, mockChatbotRepo := newChatbotServiceForTest("", child, settings)

	_, err := chatbotService.Chat(7, "Hello!")

	assert.ErrorIs(t, err, ErrChatbotDisabled)
	mockChatbotRepo.AssertNotCalled(t, "SaveConversation", mock.Anything)
}

func TestChatUserNotFound(t *testing.T) {
	mockChatbotRepo := new(mocks.ChatbotRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockSettingsRepo := new(mocks.SettingsRepository)

	mockUserRepo.On("FindByID", uint(404)).Return(models.User{}, gorm.ErrRecordNotFound)

	chatbotService := NewChatbotService(mockChatbotRepo, mockUserRepo, NewSettingsService(mockSettingsRepo), "")

	_, err := chatbotService.Chat(404, "Hello!")

	assert.ErrorIs(t, err, ErrUserNotFound)
}
