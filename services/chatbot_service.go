package services

import (
	"KidSpace/models"
	"KidSpace/repositories"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Безопасный ответ: возвращается и на стоп-слово, и на любой сбой бэкенда,
// чтобы не пугать ребенка техническими ошибками
const SafeFallbackReply = "Let’s talk about something fun and safe 😊"

type ChatbotService struct {
	ChatbotRepo repositories.ChatbotRepository
	UserRepo    repositories.UserRepository
	SettingsSrv *SettingsService
	APIURL      string
	HTTPClient  *http.Client
}

func NewChatbotService(
	chatbotRepo repositories.ChatbotRepository,
	userRepo repositories.UserRepository,
	settingsSrv *SettingsService,
	apiURL string,
) *ChatbotService {
	return &ChatbotService{
		ChatbotRepo: chatbotRepo,
		UserRepo:    userRepo,
		SettingsSrv: settingsSrv,
		APIURL:      apiURL,
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

type chatbotRequest struct {
	UserID  uint   `json:"userId"`
	Message string `json:"message"`
}

type chatbotResponse struct {
	Response string `json:"response"`
}

// Chat выполняет полный цикл: фильтр стоп-слов, запрос к внешней модели,
// безопасный фолбэк и запись в журнал переписки
func (s *ChatbotService) Chat(userID uint, message string) (string, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return "", ErrUserNotFound
	}

	if user.IsChild() {
		settings, err := s.SettingsSrv.GetEffectiveSettings(userID)
		if err != nil {
			return "", err
		}
		if !settings.AllowChatbot {
			return "", ErrChatbotDisabled
		}
	}

	var response string
	if ContainsBlockedWord(message) {
		logrus.WithField("user_id", userID).Info("chatbot message blocked by word filter")
		response = SafeFallbackReply
	} else {
		response = s.fetchReply(userID, message)
	}

	// Журнал пишется всегда, включая фолбэк-ответы
	conversation := models.ChatbotConversation{
		UserID:   userID,
		Message:  message,
		Response: response,
	}
	if err := s.ChatbotRepo.SaveConversation(&conversation); err != nil {
		logrus.WithField("user_id", userID).
			WithError(err).Error("failed to save chatbot conversation")
	}

	return response, nil
}

// GetHistory возвращает журнал переписки пользователя с ботом
func (s *ChatbotService) GetHistory(userID uint) ([]models.ChatbotConversation, error) {
	return s.ChatbotRepo.FindByUser(userID)
}

// fetchReply обращается к внешнему чат-бэкенду. Любой сбой транспорта
// превращается в безопасный ответ, но причина логируется отдельно
func (s *ChatbotService) fetchReply(userID uint, message string) string {
	if s.APIURL == "" {
		logrus.Warn("CHATBOT_API_URL not configured, returning fallback reply")
		return SafeFallbackReply
	}

	body, err := json.Marshal(chatbotRequest{UserID: userID, Message: message})
	if err != nil {
		logrus.WithError(err).Error("chatbot request marshal failed")
		return SafeFallbackReply
	}

	resp, err := s.HTTPClient.Post(s.APIURL, "application/json", bytes.NewReader(body))
	if err != nil {
		logrus.WithField("user_id", userID).
			WithError(err).Error("chatbot backend unreachable")
		return SafeFallbackReply
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"status":  resp.StatusCode,
		}).Error("chatbot backend returned non-2xx status")
		return SafeFallbackReply
	}

	var parsed chatbotResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logrus.WithError(err).Error(fmt.Sprintf("chatbot response decode failed for user %d", userID))
		return SafeFallbackReply
	}

	if parsed.Response == "" {
		return SafeFallbackReply
	}
	return parsed.Response
}
