package services

import (
	"KidSpace/models"
	"KidSpace/repositories/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMessageServiceForTest() (*MessageService, *mocks.MessageRepository, *mocks.FriendRepository, *mocks.UserRepository, *mocks.SettingsRepository) {
	mockMessageRepo := new(mocks.MessageRepository)
	mockFriendRepo := new(mocks.FriendRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockSettingsRepo := new(mocks.SettingsRepository)

	messageService := NewMessageService(
		mockMessageRepo, mockFriendRepo, mockUserRepo,
		NewSettingsService(mockSettingsRepo), nil, nil)

	return messageService, mockMessageRepo, mockFriendRepo, mockUserRepo, mockSettingsRepo
}

func TestSendMessageBetweenFriends(t *testing.T) {
	messageService, mockMessageRepo, mockFriendRepo, mockUserRepo, mockSettingsRepo := newMessageServiceForTest()

	mockFriendRepo.On("EdgeExists", uint(1), uint(2)).Return(true, nil)
	mockUserRepo.On("FindByID", uint(1)).Return(models.User{ID: 1, Role: models.RoleParent}, nil)
	mockMessageRepo.On("Save", mock.MatchedBy(func(m *models.Message) bool {
		return m.SenderID == 1 && m.ReceiverID == 2 && m.Content == "hello"
	})).Return(nil)

	message, err := messageService.SendMessage(1, 2, "hello")

	assert.NoError(t, err)
	assert.Equal(t, "hello", message.Content)
	mockMessageRepo.AssertExpectations(t)
	_ = mockSettingsRepo
}

func TestSendMessageNotFriends(t *testing.T) {
	messageService, mockMessageRepo, mockFriendRepo, _, _ := newMessageServiceForTest()

	mockFriendRepo.On("EdgeExists", uint(1), uint(2)).Return(false, nil)

	_, err := messageService.SendMessage(1, 2, "hello")

	assert.ErrorIs(t, err, ErrNotFriends)
	mockMessageRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestSendMessageChildMessagingDisabled(t *testing.T) {
	messageService, mockMessageRepo, mockFriendRepo, mockUserRepo, mockSettingsRepo := newMessageServiceForTest()

	parentID := uint(9)
	settings := models.DefaultSettings(1)
	settings.AllowMessaging = false

	mockFriendRepo.On("EdgeExists", uint(1), uint(2)).Return(true, nil)
	mockUserRepo.On("FindByID", uint(1)).Return(models.User{ID: 1, Role: models.RoleChild, ParentID: &parentID}, nil)
	mockSettingsRepo.On("FindByChildID", uint(1)).Return(settings, nil)

	_, err := messageService.SendMessage(1, 2, "hello")

	assert.ErrorIs(t, err, ErrMessagingDisabled)
	mockMessageRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestSendMessageEmptyContent(t *testing.T) {
	messageService, mockMessageRepo, _, _, _ := newMessageServiceForTest()

	_, err := messageService.SendMessage(1, 2, "")

	assert.Error(t, err)
	mockMessageRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestGetConversationSymmetric(t *testing.T) {
	messageService, mockMessageRepo, _, _, _ := newMessageServiceForTest()

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	conversation := []models.Message{
		{ID: 1, SenderID: 1, ReceiverID: 2, Content: "hi", CreatedAt: base},
		{ID: 2, SenderID: 2, ReceiverID: 1, Content: "hey", CreatedAt: base.Add(time.Minute)},
		{ID: 3, SenderID: 1, ReceiverID: 2, Content: "how are you", CreatedAt: base.Add(2 * time.Minute)},
	}

	// Пара не упорядочена: (1,2) и (2,1) — одна и та же переписка
	mockMessageRepo.On("FindConversation", uint(1), uint(2)).Return(conversation, nil)
	mockMessageRepo.On("FindConversation", uint(2), uint(1)).Return(conversation, nil)

	forward, err := messageService.GetConversation(1, 2)
	assert.NoError(t, err)

	backward, err := messageService.GetConversation(2, 1)
	assert.NoError(t, err)

	assert.Equal(t, forward, backward)
	for i := 1; i < len(forward); i++ {
		assert.True(t, forward[i].CreatedAt.After(forward[i-1].CreatedAt))
	}
}
