package services

import "errors"

// Типизированные ошибки бизнес-логики: вызывающая сторона различает исходы
// и подбирает подходящий HTTP-статус
var (
	ErrSelfRequest            = errors.New("cannot send friend request to yourself")
	ErrDuplicateRequest       = errors.New("friend request already pending or users already linked")
	ErrRequestNotFound        = errors.New("friend request not found")
	ErrRequestAlreadyResolved = errors.New("friend request already resolved")
	ErrNotFriends             = errors.New("users are not friends")
	ErrMessagingDisabled      = errors.New("messaging is disabled by parental settings")
	ErrChatbotDisabled        = errors.New("chatbot is disabled by parental settings")
	ErrExploreDisabled        = errors.New("explore is disabled by parental settings")
	ErrUserNotFound           = errors.New("user not found")
)
