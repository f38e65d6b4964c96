package services

import (
	"KidSpace/interfaces"
	"KidSpace/models"
	"KidSpace/repositories"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FriendService struct {
	FriendRepo repositories.FriendRepository
	UserRepo   repositories.UserRepository
	Notifier   interfaces.Notifier // nil, если push-уведомления выключены
}

func NewFriendService(friendRepo repositories.FriendRepository, userRepo repositories.UserRepository, notifier interfaces.Notifier) *FriendService {
	return &FriendService{FriendRepo: friendRepo, UserRepo: userRepo, Notifier: notifier}
}

// SendRequest создает заявку в друзья в состоянии pending.
// Повторная заявка между той же парой отклоняется, пока есть
// нерассмотренная заявка или уже существующая связь
func (s *FriendService) SendRequest(fromUserID, toUserID uint) (models.FriendRequest, error) {
	if fromUserID == toUserID {
		return models.FriendRequest{}, ErrSelfRequest
	}

	exists, err := s.FriendRepo.PendingOrLinked(fromUserID, toUserID)
	if err != nil {
		return models.FriendRequest{}, err
	}
	if exists {
		return models.FriendRequest{}, ErrDuplicateRequest
	}

	request := models.FriendRequest{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     models.RequestStatusPending,
	}

	if err := s.FriendRepo.SaveRequest(&request); err != nil {
		return models.FriendRequest{}, err
	}

	s.notifyParents(request)

	return request, nil
}

// ApproveRequest переводит заявку в approved и создает связь.
// approved/rejected — терминальные состояния: повторное одобрение
// возвращает ErrRequestAlreadyResolved и не создает вторую связь
func (s *FriendService) ApproveRequest(requestID, parentID uint) (models.FriendRequest, error) {
	request, err := s.FriendRepo.FindRequestByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FriendRequest{}, ErrRequestNotFound
		}
		return models.FriendRequest{}, err
	}

	if !request.IsPending() {
		return models.FriendRequest{}, ErrRequestAlreadyResolved
	}

	if err := s.FriendRepo.ApproveRequest(&request, parentID); err != nil {
		return models.FriendRequest{}, err
	}

	return request, nil
}

// RejectRequest переводит заявку в rejected, связь не создается
func (s *FriendService) RejectRequest(requestID uint) (models.FriendRequest, error) {
	request, err := s.FriendRepo.FindRequestByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FriendRequest{}, ErrRequestNotFound
		}
		return models.FriendRequest{}, err
	}

	if !request.IsPending() {
		return models.FriendRequest{}, ErrRequestAlreadyResolved
	}

	request.Status = models.RequestStatusRejected
	if err := s.FriendRepo.SaveRequest(&request); err != nil {
		return models.FriendRequest{}, err
	}

	return request, nil
}

// ListFriends возвращает связи, где пользователь на любой из сторон
func (s *FriendService) ListFriends(userID uint) ([]models.Friend, error) {
	return s.FriendRepo.FindFriendsByUser(userID)
}

// ListIncomingRequests возвращает pending-заявки, адресованные пользователю
func (s *FriendService) ListIncomingRequests(userID uint) ([]models.FriendRequest, error) {
	return s.FriendRepo.FindPendingByToUser(userID)
}

// ListPendingApproval возвращает все pending-заявки, затрагивающие детей
// данного родителя — с любой стороны, независимо от того, кто инициатор
func (s *FriendService) ListPendingApproval(parentID uint) ([]models.FriendRequest, error) {
	children, err := s.UserRepo.FindChildrenByParent(parentID)
	if err != nil {
		return nil, err
	}

	childIDs := make([]uint, 0, len(children))
	for _, child := range children {
		childIDs = append(childIDs, child.ID)
	}

	return s.FriendRepo.FindPendingByUsers(childIDs)
}

// notifyParents отправляет push родителям обеих сторон заявки (best-effort)
func (s *FriendService) notifyParents(request models.FriendRequest) {
	if s.Notifier == nil {
		return
	}

	notified := make(map[uint]bool)
	for _, userID := range []uint{request.FromUserID, request.ToUserID} {
		user, err := s.UserRepo.FindByID(userID)
		if err != nil || user.ParentID == nil || notified[*user.ParentID] {
			continue
		}

		parent, err := s.UserRepo.FindByID(*user.ParentID)
		if err != nil {
			continue
		}

		if err := s.Notifier.NotifyPendingApproval(parent, request); err != nil {
			logrus.WithFields(logrus.Fields{
				"parent_id":  parent.ID,
				"request_id": request.ID,
			}).WithError(err).Warn("failed to send pending approval notification")
		}
		notified[parent.ID] = true
	}
}
