package impl

import (
	"KidSpace/models"
	"KidSpace/repositories"

	"gorm.io/gorm"
)

type FriendRepositoryImpl struct {
	DB *gorm.DB
}

func NewFriendRepository(db *gorm.DB) repositories.FriendRepository {
	return &FriendRepositoryImpl{DB: db}
}

func (r *FriendRepositoryImpl) SaveRequest(request *models.FriendRequest) error {
	return r.DB.Save(request).Error
}

func (r *FriendRepositoryImpl) FindRequestByID(id uint) (models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.DB.First(&request, id).Error; err != nil {
		return models.FriendRequest{}, err
	}
	return request, nil
}

func (r *FriendRepositoryImpl) FindPendingByToUser(userID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := r.DB.
		Where("to_user_id = ? AND status = ?", userID, models.RequestStatusPending).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *FriendRepositoryImpl) FindPendingByUsers(userIDs []uint) ([]models.FriendRequest, error) {
	if len(userIDs) == 0 {
		return []models.FriendRequest{}, nil
	}
	var requests []models.FriendRequest
	err := r.DB.
		Where("(from_user_id IN ? OR to_user_id IN ?) AND status = ?",
			userIDs, userIDs, models.RequestStatusPending).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *FriendRepositoryImpl) PendingOrLinked(userID, friendID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.FriendRequest{}).
		Where("((from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)) AND status = ?",
			userID, friendID, friendID, userID, models.RequestStatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	return r.EdgeExists(userID, friendID)
}

// ApproveRequest обновляет заявку и создает связь в одной транзакции:
// одобрение и появление связи должны быть единым целым
func (r *FriendRepositoryImpl) ApproveRequest(request *models.FriendRequest, parentID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		request.Status = models.RequestStatusApproved
		request.ApprovedByParentID = &parentID

		if err := tx.Save(request).Error; err != nil {
			return err
		}

		edge := models.Friend{
			UserID:             request.FromUserID,
			FriendID:           request.ToUserID,
			ApprovedByParentID: &parentID,
		}
		return tx.Create(&edge).Error
	})
}

func (r *FriendRepositoryImpl) FindFriendsByUser(userID uint) ([]models.Friend, error) {
	var friends []models.Friend
	err := r.DB.
		Where("user_id = ? OR friend_id = ?", userID, userID).
		Find(&friends).Error
	return friends, err
}

func (r *FriendRepositoryImpl) EdgeExists(userID, friendID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Friend{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Count(&count).Error
	return count > 0, err
}
