package models

import "time"

// Статусы заявки в друзья. approved и rejected — терминальные состояния
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

type FriendRequest struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	FromUserID         uint      `json:"from_user_id"`
	ToUserID           uint      `json:"to_user_id"`
	Status             string    `json:"status" gorm:"default:pending"`
	ApprovedByParentID *uint     `json:"approved_by_parent_id"`
	CreatedAt          time.Time `json:"created_at"`
}

// IsPending сообщает, ожидает ли заявка решения родителя
func (r *FriendRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}
