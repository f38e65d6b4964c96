package models

import "time"

// Friend — симметричная связь между двумя пользователями.
// Создается только как результат одобренной родителем заявки.
type Friend struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	UserID             uint      `json:"user_id"`
	FriendID           uint      `json:"friend_id"`
	ApprovedByParentID *uint     `json:"approved_by_parent_id"`
	CreatedAt          time.Time `json:"created_at"`
}
