package models

import "time"

// Типы контента
const (
	ContentTypeStory      = "story"
	ContentTypeLearning   = "learning"
	ContentTypeCreativity = "creativity"
)

type Content struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	ThumbnailURL string    `json:"thumbnail_url"`
	VideoURL     string    `json:"video_url"`
	Likes        int       `json:"likes"`
	IsShort      bool      `json:"is_short"`
	Duration     *int      `json:"duration"` // Длительность в секундах, для shorts
	CreatorID    uint      `json:"creator_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsValidContentType проверяет допустимость типа контента
func IsValidContentType(t string) bool {
	return t == ContentTypeStory || t == ContentTypeLearning || t == ContentTypeCreativity
}
