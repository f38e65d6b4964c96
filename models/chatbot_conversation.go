package models

import "time"

// ChatbotConversation — журнал переписки ребенка с чат-ботом.
// Только добавление, записи не редактируются и не удаляются.
type ChatbotConversation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
