package models

// Лимит экранного времени по умолчанию (в минутах)
const DefaultDailyTimeLimitMinutes = 60

type ParentalSettings struct {
	ID                    uint `json:"id" gorm:"primaryKey"`
	ChildID               uint `json:"child_id" gorm:"uniqueIndex"`
	DailyTimeLimitMinutes int  `json:"daily_time_limit_minutes"`
	AllowStories          bool `json:"allow_stories"`
	AllowLearning         bool `json:"allow_learning"`
	AllowCreativity       bool `json:"allow_creativity"`
	AllowMessaging        bool `json:"allow_messaging"`
	AllowExplore          bool `json:"allow_explore"`
	AllowShorts           bool `json:"allow_shorts"`
	AllowChatbot          bool `json:"allow_chatbot"`
}

// DefaultSettings возвращает настройки по умолчанию: новые аккаунты не должны
// быть заблокированы, пока родитель явно не ограничит доступ
func DefaultSettings(childID uint) ParentalSettings {
	return ParentalSettings{
		ChildID:               childID,
		DailyTimeLimitMinutes: DefaultDailyTimeLimitMinutes,
		AllowStories:          true,
		AllowLearning:         true,
		AllowCreativity:       true,
		AllowMessaging:        true,
		AllowExplore:          true,
		AllowShorts:           true,
		AllowChatbot:          true,
	}
}

// SettingsUpdate представляет частичное обновление настроек.
// Указатели позволяют отличить "поле не передано" от явного false/0.
type SettingsUpdate struct {
	DailyTimeLimitMinutes *int  `json:"daily_time_limit_minutes"`
	AllowStories          *bool `json:"allow_stories"`
	AllowLearning         *bool `json:"allow_learning"`
	AllowCreativity       *bool `json:"allow_creativity"`
	AllowMessaging        *bool `json:"allow_messaging"`
	AllowExplore          *bool `json:"allow_explore"`
	AllowShorts           *bool `json:"allow_shorts"`
	AllowChatbot          *bool `json:"allow_chatbot"`
}

// Apply накладывает переданные поля поверх существующих настроек
func (u *SettingsUpdate) Apply(s *ParentalSettings) {
	if u.DailyTimeLimitMinutes != nil {
		s.DailyTimeLimitMinutes = *u.DailyTimeLimitMinutes
	}
	if u.AllowStories != nil {
		s.AllowStories = *u.AllowStories
	}
	if u.AllowLearning != nil {
		s.AllowLearning = *u.AllowLearning
	}
	if u.AllowCreativity != nil {
		s.AllowCreativity = *u.AllowCreativity
	}
	if u.AllowMessaging != nil {
		s.AllowMessaging = *u.AllowMessaging
	}
	if u.AllowExplore != nil {
		s.AllowExplore = *u.AllowExplore
	}
	if u.AllowShorts != nil {
		s.AllowShorts = *u.AllowShorts
	}
	if u.AllowChatbot != nil {
		s.AllowChatbot = *u.AllowChatbot
	}
}
