package models

// Роли пользователей
const (
	RoleParent  = "parent"
	RoleChild   = "child"
	RoleCreator = "creator"
)

type User struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Username    string `json:"username" gorm:"uniqueIndex;size:64"`
	Password    string `json:"-"`
	Role        string `json:"role"`
	ParentID    *uint  `json:"parent_id"` // Родитель-опекун, только для детских аккаунтов
	Avatar      string `json:"avatar"`
	DeviceToken string `json:"-"` // FCM токен устройства для push-уведомлений
}

// IsChild проверяет, является ли пользователь детским аккаунтом
func (u *User) IsChild() bool {
	return u.Role == RoleChild
}
