package dbmodels

import "tracker-backend/models"

// PushData - отложенные ws-уведомления для оффлайн пользователей
type PushData struct {
	BaseModel
	UserID string                 `gorm:"type:varchar(36);index:idx_push_user"`
	Code   models.NotifyEventCode `gorm:"type:varchar(255);index:idx_push_code"`
	Msg    string
	Title  string `gorm:"type:varchar(255)"`
}
