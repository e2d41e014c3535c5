package wsmodels

import "tracker-backend/models"

type ServerMessage struct {
	ToUserID string                 `json:"-"`
	Code     models.NotifyEventCode `json:"code"`
	Title    string                 `json:"title"`
	Msg      string                 `json:"msg"`
}
