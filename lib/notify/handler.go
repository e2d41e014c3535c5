package notifyhandler

import (
	"fmt"
	"tracker-backend/db"
	notifyemail "tracker-backend/lib/notify/email"
	pushdatastore "tracker-backend/lib/space/push/data-store"
	spaceusersstore "tracker-backend/lib/space/users/store"
	connectionhub "tracker-backend/lib/ws/hub/connection-hub"
	"tracker-backend/models"
	dbmodels "tracker-backend/models/db"
	wsmodels "tracker-backend/models/ws"

	log "github.com/sirupsen/logrus"
)

// Provider рассылает события пользователям. Онлайн пользователи
// получают сообщение по ws, оффлайн - в очередь отложенных пушей.
// Ошибки доставки не прерывают бизнес-операцию, только логируются.
type Provider interface {
	UserEvent(userID string, code models.NotifyEventCode, msg string)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		spaceUserStore: spaceusersstore.NewInstance(db.DB),
		pushDataStore:  pushdatastore.NewInstance(db.DB),
	}
}

type impl struct {
	spaceUserStore spaceusersstore.Provider
	pushDataStore  pushdatastore.Provider
}

func (i impl) getLogger(userID string, code models.NotifyEventCode) *log.Entry {
	logger := log.
		WithField("user_id", userID).
		WithField("event_code", string(code))
	return logger
}

func (i impl) UserEvent(userID string, code models.NotifyEventCode, msg string) {
	logger := i.getLogger(userID, code)
	user, err := i.spaceUserStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения пользователя")
		return
	}
	if user == nil {
		logger.Error("пользователь не найден")
		return
	}
	if user.PushEnabled {
		i.sendPush(logger, userID, code, msg)
	}
	if user.EmailNotify {
		i.sendEmail(logger, *user, code, msg)
	}
}

func (i impl) sendPush(logger *log.Entry, userID string, code models.NotifyEventCode, msg string) {
	if connectionhub.Instance != nil && connectionhub.Instance.IsConnected(userID) {
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Code:     code,
			Title:    code.Title(),
			Msg:      msg,
		})
		return
	}
	err := i.pushDataStore.Create(dbmodels.PushData{
		UserID: userID,
		Code:   code,
		Title:  code.Title(),
		Msg:    msg,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения отложенного события")
	}
}

func (i impl) sendEmail(logger *log.Entry, user dbmodels.SpaceUser, code models.NotifyEventCode, msg string) {
	if notifyemail.Instance == nil || user.Email == "" {
		return
	}
	body := fmt.Sprintf("<p>%s</p>", msg)
	err := notifyemail.Instance.Send(user.Email, code.Title(), body)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки уведомления на почту")
	}
}
