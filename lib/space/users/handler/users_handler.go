package spaceusershandler

import (
	"fmt"
	"tracker-backend/db"
	spaceusersstore "tracker-backend/lib/space/users/store"
	authutils "tracker-backend/lib/utils/auth-utils"
	"tracker-backend/models"
	spaceapimodels "tracker-backend/models/api/space"
	dbmodels "tracker-backend/models/db"
	"tracker-backend/models/errs"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	CreateUser(request spaceapimodels.CreateUser) error
	UpdateUser(spaceID, userID string, request spaceapimodels.UpdateUser) error
	DeleteUser(spaceID, userID string) error
	GetListUsers(spaceID string, page, limit int) (usersList []spaceapimodels.SpaceUser, err error)
	GetByID(spaceID, userID string) (user spaceapimodels.SpaceUser, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		spaceUserStore: spaceusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	spaceUserStore spaceusersstore.Provider
}

func (i impl) GetByID(spaceID, userID string) (user spaceapimodels.SpaceUser, err error) {
	userDB, err := i.getRec(spaceID, userID)
	if err != nil {
		return spaceapimodels.SpaceUser{}, err
	}
	return userDB.ToModel(), nil
}

func (i impl) CreateUser(request spaceapimodels.CreateUser) error {
	userExist, err := i.spaceUserStore.ExistByEmail(request.Email)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("ошибка проверки уже существующего пользователя space")
		return err
	}
	if userExist {
		return errors.New("пользователь с такой почтой уже существует")
	}
	rec := dbmodels.SpaceUser{
		Password:    authutils.GetMD5Hash(request.Password),
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Email:       request.Email,
		IsActive:    true,
		PhoneNumber: request.PhoneNumber,
		SpaceID:     request.SpaceID,
		PushEnabled: true,
		EmailNotify: true,
	}
	if request.IsAdmin {
		rec.Role = models.SpaceAdminRole
	} else {
		rec.Role = models.SpaceUserRole
	}
	err = i.spaceUserStore.Create(rec)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("ошибка создания пользователя space")
		return err
	}
	return nil
}

func (i impl) UpdateUser(spaceID, userID string, request spaceapimodels.UpdateUser) error {
	_, err := i.getRec(spaceID, userID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"first_name":   request.FirstName,
		"last_name":    request.LastName,
		"phone_number": request.PhoneNumber,
	}
	if request.IsAdmin {
		updMap["role"] = models.SpaceAdminRole
	} else {
		updMap["role"] = models.SpaceUserRole
	}
	err = i.spaceUserStore.Update(userID, updMap)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("ошибка обновления пользователя space")
		return err
	}
	return nil
}

func (i impl) DeleteUser(spaceID, userID string) error {
	_, err := i.getRec(spaceID, userID)
	if err != nil {
		return err
	}
	err = i.spaceUserStore.Delete(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка удаления пользователя space")
		return err
	}
	return nil
}

func (i impl) GetListUsers(spaceID string, page, limit int) (usersList []spaceapimodels.SpaceUser, err error) {
	list, err := i.spaceUserStore.List(spaceID, page, limit)
	if err != nil {
		log.WithField("space_id", spaceID).WithError(err).Error("ошибка получения списка пользователей space")
		return nil, err
	}
	usersList = make([]spaceapimodels.SpaceUser, 0, len(list))
	for _, user := range list {
		usersList = append(usersList, user.ToModel())
	}
	return usersList, nil
}

func (i impl) getRec(spaceID, userID string) (*dbmodels.SpaceUser, error) {
	userDB, err := i.spaceUserStore.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка поиска пользователя")
		return nil, err
	}
	if userDB == nil || userDB.SpaceID != spaceID {
		return nil, errs.ErrNotFound
	}
	return userDB, nil
}
