package spaceauthhandler

import (
	"time"
	"tracker-backend/db"
	spaceusersstore "tracker-backend/lib/space/users/store"
	authutils "tracker-backend/lib/utils/auth-utils"
	"tracker-backend/models"
	authapimodels "tracker-backend/models/api/auth"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Login(email, password string) (response authapimodels.TokenResponse, err error)
	Refresh(refreshToken string) (response authapimodels.TokenResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		spaceUsersStore: spaceusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	spaceUsersStore spaceusersstore.Provider
}

func (i impl) Login(email, password string) (response authapimodels.TokenResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.spaceUsersStore.GetByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка поиска пользователя по почте")
		return authapimodels.TokenResponse{}, err
	}
	if user == nil || !user.IsActive {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.TokenResponse{}, errors.New("пользователь с такой почтой не найден")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.TokenResponse{}, errors.New("пользователь не прошел проверку пароля")
	}
	response, err = i.tokenPair(user.ID, user.GetFullName(), user.SpaceID, user.Role.IsSpaceAdmin(), user.Role)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.TokenResponse{}, err
	}
	err = i.spaceUsersStore.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка обновления даты последнего входа")
	}
	return response, nil
}

func (i impl) Refresh(refreshToken string) (response authapimodels.TokenResponse, err error) {
	claims, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.TokenResponse{}, errors.New("недействительный refresh токен")
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return authapimodels.TokenResponse{}, errors.New("недействительный refresh токен")
	}
	user, err := i.spaceUsersStore.GetByID(userID)
	if err != nil {
		return authapimodels.TokenResponse{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.TokenResponse{}, errors.New("пользователь не найден")
	}
	return i.tokenPair(user.ID, user.GetFullName(), user.SpaceID, user.Role.IsSpaceAdmin(), user.Role)
}

func (i impl) tokenPair(userID, name, spaceID string, isAdmin bool, role models.UserRole) (authapimodels.TokenResponse, error) {
	accessToken, err := authutils.GetToken(userID, name, spaceID, isAdmin, role)
	if err != nil {
		return authapimodels.TokenResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		return authapimodels.TokenResponse{}, err
	}
	return authapimodels.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
