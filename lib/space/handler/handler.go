package spacehandler

import (
	"fmt"
	"tracker-backend/db"
	spacestore "tracker-backend/lib/space/store"
	spaceusersstore "tracker-backend/lib/space/users/store"
	authutils "tracker-backend/lib/utils/auth-utils"
	"tracker-backend/models"
	spaceapimodels "tracker-backend/models/api/space"
	dbmodels "tracker-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	CreateOrganizationSpace(request spaceapimodels.CreateOrganization) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		spaceStore:     spacestore.NewInstance(db.DB),
		spaceUserStore: spaceusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	spaceStore     spacestore.Provider
	spaceUserStore spaceusersstore.Provider
}

func (i impl) CreateOrganizationSpace(request spaceapimodels.CreateOrganization) error {
	space := dbmodels.Space{
		IsActive:         true,
		OrganizationName: request.OrganizationName,
		FullName:         request.OrganizationName,
		DirectorName:     request.DirectorName,
	}
	spaceID, err := i.spaceStore.CreateSpace(space)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("Ошибка создания организации в space")
		return err
	}
	admin := dbmodels.SpaceUser{
		Password:  authutils.GetMD5Hash(request.AdminPassword),
		FirstName: request.AdminFirstName,
		LastName:  request.AdminLastName,
		Email:     request.AdminEmail,
		IsActive:  true,
		SpaceID:   spaceID,
		Role:      models.SpaceAdminRole,
	}
	err = i.spaceUserStore.Create(admin)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("Ошибка создания администратора в space")
		err = i.spaceStore.DeleteSpace(spaceID)
		if err != nil {
			log.
				WithField("request", fmt.Sprintf("%+v", request)).
				WithError(err).
				Error("Ошибка очистки space после неудачного создания администратора")
		}
		return err
	}
	return nil
}
