package storeshandler

import (
	"fmt"
	"tracker-backend/db"
	spaceusersstore "tracker-backend/lib/space/users/store"
	storesstore "tracker-backend/lib/stores/store"
	storesapimodels "tracker-backend/models/api/stores"
	dbmodels "tracker-backend/models/db"
	"tracker-backend/models/errs"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(spaceID string, data storesapimodels.StoreData) (id string, err error)
	GetByID(spaceID, id string) (storesapimodels.StoreView, error)
	Update(spaceID, id string, data storesapimodels.StoreData) error
	Delete(spaceID, id string) error
	List(spaceID string, page, limit int) (list []storesapimodels.StoreView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:           storesstore.NewInstance(db.DB),
		spaceUsersStore: spaceusersstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:           storesstore.NewInstance(tx),
		spaceUsersStore: spaceusersstore.NewInstance(tx),
	}
}

type impl struct {
	store           storesstore.Provider
	spaceUsersStore spaceusersstore.Provider
}

func (i impl) Create(spaceID string, data storesapimodels.StoreData) (id string, err error) {
	logger := log.WithField("space_id", spaceID)
	rec := dbmodels.Store{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		Name:     data.Name,
		Location: data.Location,
	}
	if data.ManagerID != "" {
		err = i.checkManager(spaceID, data.ManagerID)
		if err != nil {
			return "", err
		}
		rec.ManagerID = &data.ManagerID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("Ошибка создания магазина")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("Создан магазин")
	return id, nil
}

func (i impl) GetByID(spaceID, id string) (storesapimodels.StoreView, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return storesapimodels.StoreView{}, err
	}
	if rec == nil {
		return storesapimodels.StoreView{}, errs.ErrNotFound
	}
	return storesapimodels.StoreConvert(*rec), nil
}

func (i impl) Update(spaceID, id string, data storesapimodels.StoreData) error {
	logger := log.WithField("space_id", spaceID).
		WithField("rec_id", id)
	_, err := i.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":     data.Name,
		"location": data.Location,
	}
	if data.ManagerID != "" {
		err = i.checkManager(spaceID, data.ManagerID)
		if err != nil {
			return err
		}
		updMap["manager_id"] = data.ManagerID
	}
	err = i.store.Update(spaceID, id, updMap)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка обновления магазина")
		return err
	}
	logger.Info("обновлен магазин")
	return nil
}

func (i impl) Delete(spaceID, id string) error {
	logger := log.WithField("space_id", spaceID).
		WithField("rec_id", id)
	_, err := i.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	err = i.store.Delete(spaceID, id)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка удаления магазина")
		return err
	}
	logger.Info("удален магазин")
	return nil
}

func (i impl) List(spaceID string, page, limit int) (list []storesapimodels.StoreView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(spaceID)
	if err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []storesapimodels.StoreView{}, rowCount, nil
	}
	recList, err := i.store.List(spaceID, page, limit)
	if err != nil {
		log.WithField("space_id", spaceID).
			WithError(err).
			Error("ошибка получения списка магазинов")
		return nil, 0, err
	}
	list = make([]storesapimodels.StoreView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, storesapimodels.StoreConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) checkManager(spaceID, managerID string) error {
	user, err := i.spaceUsersStore.GetByID(managerID)
	if err != nil {
		return err
	}
	if user == nil || user.SpaceID != spaceID {
		return errors.Errorf("менеджер %v не найден в справочнике сотрудников", managerID)
	}
	return nil
}
