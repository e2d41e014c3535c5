package projecthandler

import (
	"fmt"
	"time"
	"tracker-backend/db"
	blockerstore "tracker-backend/lib/project/blocker-store"
	milestonestore "tracker-backend/lib/project/milestone-store"
	projectstore "tracker-backend/lib/project/store"
	storesstore "tracker-backend/lib/stores/store"
	"tracker-backend/models"
	projectapimodels "tracker-backend/models/api/project"
	dbmodels "tracker-backend/models/db"
	"tracker-backend/models/errs"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(spaceID, storeID, userID string, data projectapimodels.ProjectData) (id string, err error)
	GetByID(spaceID, id string) (projectapimodels.ProjectView, error)
	Update(spaceID, id string, data projectapimodels.ProjectData) error
	Delete(spaceID, id string) error
	ListByStore(spaceID, storeID string) (list []projectapimodels.ProjectView, err error)

	CreateMilestone(spaceID, projectID string, data projectapimodels.MilestoneData) (id string, err error)
	UpdateMilestone(spaceID, id string, data projectapimodels.MilestoneData) error
	DeleteMilestone(spaceID, id string) error
	ListMilestones(spaceID, projectID string) (list []projectapimodels.MilestoneView, err error)

	CreateBlocker(spaceID, projectID, userID string, data projectapimodels.BlockerData) (id string, err error)
	UpdateBlocker(spaceID, id string, data projectapimodels.BlockerData) error
	ResolveBlocker(spaceID, id string) error
	DeleteBlocker(spaceID, id string) error
	ListBlockers(spaceID, projectID string) (list []projectapimodels.BlockerView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          projectstore.NewInstance(db.DB),
		storesStore:    storesstore.NewInstance(db.DB),
		milestoneStore: milestonestore.NewInstance(db.DB),
		blockerStore:   blockerstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:          projectstore.NewInstance(tx),
		storesStore:    storesstore.NewInstance(tx),
		milestoneStore: milestonestore.NewInstance(tx),
		blockerStore:   blockerstore.NewInstance(tx),
	}
}

type impl struct {
	store          projectstore.Provider
	storesStore    storesstore.Provider
	milestoneStore milestonestore.Provider
	blockerStore   blockerstore.Provider
}

func (i impl) Create(spaceID, storeID, userID string, data projectapimodels.ProjectData) (id string, err error) {
	logger := log.WithField("space_id", spaceID)
	storeRec, err := i.storesStore.GetByID(spaceID, storeID)
	if err != nil {
		return "", err
	}
	if storeRec == nil {
		return "", errors.Wrapf(errs.ErrNotFound, "магазин (%v) не найден", storeID)
	}
	status := data.Status
	if status == "" {
		status = models.ProjectStatusPlanning
	}
	rec := dbmodels.Project{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		StoreID:     storeID,
		Name:        data.Name,
		Description: data.Description,
		Status:      status,
		AuthorID:    userID,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("Ошибка создания проекта")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("Создан проект")
	return id, nil
}

func (i impl) GetByID(spaceID, id string) (projectapimodels.ProjectView, error) {
	rec, err := i.getRec(spaceID, id)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	return projectapimodels.ProjectConvert(*rec), nil
}

func (i impl) Update(spaceID, id string, data projectapimodels.ProjectData) error {
	logger := log.WithField("space_id", spaceID).
		WithField("rec_id", id)
	_, err := i.getRec(spaceID, id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":        data.Name,
		"description": data.Description,
		"start_date":  data.StartDate,
		"end_date":    data.EndDate,
	}
	if data.Status != "" {
		updMap["status"] = data.Status
	}
	err = i.store.Update(spaceID, id, updMap)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка обновления проекта")
		return err
	}
	logger.Info("обновлен проект")
	return nil
}

func (i impl) Delete(spaceID, id string) error {
	logger := log.WithField("space_id", spaceID).
		WithField("rec_id", id)
	_, err := i.getRec(spaceID, id)
	if err != nil {
		return err
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		err := milestonestore.NewInstance(tx).DeleteByProject(spaceID, id)
		if err != nil {
			return err
		}
		err = blockerstore.NewInstance(tx).DeleteByProject(spaceID, id)
		if err != nil {
			return err
		}
		return projectstore.NewInstance(tx).Delete(spaceID, id)
	})
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка удаления проекта")
		return err
	}
	logger.Info("удален проект")
	return nil
}

func (i impl) ListByStore(spaceID, storeID string) (list []projectapimodels.ProjectView, err error) {
	recList, err := i.store.ListByStore(spaceID, storeID)
	if err != nil {
		log.WithField("space_id", spaceID).
			WithError(err).
			Error("ошибка получения списка проектов")
		return nil, err
	}
	list = make([]projectapimodels.ProjectView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, projectapimodels.ProjectConvert(rec))
	}
	return list, nil
}

func (i impl) CreateMilestone(spaceID, projectID string, data projectapimodels.MilestoneData) (id string, err error) {
	_, err = i.getRec(spaceID, projectID)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Milestone{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		ProjectID:   projectID,
		Name:        data.Name,
		Description: data.Description,
		Date:        data.Date,
		Completed:   data.Completed,
	}
	id, err = i.milestoneStore.Create(rec)
	if err != nil {
		log.WithField("space_id", spaceID).
			WithError(err).
			Error("Ошибка создания вехи проекта")
		return "", err
	}
	return id, nil
}

func (i impl) UpdateMilestone(spaceID, id string, data projectapimodels.MilestoneData) error {
	rec, err := i.milestoneStore.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.ErrNotFound
	}
	updMap := map[string]interface{}{
		"name":        data.Name,
		"description": data.Description,
		"date":        data.Date,
		"completed":   data.Completed,
	}
	return i.milestoneStore.Update(spaceID, id, updMap)
}

func (i impl) DeleteMilestone(spaceID, id string) error {
	rec, err := i.milestoneStore.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.ErrNotFound
	}
	return i.milestoneStore.Delete(spaceID, id)
}

func (i impl) ListMilestones(spaceID, projectID string) (list []projectapimodels.MilestoneView, err error) {
	recList, err := i.milestoneStore.ListByProject(spaceID, projectID)
	if err != nil {
		return nil, err
	}
	list = make([]projectapimodels.MilestoneView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, projectapimodels.MilestoneConvert(rec))
	}
	return list, nil
}

func (i impl) CreateBlocker(spaceID, projectID, userID string, data projectapimodels.BlockerData) (id string, err error) {
	_, err = i.getRec(spaceID, projectID)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Blocker{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		ProjectID:    projectID,
		Title:        data.Title,
		Description:  data.Description,
		ReportedByID: userID,
	}
	id, err = i.blockerStore.Create(rec)
	if err != nil {
		log.WithField("space_id", spaceID).
			WithError(err).
			Error("Ошибка создания блокера проекта")
		return "", err
	}
	return id, nil
}

func (i impl) UpdateBlocker(spaceID, id string, data projectapimodels.BlockerData) error {
	rec, err := i.blockerStore.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.ErrNotFound
	}
	updMap := map[string]interface{}{
		"title":       data.Title,
		"description": data.Description,
	}
	return i.blockerStore.Update(spaceID, id, updMap)
}

func (i impl) ResolveBlocker(spaceID, id string) error {
	rec, err := i.blockerStore.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.ErrNotFound
	}
	updMap := map[string]interface{}{
		"is_resolved":   true,
		"date_resolved": time.Now(),
	}
	return i.blockerStore.Update(spaceID, id, updMap)
}

func (i impl) DeleteBlocker(spaceID, id string) error {
	rec, err := i.blockerStore.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.ErrNotFound
	}
	return i.blockerStore.Delete(spaceID, id)
}

func (i impl) ListBlockers(spaceID, projectID string) (list []projectapimodels.BlockerView, err error) {
	recList, err := i.blockerStore.ListByProject(spaceID, projectID)
	if err != nil {
		return nil, err
	}
	list = make([]projectapimodels.BlockerView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, projectapimodels.BlockerConvert(rec))
	}
	return list, nil
}

func (i impl) getRec(spaceID, id string) (*dbmodels.Project, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(errs.ErrNotFound, "проект (%v) не найден", id)
	}
	return rec, nil
}
