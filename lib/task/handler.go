package taskhandler

import (
	"bytes"
	"fmt"
	"tracker-backend/db"
	xlsexport "tracker-backend/lib/export/xls"
	notifyhandler "tracker-backend/lib/notify"
	projectstore "tracker-backend/lib/project/store"
	spaceusersstore "tracker-backend/lib/space/users/store"
	taskstore "tracker-backend/lib/task/store"
	"tracker-backend/models"
	taskapimodels "tracker-backend/models/api/task"
	dbmodels "tracker-backend/models/db"
	"tracker-backend/models/errs"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(spaceID, projectID, userID string, data taskapimodels.TaskData) (id string, err error)
	GetByID(spaceID, id string) (taskapimodels.TaskView, error)
	Update(spaceID, id string, data taskapimodels.TaskData) error
	Delete(spaceID, id string) error
	List(spaceID string, filter taskapimodels.TaskFilter) (list []taskapimodels.TaskView, rowCount int64, err error)
	ExportXLSX(spaceID, projectID string) (fileName string, file *bytes.Buffer, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:           taskstore.NewInstance(db.DB),
		projectStore:    projectstore.NewInstance(db.DB),
		spaceUsersStore: spaceusersstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:           taskstore.NewInstance(tx),
		projectStore:    projectstore.NewInstance(tx),
		spaceUsersStore: spaceusersstore.NewInstance(tx),
	}
}

type impl struct {
	store           taskstore.Provider
	projectStore    projectstore.Provider
	spaceUsersStore spaceusersstore.Provider
}

func (i impl) Create(spaceID, projectID, userID string, data taskapimodels.TaskData) (id string, err error) {
	logger := log.WithField("space_id", spaceID)
	project, err := i.projectStore.GetByID(spaceID, projectID)
	if err != nil {
		return "", err
	}
	if project == nil {
		return "", errors.Wrapf(errs.ErrNotFound, "проект (%v) не найден", projectID)
	}
	status := data.Status
	if status == "" {
		status = models.TaskStatusTodo
	}
	priority := data.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}
	rec := dbmodels.Task{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		ProjectID:   projectID,
		Name:        data.Name,
		Description: data.Description,
		Status:      status,
		Priority:    priority,
		Department:  data.Department,
		DueDate:     data.DueDate,
		Tags:        data.Tags,
		CreatedByID: userID,
	}
	if data.AssigneeID != "" {
		err = i.checkAssignee(spaceID, data.AssigneeID)
		if err != nil {
			return "", err
		}
		rec.AssigneeID = &data.AssigneeID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("Ошибка создания задачи")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("Создана задача")
	if rec.AssigneeID != nil && *rec.AssigneeID != userID {
		notifyhandler.Instance.UserEvent(*rec.AssigneeID, models.NotifyTaskAssigned,
			fmt.Sprintf("Вам назначена задача «%s»", rec.Name))
	}
	return id, nil
}

func (i impl) GetByID(spaceID, id string) (taskapimodels.TaskView, error) {
	rec, err := i.getRec(spaceID, id)
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	return taskapimodels.TaskConvert(*rec), nil
}

func (i impl) Update(spaceID, id string, data taskapimodels.TaskData) error {
	logger := log.WithField("space_id", spaceID).
		WithField("rec_id", id)
	rec, err := i.getRec(spaceID, id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":        data.Name,
		"description": data.Description,
		"department":  data.Department,
		"due_date":    data.DueDate,
		"tags":        dbmodels.StringSlice(data.Tags),
	}
	if data.Status != "" {
		updMap["status"] = data.Status
	}
	if data.Priority != "" {
		updMap["priority"] = data.Priority
	}
	assigneeChanged := false
	if data.AssigneeID != "" {
		err = i.checkAssignee(spaceID, data.AssigneeID)
		if err != nil {
			return err
		}
		assigneeChanged = rec.AssigneeID == nil || *rec.AssigneeID != data.AssigneeID
		updMap["assignee_id"] = data.AssigneeID
	}
	err = i.store.Update(spaceID, id, updMap)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка обновления задачи")
		return err
	}
	logger.Info("обновлена задача")
	if assigneeChanged {
		notifyhandler.Instance.UserEvent(data.AssigneeID, models.NotifyTaskAssigned,
			fmt.Sprintf("Вам назначена задача «%s»", data.Name))
	}
	return nil
}

func (i impl) Delete(spaceID, id string) error {
	logger := log.WithField("space_id", spaceID).
		WithField("rec_id", id)
	_, err := i.getRec(spaceID, id)
	if err != nil {
		return err
	}
	err = i.store.Delete(spaceID, id)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка удаления задачи")
		return err
	}
	logger.Info("удалена задача")
	return nil
}

func (i impl) List(spaceID string, filter taskapimodels.TaskFilter) (list []taskapimodels.TaskView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(spaceID, filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []taskapimodels.TaskView{}, rowCount, nil
	}
	recList, err := i.store.List(spaceID, filter)
	if err != nil {
		log.WithField("space_id", spaceID).
			WithError(err).
			Error("ошибка получения списка задач")
		return nil, 0, err
	}
	list = make([]taskapimodels.TaskView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, taskapimodels.TaskConvert(rec))
	}
	return list, rowCount, nil
}

// ExportXLSX выгружает все задачи проекта в xlsx
func (i impl) ExportXLSX(spaceID, projectID string) (fileName string, file *bytes.Buffer, err error) {
	project, err := i.projectStore.GetByID(spaceID, projectID)
	if err != nil {
		return "", nil, err
	}
	if project == nil {
		return "", nil, errors.Wrapf(errs.ErrNotFound, "проект (%v) не найден", projectID)
	}
	recList, err := i.store.ListByProject(spaceID, projectID)
	if err != nil {
		return "", nil, err
	}
	file, err = xlsexport.Instance.ExportTaskList(recList)
	if err != nil {
		log.WithField("space_id", spaceID).
			WithField("project_id", projectID).
			WithError(err).
			Error("ошибка выгрузки задач проекта в xlsx")
		return "", nil, err
	}
	fileName = fmt.Sprintf("tasks_%v.xlsx", projectID)
	return fileName, file, nil
}

func (i impl) getRec(spaceID, id string) (*dbmodels.Task, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.DeletedAt != nil {
		return nil, errors.Wrapf(errs.ErrNotFound, "задача (%v) не найдена", id)
	}
	return rec, nil
}

func (i impl) checkAssignee(spaceID, assigneeID string) error {
	user, err := i.spaceUsersStore.GetByID(assigneeID)
	if err != nil {
		return err
	}
	if user == nil || user.SpaceID != spaceID {
		return errors.Errorf("исполнитель %v не найден в справочнике сотрудников", assigneeID)
	}
	return nil
}
