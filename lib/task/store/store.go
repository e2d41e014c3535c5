package taskstore

import (
	taskapimodels "tracker-backend/models/api/task"
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Task) (id string, err error)
	GetByID(spaceID, id string) (*dbmodels.Task, error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	Delete(spaceID, id string) error
	List(spaceID string, filter taskapimodels.TaskFilter) (list []dbmodels.Task, err error)
	ListCount(spaceID string, filter taskapimodels.TaskFilter) (count int64, err error)
	ListByProject(spaceID, projectID string) (list []dbmodels.Task, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Task) (id string, err error) {
	err = i.db.
		Omit("Project", "Assignee", "CreatedBy").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.Task, error) {
	rec := dbmodels.Task{}
	err := i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Preload("Assignee").
		Preload("CreatedBy").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(spaceID, id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Task{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Updates(updMap).
		Error
}

func (i impl) Delete(spaceID, id string) error {
	return i.db.
		Model(&dbmodels.Task{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Update("deleted_at", gorm.Expr("NOW()")).
		Error
}

func (i impl) listQuery(spaceID string, filter taskapimodels.TaskFilter) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.Task{}).
		Where("space_id = ?", spaceID).
		Where("deleted_at IS NULL")
	if filter.ProjectID != "" {
		tx = tx.Where("project_id = ?", filter.ProjectID)
	}
	if filter.AssigneeID != "" {
		tx = tx.Where("assignee_id = ?", filter.AssigneeID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		tx = tx.Where("priority = ?", filter.Priority)
	}
	if filter.Search != "" {
		tx = tx.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	return tx
}

func (i impl) List(spaceID string, filter taskapimodels.TaskFilter) (list []dbmodels.Task, err error) {
	list = []dbmodels.Task{}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	err = i.listQuery(spaceID, filter).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Preload("Assignee").
		Preload("CreatedBy").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListByProject(spaceID, projectID string) (list []dbmodels.Task, err error) {
	list = []dbmodels.Task{}
	err = i.db.
		Model(&dbmodels.Task{}).
		Where("space_id = ?", spaceID).
		Where("project_id = ?", projectID).
		Where("deleted_at IS NULL").
		Order("created_at").
		Preload("Assignee").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(spaceID string, filter taskapimodels.TaskFilter) (count int64, err error) {
	err = i.listQuery(spaceID, filter).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
