package blockerstore

import (
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Blocker) (id string, err error)
	GetByID(spaceID, id string) (*dbmodels.Blocker, error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	Delete(spaceID, id string) error
	DeleteByProject(spaceID, projectID string) error
	ListByProject(spaceID, projectID string) (list []dbmodels.Blocker, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Blocker) (id string, err error) {
	err = i.db.
		Omit("Project", "ReportedBy").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.Blocker, error) {
	rec := dbmodels.Blocker{}
	err := i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Preload("ReportedBy").
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
		Model(&dbmodels.Blocker{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Updates(updMap).
		Error
}

func (i impl) Delete(spaceID, id string) error {
	return i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Delete(&dbmodels.Blocker{}).
		Error
}

func (i impl) DeleteByProject(spaceID, projectID string) error {
	return i.db.
		Where("project_id = ?", projectID).
		Where("space_id = ?", spaceID).
		Delete(&dbmodels.Blocker{}).
		Error
}

func (i impl) ListByProject(spaceID, projectID string) (list []dbmodels.Blocker, err error) {
	list = []dbmodels.Blocker{}
	err = i.db.
		Where("space_id = ?", spaceID).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Preload("ReportedBy").
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
