package storesstore

import (
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Store) (id string, err error)
	GetByID(spaceID, id string) (*dbmodels.Store, error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	Delete(spaceID, id string) error
	List(spaceID string, page, limit int) (list []dbmodels.Store, err error)
	ListCount(spaceID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Store) (id string, err error) {
	err = i.db.
		Omit("Manager").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.Store, error) {
	rec := dbmodels.Store{}
	err := i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Preload("Manager").
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
		Model(&dbmodels.Store{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Updates(updMap).
		Error
}

func (i impl) Delete(spaceID, id string) error {
	return i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Delete(&dbmodels.Store{}).
		Error
}

func (i impl) List(spaceID string, page, limit int) (list []dbmodels.Store, err error) {
	list = []dbmodels.Store{}
	offset := (page - 1) * limit
	err = i.db.
		Where("space_id = ?", spaceID).
		Order("name").
		Offset(offset).
		Limit(limit).
		Preload("Manager").
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

func (i impl) ListCount(spaceID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Store{}).
		Where("space_id = ?", spaceID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
