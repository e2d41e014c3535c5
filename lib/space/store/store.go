package spacestore

import (
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	CreateSpace(rec dbmodels.Space) (id string, err error)
	GetByID(id string) (*dbmodels.Space, error)
	DeleteSpace(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateSpace(rec dbmodels.Space) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Space, error) {
	rec := dbmodels.Space{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) DeleteSpace(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Space{}).
		Error
}
