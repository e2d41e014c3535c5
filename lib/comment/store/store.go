package commentstore

import (
	"tracker-backend/models"
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Comment) (id string, err error)
	GetByID(spaceID, id string) (*dbmodels.Comment, error)
	Delete(spaceID, id string) error
	ListBySubject(spaceID string, subjectType models.SubjectType, subjectID string) (list []dbmodels.Comment, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Comment) (id string, err error) {
	err = i.db.
		Omit("Author").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.Comment, error) {
	rec := dbmodels.Comment{}
	err := i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
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

func (i impl) Delete(spaceID, id string) error {
	return i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Delete(&dbmodels.Comment{}).
		Error
}

func (i impl) ListBySubject(spaceID string, subjectType models.SubjectType, subjectID string) (list []dbmodels.Comment, err error) {
	list = []dbmodels.Comment{}
	err = i.db.
		Where("space_id = ?", spaceID).
		Where("subject_type = ?", subjectType).
		Where("subject_id = ?", subjectID).
		Order("created_at").
		Preload("Author").
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
