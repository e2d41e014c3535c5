package filesstore

import (
	"tracker-backend/models"
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	SaveFile(rec dbmodels.FileStorage) (id string, err error)
	GetByID(spaceID, id string) (*dbmodels.FileStorage, error)
	Delete(spaceID, id string) error
	ListBySubject(spaceID string, subjectType models.SubjectType, subjectID string) (list []dbmodels.FileStorage, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) SaveFile(rec dbmodels.FileStorage) (id string, err error) {
	err = i.db.
		Omit("UploadedBy").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
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
		Delete(&dbmodels.FileStorage{}).
		Error
}

func (i impl) ListBySubject(spaceID string, subjectType models.SubjectType, subjectID string) (list []dbmodels.FileStorage, err error) {
	list = []dbmodels.FileStorage{}
	err = i.db.
		Where("space_id = ?", spaceID).
		Where("subject_type = ?", subjectType).
		Where("subject_id = ?", subjectID).
		Order("created_at").
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
