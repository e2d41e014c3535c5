package notesstore

import (
	"tracker-backend/models"
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Note) (id string, err error)
	GetByID(spaceID, id string) (*dbmodels.Note, error)
	Save(rec *dbmodels.Note) error
	Delete(spaceID, id string) error
	List(spaceID, userID string) (list []dbmodels.Note, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Note) (id string, err error) {
	err = i.db.
		Omit("Owner").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.Note, error) {
	rec := dbmodels.Note{}
	err := i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Preload("Owner").
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

func (i impl) Save(rec *dbmodels.Note) error {
	return i.db.
		Omit("Owner").
		Save(rec).
		Error
}

func (i impl) Delete(spaceID, id string) error {
	return i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Delete(&dbmodels.Note{}).
		Error
}

// List отдает заметки, видимые пользователю: общие, его собственные
// и адресованные ему через режим "для избранных"
func (i impl) List(spaceID, userID string) (list []dbmodels.Note, err error) {
	list = []dbmodels.Note{}
	err = i.db.
		Where("space_id = ?", spaceID).
		Where("share_type = ? OR owner_id = ? OR (share_type = ? AND shared_with @> ?::jsonb)",
			models.NoteSharePublic, userID, models.NoteShareShared, dbmodels.StringSlice{userID}).
		Order("updated_at DESC").
		Preload("Owner").
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
