package dbmodels

import (
	"tracker-backend/models"
	filesapimodels "tracker-backend/models/api/files"
)

type FileStorage struct {
	BaseSpaceModel
	Name         string             `gorm:"type:varchar(255)"`
	SubjectType  models.SubjectType `gorm:"type:varchar(50);index:idx_file_subject"`
	SubjectID    string             `gorm:"type:varchar(36);index:idx_file_subject"`
	UploadedByID string             `gorm:"type:varchar(36)"`
	UploadedBy   *SpaceUser         `gorm:"foreignKey:UploadedByID"`
	ContentType  string             `gorm:"type:varchar(150)"`
	Size         int64
	ObjectKey    string `gorm:"type:varchar(100)"` // ключ в S3 бакете организации
}

func (f FileStorage) ToModel() filesapimodels.FileView {
	return filesapimodels.FileView{
		ID:          f.ID,
		Name:        f.Name,
		SubjectType: string(f.SubjectType),
		SubjectID:   f.SubjectID,
		SpaceID:     f.SpaceID,
		ContentType: f.ContentType,
		Size:        f.Size,
		CreatedAt:   f.CreatedAt,
	}
}
