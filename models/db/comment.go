package dbmodels

import "tracker-backend/models"

type Comment struct {
	BaseSpaceModel
	SubjectType models.SubjectType `gorm:"type:varchar(50);index:idx_comment_subject"`
	SubjectID   string             `gorm:"type:varchar(36);index:idx_comment_subject"`
	ParentID    *string            `gorm:"type:varchar(36);index"` // для веток ответов
	AuthorID    string             `gorm:"type:varchar(36)"`
	Author      *SpaceUser         `gorm:"foreignKey:AuthorID"`
	Text        string
}
