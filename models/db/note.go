package dbmodels

import "tracker-backend/models"

type Note struct {
	BaseSpaceModel
	Title      string
	Content    string
	OwnerID    string               `gorm:"type:varchar(36);index"`
	Owner      *SpaceUser           `gorm:"foreignKey:OwnerID"`
	ShareType  models.NoteShareType `gorm:"type:varchar(20)"`
	SharedWith StringSlice          `gorm:"type:jsonb"`
}
