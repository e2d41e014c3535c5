package dbmodels

type Store struct {
	BaseSpaceModel
	Name      string `gorm:"type:varchar(255)"`
	Location  string `gorm:"type:varchar(255)"`
	ManagerID *string `gorm:"type:varchar(36)"`
	Manager   *SpaceUser `gorm:"foreignKey:ManagerID"`
}
