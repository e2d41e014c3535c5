package dbmodels

import (
	"time"
	"tracker-backend/models"
)

type Project struct {
	BaseSpaceModel
	StoreID     string `gorm:"type:varchar(36);index:idx_project_store"`
	Store       *Store
	Name        string `gorm:"type:varchar(255)"`
	Description string
	Status      models.ProjectStatus `gorm:"type:varchar(50)"`
	AuthorID    string               `gorm:"type:varchar(36)"`
	Author      *SpaceUser           `gorm:"foreignKey:AuthorID"`
	StartDate   *time.Time
	EndDate     *time.Time
}

type Milestone struct {
	BaseSpaceModel
	ProjectID   string `gorm:"type:varchar(36);index:idx_milestone_project"`
	Project     *Project
	Name        string `gorm:"type:varchar(255)"`
	Description string
	Date        *time.Time
	Completed   bool
}

type Blocker struct {
	BaseSpaceModel
	ProjectID    string `gorm:"type:varchar(36);index:idx_blocker_project"`
	Project      *Project
	Title        string `gorm:"type:varchar(255)"`
	Description  string
	ReportedByID string     `gorm:"type:varchar(36)"`
	ReportedBy   *SpaceUser `gorm:"foreignKey:ReportedByID"`
	IsResolved   bool
	DateResolved *time.Time
}
