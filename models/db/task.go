package dbmodels

import (
	"time"
	"tracker-backend/models"
)

type Task struct {
	BaseSpaceModel
	ProjectID    string `gorm:"type:varchar(36);index:idx_task_project"`
	Project      *Project
	Name         string `gorm:"type:varchar(255);index"`
	Description  string
	AssigneeID   *string              `gorm:"type:varchar(36);index:idx_task_assignee"`
	Assignee     *SpaceUser           `gorm:"foreignKey:AssigneeID"`
	Status       models.TaskStatus    `gorm:"type:varchar(50);index"`
	Priority     models.TaskPriority  `gorm:"type:varchar(50)"`
	Department   string               `gorm:"type:varchar(150)"`
	DueDate      *time.Time
	Tags         StringSlice `gorm:"type:jsonb"`
	DeletedAt    *time.Time  `gorm:"index"`
	CreatedByID  string      `gorm:"type:varchar(36)"`
	CreatedBy    *SpaceUser  `gorm:"foreignKey:CreatedByID"`
}
