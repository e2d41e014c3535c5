package subject

import (
	"tracker-backend/models"
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Checker проверяет существование сущности по паре (тип, id)
// в рамках организации. Проверка выполняется при создании ссылки,
// на чтении ссылки не перепроверяются.
type Checker interface {
	Exists(spaceID string, subjectType models.SubjectType, subjectID string) (bool, error)
}

func NewChecker(DB *gorm.DB) Checker {
	return &checkerImpl{db: DB}
}

type checkerImpl struct {
	db *gorm.DB
}

func (c checkerImpl) Exists(spaceID string, subjectType models.SubjectType, subjectID string) (bool, error) {
	var model any
	switch subjectType {
	case models.SubjectStore:
		model = &dbmodels.Store{}
	case models.SubjectProject:
		model = &dbmodels.Project{}
	case models.SubjectTask:
		model = &dbmodels.Task{}
	case models.SubjectMilestone:
		model = &dbmodels.Milestone{}
	case models.SubjectBlocker:
		model = &dbmodels.Blocker{}
	case models.SubjectFile:
		model = &dbmodels.FileStorage{}
	case models.SubjectApprovalRequest:
		model = &dbmodels.ApprovalRequest{}
	default:
		return false, errors.Errorf("нет хранилища для типа сущности %v", subjectType)
	}
	var count int64
	err := c.db.
		Model(model).
		Where("id = ?", subjectID).
		Where("space_id = ?", spaceID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
