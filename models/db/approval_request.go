package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"
	"tracker-backend/models"
)

type ApprovalRequest struct {
	BaseSpaceModel
	Title         string             `gorm:"type:varchar(255)"`
	Description   string
	SubjectType   models.SubjectType `gorm:"type:varchar(50);index:idx_approval_subject"`
	SubjectID     string             `gorm:"type:varchar(36);index:idx_approval_subject"`
	RequestedByID string             `gorm:"type:varchar(36);index"`
	RequestedBy   *SpaceUser         `gorm:"foreignKey:RequestedByID"`
	ApproverIDs   StringSlice        `gorm:"type:jsonb"`
	Decisions     Decisions          `gorm:"type:jsonb"`
	Status        models.ApprovalStatus `gorm:"type:varchar(50);index"`
	DueDate       *time.Time
	Note          string
	DeletedAt     *time.Time `gorm:"index"`
}

type Decision struct {
	UserID    string                `json:"user_id"`
	Action    models.ApprovalAction `json:"action"`
	Comment   string                `json:"comment,omitempty"`
	DecidedAt time.Time             `json:"decided_at"`
}

// Decisions - jsonb список решений, не более одного на согласующего
type Decisions []Decision

func (j Decisions) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *Decisions) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

// ByUser возвращает решение согласующего, если оно есть
func (j Decisions) ByUser(userID string) (Decision, bool) {
	for _, d := range j {
		if d.UserID == userID {
			return d, true
		}
	}
	return Decision{}, false
}

// Upsert заменяет решение согласующего или добавляет первое
func (j Decisions) Upsert(d Decision) Decisions {
	for k := range j {
		if j[k].UserID == d.UserID {
			j[k] = d
			return j
		}
	}
	return append(j, d)
}

func (r ApprovalRequest) IsDeleted() bool {
	return r.DeletedAt != nil
}

type ApprovalHistory struct {
	BaseSpaceModel
	RequestID string                `gorm:"type:varchar(36);index:idx_approval_history"`
	UserID    string                `gorm:"type:varchar(36)"`
	User      *SpaceUser            `gorm:"foreignKey:UserID"`
	Action    models.ApprovalAction `gorm:"type:varchar(50)"`
	Comment   string
	Status    models.ApprovalStatus `gorm:"type:varchar(50)"` // статус заявки после решения
}
