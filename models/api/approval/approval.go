package approvalapimodels

import (
	"strings"
	"time"
	"tracker-backend/models"
	apimodels "tracker-backend/models/api"
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
)

type ApprovalCreateData struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	SubjectType string     `json:"subject_type"`
	SubjectID   string     `json:"subject_id"`
	ApproverIDs []string   `json:"approver_ids"`
	DueDate     *time.Time `json:"due_date"`
	Note        string     `json:"note"`
}

func (r ApprovalCreateData) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("не указан заголовок заявки")
	}
	if r.SubjectType == "" || r.SubjectID == "" {
		return errors.New("не указана сущность согласования")
	}
	return nil
}

type ApprovalUpdateData struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	ApproverIDs []string `json:"approver_ids"`
	Note        *string  `json:"note"`
}

type DecisionData struct {
	Action  models.ApprovalAction `json:"action"`
	Comment string                `json:"comment"`
}

func (r DecisionData) Validate() error {
	if r.Action == "" {
		return errors.New("не указано решение")
	}
	return nil
}

type ApprovalFilter struct {
	apimodels.Pagination
	Role   models.ApprovalListRole `json:"role"`
	Status models.ApprovalStatus   `json:"status"`
}

type DecisionView struct {
	UserID    string                `json:"user_id"`
	Action    models.ApprovalAction `json:"action"`
	Comment   string                `json:"comment,omitempty"`
	DecidedAt time.Time             `json:"decided_at"`
}

type ApprovalView struct {
	ID              string                `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	SubjectType     string                `json:"subject_type"`
	SubjectID       string                `json:"subject_id"`
	RequestedByID   string                `json:"requested_by_id"`
	RequestedByName string                `json:"requested_by_name"`
	ApproverIDs     []string              `json:"approver_ids"`
	Decisions       []DecisionView        `json:"decisions"`
	Status          models.ApprovalStatus `json:"status"`
	DueDate         *time.Time            `json:"due_date"`
	Note            string                `json:"note"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

func ApprovalConvert(rec dbmodels.ApprovalRequest) ApprovalView {
	requestedByName := ""
	if rec.RequestedBy != nil {
		requestedByName = rec.RequestedBy.GetFullName()
	}
	decisions := make([]DecisionView, 0, len(rec.Decisions))
	for _, d := range rec.Decisions {
		decisions = append(decisions, DecisionView{
			UserID:    d.UserID,
			Action:    d.Action,
			Comment:   d.Comment,
			DecidedAt: d.DecidedAt,
		})
	}
	return ApprovalView{
		ID:              rec.ID,
		Title:           rec.Title,
		Description:     rec.Description,
		SubjectType:     string(rec.SubjectType),
		SubjectID:       rec.SubjectID,
		RequestedByID:   rec.RequestedByID,
		RequestedByName: requestedByName,
		ApproverIDs:     rec.ApproverIDs,
		Decisions:       decisions,
		Status:          rec.Status,
		DueDate:         rec.DueDate,
		Note:            rec.Note,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

type ApprovalHistoryView struct {
	ID        string                `json:"id"`
	RequestID string                `json:"request_id"`
	UserID    string                `json:"user_id"`
	UserName  string                `json:"user_name"`
	Action    models.ApprovalAction `json:"action"`
	Comment   string                `json:"comment,omitempty"`
	Status    models.ApprovalStatus `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
}

func ApprovalHistoryConvert(rec dbmodels.ApprovalHistory) ApprovalHistoryView {
	userName := ""
	if rec.User != nil {
		userName = rec.User.GetFullName()
	}
	return ApprovalHistoryView{
		ID:        rec.ID,
		RequestID: rec.RequestID,
		UserID:    rec.UserID,
		UserName:  userName,
		Action:    rec.Action,
		Comment:   rec.Comment,
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
	}
}
