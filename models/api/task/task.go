package taskapimodels

import (
	"strings"
	"time"
	"tracker-backend/models"
	apimodels "tracker-backend/models/api"
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
)

type TaskData struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	AssigneeID  string              `json:"assignee_id"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	Department  string              `json:"department"`
	DueDate     *time.Time          `json:"due_date"`
	Tags        []string            `json:"tags"`
}

func (r TaskData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано название задачи")
	}
	if r.Status != "" && !r.Status.IsValid() {
		return errors.Errorf("недопустимый статус задачи: %v", r.Status)
	}
	if r.Priority != "" && !r.Priority.IsValid() {
		return errors.Errorf("недопустимый приоритет задачи: %v", r.Priority)
	}
	return nil
}

type TaskView struct {
	TaskData
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id"`
	AssigneeName  string    `json:"assignee_name"`
	CreatedByID   string    `json:"created_by_id"`
	CreatedByName string    `json:"created_by_name"`
	CreatedAt     time.Time `json:"created_at"`
}

func TaskConvert(rec dbmodels.Task) TaskView {
	assigneeID := ""
	if rec.AssigneeID != nil {
		assigneeID = *rec.AssigneeID
	}
	assigneeName := ""
	if rec.Assignee != nil {
		assigneeName = rec.Assignee.GetFullName()
	}
	createdByName := ""
	if rec.CreatedBy != nil {
		createdByName = rec.CreatedBy.GetFullName()
	}
	return TaskView{
		TaskData: TaskData{
			Name:        rec.Name,
			Description: rec.Description,
			AssigneeID:  assigneeID,
			Status:      rec.Status,
			Priority:    rec.Priority,
			Department:  rec.Department,
			DueDate:     rec.DueDate,
			Tags:        rec.Tags,
		},
		ID:            rec.ID,
		ProjectID:     rec.ProjectID,
		AssigneeName:  assigneeName,
		CreatedByID:   rec.CreatedByID,
		CreatedByName: createdByName,
		CreatedAt:     rec.CreatedAt,
	}
}

type TaskFilter struct {
	apimodels.Pagination
	ProjectID  string              `json:"-"`
	AssigneeID string              `json:"assignee_id"`
	Status     models.TaskStatus   `json:"status"`
	Priority   models.TaskPriority `json:"priority"`
	Search     string              `json:"search"`
}

func (r TaskFilter) Validate() error {
	if r.Status != "" && !r.Status.IsValid() {
		return errors.Errorf("недопустимый статус задачи: %v", r.Status)
	}
	return nil
}
