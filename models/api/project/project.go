package projectapimodels

import (
	"strings"
	"time"
	"tracker-backend/models"
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
)

type ProjectData struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status"`
	StartDate   *time.Time           `json:"start_date"`
	EndDate     *time.Time           `json:"end_date"`
}

func (r ProjectData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано название проекта")
	}
	if r.Status != "" && !r.Status.IsValid() {
		return errors.Errorf("недопустимый статус проекта: %v", r.Status)
	}
	return nil
}

type ProjectView struct {
	ProjectData
	ID         string    `json:"id"`
	StoreID    string    `json:"store_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func ProjectConvert(rec dbmodels.Project) ProjectView {
	authorName := ""
	if rec.Author != nil {
		authorName = rec.Author.GetFullName()
	}
	return ProjectView{
		ProjectData: ProjectData{
			Name:        rec.Name,
			Description: rec.Description,
			Status:      rec.Status,
			StartDate:   rec.StartDate,
			EndDate:     rec.EndDate,
		},
		ID:         rec.ID,
		StoreID:    rec.StoreID,
		AuthorID:   rec.AuthorID,
		AuthorName: authorName,
		CreatedAt:  rec.CreatedAt,
	}
}

type MilestoneData struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Completed   bool       `json:"completed"`
}

func (r MilestoneData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано название вехи")
	}
	return nil
}

type MilestoneView struct {
	MilestoneData
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
}

func MilestoneConvert(rec dbmodels.Milestone) MilestoneView {
	return MilestoneView{
		MilestoneData: MilestoneData{
			Name:        rec.Name,
			Description: rec.Description,
			Date:        rec.Date,
			Completed:   rec.Completed,
		},
		ID:        rec.ID,
		ProjectID: rec.ProjectID,
	}
}

type BlockerData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r BlockerData) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("не указан заголовок блокера")
	}
	return nil
}

type BlockerView struct {
	BlockerData
	ID             string     `json:"id"`
	ProjectID      string     `json:"project_id"`
	ReportedByID   string     `json:"reported_by_id"`
	ReportedByName string     `json:"reported_by_name"`
	IsResolved     bool       `json:"is_resolved"`
	DateResolved   *time.Time `json:"date_resolved"`
	CreatedAt      time.Time  `json:"created_at"`
}

func BlockerConvert(rec dbmodels.Blocker) BlockerView {
	reportedByName := ""
	if rec.ReportedBy != nil {
		reportedByName = rec.ReportedBy.GetFullName()
	}
	return BlockerView{
		BlockerData: BlockerData{
			Title:       rec.Title,
			Description: rec.Description,
		},
		ID:             rec.ID,
		ProjectID:      rec.ProjectID,
		ReportedByID:   rec.ReportedByID,
		ReportedByName: reportedByName,
		IsResolved:     rec.IsResolved,
		DateResolved:   rec.DateResolved,
		CreatedAt:      rec.CreatedAt,
	}
}
