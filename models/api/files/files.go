package filesapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type FileListFilter struct {
	SubjectType string `json:"subject_type"`
	SubjectID   string `json:"subject_id"`
}

func (r FileListFilter) Validate() error {
	if r.SubjectType == "" || r.SubjectID == "" {
		return errors.New("не указана сущность файла")
	}
	return nil
}

type FileView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SubjectType string    `json:"subject_type"`
	SubjectID   string    `json:"subject_id"`
	SpaceID     string    `json:"space_id"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}
