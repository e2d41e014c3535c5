package commentapimodels

import (
	"strings"
	"time"
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
)

type CommentData struct {
	SubjectType string `json:"subject_type"`
	SubjectID   string `json:"subject_id"`
	ParentID    string `json:"parent_id"`
	Text        string `json:"text"`
}

func (r CommentData) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("отсутствует текст комментария")
	}
	if r.SubjectType == "" || r.SubjectID == "" {
		return errors.New("не указана сущность комментария")
	}
	return nil
}

type CommentListFilter struct {
	SubjectType string `json:"subject_type"`
	SubjectID   string `json:"subject_id"`
}

func (r CommentListFilter) Validate() error {
	if r.SubjectType == "" || r.SubjectID == "" {
		return errors.New("не указана сущность комментария")
	}
	return nil
}

type CommentView struct {
	ID         string        `json:"id"`
	ParentID   string        `json:"parent_id,omitempty"`
	AuthorID   string        `json:"author_id"`
	AuthorName string        `json:"author_name"`
	Text       string        `json:"text"`
	CreatedAt  time.Time     `json:"created_at"`
	Replies    []CommentView `json:"replies,omitempty"`
}

func CommentConvert(rec dbmodels.Comment) CommentView {
	authorName := ""
	if rec.Author != nil {
		authorName = rec.Author.GetFullName()
	}
	parentID := ""
	if rec.ParentID != nil {
		parentID = *rec.ParentID
	}
	return CommentView{
		ID:         rec.ID,
		ParentID:   parentID,
		AuthorID:   rec.AuthorID,
		AuthorName: authorName,
		Text:       rec.Text,
		CreatedAt:  rec.CreatedAt,
	}
}

// BuildTree собирает плоский список комментариев в дерево ответов,
// порядок создания сохраняется на каждом уровне
func BuildTree(list []dbmodels.Comment) []CommentView {
	byParent := map[string][]dbmodels.Comment{}
	for _, rec := range list {
		parentID := ""
		if rec.ParentID != nil {
			parentID = *rec.ParentID
		}
		byParent[parentID] = append(byParent[parentID], rec)
	}
	var build func(parentID string) []CommentView
	build = func(parentID string) []CommentView {
		children := byParent[parentID]
		result := make([]CommentView, 0, len(children))
		for _, rec := range children {
			view := CommentConvert(rec)
			view.Replies = build(rec.ID)
			result = append(result, view)
		}
		return result
	}
	return build("")
}
