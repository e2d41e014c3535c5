package noteapimodels

import (
	"strings"
	"time"
	"tracker-backend/models"
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
)

type NoteData struct {
	Title      string               `json:"title"`
	Content    string               `json:"content"`
	ShareType  models.NoteShareType `json:"share_type"`
	SharedWith []string             `json:"shared_with"`
}

func (r NoteData) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("не указан заголовок заметки")
	}
	if r.ShareType != "" && !r.ShareType.IsValid() {
		return errors.Errorf("неизвестный режим видимости заметки (%v)", r.ShareType)
	}
	return nil
}

type NoteUpdateData struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (r NoteUpdateData) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return errors.New("не указан заголовок заметки")
	}
	return nil
}

type NoteShareData struct {
	ShareType  models.NoteShareType `json:"share_type"`
	SharedWith []string             `json:"shared_with"`
}

func (r NoteShareData) Validate() error {
	if !r.ShareType.IsValid() {
		return errors.Errorf("неизвестный режим видимости заметки (%v)", r.ShareType)
	}
	if r.ShareType == models.NoteShareShared && len(r.SharedWith) == 0 {
		return errors.New("не указаны получатели заметки")
	}
	return nil
}

type NoteView struct {
	ID         string               `json:"id"`
	Title      string               `json:"title"`
	Content    string               `json:"content"`
	OwnerID    string               `json:"owner_id"`
	OwnerName  string               `json:"owner_name"`
	ShareType  models.NoteShareType `json:"share_type"`
	SharedWith []string             `json:"shared_with,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

func NoteConvert(rec dbmodels.Note) NoteView {
	ownerName := ""
	if rec.Owner != nil {
		ownerName = rec.Owner.GetFullName()
	}
	return NoteView{
		ID:         rec.ID,
		Title:      rec.Title,
		Content:    rec.Content,
		OwnerID:    rec.OwnerID,
		OwnerName:  ownerName,
		ShareType:  rec.ShareType,
		SharedWith: rec.SharedWith,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}
