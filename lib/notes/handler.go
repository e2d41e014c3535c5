package noteshandler

import (
	"tracker-backend/db"
	notesstore "tracker-backend/lib/notes/store"
	spaceusersstore "tracker-backend/lib/space/users/store"
	"tracker-backend/models"
	noteapimodels "tracker-backend/models/api/note"
	dbmodels "tracker-backend/models/db"
	"tracker-backend/models/errs"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(spaceID, userID string, data noteapimodels.NoteData) (id string, err error)
	List(spaceID, userID string) (list []noteapimodels.NoteView, err error)
	GetByID(spaceID, userID, id string) (noteapimodels.NoteView, error)
	Update(spaceID, userID, id string, data noteapimodels.NoteUpdateData) error
	Share(spaceID, userID, id string, data noteapimodels.NoteShareData) error
	Delete(spaceID, userID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:           notesstore.NewInstance(db.DB),
		spaceUsersStore: spaceusersstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:           notesstore.NewInstance(tx),
		spaceUsersStore: spaceusersstore.NewInstance(tx),
	}
}

type impl struct {
	store           notesstore.Provider
	spaceUsersStore spaceusersstore.Provider
}

func (i impl) Create(spaceID, userID string, data noteapimodels.NoteData) (id string, err error) {
	logger := log.WithField("space_id", spaceID)
	shareType := data.ShareType
	if shareType == "" {
		shareType = models.NoteSharePrivate
	}
	sharedWith := dbmodels.StringSlice{}
	if shareType == models.NoteShareShared {
		err = i.checkRecipients(spaceID, data.SharedWith)
		if err != nil {
			return "", err
		}
		sharedWith = dbmodels.StringSlice(data.SharedWith)
	}
	rec := dbmodels.Note{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		Title:      data.Title,
		Content:    data.Content,
		OwnerID:    userID,
		ShareType:  shareType,
		SharedWith: sharedWith,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithError(err).
			Error("Ошибка создания заметки")
		return "", err
	}
	return id, nil
}

func (i impl) List(spaceID, userID string) (list []noteapimodels.NoteView, err error) {
	recList, err := i.store.List(spaceID, userID)
	if err != nil {
		log.WithField("space_id", spaceID).
			WithError(err).
			Error("ошибка получения списка заметок")
		return nil, err
	}
	list = make([]noteapimodels.NoteView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, noteapimodels.NoteConvert(rec))
	}
	return list, nil
}

func (i impl) GetByID(spaceID, userID, id string) (noteapimodels.NoteView, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return noteapimodels.NoteView{}, err
	}
	if rec == nil {
		return noteapimodels.NoteView{}, errs.ErrNotFound
	}
	if !canView(*rec, userID) {
		return noteapimodels.NoteView{}, errors.Wrap(errs.ErrForbidden, "заметка недоступна")
	}
	return noteapimodels.NoteConvert(*rec), nil
}

func (i impl) Update(spaceID, userID, id string, data noteapimodels.NoteUpdateData) error {
	rec, err := i.getOwned(spaceID, userID, id)
	if err != nil {
		return err
	}
	if data.Title != nil {
		rec.Title = *data.Title
	}
	if data.Content != nil {
		rec.Content = *data.Content
	}
	return i.store.Save(rec)
}

// Share меняет режим видимости заметки. Доступно только владельцу,
// при режиме "для избранных" состав получателей заменяется целиком
func (i impl) Share(spaceID, userID, id string, data noteapimodels.NoteShareData) error {
	rec, err := i.getOwned(spaceID, userID, id)
	if err != nil {
		return err
	}
	rec.ShareType = data.ShareType
	rec.SharedWith = dbmodels.StringSlice{}
	if data.ShareType == models.NoteShareShared {
		err = i.checkRecipients(spaceID, data.SharedWith)
		if err != nil {
			return err
		}
		rec.SharedWith = dbmodels.StringSlice(data.SharedWith)
	}
	return i.store.Save(rec)
}

func (i impl) Delete(spaceID, userID, id string) error {
	_, err := i.getOwned(spaceID, userID, id)
	if err != nil {
		return err
	}
	return i.store.Delete(spaceID, id)
}

func (i impl) getOwned(spaceID, userID, id string) (*dbmodels.Note, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errs.ErrNotFound
	}
	if rec.OwnerID != userID {
		return nil, errors.Wrap(errs.ErrForbidden, "заметка доступна только владельцу")
	}
	return rec, nil
}

func (i impl) checkRecipients(spaceID string, recipientIDs []string) error {
	for _, recipientID := range recipientIDs {
		user, err := i.spaceUsersStore.GetByID(recipientID)
		if err != nil {
			return err
		}
		if user == nil || user.SpaceID != spaceID {
			return errors.Wrapf(errs.ErrNotFound, "получатель заметки %v не найден в справочнике сотрудников", recipientID)
		}
	}
	return nil
}

// canView - правила чтения: общие заметки видны всем, личные только
// владельцу, "для избранных" владельцу и получателям
func canView(rec dbmodels.Note, userID string) bool {
	if rec.OwnerID == userID {
		return true
	}
	switch rec.ShareType {
	case models.NoteSharePublic:
		return true
	case models.NoteShareShared:
		return rec.SharedWith.Contains(userID)
	default:
		return false
	}
}
