package commenthandler

import (
	"tracker-backend/db"
	commentstore "tracker-backend/lib/comment/store"
	"tracker-backend/lib/subject"
	commentapimodels "tracker-backend/models/api/comment"
	dbmodels "tracker-backend/models/db"
	"tracker-backend/models/errs"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(spaceID, userID string, data commentapimodels.CommentData) (id string, err error)
	Delete(spaceID, userID, id string) error
	ListBySubject(spaceID, subjectTypeRaw, subjectID string) (list []commentapimodels.CommentView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          commentstore.NewInstance(db.DB),
		subjectChecker: subject.NewChecker(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:          commentstore.NewInstance(tx),
		subjectChecker: subject.NewChecker(tx),
	}
}

type impl struct {
	store          commentstore.Provider
	subjectChecker subject.Checker
}

func (i impl) Create(spaceID, userID string, data commentapimodels.CommentData) (id string, err error) {
	logger := log.WithField("space_id", spaceID)
	subjectType, err := subject.Resolve(data.SubjectType)
	if err != nil {
		return "", err
	}
	exist, err := i.subjectChecker.Exists(spaceID, subjectType, data.SubjectID)
	if err != nil {
		return "", err
	}
	if !exist {
		return "", errors.Wrapf(errs.ErrNotFound, "сущность комментария (%v) не найдена", data.SubjectID)
	}
	rec := dbmodels.Comment{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		SubjectType: subjectType,
		SubjectID:   data.SubjectID,
		AuthorID:    userID,
		Text:        data.Text,
	}
	if data.ParentID != "" {
		parent, err := i.store.GetByID(spaceID, data.ParentID)
		if err != nil {
			return "", err
		}
		// отвечать можно только на комментарий той же сущности
		if parent == nil || parent.SubjectType != subjectType || parent.SubjectID != data.SubjectID {
			return "", errors.Wrapf(errs.ErrNotFound, "родительский комментарий (%v) не найден", data.ParentID)
		}
		rec.ParentID = &data.ParentID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithError(err).
			Error("Ошибка создания комментария")
		return "", err
	}
	return id, nil
}

func (i impl) Delete(spaceID, userID, id string) error {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.ErrNotFound
	}
	if rec.AuthorID != userID {
		return errors.Wrap(errs.ErrForbidden, "комментарий может удалить только автор")
	}
	return i.store.Delete(spaceID, id)
}

func (i impl) ListBySubject(spaceID, subjectTypeRaw, subjectID string) (list []commentapimodels.CommentView, err error) {
	subjectType, err := subject.Resolve(subjectTypeRaw)
	if err != nil {
		return nil, err
	}
	recList, err := i.store.ListBySubject(spaceID, subjectType, subjectID)
	if err != nil {
		log.WithField("space_id", spaceID).
			WithError(err).
			Error("ошибка получения списка комментариев")
		return nil, err
	}
	return commentapimodels.BuildTree(recList), nil
}
