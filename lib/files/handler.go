package fileshandler

import (
	"bytes"
	"context"
	"tracker-backend/db"
	filestorage "tracker-backend/lib/file-storage"
	filesstore "tracker-backend/lib/files/store"
	"tracker-backend/lib/subject"
	filesapimodels "tracker-backend/models/api/files"
	dbmodels "tracker-backend/models/db"
	"tracker-backend/models/errs"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Upload(ctx context.Context, spaceID, userID string, subjectTypeRaw, subjectID, fileName, contentType string, body []byte) (id string, err error)
	Download(ctx context.Context, spaceID, id string) (rec filesapimodels.FileView, body []byte, err error)
	Delete(ctx context.Context, spaceID, id string) error
	ListBySubject(spaceID, subjectTypeRaw, subjectID string) (list []filesapimodels.FileView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          filesstore.NewInstance(db.DB),
		subjectChecker: subject.NewChecker(db.DB),
	}
}

type impl struct {
	store          filesstore.Provider
	subjectChecker subject.Checker
}

func (i impl) Upload(ctx context.Context, spaceID, userID string, subjectTypeRaw, subjectID, fileName, contentType string, body []byte) (id string, err error) {
	logger := log.WithField("space_id", spaceID).
		WithField("file_name", fileName)
	subjectType, err := subject.Resolve(subjectTypeRaw)
	if err != nil {
		return "", err
	}
	exist, err := i.subjectChecker.Exists(spaceID, subjectType, subjectID)
	if err != nil {
		return "", err
	}
	if !exist {
		return "", errors.Wrapf(errs.ErrNotFound, "сущность файла (%v) не найдена", subjectID)
	}
	objectKey := uuid.NewString()
	err = filestorage.Instance.UploadFile(ctx, spaceID, objectKey, bytes.NewReader(body), int64(len(body)), contentType)
	if err != nil {
		logger.WithError(err).Error("ошибка загрузки файла в хранилище")
		return "", err
	}
	rec := dbmodels.FileStorage{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		Name:         fileName,
		SubjectType:  subjectType,
		SubjectID:    subjectID,
		UploadedByID: userID,
		ContentType:  contentType,
		Size:         int64(len(body)),
		ObjectKey:    objectKey,
	}
	id, err = i.store.SaveFile(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения данных файла")
		return "", err
	}
	logger.WithField("rec_id", id).Info("загружен файл")
	return id, nil
}

func (i impl) Download(ctx context.Context, spaceID, id string) (view filesapimodels.FileView, body []byte, err error) {
	rec, err := i.getRec(spaceID, id)
	if err != nil {
		return filesapimodels.FileView{}, nil, err
	}
	body, err = filestorage.Instance.GetFile(ctx, spaceID, rec.ObjectKey)
	if err != nil {
		log.WithField("space_id", spaceID).
			WithField("rec_id", id).
			WithError(err).
			Error("ошибка получения файла из хранилища")
		return filesapimodels.FileView{}, nil, err
	}
	return rec.ToModel(), body, nil
}

func (i impl) Delete(ctx context.Context, spaceID, id string) error {
	rec, err := i.getRec(spaceID, id)
	if err != nil {
		return err
	}
	err = filestorage.Instance.DeleteFile(ctx, spaceID, rec.ObjectKey)
	if err != nil {
		log.WithField("space_id", spaceID).
			WithField("rec_id", id).
			WithError(err).
			Error("ошибка удаления файла из хранилища")
		return err
	}
	return i.store.Delete(spaceID, id)
}

func (i impl) ListBySubject(spaceID, subjectTypeRaw, subjectID string) (list []filesapimodels.FileView, err error) {
	subjectType, err := subject.Resolve(subjectTypeRaw)
	if err != nil {
		return nil, err
	}
	recList, err := i.store.ListBySubject(spaceID, subjectType, subjectID)
	if err != nil {
		return nil, err
	}
	list = make([]filesapimodels.FileView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) getRec(spaceID, id string) (*dbmodels.FileStorage, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errs.ErrNotFound
	}
	return rec, nil
}
