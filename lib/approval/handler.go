package approvalhandler

import (
	"context"
	"fmt"
	"time"
	"tracker-backend/db"
	approvalhistorystore "tracker-backend/lib/approval/history-store"
	approvalstore "tracker-backend/lib/approval/store"
	pdfexport "tracker-backend/lib/export/pdf"
	notifyhandler "tracker-backend/lib/notify"
	"tracker-backend/lib/rbac"
	spaceusersstore "tracker-backend/lib/space/users/store"
	"tracker-backend/lib/subject"
	"tracker-backend/lib/utils/lock"
	"tracker-backend/models"
	apprvapimodels "tracker-backend/models/api/approval"
	dbmodels "tracker-backend/models/db"
	"tracker-backend/models/errs"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(spaceID, userID string, data apprvapimodels.ApprovalCreateData) (id string, err error)
	GetByID(spaceID, id string) (apprvapimodels.ApprovalView, error)
	List(spaceID, userID string, filter apprvapimodels.ApprovalFilter) (list []apprvapimodels.ApprovalView, rowCount int64, err error)
	Update(spaceID, userID, id string, data apprvapimodels.ApprovalUpdateData) error
	Decide(ctx context.Context, spaceID, userID, id string, data apprvapimodels.DecisionData) (apprvapimodels.ApprovalView, error)
	Delete(spaceID, userID, id string) error
	History(spaceID, id string) ([]apprvapimodels.ApprovalHistoryView, error)
	ExportPDF(spaceID, id string) (fileName string, pdfFile []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:           approvalstore.NewInstance(db.DB),
		historyStore:    approvalhistorystore.NewInstance(db.DB),
		spaceUsersStore: spaceusersstore.NewInstance(db.DB),
		subjectChecker:  subject.NewChecker(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:           approvalstore.NewInstance(tx),
		historyStore:    approvalhistorystore.NewInstance(tx),
		spaceUsersStore: spaceusersstore.NewInstance(tx),
		subjectChecker:  subject.NewChecker(tx),
	}
}

type impl struct {
	store           approvalstore.Provider
	historyStore    approvalhistorystore.Provider
	spaceUsersStore spaceusersstore.Provider
	subjectChecker  subject.Checker
}

// ожидание снятия блокировки при параллельных решениях по одной заявке
const decisionLockWait = 10 * time.Second

func (i impl) getLogger(spaceID, recID string) *log.Entry {
	logger := log.
		WithField("space_id", spaceID).
		WithField("approval_id", recID)
	return logger
}

func (i impl) Create(spaceID, userID string, data apprvapimodels.ApprovalCreateData) (id string, err error) {
	logger := log.WithField("space_id", spaceID)
	// право управления заявками проверяется по набору разрешений роли,
	// не только по правилу маршрута
	requester, err := i.spaceUsersStore.GetByID(userID)
	if err != nil {
		return "", err
	}
	if requester == nil || requester.SpaceID != spaceID {
		return "", errors.Wrap(errs.ErrForbidden, "пользователь не найден в организации")
	}
	if !rbac.Instance.HasPermission(requester.Role, models.ApprovalModule, models.ManagePermission) {
		return "", errors.Wrap(errs.ErrForbidden, "нет права управления заявками на согласование")
	}
	subjectType, err := subject.Resolve(data.SubjectType)
	if err != nil {
		return "", err
	}
	if len(data.ApproverIDs) == 0 {
		return "", errors.Wrap(errs.ErrInvalidApproval, "требуется хотя бы один согласующий")
	}
	exist, err := i.subjectChecker.Exists(spaceID, subjectType, data.SubjectID)
	if err != nil {
		return "", err
	}
	if !exist {
		return "", errors.Wrapf(errs.ErrNotFound, "сущность согласования (%v) не найдена", data.SubjectID)
	}
	err = i.checkApprovers(spaceID, data.ApproverIDs)
	if err != nil {
		return "", err
	}
	rec := dbmodels.ApprovalRequest{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		Title:         data.Title,
		Description:   data.Description,
		SubjectType:   subjectType,
		SubjectID:     data.SubjectID,
		RequestedByID: userID,
		ApproverIDs:   data.ApproverIDs,
		Decisions:     dbmodels.Decisions{},
		Status:        ComputeStatus(data.ApproverIDs, nil),
		DueDate:       data.DueDate,
		Note:          data.Note,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("Ошибка создания заявки на согласование")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("Создана заявка на согласование")
	for _, approverID := range data.ApproverIDs {
		notifyhandler.Instance.UserEvent(approverID, models.NotifyApprovalRequested,
			fmt.Sprintf("Вам назначено согласование «%s»", rec.Title))
	}
	return id, nil
}

func (i impl) GetByID(spaceID, id string) (apprvapimodels.ApprovalView, error) {
	rec, err := i.getRec(spaceID, id)
	if err != nil {
		return apprvapimodels.ApprovalView{}, err
	}
	return apprvapimodels.ApprovalConvert(*rec), nil
}

func (i impl) List(spaceID, userID string, filter apprvapimodels.ApprovalFilter) (list []apprvapimodels.ApprovalView, rowCount int64, err error) {
	logger := log.WithField("space_id", spaceID)
	page, limit := filter.GetPage()
	storeFilter := approvalstore.ListFilter{
		UserID: userID,
		Role:   filter.Role,
		Status: filter.Status,
		Page:   page,
		Limit:  limit,
	}
	rowCount, err = i.store.ListCount(spaceID, storeFilter)
	if err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []apprvapimodels.ApprovalView{}, rowCount, nil
	}
	recList, err := i.store.List(spaceID, storeFilter)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка получения списка заявок на согласование")
		return nil, 0, err
	}
	list = make([]apprvapimodels.ApprovalView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, apprvapimodels.ApprovalConvert(rec))
	}
	return list, rowCount, nil
}

// Update правит заголовок, описание и состав согласующих.
// Доступно только автору и только пока заявка на согласовании.
// Замена состава согласующих сбрасывает уже принятые решения.
func (i impl) Update(spaceID, userID, id string, data apprvapimodels.ApprovalUpdateData) error {
	logger := i.getLogger(spaceID, id)
	newApprovers := []string{}
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := approvalstore.NewInstance(tx)
		rec, err := store.GetByIDForUpdate(spaceID, id)
		if err != nil {
			return err
		}
		if rec == nil || rec.IsDeleted() {
			return errs.ErrNotFound
		}
		if rec.RequestedByID != userID {
			return errors.Wrap(errs.ErrForbidden, "заявку может изменить только автор")
		}
		if rec.Status != models.AStatusPending {
			return errors.Wrap(errs.ErrInvalidApproval, "заявка уже рассмотрена")
		}
		if data.Title != nil {
			rec.Title = *data.Title
		}
		if data.Description != nil {
			rec.Description = *data.Description
		}
		if data.Note != nil {
			rec.Note = *data.Note
		}
		if data.ApproverIDs != nil {
			err = i.checkApprovers(spaceID, data.ApproverIDs)
			if err != nil {
				return err
			}
			for _, approverID := range data.ApproverIDs {
				if !rec.ApproverIDs.Contains(approverID) {
					newApprovers = append(newApprovers, approverID)
				}
			}
			err = applyApproverEdit(rec, data.ApproverIDs)
			if err != nil {
				return err
			}
		}
		return store.Save(rec)
	})
	if err != nil {
		return err
	}
	logger.Info("обновлена заявка на согласование")
	for _, approverID := range newApprovers {
		notifyhandler.Instance.UserEvent(approverID, models.NotifyApprovalRequested,
			"Вам назначено согласование")
	}
	return nil
}

// Decide фиксирует решение согласующего. Конкурентные решения по
// одной заявке сериализуются: in-process блокировкой по id заявки
// и блокировкой строки в транзакции.
func (i impl) Decide(ctx context.Context, spaceID, userID, id string, data apprvapimodels.DecisionData) (view apprvapimodels.ApprovalView, err error) {
	logger := i.getLogger(spaceID, id).WithField("user_id", userID)
	var rec *dbmodels.ApprovalRequest
	ok, err := lock.WithDelay(ctx, "approval:"+id, decisionLockWait, func() error {
		return db.DB.Transaction(func(tx *gorm.DB) error {
			store := approvalstore.NewInstance(tx)
			rec, err = store.GetByIDForUpdate(spaceID, id)
			if err != nil {
				return err
			}
			if rec == nil {
				return errs.ErrNotFound
			}
			err = applyDecision(rec, userID, data, time.Now())
			if err != nil {
				return err
			}
			err = store.Save(rec)
			if err != nil {
				return err
			}
			i.audit(tx, *rec, userID, data)
			return nil
		})
	})
	if err != nil {
		return apprvapimodels.ApprovalView{}, err
	}
	if !ok {
		return apprvapimodels.ApprovalView{}, errors.New("заявка занята другой операцией, повторите позже")
	}
	logger.
		WithField("action", string(data.Action)).
		WithField("status", string(rec.Status)).
		Info("зафиксировано решение по заявке")
	i.notifyDecision(*rec, userID)
	return apprvapimodels.ApprovalConvert(*rec), nil
}

// Delete помечает заявку удаленной. Доступно только автору
// и только пока заявка на согласовании.
func (i impl) Delete(spaceID, userID, id string) error {
	logger := i.getLogger(spaceID, id)
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := approvalstore.NewInstance(tx)
		rec, err := store.GetByIDForUpdate(spaceID, id)
		if err != nil {
			return err
		}
		if rec == nil || rec.IsDeleted() {
			return errs.ErrNotFound
		}
		if rec.RequestedByID != userID {
			return errors.Wrap(errs.ErrForbidden, "заявку может удалить только автор")
		}
		if rec.Status != models.AStatusPending {
			return errors.Wrap(errs.ErrInvalidApproval, "заявка уже рассмотрена")
		}
		now := time.Now()
		rec.DeletedAt = &now
		return store.Save(rec)
	})
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка удаления заявки на согласование")
		return err
	}
	logger.Info("удалена заявка на согласование")
	return nil
}

func (i impl) History(spaceID, id string) ([]apprvapimodels.ApprovalHistoryView, error) {
	_, err := i.getRec(spaceID, id)
	if err != nil {
		return nil, err
	}
	list, err := i.historyStore.List(spaceID, id)
	if err != nil {
		return nil, err
	}
	result := make([]apprvapimodels.ApprovalHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, apprvapimodels.ApprovalHistoryConvert(rec))
	}
	return result, nil
}

// ExportPDF формирует pdf-карточку заявки с хронологией решений
func (i impl) ExportPDF(spaceID, id string) (fileName string, pdfFile []byte, err error) {
	rec, err := i.getRec(spaceID, id)
	if err != nil {
		return "", nil, err
	}
	history, err := i.historyStore.List(spaceID, id)
	if err != nil {
		return "", nil, err
	}
	pdfFile, err = pdfexport.GenerateApprovalSummary(*rec, history)
	if err != nil {
		i.getLogger(spaceID, id).WithError(err).Error("ошибка формирования pdf по заявке на согласование")
		return "", nil, err
	}
	fileName = fmt.Sprintf("approval_%v.pdf", rec.ID)
	return fileName, pdfFile, nil
}

func (i impl) getRec(spaceID, id string) (*dbmodels.ApprovalRequest, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.IsDeleted() {
		return nil, errs.ErrNotFound
	}
	return rec, nil
}

func (i impl) checkApprovers(spaceID string, approverIDs []string) error {
	for _, approverID := range approverIDs {
		user, err := i.spaceUsersStore.GetByID(approverID)
		if err != nil {
			return err
		}
		if user == nil || user.SpaceID != spaceID {
			return errors.Wrapf(errs.ErrInvalidApproval, "согласующий %v не найден в справочнике сотрудников", approverID)
		}
	}
	return nil
}

func (i impl) audit(tx *gorm.DB, rec dbmodels.ApprovalRequest, userID string, data apprvapimodels.DecisionData) {
	historyRec := dbmodels.ApprovalHistory{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: rec.SpaceID,
		},
		RequestID: rec.ID,
		UserID:    userID,
		Action:    data.Action,
		Comment:   data.Comment,
		Status:    rec.Status,
	}
	_, err := approvalhistorystore.NewInstance(tx).Create(historyRec)
	if err != nil {
		i.getLogger(rec.SpaceID, rec.ID).WithError(err).Error("Ошибка добавления истории по заявке на согласование")
	}
}

func (i impl) notifyDecision(rec dbmodels.ApprovalRequest, decidedByID string) {
	if rec.RequestedByID != decidedByID {
		notifyhandler.Instance.UserEvent(rec.RequestedByID, models.NotifyDecisionRecorded,
			fmt.Sprintf("По заявке «%s» получено решение", rec.Title))
	}
	if rec.Status == models.AStatusPending {
		return
	}
	notifyhandler.Instance.UserEvent(rec.RequestedByID, models.NotifyApprovalResolved,
		fmt.Sprintf("Согласование «%s»: %s", rec.Title, rec.Status.ToHuman()))
}
