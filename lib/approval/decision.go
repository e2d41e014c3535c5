package approvalhandler

import (
	"time"
	apprvapimodels "tracker-backend/models/api/approval"
	dbmodels "tracker-backend/models/db"
	"tracker-backend/models/errs"

	"github.com/pkg/errors"
)

// applyDecision фиксирует решение согласующего в записи заявки:
// заменяет его прошлое решение либо добавляет первое, ставит время
// и пересчитывает агрегированный статус. Запись не сохраняет,
// сохранение и блокировка строки - забота вызывающего кода.
func applyDecision(rec *dbmodels.ApprovalRequest, userID string, data apprvapimodels.DecisionData, now time.Time) error {
	if rec == nil || rec.IsDeleted() {
		return errs.ErrNotFound
	}
	if !data.Action.IsValid() {
		return errors.Wrapf(errs.ErrInvalidAction, "%q", data.Action)
	}
	if !rec.ApproverIDs.Contains(userID) {
		return errors.Wrap(errs.ErrForbidden, "пользователь не входит в список согласующих")
	}
	rec.Decisions = rec.Decisions.Upsert(dbmodels.Decision{
		UserID:    userID,
		Action:    data.Action,
		Comment:   data.Comment,
		DecidedAt: now,
	})
	rec.Status = ComputeStatus(rec.ApproverIDs, rec.Decisions)
	return nil
}

// applyApproverEdit заменяет список согласующих заявки. Прошлые
// решения сбрасываются, статус пересчитывается по новому списку.
func applyApproverEdit(rec *dbmodels.ApprovalRequest, approverIDs []string) error {
	if rec == nil || rec.IsDeleted() {
		return errs.ErrNotFound
	}
	if len(approverIDs) == 0 {
		return errors.Wrap(errs.ErrInvalidApproval, "требуется хотя бы один согласующий")
	}
	rec.ApproverIDs = approverIDs
	rec.Decisions = dbmodels.Decisions{}
	rec.Status = ComputeStatus(rec.ApproverIDs, rec.Decisions)
	return nil
}
