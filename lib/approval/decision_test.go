package approvalhandler

import (
	"testing"
	"time"
	"tracker-backend/models"
	apprvapimodels "tracker-backend/models/api/approval"
	dbmodels "tracker-backend/models/db"
	"tracker-backend/models/errs"

	"github.com/stretchr/testify/require"
)

func newPendingRec(approverIDs ...string) *dbmodels.ApprovalRequest {
	return &dbmodels.ApprovalRequest{
		Title:         "Согласовать план проекта",
		RequestedByID: "author",
		ApproverIDs:   approverIDs,
		Decisions:     dbmodels.Decisions{},
		Status:        models.AStatusPending,
	}
}

func TestApplyDecision(t *testing.T) {
	now := time.Now()

	t.Run(`решение фиксируется и пересчитывает статус`, func(t *testing.T) {
		rec := newPendingRec("u1")
		err := applyDecision(rec, "u1", apprvapimodels.DecisionData{Action: models.AActionApprove}, now)
		require.NoError(t, err)
		require.Len(t, rec.Decisions, 1)
		require.Equal(t, models.AStatusApproved, rec.Status)
	})

	t.Run(`повторное решение заменяет прошлое, а не добавляется`, func(t *testing.T) {
		rec := newPendingRec("u1", "u2")
		err := applyDecision(rec, "u1", apprvapimodels.DecisionData{Action: models.AActionReject}, now)
		require.NoError(t, err)
		require.Equal(t, models.AStatusRejected, rec.Status)

		err = applyDecision(rec, "u1", apprvapimodels.DecisionData{Action: models.AActionApprove, Comment: "передумал"}, now.Add(time.Minute))
		require.NoError(t, err)
		require.Len(t, rec.Decisions, 1)
		decision, ok := rec.Decisions.ByUser("u1")
		require.True(t, ok)
		require.Equal(t, models.AActionApprove, decision.Action)
		require.Equal(t, "передумал", decision.Comment)
		require.Equal(t, models.AStatusPending, rec.Status)
	})

	t.Run(`не согласующий не может оставить решение`, func(t *testing.T) {
		rec := newPendingRec("u1")
		err := applyDecision(rec, "stranger", apprvapimodels.DecisionData{Action: models.AActionApprove}, now)
		require.ErrorIs(t, err, errs.ErrForbidden)
		require.Empty(t, rec.Decisions)
		require.Equal(t, models.AStatusPending, rec.Status)
	})

	t.Run(`неизвестное действие отклоняется`, func(t *testing.T) {
		rec := newPendingRec("u1")
		err := applyDecision(rec, "u1", apprvapimodels.DecisionData{Action: "maybe"}, now)
		require.ErrorIs(t, err, errs.ErrInvalidAction)
		require.Empty(t, rec.Decisions)
	})

	t.Run(`удаленная заявка недоступна`, func(t *testing.T) {
		rec := newPendingRec("u1")
		deletedAt := now
		rec.DeletedAt = &deletedAt
		err := applyDecision(rec, "u1", apprvapimodels.DecisionData{Action: models.AActionApprove}, now)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestApplyApproverEdit(t *testing.T) {
	now := time.Now()

	t.Run(`замена состава сбрасывает решения и статус`, func(t *testing.T) {
		rec := newPendingRec("u1")
		err := applyDecision(rec, "u1", apprvapimodels.DecisionData{Action: models.AActionApprove}, now)
		require.NoError(t, err)
		require.Equal(t, models.AStatusApproved, rec.Status)

		err = applyApproverEdit(rec, []string{"u1", "u2"})
		require.NoError(t, err)
		require.Empty(t, rec.Decisions)
		require.Equal(t, models.AStatusPending, rec.Status)
	})

	t.Run(`пустой состав согласующих недопустим`, func(t *testing.T) {
		rec := newPendingRec("u1")
		err := applyApproverEdit(rec, nil)
		require.ErrorIs(t, err, errs.ErrInvalidApproval)
	})
}
