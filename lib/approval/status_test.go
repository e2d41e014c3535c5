package approvalhandler

import (
	"testing"
	"time"
	"tracker-backend/models"
	dbmodels "tracker-backend/models/db"

	"github.com/stretchr/testify/require"
)

func decisionOf(userID string, action models.ApprovalAction) dbmodels.Decision {
	return dbmodels.Decision{
		UserID:    userID,
		Action:    action,
		DecidedAt: time.Now(),
	}
}

func TestComputeStatus(t *testing.T) {
	approvers := []string{"u1", "u2", "u3"}

	t.Run(`без решений - на согласовании`, func(t *testing.T) {
		status := ComputeStatus(approvers, dbmodels.Decisions{})
		require.Equal(t, models.AStatusPending, status)
	})

	t.Run(`часть согласовала - все еще на согласовании`, func(t *testing.T) {
		decisions := dbmodels.Decisions{
			decisionOf("u1", models.AActionApprove),
			decisionOf("u2", models.AActionApprove),
		}
		status := ComputeStatus(approvers, decisions)
		require.Equal(t, models.AStatusPending, status)
	})

	t.Run(`все согласовали - согласовано`, func(t *testing.T) {
		decisions := dbmodels.Decisions{
			decisionOf("u1", models.AActionApprove),
			decisionOf("u2", models.AActionApprove),
			decisionOf("u3", models.AActionApprove),
		}
		status := ComputeStatus(approvers, decisions)
		require.Equal(t, models.AStatusApproved, status)
	})

	t.Run(`отклонение перекрывает любые согласования`, func(t *testing.T) {
		decisions := dbmodels.Decisions{
			decisionOf("u1", models.AActionApprove),
			decisionOf("u2", models.AActionReject),
			decisionOf("u3", models.AActionApprove),
		}
		status := ComputeStatus(approvers, decisions)
		require.Equal(t, models.AStatusRejected, status)
	})

	t.Run(`запрос доработки блокирует согласование`, func(t *testing.T) {
		decisions := dbmodels.Decisions{
			decisionOf("u1", models.AActionApprove),
			decisionOf("u2", models.AActionRequestChanges),
			decisionOf("u3", models.AActionApprove),
		}
		status := ComputeStatus(approvers, decisions)
		require.Equal(t, models.AStatusChangesRequested, status)
	})

	t.Run(`отклонение сильнее запроса доработки`, func(t *testing.T) {
		decisions := dbmodels.Decisions{
			decisionOf("u1", models.AActionRequestChanges),
			decisionOf("u2", models.AActionReject),
		}
		status := ComputeStatus(approvers, decisions)
		require.Equal(t, models.AStatusRejected, status)
	})

	t.Run(`решения не из списка согласующих не учитываются`, func(t *testing.T) {
		decisions := dbmodels.Decisions{
			decisionOf("u1", models.AActionApprove),
			decisionOf("u2", models.AActionApprove),
			decisionOf("u3", models.AActionApprove),
			decisionOf("stranger", models.AActionReject),
		}
		status := ComputeStatus(approvers, decisions)
		require.Equal(t, models.AStatusApproved, status)
	})

	t.Run(`пустой список согласующих - на согласовании`, func(t *testing.T) {
		status := ComputeStatus(nil, dbmodels.Decisions{})
		require.Equal(t, models.AStatusPending, status)
	})

	t.Run(`порядок решений не влияет на статус`, func(t *testing.T) {
		forward := dbmodels.Decisions{
			decisionOf("u1", models.AActionApprove),
			decisionOf("u2", models.AActionRequestChanges),
			decisionOf("u3", models.AActionApprove),
		}
		backward := dbmodels.Decisions{
			decisionOf("u3", models.AActionApprove),
			decisionOf("u2", models.AActionRequestChanges),
			decisionOf("u1", models.AActionApprove),
		}
		require.Equal(t, ComputeStatus(approvers, forward), ComputeStatus(approvers, backward))
	})
}
