package approvalhandler

import (
	"tracker-backend/models"
	dbmodels "tracker-backend/models/db"
)

// ComputeStatus вычисляет агрегированный статус заявки по списку
// согласующих и их решениям. Чистая функция, порядок решений не важен,
// статус всегда пересчитывается с нуля и не хранит инкрементального
// состояния.
//
// Отклонение блокирует заявку независимо от остальных решений,
// запрос доработки блокирует частичное согласование.
func ComputeStatus(approverIDs []string, decisions dbmodels.Decisions) models.ApprovalStatus {
	anyChangesRequested := false
	approvedCount := 0
	for _, approverID := range approverIDs {
		decision, ok := decisions.ByUser(approverID)
		if !ok {
			continue
		}
		switch decision.Action {
		case models.AActionReject:
			return models.AStatusRejected
		case models.AActionRequestChanges:
			anyChangesRequested = true
		case models.AActionApprove:
			approvedCount++
		}
	}
	if anyChangesRequested {
		return models.AStatusChangesRequested
	}
	if len(approverIDs) > 0 && approvedCount == len(approverIDs) {
		return models.AStatusApproved
	}
	return models.AStatusPending
}
