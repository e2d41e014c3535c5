package models

// ApprovalAction - решение согласующего по заявке
type ApprovalAction string

const (
	AActionApprove        ApprovalAction = "approve"
	AActionReject         ApprovalAction = "reject"
	AActionRequestChanges ApprovalAction = "request_changes"
)

func (a ApprovalAction) IsValid() bool {
	switch a {
	case AActionApprove, AActionReject, AActionRequestChanges:
		return true
	}
	return false
}

var actionHumanName = map[ApprovalAction]string{
	AActionApprove:        "Согласовано",
	AActionReject:         "Отклонено",
	AActionRequestChanges: "На доработку",
}

func (a ApprovalAction) ToHuman() string {
	if human, exist := actionHumanName[a]; exist {
		return human
	}
	return string(a)
}

// ApprovalStatus - агрегированный статус заявки на согласование,
// всегда вычисляется по списку решений, клиентом не задается
type ApprovalStatus string

const (
	AStatusPending          ApprovalStatus = "pending"
	AStatusApproved         ApprovalStatus = "approved"
	AStatusRejected         ApprovalStatus = "rejected"
	AStatusChangesRequested ApprovalStatus = "changes_requested"
)

var statusHumanName = map[ApprovalStatus]string{
	AStatusPending:          "На согласовании",
	AStatusApproved:         "Согласовано",
	AStatusRejected:         "Отклонено",
	AStatusChangesRequested: "На доработке",
}

func (s ApprovalStatus) ToHuman() string {
	if human, exist := statusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// ApprovalListRole - фильтр списка заявок по роли пользователя
type ApprovalListRole string

const (
	AListRoleAny       ApprovalListRole = ""
	AListRoleApprover  ApprovalListRole = "approver"
	AListRoleRequester ApprovalListRole = "requester"
)
