package models

// NotifyEventCode - код события для уведомлений (ws/email)
type NotifyEventCode string

const (
	NotifyApprovalRequested NotifyEventCode = "APPROVAL_REQUESTED"
	NotifyDecisionRecorded  NotifyEventCode = "DECISION_RECORDED"
	NotifyApprovalResolved  NotifyEventCode = "APPROVAL_RESOLVED"
	NotifyTaskAssigned      NotifyEventCode = "TASK_ASSIGNED"
	NotifyCommentAdded      NotifyEventCode = "COMMENT_ADDED"
)

var notifyEventTitle = map[NotifyEventCode]string{
	NotifyApprovalRequested: "Вы назначены согласующим",
	NotifyDecisionRecorded:  "Получено решение по заявке",
	NotifyApprovalResolved:  "Согласование завершено",
	NotifyTaskAssigned:      "Вам назначена задача",
	NotifyCommentAdded:      "Новый комментарий",
}

func (c NotifyEventCode) Title() string {
	if title, exist := notifyEventTitle[c]; exist {
		return title
	}
	return string(c)
}
