package models

// SubjectType - тип сущности, к которой привязываются
// комментарии, файлы и заявки на согласование
type SubjectType string

const (
	SubjectStore           SubjectType = "Store"
	SubjectProject         SubjectType = "Project"
	SubjectTask            SubjectType = "Task"
	SubjectMilestone       SubjectType = "Milestone"
	SubjectBlocker         SubjectType = "Blocker"
	SubjectFile            SubjectType = "File"
	SubjectApprovalRequest SubjectType = "ApprovalRequest"
)

var subjectHumanName = map[SubjectType]string{
	SubjectStore:           "Магазин",
	SubjectProject:         "Проект",
	SubjectTask:            "Задача",
	SubjectMilestone:       "Веха",
	SubjectBlocker:         "Блокер",
	SubjectFile:            "Файл",
	SubjectApprovalRequest: "Заявка на согласование",
}

func (s SubjectType) ToHuman() string {
	if human, exist := subjectHumanName[s]; exist {
		return human
	}
	return string(s)
}
