package subject

import (
	"strings"
	"tracker-backend/models"
	"tracker-backend/models/errs"

	"github.com/pkg/errors"
)

// Единственная точка нормализации клиентских типов сущности.
// Неизвестные строки не пропускаются дальше.
var typeByAlias = map[string]models.SubjectType{
	"store":     models.SubjectStore,
	"project":   models.SubjectProject,
	"task":      models.SubjectTask,
	"milestone": models.SubjectMilestone,
	"blocker":   models.SubjectBlocker,
	"file":      models.SubjectFile,
	"approval":  models.SubjectApprovalRequest,
}

func Resolve(raw string) (models.SubjectType, error) {
	subjectType, ok := typeByAlias[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", errors.Wrapf(errs.ErrUnknownSubjectType, "%q", raw)
	}
	return subjectType, nil
}
