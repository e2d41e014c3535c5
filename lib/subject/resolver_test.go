package subject

import (
	"testing"
	"tracker-backend/models"
	"tracker-backend/models/errs"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run(`нормализация регистра`, func(t *testing.T) {
		for _, raw := range []string{"task", "Task", "TASK", " task "} {
			subjectType, err := Resolve(raw)
			require.Nil(t, err)
			require.Equal(t, models.SubjectTask, subjectType)
		}
	})

	t.Run(`все известные типы`, func(t *testing.T) {
		cases := map[string]models.SubjectType{
			"store":     models.SubjectStore,
			"project":   models.SubjectProject,
			"task":      models.SubjectTask,
			"milestone": models.SubjectMilestone,
			"blocker":   models.SubjectBlocker,
			"file":      models.SubjectFile,
			"approval":  models.SubjectApprovalRequest,
		}
		for raw, expected := range cases {
			subjectType, err := Resolve(raw)
			require.Nil(t, err)
			require.Equal(t, expected, subjectType)
		}
	})

	t.Run(`неизвестный тип`, func(t *testing.T) {
		_, err := Resolve("bogus")
		require.NotNil(t, err)
		require.True(t, errors.Is(err, errs.ErrUnknownSubjectType))

		_, err = Resolve("")
		require.True(t, errors.Is(err, errs.ErrUnknownSubjectType))
	})
}
