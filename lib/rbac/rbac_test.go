package rbac

import (
	"testing"

	"tracker-backend/models"

	"github.com/stretchr/testify/require"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/space/approvals/{id}/decide [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/space/approvals/123-321/decide"
		isMatch := r1.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri := "/api/v1/space/approvals/decide"
		isMatch = r1.MatchString(invalidUri)
		require.Equal(t, false, isMatch)

		path, method, err = parseSwaggerPattern("/api/v1/space/projects/{id}/tasks/{taskID} [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/space/projects/123-321/tasks/qwe-ewr123-wr-12"
		isMatch = r2.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri = "/api/v1/space/projects/we-ewr123-wr-12/tasks"
		isMatch = r2.MatchString(invalidUri)
		require.Equal(t, false, isMatch)
	})

	t.Run(`permissions check`, func(t *testing.T) {
		NewHandler()

		require.True(t, Instance.HasPermission(models.SpaceAdminRole, models.StoresModule, models.ManagePermission))
		require.False(t, Instance.HasPermission(models.SpaceUserRole, models.StoresModule, models.ManagePermission))
		require.True(t, Instance.HasPermission(models.SpaceUserRole, models.ApprovalModule, models.EditPermission))
		require.True(t, Instance.HasPermission(models.UserRoleSuperAdmin, models.StoresModule, models.ManagePermission))

		fn, ok := Instance.GetRuleFunc("POST", "/api/v1/space/approvals/abc-123/decide")
		require.True(t, ok)
		require.True(t, fn("space1", "user1", models.SpaceUserRole, "/api/v1/space/approvals/abc-123/decide"))

		_, ok = Instance.GetRuleFunc("POST", "/api/v1/space/unknown")
		require.False(t, ok)
	})
}
