package rbac

import "tracker-backend/models"

var allRoles = []models.UserRole{models.SpaceAdminRole, models.SpaceUserRole, models.UserRoleSuperAdmin}
var adminRoles = []models.UserRole{models.SpaceAdminRole, models.UserRoleSuperAdmin}

func (i *impl) initRules() {
	// магазины
	i.RegisterRule(models.StoresModule, models.ViewPermission, allRoles, "/api/v1/space/stores/list [post]", nil)
	i.RegisterRule(models.StoresModule, models.ViewPermission, allRoles, "/api/v1/space/stores/{id} [get]", nil)
	i.RegisterRule(models.StoresModule, models.CreatePermission, adminRoles, "/api/v1/space/stores [post]", nil)
	i.RegisterRule(models.StoresModule, models.EditPermission, adminRoles, "/api/v1/space/stores/{id} [put]", nil)
	i.RegisterRule(models.StoresModule, models.ManagePermission, adminRoles, "/api/v1/space/stores/{id} [delete]", nil)

	// проекты
	i.RegisterRule(models.ProjectModule, models.ViewPermission, allRoles, "/api/v1/space/stores/{id}/projects [get]", nil)
	i.RegisterRule(models.ProjectModule, models.ViewPermission, allRoles, "/api/v1/space/projects/{id} [get]", nil)
	i.RegisterRule(models.ProjectModule, models.CreatePermission, allRoles, "/api/v1/space/stores/{id}/projects [post]", nil)
	i.RegisterRule(models.ProjectModule, models.EditPermission, allRoles, "/api/v1/space/projects/{id} [put]", nil)
	i.RegisterRule(models.ProjectModule, models.ManagePermission, adminRoles, "/api/v1/space/projects/{id} [delete]", nil)

	// задачи, вехи, блокеры
	i.RegisterRule(models.TaskModule, models.ViewPermission, allRoles, "/api/v1/space/projects/{id}/tasks/list [post]", nil)
	i.RegisterRule(models.TaskModule, models.ViewPermission, allRoles, "/api/v1/space/tasks/my [post]", nil)
	i.RegisterRule(models.TaskModule, models.ViewPermission, allRoles, "/api/v1/space/tasks/{id} [get]", nil)
	i.RegisterRule(models.TaskModule, models.CreatePermission, allRoles, "/api/v1/space/projects/{id}/tasks [post]", nil)
	i.RegisterRule(models.TaskModule, models.EditPermission, allRoles, "/api/v1/space/tasks/{id} [put]", nil)
	i.RegisterRule(models.TaskModule, models.ManagePermission, adminRoles, "/api/v1/space/tasks/{id} [delete]", nil)
	i.RegisterRule(models.ProjectModule, models.ViewPermission, allRoles, "/api/v1/space/projects/{id}/milestones [get]", nil)
	i.RegisterRule(models.ProjectModule, models.EditPermission, allRoles, "/api/v1/space/projects/{id}/milestones [post]", nil)
	i.RegisterRule(models.ProjectModule, models.EditPermission, allRoles, "/api/v1/space/milestones/{id} [put]", nil)
	i.RegisterRule(models.ProjectModule, models.EditPermission, allRoles, "/api/v1/space/milestones/{id} [delete]", nil)
	i.RegisterRule(models.ProjectModule, models.ViewPermission, allRoles, "/api/v1/space/projects/{id}/blockers [get]", nil)
	i.RegisterRule(models.ProjectModule, models.EditPermission, allRoles, "/api/v1/space/projects/{id}/blockers [post]", nil)
	i.RegisterRule(models.ProjectModule, models.EditPermission, allRoles, "/api/v1/space/blockers/{id} [put]", nil)
	i.RegisterRule(models.ProjectModule, models.EditPermission, allRoles, "/api/v1/space/blockers/{id}/resolve [post]", nil)
	i.RegisterRule(models.ProjectModule, models.EditPermission, allRoles, "/api/v1/space/blockers/{id} [delete]", nil)

	// согласование
	i.RegisterRule(models.ApprovalModule, models.ViewPermission, allRoles, "/api/v1/space/approvals/list [post]", nil)
	i.RegisterRule(models.ApprovalModule, models.ViewPermission, allRoles, "/api/v1/space/approvals/{id} [get]", nil)
	i.RegisterRule(models.ApprovalModule, models.ViewPermission, allRoles, "/api/v1/space/approvals/{id}/history [get]", nil)
	i.RegisterRule(models.ApprovalModule, models.ManagePermission, allRoles, "/api/v1/space/approvals [post]", nil)
	i.RegisterRule(models.ApprovalModule, models.EditPermission, allRoles, "/api/v1/space/approvals/{id} [put]", nil)
	i.RegisterRule(models.ApprovalModule, models.EditPermission, allRoles, "/api/v1/space/approvals/{id}/decide [post]", nil)
	i.RegisterRule(models.ApprovalModule, models.EditPermission, allRoles, "/api/v1/space/approvals/{id} [delete]", nil)

	// комментарии и файлы
	i.RegisterRule(models.CommentModule, models.ViewPermission, allRoles, "/api/v1/space/comments/list [post]", nil)
	i.RegisterRule(models.CommentModule, models.CreatePermission, allRoles, "/api/v1/space/comments [post]", nil)
	i.RegisterRule(models.CommentModule, models.EditPermission, allRoles, "/api/v1/space/comments/{id} [delete]", nil)
	i.RegisterRule(models.FilesModule, models.ViewPermission, allRoles, "/api/v1/space/files/list [post]", nil)
	i.RegisterRule(models.FilesModule, models.ViewPermission, allRoles, "/api/v1/space/files/{id} [get]", nil)
	i.RegisterRule(models.FilesModule, models.CreatePermission, allRoles, "/api/v1/space/files [post]", nil)
	i.RegisterRule(models.FilesModule, models.ManagePermission, adminRoles, "/api/v1/space/files/{id} [delete]", nil)

	// заметки
	i.RegisterRule(models.NotesModule, models.ViewPermission, allRoles, "/api/v1/space/notes/list [get]", nil)
	i.RegisterRule(models.NotesModule, models.ViewPermission, allRoles, "/api/v1/space/notes/{id} [get]", nil)
	i.RegisterRule(models.NotesModule, models.CreatePermission, allRoles, "/api/v1/space/notes [post]", nil)
	i.RegisterRule(models.NotesModule, models.EditPermission, allRoles, "/api/v1/space/notes/{id} [put]", nil)
	i.RegisterRule(models.NotesModule, models.EditPermission, allRoles, "/api/v1/space/notes/{id}/share [post]", nil)
	i.RegisterRule(models.NotesModule, models.ManagePermission, allRoles, "/api/v1/space/notes/{id} [delete]", nil)

	// пользователи
	i.RegisterRule(models.UsersModule, models.ViewPermission, allRoles, "/api/v1/space/users [get]", nil)
	i.RegisterRule(models.UsersModule, models.ViewPermission, allRoles, "/api/v1/space/users/{id} [get]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, adminRoles, "/api/v1/space/users [post]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, adminRoles, "/api/v1/space/users/{id} [put]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, adminRoles, "/api/v1/space/users/{id} [delete]", nil)

	// отчеты
	i.RegisterRule(models.ProjectModule, models.ViewPermission, allRoles, "/api/v1/space/projects/{id}/export/xlsx [get]", nil)
	i.RegisterRule(models.ApprovalModule, models.ViewPermission, allRoles, "/api/v1/space/approvals/{id}/export/pdf [get]", nil)
}
