package models

type RbacFunc func(spaceID, userID string, role UserRole, path string) bool

type Module string

const (
	UsersModule    Module = "USERS"
	StoresModule   Module = "STORES"
	ProjectModule  Module = "PROJECT"
	TaskModule     Module = "TASK"
	ApprovalModule Module = "APPROVAL"
	CommentModule  Module = "COMMENT"
	NotesModule    Module = "NOTES"
	FilesModule    Module = "FILES"
	ProfileModule  Module = "PROFILE"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	ManagePermission Permission = "MANAGE"
)
