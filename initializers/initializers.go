package initializers

import (
	"context"
	"tracker-backend/config"
	"tracker-backend/fiberlog"
	approvalhandler "tracker-backend/lib/approval"
	commenthandler "tracker-backend/lib/comment"
	xlsexport "tracker-backend/lib/export/xls"
	fileshandler "tracker-backend/lib/files"
	noteshandler "tracker-backend/lib/notes"
	notifyhandler "tracker-backend/lib/notify"
	projecthandler "tracker-backend/lib/project"
	"tracker-backend/lib/rbac"
	spaceauthhandler "tracker-backend/lib/space/auth"
	spacehandler "tracker-backend/lib/space/handler"
	spaceusershandler "tracker-backend/lib/space/users/handler"
	storeshandler "tracker-backend/lib/stores"
	taskhandler "tracker-backend/lib/task"
	connectionhub "tracker-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	rbac.NewHandler()
	notifyhandler.NewHandler()
	spaceusershandler.NewHandler()
	spacehandler.NewHandler()
	spaceauthhandler.NewHandler()
	storeshandler.NewHandler()
	projecthandler.NewHandler()
	xlsexport.NewHandler()
	taskhandler.NewHandler()
	commenthandler.NewHandler()
	noteshandler.NewHandler()
	fileshandler.NewHandler()
	approvalhandler.NewHandler()
}
