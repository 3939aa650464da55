package initializers

import (
	"context"
	"crewtime-backend/config"
	"crewtime-backend/fiberlog"
	authhandler "crewtime-backend/lib/auth"
	costcodeprovider "crewtime-backend/lib/dicts/cost-code"
	jobsiteprovider "crewtime-backend/lib/dicts/jobsite"
	equipmenthandler "crewtime-backend/lib/equipment"
	xlsexport "crewtime-backend/lib/export/xls"
	filestorage "crewtime-backend/lib/file-storage"
	formshandler "crewtime-backend/lib/forms"
	locationhandler "crewtime-backend/lib/location"
	notificationhandler "crewtime-backend/lib/notification"
	pushhandler "crewtime-backend/lib/push"
	pushworker "crewtime-backend/lib/push/worker"
	timesheethandler "crewtime-backend/lib/timesheet"
	usershandler "crewtime-backend/lib/users"
	connectionhub "crewtime-backend/lib/ws/connection-hub"
	"time"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	InitRedis(ctx)
	connectionhub.Init()
	filestorage.NewHandler()
	usershandler.NewHandler()
	authhandler.NewHandler()
	notificationhandler.NewHandler()
	pushhandler.NewHandler()
	timesheethandler.NewHandler()
	equipmenthandler.NewHandler()
	formshandler.NewHandler()
	locationhandler.NewHandler()
	jobsiteprovider.NewHandler()
	costcodeprovider.NewHandler()
	xlsexport.NewHandler()
	go initWorkers(ctx)
}

// workers start with a gap to spread the startup load
func initWorkers(ctx context.Context) {
	if makeTimeGap(ctx) {
		// retries notifications that failed to reach their subscribers
		pushworker.StartWorker(ctx)
	}
}

func makeTimeGap(ctx context.Context) (canRun bool) {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(time.Second * 10):
		return true
	}
}
