package connection

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/config"
	authctl "github.com/RosieHernan04/Employee-Reminder-System-sub000/controller/auth"
	dashctl "github.com/RosieHernan04/Employee-Reminder-System-sub000/controller/dashboard"
	meetingctl "github.com/RosieHernan04/Employee-Reminder-System-sub000/controller/meeting"
	taskctl "github.com/RosieHernan04/Employee-Reminder-System-sub000/controller/task"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/logger"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/scheduler"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/services"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/store"
)

// StartServer wires the store, services, controllers and the background
// reminder scheduler, then serves until the process exits.
func StartServer() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.Init(cfg.LogLevel, cfg.LogFormat)

	client, err := FBConnection(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize Firestore client")
	}
	st := store.NewFirestore(client)

	mailer := services.NewSMTPMailer(cfg)
	activity := &services.ActivityLogger{Store: st, Log: log}
	taskService := &services.TaskService{Store: st, Mailer: mailer, Activity: activity, Log: log}
	meetingService := &services.MeetingService{Store: st, Mailer: mailer, Activity: activity, Log: log}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dash := &services.Dashboard{Store: st, Log: log}
	if err := dash.Start(ctx); err != nil {
		log.WithError(err).Error("dashboard failed to start, serving empty stats")
	}
	defer dash.Stop()

	scanner := &scheduler.Scanner{
		Store:      st,
		Dispatcher: &scheduler.Dispatcher{Store: st, Mailer: mailer, Log: log},
		Log:        log,
		Lookahead:  cfg.ScanLookahead,
	}
	go scheduler.StartScheduler(ctx, cfg.ScanInterval, scanner, log)

	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	authctl.SignInController(router, st)
	authctl.SignUpController(router, st)
	taskctl.CreateTaskController(router, taskService)
	taskctl.AssignTaskController(router, taskService)
	taskctl.ListTasksController(router, taskService)
	taskctl.UpdateTaskStatusController(router, taskService)
	taskctl.DeleteTaskController(router, taskService)
	taskctl.SendEmailController(router, mailer)
	meetingctl.CreateMeetingController(router, meetingService)
	meetingctl.UpdateStatusController(router, meetingService)
	meetingctl.InviteController(router, meetingService)
	dashctl.StatsController(router, dash)

	if err := router.Run(cfg.Address); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
