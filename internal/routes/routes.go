package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-desk/internal/activity"
	"github.com/BruksfildServices01/appointment-desk/internal/cache"
	"github.com/BruksfildServices01/appointment-desk/internal/config"
	"github.com/BruksfildServices01/appointment-desk/internal/handlers"
	infraRepo "github.com/BruksfildServices01/appointment-desk/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-desk/internal/middleware"
	"github.com/BruksfildServices01/appointment-desk/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/appointment-desk/internal/usecase/appointment"
	ucDashboard "github.com/BruksfildServices01/appointment-desk/internal/usecase/dashboard"
	"github.com/BruksfildServices01/appointment-desk/pkg/logging"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	c cache.Cache,
	log *logging.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	activityLogger := activity.New(db)
	activityDispatcher := activity.NewDispatcher(activityLogger, log)

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// USE CASES
	// ======================================================
	staffCapacityUC := ucAppointment.NewStaffCapacity(appointmentRepo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		staffCapacityUC,
		activityDispatcher,
		loc,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, loc)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		activityDispatcher,
		loc,
	)

	updateStatusUC := ucAppointment.NewUpdateStatus(
		appointmentRepo,
		activityDispatcher,
		loc,
	)

	rescheduleUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		activityDispatcher,
		loc,
	)

	reassignUC := ucAppointment.NewReassignAppointment(
		appointmentRepo,
		staffCapacityUC,
		activityDispatcher,
	)

	summaryUC := ucDashboard.NewSummary(appointmentRepo, staffCapacityUC, c, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	staffHandler := handlers.NewStaffHandler(db, activityDispatcher, c, cfg.Timezone)
	serviceHandler := handlers.NewServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		cancelAppointmentUC,
		updateStatusUC,
		rescheduleUC,
		reassignUC,
		c,
	)

	dashboardHandler := handlers.NewDashboardHandler(summaryUC, db, cfg.Timezone)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// STAFF
			// ------------------------------
			secured.GET("/staff", staffHandler.List)
			secured.POST("/staff", staffHandler.Create)
			secured.PATCH("/staff/:id/status", staffHandler.UpdateStatus)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// DASHBOARD
			// ------------------------------
			secured.GET("/dashboard/summary", dashboardHandler.Summary)
			secured.GET("/dashboard/recent-activity-logs", dashboardHandler.RecentActivityLogs)
		}
	}
}
