package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucExamination "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/examination"
	ucPatient "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/patient"
	ucStaff "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/staff"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// Deps carries the process-wide singletons the API is built from.
// A nil Limiter disables rate limiting.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Log     zerolog.Logger
	Audit   *audit.Dispatcher
	Limiter middleware.WindowCounter
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	patientRepo := infraRepo.NewPatientGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	examinationRepo := infraRepo.NewExaminationGormRepository(d.DB)

	issuer := middleware.NewJWTIssuer(cfg)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, d.Audit, loc)
	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(appointmentRepo, d.Audit, loc)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, d.Audit)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(appointmentRepo, d.Audit)
	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo, loc)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	createPatientUC := ucPatient.NewCreatePatient(patientRepo, d.Audit)
	updatePatientUC := ucPatient.NewUpdatePatient(patientRepo, d.Audit)
	getPatientUC := ucPatient.NewGetPatient(patientRepo)
	searchPatientsUC := ucPatient.NewSearchPatients(patientRepo)
	deletePatientUC := ucPatient.NewDeletePatient(patientRepo, d.Audit)

	requestExaminationUC := ucExamination.NewRequestExamination(examinationRepo, d.Audit)
	recordResultUC := ucExamination.NewRecordResult(examinationRepo, d.Audit)
	cancelExaminationUC := ucExamination.NewCancelExamination(examinationRepo, d.Audit)
	getExaminationUC := ucExamination.NewGetExamination(examinationRepo)
	searchExaminationsUC := ucExamination.NewSearchExaminations(examinationRepo)
	patientResultsUC := ucExamination.NewPatientResults(examinationRepo)

	loginUC := ucStaff.NewLogin(userRepo, issuer)
	listDoctorsUC := ucStaff.NewListDoctors(userRepo)
	profileUC := ucStaff.NewGetProfile(userRepo)
	registerUC := ucStaff.NewCreateUser(userRepo, d.Audit, validators.IsEmailDomainValid)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC, registerUC, d.Log)
	meHandler := handlers.NewMeHandler(profileUC, d.Log)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		rescheduleAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		listAppointmentsByDateUC,
		getAppointmentUC,
		listDoctorsUC,
		d.Log,
	)

	patientHandler := handlers.NewPatientHandler(
		createPatientUC,
		updatePatientUC,
		deletePatientUC,
		getPatientUC,
		searchPatientsUC,
		patientResultsUC,
		d.Log,
	)

	examinationHandler := handlers.NewExaminationHandler(
		requestExaminationUC,
		recordResultUC,
		cancelExaminationUC,
		getExaminationUC,
		searchExaminationsUC,
		d.Log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB), d.Log)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "route_not_found", "Route not found.")
	})

	api := r.Group("/api")

	// ------------------------------
	// 🔐 AUTH
	// ------------------------------
	auth := api.Group("/auth")
	auth.Use(limit(d, "auth"))
	auth.POST("/login", authHandler.Login)
	auth.POST("/register",
		middleware.AuthMiddleware(issuer),
		middleware.RequireRole(models.RoleAdmin),
		authHandler.Register,
	)

	// ------------------------------
	// 🔐 PRIVATE API
	// ------------------------------
	secured := api.Group("/")
	secured.Use(limit(d, "api"), middleware.AuthMiddleware(issuer))

	secured.GET("/me", meHandler.GetMe)

	front := middleware.RequireRole(models.RoleReceptionist, models.RoleAdmin)
	clinical := middleware.RequireRole(models.RoleDoctor, models.RoleReceptionist, models.RoleAdmin)

	appointments := secured.Group("/appointments")
	{
		appointments.GET("/doctors", front, appointmentHandler.ListDoctors)
		appointments.POST("", front, appointmentHandler.Create)
		appointments.PUT("/:id", front, appointmentHandler.Reschedule)
		appointments.PATCH("/:id/cancel", front, appointmentHandler.Cancel)
		appointments.GET("", front, appointmentHandler.ListByDate)

		appointments.GET("/doctor", middleware.RequireRole(models.RoleDoctor), appointmentHandler.ListMine)
		appointments.GET("/:id", clinical, appointmentHandler.Get)
		appointments.PATCH("/:id/complete",
			middleware.RequireRole(models.RoleDoctor, models.RoleAdmin),
			appointmentHandler.Complete,
		)
	}

	patients := secured.Group("/patients")
	{
		patients.POST("", front, patientHandler.Create)
		patients.PUT("/:id", front, patientHandler.Update)
		patients.GET("", clinical, patientHandler.Search)
		patients.GET("/national/:nationalId", clinical, patientHandler.GetByNationalID)
		patients.GET("/:id", clinical, patientHandler.Get)
		patients.DELETE("/:id", front, patientHandler.Delete)
	}

	examiners := middleware.RequireRole(models.RoleLaboratory, models.RoleRadiology)
	examReaders := middleware.RequireRole(
		models.RoleDoctor, models.RoleLaboratory, models.RoleRadiology, models.RoleAdmin,
	)

	examinations := secured.Group("/examinations")
	{
		examinations.POST("", middleware.RequireRole(models.RoleDoctor), examinationHandler.Request)
		examinations.GET("", examReaders, examinationHandler.Search)
		examinations.GET("/:id", examReaders, examinationHandler.Get)
		examinations.PUT("/:id/result", examiners, examinationHandler.RecordResult)
		examinations.PATCH("/:id/cancel", examReaders, examinationHandler.Cancel)
	}

	secured.GET("/audit-logs", middleware.RequireRole(models.RoleAdmin), auditLogsHandler.List)
}

func limit(d Deps, scope string) gin.HandlerFunc {
	if d.Limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimit(d.Limiter, middleware.RateLimitConfig{
		Scope:  scope,
		Max:    d.Config.RateLimitMax,
		Window: d.Config.RateLimitWindow,
	}, d.Log)
}
