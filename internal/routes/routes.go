package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/AustralVet/clinic-scheduler/internal/access"
	"github.com/AustralVet/clinic-scheduler/internal/audit"
	"github.com/AustralVet/clinic-scheduler/internal/billing"
	"github.com/AustralVet/clinic-scheduler/internal/config"
	domain "github.com/AustralVet/clinic-scheduler/internal/domain/appointment"
	"github.com/AustralVet/clinic-scheduler/internal/handlers"
	infraRepo "github.com/AustralVet/clinic-scheduler/internal/infra/repository"
	"github.com/AustralVet/clinic-scheduler/internal/middleware"
	"github.com/AustralVet/clinic-scheduler/internal/signup"
	"github.com/AustralVet/clinic-scheduler/internal/storage"
	"github.com/AustralVet/clinic-scheduler/internal/timezone"
	ucAppointment "github.com/AustralVet/clinic-scheduler/internal/usecase/appointment"
	ucConsultation "github.com/AustralVet/clinic-scheduler/internal/usecase/consultation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.ClinicTimezone)

	clinicRepo := infraRepo.NewClinicGormRepository(db, loc)
	gate := access.NewPolicy()
	rules := domain.NewRules(loc)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	drafts := signup.NewRedisStore(rdb)
	uploader := storage.NewUploader(cfg)

	var billingClient *billing.Client
	if cfg.MercadoPagoAccessToken != "" {
		var err error
		billingClient, err = billing.New(cfg.MercadoPagoAccessToken)
		if err != nil {
			log.Printf("mercadopago disabled: %v", err)
		}
	}

	now := timezone.Now

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(clinicRepo, gate, rules, auditDispatcher, now)
	rescheduleUC := ucAppointment.NewRescheduleAppointment(clinicRepo, gate, rules, auditDispatcher, now)
	cancelUC := ucAppointment.NewCancelAppointment(clinicRepo, gate, auditDispatcher, now)
	completeUC := ucAppointment.NewCompleteAppointment(clinicRepo, gate, auditDispatcher, now)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(clinicRepo, loc)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(clinicRepo, loc)
	availabilityUC := ucAppointment.NewGetAvailability(clinicRepo, loc)

	registerUC := ucConsultation.NewRegisterConsultation(
		clinicRepo, clinicRepo, gate, rules, loc, auditDispatcher, now,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	registrationHandler := handlers.NewRegistrationHandler(db, drafts, authHandler)
	meHandler := handlers.NewMeHandler(db)

	clientHandler := handlers.NewClientHandler(db)
	petHandler := handlers.NewPetHandler(db, uploader)
	vetHandler := handlers.NewVeterinarianHandler(db, clinicRepo, gate)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		rescheduleUC,
		cancelUC,
		completeUC,
		listByDateUC,
		listByMonthUC,
		availabilityUC,
		loc,
	)

	consultationHandler := handlers.NewConsultationHandler(db, registerUC, billingClient, loc)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, gate)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH / REGISTRO
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/register/start", registrationHandler.Start)
		api.POST("/auth/register/complete", registrationHandler.Complete)
		api.POST("/auth/register/cancel", registrationHandler.Cancel)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/clients", clientHandler.List)

			secured.GET("/pets", petHandler.List)
			secured.POST("/pets", petHandler.Create)
			secured.PUT("/pets/:id", petHandler.Update)
			secured.PATCH("/pets/:id/active", petHandler.SetActive)
			secured.POST("/pets/:id/photo", petHandler.UploadPhoto)

			secured.GET("/veterinarians", vetHandler.List)
			secured.PATCH("/veterinarians/:id/disable", vetHandler.Disable)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/appointments/availability", appointmentHandler.Availability)
			secured.PUT("/appointments/:id", appointmentHandler.Reschedule)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			// ------------------------------
			// CONSULTATIONS
			// ------------------------------
			secured.POST("/appointments/:id/consultation", consultationHandler.Register)
			secured.GET("/appointments/:id/consultation", consultationHandler.GetByAppointment)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
