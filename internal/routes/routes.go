package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/psiboxes/box-scheduler/internal/audit"
	"github.com/psiboxes/box-scheduler/internal/config"
	domain "github.com/psiboxes/box-scheduler/internal/domain/booking"
	"github.com/psiboxes/box-scheduler/internal/handlers"
	infraRepo "github.com/psiboxes/box-scheduler/internal/infra/repository"
	"github.com/psiboxes/box-scheduler/internal/middleware"
	"github.com/psiboxes/box-scheduler/internal/sites"
	"github.com/psiboxes/box-scheduler/internal/timezone"
	ucBooking "github.com/psiboxes/box-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	gateway domain.CalendarGateway,
	cfg *config.Config,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	registry := sites.NewRegistry(cfg.SiteCalendars)
	loc := timezone.Location(cfg.Timezone)

	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(gateway, registry, loc)

	createReservationUC := ucBooking.NewCreateReservation(
		bookingRepo,
		gateway,
		registry,
		auditDispatcher,
		loc,
	)

	recordPaymentUC := ucBooking.NewRecordPayment(bookingRepo, auditDispatcher)

	getReportUC := ucBooking.NewGetReport(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	webHandler := handlers.NewWebHandler(
		getAvailabilityUC,
		createReservationUC,
		recordPaymentUC,
		getReportUC,
		registry,
		loc,
	)

	bookingHandler := handlers.NewBookingHandler(
		getAvailabilityUC,
		createReservationUC,
		registry,
		loc,
	)

	paymentHandler := handlers.NewPaymentHandler(recordPaymentUC)
	reportHandler := handlers.NewReportHandler(getReportUC)

	identity := middleware.IdentityMiddleware(cfg)

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/", webHandler.Home)
	r.POST("/disponibilidad", webHandler.Availability)
	r.GET("/reservar", identity, webHandler.Reserve)
	r.GET("/registro", webHandler.PaymentForm)
	r.POST("/registro", webHandler.PaymentSubmit)
	r.GET("/reporte", webHandler.Report)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(identity)
	{
		api.GET("/sites", bookingHandler.ListSites)
		api.GET("/availability", bookingHandler.Availability)
		api.POST("/reservations", bookingHandler.CreateReservation)
		api.POST("/payments", paymentHandler.Create)
		api.GET("/report", reportHandler.Get)
	}
}
