package handlers_test

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psiboxes/box-scheduler/internal/audit"
	"github.com/psiboxes/box-scheduler/internal/config"
	domain "github.com/psiboxes/box-scheduler/internal/domain/booking"
	"github.com/psiboxes/box-scheduler/internal/handlers"
	"github.com/psiboxes/box-scheduler/internal/httperr"
	"github.com/psiboxes/box-scheduler/internal/middleware"
	"github.com/psiboxes/box-scheduler/internal/models"
	"github.com/psiboxes/box-scheduler/internal/sites"
	ucBooking "github.com/psiboxes/box-scheduler/internal/usecase/booking"
	"github.com/psiboxes/box-scheduler/internal/web"
)

// --------- fakes ---------

type fakeGateway struct {
	busy        []domain.BusyInterval
	freeBusyErr error
	eventID     string
	insertErr   error
}

func (g *fakeGateway) FreeBusy(
	_ context.Context, _ string, _, _ time.Time,
) ([]domain.BusyInterval, error) {
	if g.freeBusyErr != nil {
		return nil, g.freeBusyErr
	}
	return g.busy, nil
}

func (g *fakeGateway) InsertEvent(
	_ context.Context, _ string, _ domain.Event,
) (string, error) {
	if g.insertErr != nil {
		return "", g.insertErr
	}
	return g.eventID, nil
}

type fakeRepo struct {
	mu           sync.Mutex
	nextID       uint
	reservations []models.Reservation
	payments     []models.Payment
}

func (r *fakeRepo) CreateReservationIfFree(_ context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reservations {
		if existing.Site == res.Site &&
			existing.Date == res.Date &&
			existing.Hour == res.Hour &&
			(existing.Status == "pending" || existing.Status == "confirmed") {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	r.nextID++
	res.ID = r.nextID
	r.reservations = append(r.reservations, *res)
	return nil
}

func (r *fakeRepo) UpdateReservation(_ context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.reservations {
		if existing.ID == res.ID {
			r.reservations[i] = *res
		}
	}
	return nil
}

func (r *fakeRepo) ListConfirmedReservations(_ context.Context) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Reservation
	for _, res := range r.reservations {
		if res.Status == "confirmed" {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uint(len(r.payments) + 1)
	r.payments = append(r.payments, *p)
	return nil
}

func (r *fakeRepo) ListPayments(_ context.Context) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.Payment(nil), r.payments...), nil
}

type noopSink struct{}

func (noopSink) Log(string, string, string, string, *uint, any) error {
	return nil
}

// --------- router setup ---------

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:           "test-secret",
		Timezone:            "America/Santiago",
		DefaultPsychologist: "EjemploPsicologo",
		SiteCalendars: map[string]string{
			"Antonio Bellet": "cal-antonio",
			"Las Urbinas":    "cal-urbinas",
		},
	}
}

func newTestRouter(repo *fakeRepo, gw *fakeGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	registry := sites.NewRegistry(cfg.SiteCalendars)
	loc, _ := time.LoadLocation(cfg.Timezone)

	dispatcher := audit.NewDispatcher(noopSink{})

	getAvailabilityUC := ucBooking.NewGetAvailability(gw, registry, loc)
	createReservationUC := ucBooking.NewCreateReservation(repo, gw, registry, dispatcher, loc)
	recordPaymentUC := ucBooking.NewRecordPayment(repo, dispatcher)
	getReportUC := ucBooking.NewGetReport(repo)

	webHandler := handlers.NewWebHandler(
		getAvailabilityUC, createReservationUC, recordPaymentUC, getReportUC, registry, loc,
	)
	bookingHandler := handlers.NewBookingHandler(
		getAvailabilityUC, createReservationUC, registry, loc,
	)
	paymentHandler := handlers.NewPaymentHandler(recordPaymentUC)
	reportHandler := handlers.NewReportHandler(getReportUC)

	identity := middleware.IdentityMiddleware(cfg)

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())

	r.GET("/", webHandler.Home)
	r.POST("/disponibilidad", webHandler.Availability)
	r.GET("/reservar", identity, webHandler.Reserve)
	r.GET("/registro", webHandler.PaymentForm)
	r.POST("/registro", webHandler.PaymentSubmit)
	r.GET("/reporte", webHandler.Report)

	api := r.Group("/api")
	api.Use(identity)
	{
		api.GET("/sites", bookingHandler.ListSites)
		api.GET("/availability", bookingHandler.Availability)
		api.POST("/reservations", bookingHandler.CreateReservation)
		api.POST("/payments", paymentHandler.Create)
		api.GET("/report", reportHandler.Get)
	}

	return r
}
