package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psiboxes/box-scheduler/internal/httperr"
	"github.com/psiboxes/box-scheduler/internal/httpresp"
	"github.com/psiboxes/box-scheduler/internal/middleware"
	"github.com/psiboxes/box-scheduler/internal/sites"
	ucBooking "github.com/psiboxes/box-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER (JSON API)
// ======================================================

type BookingHandler struct {
	availability      *ucBooking.GetAvailability
	createReservation *ucBooking.CreateReservation
	sites             *sites.Registry
	loc               *time.Location
}

func NewBookingHandler(
	availability *ucBooking.GetAvailability,
	createReservation *ucBooking.CreateReservation,
	registry *sites.Registry,
	loc *time.Location,
) *BookingHandler {
	return &BookingHandler{
		availability:      availability,
		createReservation: createReservation,
		sites:             registry,
		loc:               loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	Site        string `json:"site" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Hour        string `json:"hour" binding:"required"`
	DurationMin int    `json:"duration_min"`
}

// ======================================================
// SITES
// ======================================================

func (h *BookingHandler) ListSites(c *gin.Context) {
	httpresp.List(c, h.sites.List())
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	siteName := c.Query("site")
	dateStr := c.Query("date")

	if siteName == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Parámetros site y date obligatorios.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), siteName, date)
	if err != nil {
		if httperr.IsBusiness(err, "unknown_site") {
			httperr.BadRequest(c, "unknown_site", "Sede desconocida.")
			return
		}
		httperr.Internal(c, "availability_error", "Error al consultar disponibilidad.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// CREATE RESERVATION
// ======================================================

func (h *BookingHandler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	res, err := h.createReservation.Execute(c.Request.Context(), ucBooking.CreateReservationInput{
		Site:         req.Site,
		Psychologist: middleware.Psychologist(c),
		Date:         req.Date,
		Hour:         req.Hour,
		DurationMin:  req.DurationMin,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "unknown_site":
			httperr.BadRequest(c, "unknown_site", "Sede desconocida.")
		case "invalid_date_or_time":
			httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		case "slot_taken":
			httperr.Conflict(c, "slot_taken", "La hora ya está reservada.")
		case "calendar_unavailable":
			httperr.BadGateway(c, "calendar_unavailable", "El calendario no está disponible.")
		default:
			httperr.Internal(c, "failed_to_create_reservation", "Error al crear reserva.")
		}
		return
	}

	httpresp.Created(c, res)
}
