package handlers

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psiboxes/box-scheduler/internal/httperr"
	"github.com/psiboxes/box-scheduler/internal/middleware"
	"github.com/psiboxes/box-scheduler/internal/sites"
	ucBooking "github.com/psiboxes/box-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type WebHandler struct {
	availability      *ucBooking.GetAvailability
	createReservation *ucBooking.CreateReservation
	recordPayment     *ucBooking.RecordPayment
	report            *ucBooking.GetReport
	sites             *sites.Registry
	loc               *time.Location
}

func NewWebHandler(
	availability *ucBooking.GetAvailability,
	createReservation *ucBooking.CreateReservation,
	recordPayment *ucBooking.RecordPayment,
	report *ucBooking.GetReport,
	registry *sites.Registry,
	loc *time.Location,
) *WebHandler {
	return &WebHandler{
		availability:      availability,
		createReservation: createReservation,
		recordPayment:     recordPayment,
		report:            report,
		sites:             registry,
		loc:               loc,
	}
}

// ======================================================
// HOME
// ======================================================

func (h *WebHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home", gin.H{
		"Sites": h.sites.List(),
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *WebHandler) Availability(c *gin.Context) {
	siteName := c.PostForm("sede")
	dateStr := c.PostForm("fecha")

	date, err := time.ParseInLocation("2006-01-02", dateStr, h.loc)
	if err != nil {
		c.String(http.StatusBadRequest, "Fecha inválida.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), siteName, date)
	if err != nil {
		if httperr.IsBusiness(err, "unknown_site") {
			c.String(http.StatusBadRequest, "Sede desconocida.")
			return
		}
		c.String(http.StatusInternalServerError, "Error al consultar disponibilidad.")
		return
	}

	views := make([]slotView, 0, len(slots))
	for _, s := range slots {
		q := url.Values{
			"sede":  {siteName},
			"fecha": {dateStr},
			"hora":  {s.HourParam()},
		}
		views = append(views, slotView{
			Label: s.Label(),
			URL:   template.URL("/reservar?" + q.Encode()),
		})
	}

	c.HTML(http.StatusOK, "availability", gin.H{
		"Site":  siteName,
		"Date":  dateStr,
		"Slots": views,
	})
}

type slotView struct {
	Label string
	URL   template.URL
}

// ======================================================
// RESERVE
// ======================================================

func (h *WebHandler) Reserve(c *gin.Context) {
	in := ucBooking.CreateReservationInput{
		Site:         c.Query("sede"),
		Psychologist: middleware.Psychologist(c),
		Date:         c.Query("fecha"),
		Hour:         c.Query("hora"),
	}

	_, err := h.createReservation.Execute(c.Request.Context(), in)
	if err != nil {
		status := http.StatusBadGateway
		message := "el calendario no está disponible"

		switch httperr.BusinessCode(err) {
		case "unknown_site":
			status, message = http.StatusBadRequest, "sede desconocida"
		case "invalid_date_or_time":
			status, message = http.StatusBadRequest, "fecha u hora inválida"
		case "slot_taken":
			status, message = http.StatusConflict, "la hora ya está reservada"
		case "calendar_unavailable":
			// defaults
		default:
			status, message = http.StatusInternalServerError, "error interno"
		}

		c.HTML(status, "reservation_result", gin.H{
			"OK":      false,
			"Message": message,
		})
		return
	}

	c.HTML(http.StatusOK, "reservation_result", gin.H{
		"OK": true,
	})
}

// ======================================================
// PAYMENTS
// ======================================================

func (h *WebHandler) PaymentForm(c *gin.Context) {
	c.HTML(http.StatusOK, "payment_form", nil)
}

func (h *WebHandler) PaymentSubmit(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.PostForm("monto"), 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Monto inválido.")
		return
	}

	in := ucBooking.RecordPaymentInput{
		Psychologist: c.PostForm("psicologo"),
		Amount:       amount,
		Date:         c.PostForm("fecha"),
		Description:  c.PostForm("desc"),
	}

	if _, err := h.recordPayment.Execute(c.Request.Context(), in); err != nil {
		if httperr.IsBusiness(err, "invalid_payment") {
			c.String(http.StatusBadRequest, "Datos de pago inválidos.")
			return
		}
		c.String(http.StatusInternalServerError, "Error al registrar pago.")
		return
	}

	c.HTML(http.StatusOK, "payment_done", nil)
}

// ======================================================
// REPORT
// ======================================================

func (h *WebHandler) Report(c *gin.Context) {
	report, err := h.report.Execute(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Error al cargar el reporte.")
		return
	}

	c.HTML(http.StatusOK, "report", gin.H{
		"Reservations": report.Reservations,
		"Payments":     report.Payments,
	})
}
