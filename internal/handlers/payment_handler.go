package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/psiboxes/box-scheduler/internal/httperr"
	"github.com/psiboxes/box-scheduler/internal/httpresp"
	ucBooking "github.com/psiboxes/box-scheduler/internal/usecase/booking"
)

type PaymentHandler struct {
	recordPayment *ucBooking.RecordPayment
}

func NewPaymentHandler(recordPayment *ucBooking.RecordPayment) *PaymentHandler {
	return &PaymentHandler{recordPayment: recordPayment}
}

type CreatePaymentRequest struct {
	Psychologist string  `json:"psychologist" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
	Date         string  `json:"date" binding:"required"`
	Description  string  `json:"description"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	p, err := h.recordPayment.Execute(c.Request.Context(), ucBooking.RecordPaymentInput{
		Psychologist: req.Psychologist,
		Amount:       req.Amount,
		Date:         req.Date,
		Description:  req.Description,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_payment") {
			httperr.BadRequest(c, "invalid_payment", "Datos de pago inválidos.")
			return
		}
		httperr.Internal(c, "failed_to_record_payment", "Error al registrar pago.")
		return
	}

	httpresp.Created(c, p)
}
