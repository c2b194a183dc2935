package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/psiboxes/box-scheduler/internal/httperr"
	"github.com/psiboxes/box-scheduler/internal/httpresp"
	ucBooking "github.com/psiboxes/box-scheduler/internal/usecase/booking"
)

type ReportHandler struct {
	report *ucBooking.GetReport
}

func NewReportHandler(report *ucBooking.GetReport) *ReportHandler {
	return &ReportHandler{report: report}
}

func (h *ReportHandler) Get(c *gin.Context) {
	report, err := h.report.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "report_error", "Error al cargar el reporte.")
		return
	}

	httpresp.OK(c, report)
}
