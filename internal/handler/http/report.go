package http

import (
	"net/http"

	"github.com/gatescan/attendance-backend-go/internal/domain/report"
	"github.com/gatescan/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// GetReports returns grouped attendance rows for a date range
	GetReports(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// GetReports handles GET /reports
func (h *reportHandlerImpl) GetReports(w http.ResponseWriter, r *http.Request) {
	query := report.Query{
		Type:      r.URL.Query().Get("reportType"), // default: present
		Section:   r.URL.Query().Get("section"),    // default: all
		StartDate: r.URL.Query().Get("startDate"),  // format: YYYY-MM-DD, default: today
		EndDate:   r.URL.Query().Get("endDate"),    // format: YYYY-MM-DD, default: today
	}

	result, err := h.reportService.Generate(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
