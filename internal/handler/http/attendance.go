package http

import (
	"log/slog"
	"net/http"

	"github.com/gatescan/attendance-backend-go/internal/domain/attendance"
	"github.com/gatescan/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	// Scan records a gate scan for the barcode in the path
	Scan(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	scanService attendance.ScanService
}

func NewAttendanceHandler(scanService attendance.ScanService) AttendanceHandler {
	return &attendanceHandlerImpl{scanService: scanService}
}

// Scan handles GET /scan/{barcode}
func (h *attendanceHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	barcode := chi.URLParam(r, "barcode")
	mode := r.URL.Query().Get("mode") // check-in, check-out, permit or early-departure

	result, err := h.scanService.Scan(r.Context(), barcode, mode)
	if err != nil {
		slog.Error("Scan service error", "error", err, "barcode", barcode)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}
