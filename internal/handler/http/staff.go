package http

import (
	"log/slog"
	"net/http"

	"github.com/gatescan/attendance-backend-go/internal/domain/staff"
	"github.com/gatescan/attendance-backend-go/internal/handler/http/response"
)

type StaffHandler interface {
	// ReloadRoster refreshes the barcode directory from the store
	ReloadRoster(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	directory staff.Directory
}

func NewStaffHandler(directory staff.Directory) StaffHandler {
	return &staffHandlerImpl{directory: directory}
}

// ReloadRoster handles POST /staff/reload. The directory otherwise only
// loads lazily on first use, so roster edits need this to take effect
// without a restart.
func (h *staffHandlerImpl) ReloadRoster(w http.ResponseWriter, r *http.Request) {
	if err := h.directory.Reload(r.Context()); err != nil {
		slog.Error("Roster reload error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Roster reloaded successfully")
	response.Success(w, "Roster reloaded successfully")
}
