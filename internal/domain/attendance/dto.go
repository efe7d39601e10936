package attendance

import "github.com/gatescan/attendance-backend-go/internal/domain/staff"

// ScanResponse is the payload returned to the gate client after a scan.
type ScanResponse struct {
	OK     bool        `json:"ok"`
	Staff  staff.Staff `json:"staff"`
	Date   string      `json:"date"`
	Time   string      `json:"time"`
	Status string      `json:"status"`
	Note   string      `json:"note"`
}
