package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gatescan/attendance-backend-go/internal/config"
	"github.com/gatescan/attendance-backend-go/internal/domain/attendance"
	"github.com/gatescan/attendance-backend-go/internal/domain/staff"
	"github.com/google/uuid"
)

type ScanServiceImpl struct {
	directory staff.Directory
	log       attendance.EventLog
	cfg       config.AttendanceConfig

	// now is swappable for tests; the returned instant is always
	// converted into the configured zone before any comparison.
	now func() time.Time
}

func NewScanService(directory staff.Directory, log attendance.EventLog, cfg config.AttendanceConfig) *ScanServiceImpl {
	return &ScanServiceImpl{
		directory: directory,
		log:       log,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Scan implements attendance.ScanService. The recorded status is exactly
// the requested mode; the gate client decides between check-in and
// check-out rather than the server toggling on the previous event.
func (s *ScanServiceImpl) Scan(ctx context.Context, barcode, mode string) (attendance.ScanResponse, error) {
	if s.directory == nil || s.log == nil {
		return attendance.ScanResponse{}, attendance.ErrStoreUnavailable
	}

	member, err := s.directory.FindByBarcode(ctx, barcode)
	if err != nil {
		return attendance.ScanResponse{}, err
	}

	now := s.now().In(s.cfg.Location)
	date := now.Format("2006-01-02")
	clock := now.Format("15:04:05")

	status := normalizeMode(mode)
	note := ""

	switch status {
	case attendance.StatusCheckIn:
		if s.isLate(member.Section, now) {
			note = attendance.NoteLate
		}
	case attendance.StatusPermit:
		note = attendance.NotePermit
	case attendance.StatusEarlyOut:
		note = attendance.NoteEarlyOut
	}

	event := attendance.Event{
		ID:        uuid.NewString(),
		StaffID:   member.ID,
		StaffName: member.Name,
		Section:   member.Section,
		Date:      date,
		Time:      clock,
		Status:    status,
		Note:      note,
	}
	if err := s.log.Append(ctx, event); err != nil {
		return attendance.ScanResponse{}, fmt.Errorf("failed to record scan: %w", err)
	}

	return attendance.ScanResponse{
		OK:     true,
		Staff:  member,
		Date:   date,
		Time:   clock,
		Status: status,
		Note:   note,
	}, nil
}

// isLate applies the section cutoff with a strict-after rule: a check-in
// at the cutoff instant itself is on time.
func (s *ScanServiceImpl) isLate(section string, now time.Time) bool {
	threshold, ok := s.cfg.Thresholds[strings.ToUpper(section)]
	if !ok {
		threshold = s.cfg.Thresholds["M"]
	}
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), threshold.Hour, threshold.Minute, 0, 0, s.cfg.Location)
	return now.After(cutoff)
}

func normalizeMode(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case attendance.StatusCheckOut:
		return attendance.StatusCheckOut
	case attendance.StatusPermit:
		return attendance.StatusPermit
	case attendance.StatusEarlyOut:
		return attendance.StatusEarlyOut
	default:
		// Missing or unknown modes record a check-in.
		return attendance.StatusCheckIn
	}
}
