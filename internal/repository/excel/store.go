// Package excel implements the row store on a local .xlsx workbook, for
// deployments that keep the spreadsheet on disk instead of Google Sheets.
// Layout matches the sheets backend: a staff_list worksheet and an
// append-only attendance_log worksheet with a header row each.
package excel

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gatescan/attendance-backend-go/internal/domain/attendance"
	"github.com/gatescan/attendance-backend-go/internal/domain/staff"
	"github.com/xuri/excelize/v2"
)

const (
	rosterSheet = "staff_list"
	eventsSheet = "attendance_log"
)

var rosterHeader = []interface{}{"id", "name", "position", "barcode", "section"}
var eventsHeader = []interface{}{"staff_id", "name", "section", "date", "time", "status", "note", "event_id"}

type Store struct {
	mu   sync.Mutex
	path string
	file *excelize.File
}

// NewStore opens the workbook, creating it with empty worksheets when the
// file does not exist yet.
func NewStore(path string) (*Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createWorkbook(path); err != nil {
			return nil, err
		}
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Store{path: path, file: file}, nil
}

func createWorkbook(path string) error {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName(file.GetSheetName(0), rosterSheet); err != nil {
		return err
	}
	if _, err := file.NewSheet(eventsSheet); err != nil {
		return err
	}
	if err := file.SetSheetRow(rosterSheet, "A1", &rosterHeader); err != nil {
		return err
	}
	if err := file.SetSheetRow(eventsSheet, "A1", &eventsHeader); err != nil {
		return err
	}
	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("failed to create workbook %s: %w", path, err)
	}
	return nil
}

// Close releases the underlying workbook handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

// ListStaff implements staff.RosterSource.
func (s *Store) ListStaff(ctx context.Context) ([]staff.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.file.GetRows(rosterSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rosterSheet, err)
	}

	var roster []staff.Staff
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		roster = append(roster, staff.Staff{
			ID:       cell(row, 0),
			Name:     cell(row, 1),
			Position: cell(row, 2),
			Barcode:  cell(row, 3),
			Section:  sectionOrDefault(cell(row, 4)),
		})
	}
	return roster, nil
}

// ListEvents implements attendance.EventLog.
func (s *Store) ListEvents(ctx context.Context) ([]attendance.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.file.GetRows(eventsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", eventsSheet, err)
	}

	var events []attendance.Event
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		events = append(events, attendance.Event{
			StaffID:   cell(row, 0),
			StaffName: cell(row, 1),
			Section:   cell(row, 2),
			Date:      cell(row, 3),
			Time:      cell(row, 4),
			Status:    cell(row, 5),
			Note:      cell(row, 6),
			ID:        cell(row, 7),
		})
	}
	return events, nil
}

// Append implements attendance.EventLog.
func (s *Store) Append(ctx context.Context, event attendance.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.file.GetRows(eventsSheet)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", eventsSheet, err)
	}

	next := len(rows) + 1
	row := []interface{}{
		event.StaffID,
		event.StaffName,
		event.Section,
		event.Date,
		event.Time,
		event.Status,
		event.Note,
		event.ID,
	}
	if err := s.file.SetSheetRow(eventsSheet, fmt.Sprintf("A%d", next), &row); err != nil {
		return fmt.Errorf("failed to write attendance row: %w", err)
	}
	if err := s.file.Save(); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func sectionOrDefault(section string) string {
	if section == "" {
		return "M"
	}
	return strings.ToUpper(section)
}
