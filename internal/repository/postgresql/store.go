// Package postgresql implements the row store on PostgreSQL for sites that
// have outgrown the spreadsheet. The two tables mirror the worksheet
// columns; attendance_log keeps insertion order through a serial key.
package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/gatescan/attendance-backend-go/internal/domain/attendance"
	"github.com/gatescan/attendance-backend-go/internal/domain/staff"
	"github.com/gatescan/attendance-backend-go/internal/pkg/database"
)

type Store struct {
	db *database.DB
}

func NewStore(db *database.DB) *Store {
	return &Store{db: db}
}

// ListStaff implements staff.RosterSource.
func (s *Store) ListStaff(ctx context.Context) ([]staff.Staff, error) {
	query := `
		SELECT id, name, position, barcode, section
		FROM staff_list
		ORDER BY seq
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var roster []staff.Staff
	for rows.Next() {
		var st staff.Staff
		if err := rows.Scan(&st.ID, &st.Name, &st.Position, &st.Barcode, &st.Section); err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		if st.Section == "" {
			st.Section = "M"
		} else {
			st.Section = strings.ToUpper(st.Section)
		}
		roster = append(roster, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staff rows: %w", err)
	}
	return roster, nil
}

// ListEvents implements attendance.EventLog.
func (s *Store) ListEvents(ctx context.Context) ([]attendance.Event, error) {
	query := `
		SELECT event_id, staff_id, staff_name, section, date, time, status, note
		FROM attendance_log
		ORDER BY seq
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var ev attendance.Event
		if err := rows.Scan(&ev.ID, &ev.StaffID, &ev.StaffName, &ev.Section, &ev.Date, &ev.Time, &ev.Status, &ev.Note); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event rows: %w", err)
	}
	return events, nil
}

// Append implements attendance.EventLog.
func (s *Store) Append(ctx context.Context, event attendance.Event) error {
	query := `
		INSERT INTO attendance_log (
			event_id, staff_id, staff_name, section, date, time, status, note
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := s.db.Exec(ctx, query,
		event.ID,
		event.StaffID,
		event.StaffName,
		event.Section,
		event.Date,
		event.Time,
		event.Status,
		event.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}
