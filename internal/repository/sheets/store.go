// Package sheets implements the row store on a Google Sheets spreadsheet,
// the production backend. The staff list and the attendance log each live
// on their own worksheet; events are appended as rows via the values API.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gatescan/attendance-backend-go/internal/domain/attendance"
	"github.com/gatescan/attendance-backend-go/internal/domain/staff"
	"golang.org/x/oauth2/google"
)

const (
	baseURL           = "https://sheets.googleapis.com/v4/spreadsheets"
	spreadsheetsScope = "https://www.googleapis.com/auth/spreadsheets"

	rosterRange = "staff_list!A2:E"
	eventsRange = "attendance_log!A2:H"
	appendRange = "attendance_log!A:H"
)

type Store struct {
	client        *http.Client
	spreadsheetID string
}

// NewStore authorizes a service account for the spreadsheets scope and
// returns a store bound to one spreadsheet.
func NewStore(ctx context.Context, spreadsheetID string, serviceAccountJSON []byte) (*Store, error) {
	jwtConfig, err := google.JWTConfigFromJSON(serviceAccountJSON, spreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}
	return &Store{
		client:        jwtConfig.Client(ctx),
		spreadsheetID: spreadsheetID,
	}, nil
}

// ListStaff implements staff.RosterSource.
func (s *Store) ListStaff(ctx context.Context) ([]staff.Staff, error) {
	values, err := s.readRange(ctx, rosterRange)
	if err != nil {
		return nil, err
	}

	roster := make([]staff.Staff, 0, len(values))
	for _, row := range values {
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
	values, err := s.readRange(ctx, eventsRange)
	if err != nil {
		return nil, err
	}

	events := make([]attendance.Event, 0, len(values))
	for _, row := range values {
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
	body := map[string]interface{}{
		"values": [][]interface{}{{
			event.StaffID,
			event.StaffName,
			event.Section,
			event.Date,
			event.Time,
			event.Status,
			event.Note,
			event.ID,
		}},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=USER_ENTERED",
		baseURL, s.spreadsheetID, url.PathEscape(appendRange))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to append attendance row: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("sheets append rejected: %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}
	return nil
}

type valueRange struct {
	Values [][]string `json:"values"`
}

func (s *Store) readRange(ctx context.Context, rangeRef string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/%s/values/%s", baseURL, s.spreadsheetID, url.PathEscape(rangeRef))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", rangeRef, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("sheets read rejected: %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	var vr valueRange
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("failed to decode range %s: %w", rangeRef, err)
	}
	return vr.Values, nil
}

// cell reads a column that may be missing on short rows.
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
