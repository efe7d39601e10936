package report

import (
	"context"
	"strings"
	"time"

	"github.com/gatescan/attendance-backend-go/internal/config"
	"github.com/gatescan/attendance-backend-go/internal/domain/attendance"
	"github.com/gatescan/attendance-backend-go/internal/domain/report"
	"github.com/gatescan/attendance-backend-go/internal/domain/staff"
	"github.com/gatescan/attendance-backend-go/internal/pkg/dates"
	"golang.org/x/sync/errgroup"
)

const dayLayout = "2006-01-02"

type ReportServiceImpl struct {
	roster staff.RosterSource
	log    attendance.EventLog
	cfg    config.AttendanceConfig

	now func() time.Time
}

func NewReportService(roster staff.RosterSource, log attendance.EventLog, cfg config.AttendanceConfig) *ReportServiceImpl {
	return &ReportServiceImpl{
		roster: roster,
		log:    log,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Generate implements report.Service. A pure function of the store
// contents: identical inputs always yield identical rows.
func (s *ReportServiceImpl) Generate(ctx context.Context, query report.Query) ([]report.Row, error) {
	if s.roster == nil || s.log == nil {
		return nil, attendance.ErrStoreUnavailable
	}

	reportType := query.Type
	if reportType == "" {
		reportType = report.TypePresent
	}
	section := strings.ToUpper(query.Section)
	if section == "" || strings.EqualFold(query.Section, report.SectionAll) {
		section = report.SectionAll
	}

	now := s.now().In(s.cfg.Location)
	start := startOfDay(now)
	if d, err := time.ParseInLocation(dayLayout, query.StartDate, s.cfg.Location); err == nil {
		start = d
	}
	end := now
	if d, err := time.ParseInLocation(dayLayout, query.EndDate, s.cfg.Location); err == nil {
		end = d
	}
	endDay := startOfDay(end)

	var (
		roster []staff.Staff
		events []attendance.Event
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.roster.ListStaff(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = s.log.ListEvents(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var filtered []attendance.Event
	for _, ev := range events {
		day, err := time.ParseInLocation(dayLayout, ev.Date, s.cfg.Location)
		if err != nil {
			continue
		}
		if day.Before(start) || day.After(endDay) {
			continue
		}
		if section != report.SectionAll && strings.ToUpper(ev.Section) != section {
			continue
		}
		filtered = append(filtered, ev)
	}

	switch reportType {
	case report.TypePresent:
		return groupByStaff(statusEvents(filtered, attendance.StatusCheckIn), "attendance", "attended on "), nil
	case report.TypeLate:
		return groupByStaff(lateEvents(filtered), "late", "late on "), nil
	case report.TypePermit:
		return groupByStaff(statusEvents(filtered, attendance.StatusPermit), "permit", "on permit on "), nil
	case report.TypeEarly:
		return groupByStaff(statusEvents(filtered, attendance.StatusEarlyOut), "early-departure", "left early on "), nil
	case report.TypeAbsent:
		return s.absentRows(roster, filtered, section, start, endDay), nil
	default:
		// Unknown report types yield an empty report, not an error.
		return []report.Row{}, nil
	}
}

func statusEvents(events []attendance.Event, status string) []attendance.Event {
	var out []attendance.Event
	for _, ev := range events {
		if ev.Status == status {
			out = append(out, ev)
		}
	}
	return out
}

func lateEvents(events []attendance.Event) []attendance.Event {
	var out []attendance.Event
	for _, ev := range statusEvents(events, attendance.StatusCheckIn) {
		if attendance.IsLateNote(ev.Note) {
			out = append(out, ev)
		}
	}
	return out
}

// groupByStaff collapses a staff member's events into one row listing the
// summarized visit dates. Rows keep the first-appearance order of the
// filtered event list; they are not re-sorted by name or id.
func groupByStaff(events []attendance.Event, label, notePrefix string) []report.Row {
	type group struct {
		first attendance.Event
		days  []string
	}

	grouped := make(map[string]*group)
	var order []string
	for _, ev := range events {
		g, ok := grouped[ev.StaffID]
		if !ok {
			g = &group{first: ev}
			grouped[ev.StaffID] = g
			order = append(order, ev.StaffID)
		}
		g.days = append(g.days, ev.Date)
	}

	rows := make([]report.Row, 0, len(order))
	for _, id := range order {
		g := grouped[id]
		rows = append(rows, report.Row{
			ID:      g.first.StaffID,
			Name:    g.first.StaffName,
			Section: g.first.Section,
			Date:    latestDay(g.days),
			Time:    g.first.Time,
			Type:    label,
			Notes:   notePrefix + dates.Summarize(g.days),
		})
	}
	return rows
}

// absentRows walks the roster (in roster order) and reports every member
// with at least one day in the range and no check-in on it.
func (s *ReportServiceImpl) absentRows(roster []staff.Staff, filtered []attendance.Event, section string, start, endDay time.Time) []report.Row {
	allDays := dates.RangeDays(start, endDay)

	attendedBy := make(map[string]map[string]struct{})
	for _, ev := range statusEvents(filtered, attendance.StatusCheckIn) {
		if attendedBy[ev.StaffID] == nil {
			attendedBy[ev.StaffID] = make(map[string]struct{})
		}
		attendedBy[ev.StaffID][ev.Date] = struct{}{}
	}

	rows := []report.Row{}
	for _, member := range roster {
		if section != report.SectionAll && strings.ToUpper(member.Section) != section {
			continue
		}

		var absentDays []string
		for _, day := range allDays {
			if _, ok := attendedBy[member.ID][day]; !ok {
				absentDays = append(absentDays, day)
			}
		}
		if len(absentDays) == 0 {
			continue
		}

		rows = append(rows, report.Row{
			ID:      member.ID,
			Name:    member.Name,
			Section: member.Section,
			Date:    absentDays[len(absentDays)-1],
			Time:    "-",
			Type:    "absent",
			Notes:   "absent on " + dates.Summarize(absentDays),
		})
	}
	return rows
}

// latestDay relies on ISO dates sorting lexically.
func latestDay(days []string) string {
	latest := ""
	for _, d := range days {
		if d > latest {
			latest = d
		}
	}
	return latest
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
