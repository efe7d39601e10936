package dashboard

import (
	"context"
	"strings"
	"time"

	"github.com/gatescan/attendance-backend-go/internal/config"
	"github.com/gatescan/attendance-backend-go/internal/domain/attendance"
	"github.com/gatescan/attendance-backend-go/internal/domain/dashboard"
	"github.com/gatescan/attendance-backend-go/internal/domain/staff"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	roster staff.RosterSource
	log    attendance.EventLog
	cfg    config.AttendanceConfig

	now func() time.Time
}

func NewDashboardService(roster staff.RosterSource, log attendance.EventLog, cfg config.AttendanceConfig) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		roster: roster,
		log:    log,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Daily implements dashboard.Service. Both store reads go out in parallel;
// the result is derived fresh on every request, never cached.
func (s *DashboardServiceImpl) Daily(ctx context.Context) (dashboard.DailyStats, error) {
	if s.roster == nil || s.log == nil {
		return nil, attendance.ErrStoreUnavailable
	}

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

	stats := make(dashboard.DailyStats, len(s.cfg.Thresholds))
	for section := range s.cfg.Thresholds {
		stats[section] = &dashboard.SectionStats{}
	}

	for _, member := range roster {
		if st, ok := stats[strings.ToUpper(member.Section)]; ok {
			st.Total++
		}
	}

	today := s.now().In(s.cfg.Location).Format("2006-01-02")

	// Distinct (section, staff) pairs seen today, regardless of how many
	// scans a staff member produced.
	attended := make(map[string]map[string]struct{}, len(stats))
	for section := range stats {
		attended[section] = make(map[string]struct{})
	}

	for _, ev := range events {
		if ev.Date != today {
			continue
		}
		section := strings.ToUpper(ev.Section)
		st, ok := stats[section]
		if !ok {
			continue
		}

		attended[section][ev.StaffID] = struct{}{}

		switch ev.Status {
		case attendance.StatusCheckIn:
			st.Present++
			if attendance.IsLateNote(ev.Note) {
				st.Late++
			}
		case attendance.StatusPermit:
			st.Permit++
		case attendance.StatusEarlyOut:
			st.Early++
		}
	}

	// Permit and early-departure staff are accounted for, not absent,
	// even though they do not count as present.
	for section, st := range stats {
		st.Absent = st.Total - (len(attended[section]) + st.Permit + st.Early)
		if st.Absent < 0 {
			st.Absent = 0
		}
	}

	return stats, nil
}
