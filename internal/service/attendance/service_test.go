package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gatescan/attendance-backend-go/internal/config"
	"github.com/gatescan/attendance-backend-go/internal/domain/attendance"
	"github.com/gatescan/attendance-backend-go/internal/domain/staff"
	"github.com/gatescan/attendance-backend-go/internal/repository/memory"
	"github.com/gatescan/attendance-backend-go/internal/service/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testZone = time.FixedZone("GST", 4*60*60)

func testAttendanceConfig() config.AttendanceConfig {
	return config.AttendanceConfig{
		Location: testZone,
		Thresholds: map[string]config.Threshold{
			"M": {Hour: 7, Minute: 30},
			"F": {Hour: 8, Minute: 0},
		},
	}
}

func newTestService(t *testing.T, roster []staff.Staff, at time.Time) (*ScanServiceImpl, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.SetRoster(roster)

	svc := NewScanService(directory.NewDirectory(store), store, testAttendanceConfig())
	svc.now = func() time.Time { return at }
	return svc, store
}

func TestScan_CheckInBeforeCutoff(t *testing.T) {
	ctx := context.Background()
	roster := []staff.Staff{{ID: "1", Name: "A", Section: "M", Barcode: "B1"}}
	at := time.Date(2024, 3, 4, 7, 0, 0, 0, testZone)
	svc, store := newTestService(t, roster, at)

	resp, err := svc.Scan(ctx, "B1", "check-in")
	require.NoError(t, err)

	assert.True(t, resp.OK)
	assert.Equal(t, "check-in", resp.Status)
	assert.Empty(t, resp.Note)
	assert.Equal(t, "2024-03-04", resp.Date)
	assert.Equal(t, "07:00:00", resp.Time)

	events, err := store.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "1", events[0].StaffID)
	assert.Equal(t, "A", events[0].StaffName)
	assert.NotEmpty(t, events[0].ID)
}

func TestScan_CheckInExactlyAtCutoffIsNotLate(t *testing.T) {
	ctx := context.Background()
	roster := []staff.Staff{{ID: "1", Name: "A", Section: "M", Barcode: "B1"}}
	at := time.Date(2024, 3, 4, 7, 30, 0, 0, testZone)
	svc, _ := newTestService(t, roster, at)

	resp, err := svc.Scan(ctx, "B1", "check-in")
	require.NoError(t, err)
	assert.Empty(t, resp.Note)
}

func TestScan_CheckInOneMinuteAfterCutoffIsLate(t *testing.T) {
	ctx := context.Background()
	roster := []staff.Staff{{ID: "1", Name: "A", Section: "M", Barcode: "B1"}}
	at := time.Date(2024, 3, 4, 7, 31, 0, 0, testZone)
	svc, _ := newTestService(t, roster, at)

	resp, err := svc.Scan(ctx, "B1", "check-in")
	require.NoError(t, err)
	assert.Equal(t, attendance.NoteLate, resp.Note)
	assert.True(t, attendance.IsLateNote(resp.Note))
}

func TestScan_SectionThresholdsDiffer(t *testing.T) {
	ctx := context.Background()
	roster := []staff.Staff{{ID: "2", Name: "B", Section: "F", Barcode: "B2"}}

	// 07:45 is late for M but on time for F (cutoff 08:00).
	at := time.Date(2024, 3, 4, 7, 45, 0, 0, testZone)
	svc, _ := newTestService(t, roster, at)

	resp, err := svc.Scan(ctx, "B2", "check-in")
	require.NoError(t, err)
	assert.Empty(t, resp.Note)
}

func TestScan_UnknownSectionFallsBackToM(t *testing.T) {
	ctx := context.Background()
	roster := []staff.Staff{{ID: "3", Name: "C", Section: "X", Barcode: "B3"}}
	at := time.Date(2024, 3, 4, 7, 45, 0, 0, testZone)
	svc, _ := newTestService(t, roster, at)

	resp, err := svc.Scan(ctx, "B3", "check-in")
	require.NoError(t, err)
	assert.Equal(t, attendance.NoteLate, resp.Note)
}

func TestScan_PermitAndEarlyGetFixedNotes(t *testing.T) {
	ctx := context.Background()
	roster := []staff.Staff{{ID: "1", Name: "A", Section: "M", Barcode: "B1"}}

	// Well after the cutoff: permit/early must not get a lateness note.
	at := time.Date(2024, 3, 4, 11, 0, 0, 0, testZone)
	svc, _ := newTestService(t, roster, at)

	resp, err := svc.Scan(ctx, "B1", "permit")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPermit, resp.Status)
	assert.Equal(t, attendance.NotePermit, resp.Note)

	resp, err = svc.Scan(ctx, "B1", "early-departure")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusEarlyOut, resp.Status)
	assert.Equal(t, attendance.NoteEarlyOut, resp.Note)
}

func TestScan_CheckOutHasNoNote(t *testing.T) {
	ctx := context.Background()
	roster := []staff.Staff{{ID: "1", Name: "A", Section: "M", Barcode: "B1"}}
	at := time.Date(2024, 3, 4, 14, 0, 0, 0, testZone)
	svc, _ := newTestService(t, roster, at)

	resp, err := svc.Scan(ctx, "B1", "check-out")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCheckOut, resp.Status)
	assert.Empty(t, resp.Note)
}

func TestScan_UnknownModeRecordsCheckIn(t *testing.T) {
	ctx := context.Background()
	roster := []staff.Staff{{ID: "1", Name: "A", Section: "M", Barcode: "B1"}}
	at := time.Date(2024, 3, 4, 7, 0, 0, 0, testZone)
	svc, _ := newTestService(t, roster, at)

	resp, err := svc.Scan(ctx, "B1", "whatever")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCheckIn, resp.Status)
}

func TestScan_UnknownBarcode(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 3, 4, 7, 0, 0, 0, testZone)
	svc, store := newTestService(t, []staff.Staff{{ID: "1", Barcode: "B1", Section: "M"}}, at)

	_, err := svc.Scan(ctx, "nope", "check-in")
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)

	// No event may be written for a failed lookup.
	events, err := store.ListEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestScan_UninitializedDependencies(t *testing.T) {
	svc := &ScanServiceImpl{now: time.Now, cfg: testAttendanceConfig()}
	_, err := svc.Scan(context.Background(), "B1", "check-in")
	assert.ErrorIs(t, err, attendance.ErrStoreUnavailable)
}

type failingLog struct {
	*memory.Store
}

func (failingLog) Append(ctx context.Context, event attendance.Event) error {
	return errors.New("append rejected")
}

func TestScan_AppendFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.SetRoster([]staff.Staff{{ID: "1", Name: "A", Section: "M", Barcode: "B1"}})

	svc := NewScanService(directory.NewDirectory(store), failingLog{store}, testAttendanceConfig())
	svc.now = func() time.Time { return time.Date(2024, 3, 4, 7, 0, 0, 0, testZone) }

	_, err := svc.Scan(ctx, "B1", "check-in")
	assert.Error(t, err)
}
