package directory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gatescan/attendance-backend-go/internal/domain/staff"
)

// snapshot is one immutable generation of the roster. Lookups index by
// barcode; the slice keeps load order for report generation.
type snapshot struct {
	roster    []staff.Staff
	byBarcode map[string]staff.Staff
}

type DirectoryImpl struct {
	source staff.RosterSource

	// current is swapped wholesale on reload so readers observe either
	// the fully-old or fully-new table, never a partial one. A nil
	// pointer means the roster has not been loaded yet.
	current atomic.Pointer[snapshot]

	// reloadMu collapses concurrent lazy loads into one fetch.
	reloadMu sync.Mutex
}

func NewDirectory(source staff.RosterSource) staff.Directory {
	return &DirectoryImpl{source: source}
}

// Reload implements staff.Directory.
func (d *DirectoryImpl) Reload(ctx context.Context) error {
	if d.source == nil {
		return staff.ErrDirectoryUnavailable
	}

	d.reloadMu.Lock()
	defer d.reloadMu.Unlock()

	roster, err := d.source.ListStaff(ctx)
	if err != nil {
		return fmt.Errorf("failed to load staff roster: %w", err)
	}

	next := &snapshot{
		roster:    roster,
		byBarcode: make(map[string]staff.Staff, len(roster)),
	}
	for _, st := range roster {
		next.byBarcode[st.Barcode] = st
	}

	d.current.Store(next)
	return nil
}

// FindByBarcode implements staff.Directory.
func (d *DirectoryImpl) FindByBarcode(ctx context.Context, barcode string) (staff.Staff, error) {
	snap, err := d.snapshot(ctx)
	if err != nil {
		return staff.Staff{}, err
	}

	st, ok := snap.byBarcode[barcode]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return st, nil
}

// Snapshot implements staff.Directory.
func (d *DirectoryImpl) Snapshot(ctx context.Context) ([]staff.Staff, error) {
	snap, err := d.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.roster, nil
}

// snapshot returns the current table, loading it lazily the first time.
// Roster changes are rare; there is no periodic refresh, so the table is
// as stale as the last reload.
func (d *DirectoryImpl) snapshot(ctx context.Context) (*snapshot, error) {
	if snap := d.current.Load(); snap != nil {
		return snap, nil
	}
	if err := d.Reload(ctx); err != nil {
		return nil, err
	}
	return d.current.Load(), nil
}
