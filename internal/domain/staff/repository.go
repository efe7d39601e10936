package staff

import "context"

// RosterSource reads the full staff list from the external store.
type RosterSource interface {
	ListStaff(ctx context.Context) ([]Staff, error)
}

// Directory is the in-memory roster keyed by barcode.
type Directory interface {
	// Reload fetches the roster and swaps the whole table atomically.
	Reload(ctx context.Context) error

	// FindByBarcode returns the matching record, lazily loading the
	// roster on first use. Returns ErrStaffNotFound when absent.
	FindByBarcode(ctx context.Context, barcode string) (Staff, error)

	// Snapshot returns the current full roster in load order.
	Snapshot(ctx context.Context) ([]Staff, error)
}
