package attendance

import "context"

// ScanService classifies a barcode scan and records the resulting event.
type ScanService interface {
	// Scan derives status and note for the requested mode, appends one
	// event to the log, and returns the recorded values. An empty or
	// unknown mode is treated as a check-in.
	Scan(ctx context.Context, barcode, mode string) (ScanResponse, error)
}
