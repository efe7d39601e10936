package attendance

import "errors"

var (
	ErrStoreUnavailable = errors.New("attendance store is not available")
)
