package staff

import "errors"

var (
	ErrStaffNotFound        = errors.New("staff member not found")
	ErrDirectoryUnavailable = errors.New("staff directory is not available")
)
