package report

import "context"

// Service generates date-range attendance reports.
type Service interface {
	Generate(ctx context.Context, query Query) ([]Row, error)
}
