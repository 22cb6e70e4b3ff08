package employee

import "context"

// EmployeeRepository is the read-side lookup used by the resolver, the sweep
// and the report aggregator.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	ListActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
}
