package statistics

import "context"

// StatisticsService computes attendance statistics on demand. Results are
// fresh snapshots; persistence is an idempotent upsert side effect.
type StatisticsService interface {
	// GetEmployeeStatistics computes an employee's statistics for the
	// requested period and stores the snapshot
	GetEmployeeStatistics(ctx context.Context, req EmployeeStatisticsRequest) (EmployeeStatisticsResponse, error)

	// GetGlobalStatistics computes the organization-wide monthly snapshot
	GetGlobalStatistics(ctx context.Context, req GlobalStatisticsRequest) (GlobalStatisticsResponse, error)

	// GetEmployeeHistory lists an employee's stored snapshots
	GetEmployeeHistory(ctx context.Context, employeeID string, kind PeriodKind, limit int) ([]EmployeeStatisticsResponse, error)
}
