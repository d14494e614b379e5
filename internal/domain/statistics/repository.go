package statistics

import "context"

// SnapshotRepository persists computed statistics. Snapshots are derived,
// re-creatable data: upserts are last-write-wins on the period key.
type SnapshotRepository interface {
	// UpsertEmployeeSnapshot stores the snapshot keyed by
	// (employee, period start, period end, period kind)
	UpsertEmployeeSnapshot(ctx context.Context, stats EmployeeStatistics) error

	// ListEmployeeSnapshots returns an employee's stored snapshots of the
	// given kind, most recent period first
	ListEmployeeSnapshots(ctx context.Context, employeeID string, kind PeriodKind, limit int) ([]EmployeeStatistics, error)

	// UpsertGlobalSnapshot stores the organization-wide snapshot keyed by
	// period start
	UpsertGlobalSnapshot(ctx context.Context, stats GlobalStatistics) error
}
