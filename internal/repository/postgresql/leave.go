package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulsehr/attendance-backend-go/internal/domain/leave"
	"github.com/pulsehr/attendance-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.type, l.start_date, l.end_date, l.reason,
	l.status, l.decided_by, l.decided_at, l.created_at, l.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name
`

func scanLeave(row interface{ Scan(...any) error }) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Type, &l.StartDate, &l.EndDate, &l.Reason,
		&l.Status, &l.DecidedBy, &l.DecidedAt, &l.CreatedAt, &l.UpdatedAt,
		&l.EmployeeName,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var createdID string
	err := q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.Type, request.StartDate,
		request.EndDate, request.Reason, request.Status,
	).Scan(&createdID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return r.GetByID(ctx, createdID)
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	return scanLeave(q.QueryRow(ctx, query, id))
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, request leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET type = $2, start_date = $3, end_date = $4, reason = $5,
			status = $6, decided_by = $7, decided_at = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		request.ID, request.Type, request.StartDate, request.EndDate,
		request.Reason, request.Status, request.DecidedBy, request.DecidedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update failed, no rows affected")
	}

	return nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete failed, no rows affected")
	}

	return nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("l.employee_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("l.type = $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_requests l WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE ` + where + `
		ORDER BY l.created_at DESC
		LIMIT $` + fmt.Sprint(len(args)-1) + ` OFFSET $` + fmt.Sprint(len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var leaves []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, 0, err
		}
		leaves = append(leaves, l)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return leaves, total, nil
}
