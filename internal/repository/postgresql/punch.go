package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pulsehr/attendance-backend-go/internal/domain/punch"
	"github.com/pulsehr/attendance-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

const punchColumns = `
	p.id, p.employee_id, p.date, p.clock_in, p.clock_out, p.remark, p.worked_minutes,
	p.on_time_in, p.on_time_out, p.punctuality_category, p.lateness_minutes, p.early_departure_minutes,
	p.created_at, p.updated_at, e.first_name || ' ' || e.last_name AS employee_name
`

func scanPunch(row interface{ Scan(...any) error }) (punch.Punch, error) {
	var p punch.Punch
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Date, &p.ClockIn, &p.ClockOut, &p.Remark, &p.WorkedMinutes,
		&p.OnTimeIn, &p.OnTimeOut, &p.PunctualityCategory, &p.LatenessMinutes, &p.EarlyDepartureMinutes,
		&p.CreatedAt, &p.UpdatedAt, &p.EmployeeName,
	)
	return p, err
}

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, newPunch punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (
			id, employee_id, date, clock_in, clock_out, remark, worked_minutes,
			on_time_in, on_time_out, punctuality_category, lateness_minutes, early_departure_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	var createdID string
	err := q.QueryRow(ctx, query,
		newPunch.ID, newPunch.EmployeeID, newPunch.Date, newPunch.ClockIn, newPunch.ClockOut,
		newPunch.Remark, newPunch.WorkedMinutes, newPunch.OnTimeIn, newPunch.OnTimeOut,
		newPunch.PunctualityCategory, newPunch.LatenessMinutes, newPunch.EarlyDepartureMinutes,
	).Scan(&createdID)
	if err != nil {
		return punch.Punch{}, err
	}

	return r.GetByID(ctx, createdID)
}

// GetByID implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByID(ctx context.Context, id string) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	return scanPunch(q.QueryRow(ctx, query, id))
}

// Update implements punch.PunchRepository.
func (r *punchRepositoryImpl) Update(ctx context.Context, p punch.Punch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punches
		SET employee_id = $2, date = $3, clock_in = $4, clock_out = $5, remark = $6,
			worked_minutes = $7, on_time_in = $8, on_time_out = $9,
			punctuality_category = $10, lateness_minutes = $11, early_departure_minutes = $12,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		p.ID, p.EmployeeID, p.Date, p.ClockIn, p.ClockOut, p.Remark,
		p.WorkedMinutes, p.OnTimeIn, p.OnTimeOut,
		p.PunctualityCategory, p.LatenessMinutes, p.EarlyDepartureMinutes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update failed, no rows affected")
	}

	return nil
}

// Delete implements punch.PunchRepository.
func (r *punchRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM punches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete failed, no rows affected")
	}

	return nil
}

// List implements punch.PunchRepository.
func (r *punchRepositoryImpl) List(ctx context.Context, filter punch.PunchFilter) ([]punch.Punch, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", len(args)))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		conditions = append(conditions, fmt.Sprintf("p.date = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(e.first_name) LIKE $%d OR LOWER(e.last_name) LIKE $%d)", n, n))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := `
		SELECT ` + punchColumns + `
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE ` + where + `
		ORDER BY p.date DESC, p.clock_in DESC
		LIMIT $` + fmt.Sprint(len(args)-1) + ` OFFSET $` + fmt.Sprint(len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, 0, err
		}
		punches = append(punches, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return punches, total, nil
}

// ListByEmployeeAndRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.date BETWEEN $2 AND $3
		ORDER BY p.date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, err
		}
		punches = append(punches, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return punches, nil
}

// ExistsForDate implements punch.PunchRepository.
func (r *punchRepositoryImpl) ExistsForDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM punches WHERE employee_id = $1 AND date = $2)`,
		employeeID, date,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
