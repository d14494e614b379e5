package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulsehr/attendance-backend-go/internal/domain/employee"
	"github.com/pulsehr/attendance-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.title, e.registration_number, e.first_name, e.last_name, e.email, e.phone,
	e.position, e.department_id, e.status, e.base_salary,
	e.expected_clock_in, e.expected_clock_out, e.tolerance_minutes,
	e.created_at, e.updated_at, d.name AS department_name
`

func scanEmployee(row interface{ Scan(...any) error }) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Title, &emp.RegistrationNumber, &emp.FirstName, &emp.LastName,
		&emp.Email, &emp.Phone, &emp.Position, &emp.DepartmentID, &emp.Status,
		&emp.BaseSalary, &emp.ExpectedClockIn, &emp.ExpectedClockOut, &emp.ToleranceMinutes,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DepartmentName,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			id, title, registration_number, first_name, last_name, email, phone,
			position, department_id, status, base_salary,
			expected_clock_in, expected_clock_out, tolerance_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, $14
		)
		RETURNING id
	`

	var createdID string
	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.Title, newEmployee.RegistrationNumber,
		newEmployee.FirstName, newEmployee.LastName, newEmployee.Email, newEmployee.Phone,
		newEmployee.Position, newEmployee.DepartmentID, newEmployee.Status, newEmployee.BaseSalary,
		newEmployee.ExpectedClockIn, newEmployee.ExpectedClockOut, newEmployee.ToleranceMinutes,
	).Scan(&createdID)
	if err != nil {
		return employee.Employee{}, err
	}

	return e.GetByID(ctx, createdID)
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET title = $2, registration_number = $3, first_name = $4, last_name = $5,
			email = $6, phone = $7, position = $8, department_id = $9, status = $10,
			base_salary = $11, expected_clock_in = $12, expected_clock_out = $13,
			tolerance_minutes = $14, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.Title, emp.RegistrationNumber, emp.FirstName, emp.LastName,
		emp.Email, emp.Phone, emp.Position, emp.DepartmentID, emp.Status,
		emp.BaseSalary, emp.ExpectedClockIn, emp.ExpectedClockOut, emp.ToleranceMinutes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update failed, no rows affected")
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete failed, no rows affected")
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	conditions := []string{"1=1"}
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(e.first_name) LIKE $%d OR LOWER(e.last_name) LIKE $%d OR e.id LIKE $%d)", n, n, n))
	}
	if filter.DepartmentID != "" {
		args = append(args, filter.DepartmentID)
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", len(args)))
	}
	if filter.Title != "" {
		args = append(args, filter.Title)
		conditions = append(conditions, fmt.Sprintf("e.title = $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees e WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE ` + where + `
		ORDER BY e.last_name, e.first_name
		LIMIT $` + fmt.Sprint(len(args)-1) + ` OFFSET $` + fmt.Sprint(len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ListAll implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		ORDER BY e.last_name, e.first_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// CountByStatus implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CountByStatus(ctx context.Context) (int64, int64, int64, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE status = 'inactive')
		FROM employees
	`

	var total, active, inactive int64
	if err := q.QueryRow(ctx, query).Scan(&total, &active, &inactive); err != nil {
		return 0, 0, 0, err
	}

	return total, active, inactive, nil
}
