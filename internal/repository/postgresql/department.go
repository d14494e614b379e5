package postgresql

import (
	"context"
	"fmt"

	"github.com/pulsehr/attendance-backend-go/internal/domain/department"
	"github.com/pulsehr/attendance-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) Create(ctx context.Context, newDepartment department.Department) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO departments (id, name, manager, description, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, manager, description, location, created_at, updated_at
	`

	var created department.Department
	err := q.QueryRow(ctx, query,
		newDepartment.ID, newDepartment.Name, newDepartment.Manager,
		newDepartment.Description, newDepartment.Location,
	).Scan(
		&created.ID, &created.Name, &created.Manager, &created.Description,
		&created.Location, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return department.Department{}, err
	}

	return created, nil
}

// GetByID implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT d.id, d.name, d.manager, d.description, d.location,
			(SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id),
			d.created_at, d.updated_at
		FROM departments d
		WHERE d.id = $1
	`

	var found department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.Name, &found.Manager, &found.Description,
		&found.Location, &found.EmployeeCount, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		return department.Department{}, err
	}

	return found, nil
}

// Update implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) Update(ctx context.Context, dept department.Department) error {
	q := GetQuerier(ctx, d.db)

	query := `
		UPDATE departments
		SET name = $2, manager = $3, description = $4, location = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, dept.ID, dept.Name, dept.Manager, dept.Description, dept.Location)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update failed, no rows affected")
	}

	return nil
}

// Delete implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, d.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete failed, no rows affected")
	}

	return nil
}

// List implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT d.id, d.name, d.manager, d.description, d.location,
			(SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id),
			d.created_at, d.updated_at
		FROM departments d
		ORDER BY d.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		err := rows.Scan(
			&dept.ID, &dept.Name, &dept.Manager, &dept.Description,
			&dept.Location, &dept.EmployeeCount, &dept.CreatedAt, &dept.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}
