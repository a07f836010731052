package postgresql

import (
	"context"
	"fmt"

	"github.com/talentbase/competency-backend-go/internal/domain/master/department"
	"github.com/talentbase/competency-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (department_code, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING department_code, name
	`

	var result department.Department
	err := q.QueryRow(ctx, query, d.Code, d.Name).Scan(
		&result.Code,
		&result.Name,
	)

	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return result, nil
}

// GetByCode implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByCode(ctx context.Context, code string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department_code, name
		FROM departments
		WHERE department_code = $1
	`

	var result department.Department
	err := q.QueryRow(ctx, query, code).Scan(
		&result.Code,
		&result.Name,
	)

	if err != nil {
		return department.Department{}, err
	}

	return result, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department_code, name
		FROM departments
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.Code, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return departments, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET department_code = $1, name = $2, updated_at = NOW()
		WHERE department_code = $3
	`

	commandTag, err := q.Exec(ctx, query, req.NewCode, req.Name, req.Code)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, code string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM departments WHERE department_code = $1`

	commandTag, err := q.Exec(ctx, query, code)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}
