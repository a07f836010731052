package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/talentbase/competency-backend-go/internal/domain/employee"
	"github.com/talentbase/competency-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	employee_number, employee_name, job_code, reporting_employee_name,
	role_code, department_code, evaluation_status, evaluation_by, last_evaluated_date
`

func scanEmployee(row interface{ Scan(dest ...any) error }) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.EmployeeNumber,
		&e.EmployeeName,
		&e.JobCode,
		&e.ReportingEmployeeName,
		&e.RoleCode,
		&e.DepartmentCode,
		&e.EvaluationStatus,
		&e.EvaluationBy,
		&e.LastEvaluatedDate,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_number, employee_name, job_code, reporting_employee_name,
			role_code, department_code, evaluation_status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW(), NOW())
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		e.EmployeeNumber,
		e.EmployeeName,
		e.JobCode,
		e.ReportingEmployeeName,
		e.RoleCode,
		e.DepartmentCode,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByNumber implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByNumber(ctx context.Context, number string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_number = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, number))
	if err != nil {
		return employee.Employee{}, err
	}

	return e, nil
}

// GetDetail implements employee.EmployeeRepository. Dangling department or
// role codes fall back to placeholder names instead of dropping the row.
func (r *employeeRepositoryImpl) GetDetail(ctx context.Context, number string) (employee.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.employee_number, e.employee_name, e.job_code, e.reporting_employee_name,
			e.role_code, e.department_code, e.evaluation_status, e.evaluation_by, e.last_evaluated_date,
			COALESCE(d.name, 'Unknown Department') AS department_name,
			COALESCE(r.name, 'Unknown Role') AS role_name
		FROM employees e
		LEFT JOIN departments d ON d.department_code = e.department_code
		LEFT JOIN roles r ON r.role_code = e.role_code
		WHERE e.employee_number = $1
	`

	var detail employee.Detail
	err := q.QueryRow(ctx, query, number).Scan(
		&detail.EmployeeNumber,
		&detail.EmployeeName,
		&detail.JobCode,
		&detail.ReportingEmployeeName,
		&detail.RoleCode,
		&detail.DepartmentCode,
		&detail.EvaluationStatus,
		&detail.EvaluationBy,
		&detail.LastEvaluatedDate,
		&detail.DepartmentName,
		&detail.RoleName,
	)
	if err != nil {
		return employee.Detail{}, err
	}

	return detail, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY employee_number ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// ListByDepartment implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByDepartment(ctx context.Context, departmentCode string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE department_code = $1 ORDER BY employee_number ASC`

	rows, err := q.Query(ctx, query, departmentCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees by department: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, number string, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET employee_number = $1, employee_name = $2, job_code = $3,
			reporting_employee_name = $4, role_code = $5, department_code = $6,
			updated_at = NOW()
		WHERE employee_number = $7
	`

	commandTag, err := q.Exec(ctx, query,
		e.EmployeeNumber,
		e.EmployeeName,
		e.JobCode,
		e.ReportingEmployeeName,
		e.RoleCode,
		e.DepartmentCode,
		number,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, number string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE employee_number = $1`

	commandTag, err := q.Exec(ctx, query, number)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ExistsByDepartment implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByDepartment(ctx context.Context, departmentCode string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE department_code = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, departmentCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check department employees: %w", err)
	}

	return exists, nil
}

// ExistsByRole implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByRole(ctx context.Context, roleCode string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE role_code = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, roleCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check role employees: %w", err)
	}

	return exists, nil
}

// SetEvaluation implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetEvaluation(ctx context.Context, number string, evaluatedBy string, evaluatedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET evaluation_status = TRUE, evaluation_by = $1, last_evaluated_date = $2, updated_at = NOW()
		WHERE employee_number = $3
	`

	commandTag, err := q.Exec(ctx, query, evaluatedBy, evaluatedAt, number)
	if err != nil {
		return fmt.Errorf("failed to set evaluation: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// UpdateStatusByNumbers implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateStatusByNumbers(ctx context.Context, numbers []string, status bool) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET evaluation_status = $1, updated_at = NOW()
		WHERE employee_number = ANY($2)
	`

	commandTag, err := q.Exec(ctx, query, status, numbers)
	if err != nil {
		return 0, fmt.Errorf("failed to update evaluation status: %w", err)
	}

	return commandTag.RowsAffected(), nil
}
