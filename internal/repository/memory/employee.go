package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/talentbase/competency-backend-go/internal/domain/employee"
)

type employeeRepo struct {
	st *state
}

func (r *employeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.employees[e.EmployeeNumber]; exists {
		return employee.Employee{}, uniqueViolation("employees_pkey")
	}
	e.EvaluationStatus = false
	e.EvaluationBy = nil
	e.LastEvaluatedDate = nil
	r.st.employees[e.EmployeeNumber] = e
	return e, nil
}

func (r *employeeRepo) GetByNumber(_ context.Context, number string) (employee.Employee, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	e, exists := r.st.employees[number]
	if !exists {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (r *employeeRepo) GetDetail(_ context.Context, number string) (employee.Detail, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	e, exists := r.st.employees[number]
	if !exists {
		return employee.Detail{}, pgx.ErrNoRows
	}

	detail := employee.Detail{
		Employee:       e,
		DepartmentName: "Unknown Department",
		RoleName:       "Unknown Role",
	}
	if d, ok := r.st.departments[e.DepartmentCode]; ok {
		detail.DepartmentName = d.Name
	}
	if rl, ok := r.st.roles[e.RoleCode]; ok {
		detail.RoleName = rl.Name
	}
	return detail, nil
}

func (r *employeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var result []employee.Employee
	for _, e := range r.st.employees {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EmployeeNumber < result[j].EmployeeNumber })
	return result, nil
}

func (r *employeeRepo) ListByDepartment(_ context.Context, departmentCode string) ([]employee.Employee, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var result []employee.Employee
	for _, e := range r.st.employees {
		if e.DepartmentCode == departmentCode {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EmployeeNumber < result[j].EmployeeNumber })
	return result, nil
}

func (r *employeeRepo) Update(_ context.Context, number string, e employee.Employee) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	existing, exists := r.st.employees[number]
	if !exists {
		return employee.ErrEmployeeNotFound
	}
	if e.EmployeeNumber != number {
		if _, taken := r.st.employees[e.EmployeeNumber]; taken {
			return uniqueViolation("employees_pkey")
		}
	}
	e.EvaluationStatus = existing.EvaluationStatus
	e.EvaluationBy = existing.EvaluationBy
	e.LastEvaluatedDate = existing.LastEvaluatedDate
	delete(r.st.employees, number)
	r.st.employees[e.EmployeeNumber] = e
	return nil
}

func (r *employeeRepo) Delete(_ context.Context, number string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.employees[number]; !exists {
		return employee.ErrEmployeeNotFound
	}
	delete(r.st.employees, number)
	return nil
}

func (r *employeeRepo) ExistsByDepartment(_ context.Context, departmentCode string) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, e := range r.st.employees {
		if e.DepartmentCode == departmentCode {
			return true, nil
		}
	}
	return false, nil
}

func (r *employeeRepo) ExistsByRole(_ context.Context, roleCode string) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, e := range r.st.employees {
		if e.RoleCode == roleCode {
			return true, nil
		}
	}
	return false, nil
}

func (r *employeeRepo) SetEvaluation(_ context.Context, number string, evaluatedBy string, evaluatedAt time.Time) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	e, exists := r.st.employees[number]
	if !exists {
		return employee.ErrEmployeeNotFound
	}
	e.EvaluationStatus = true
	e.EvaluationBy = &evaluatedBy
	e.LastEvaluatedDate = &evaluatedAt
	r.st.employees[number] = e
	return nil
}

func (r *employeeRepo) UpdateStatusByNumbers(_ context.Context, numbers []string, status bool) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var matched int64
	for _, number := range numbers {
		if e, exists := r.st.employees[number]; exists {
			e.EvaluationStatus = status
			r.st.employees[number] = e
			matched++
		}
	}
	return matched, nil
}
