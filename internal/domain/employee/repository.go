package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByNumber(ctx context.Context, number string) (Employee, error)
	GetDetail(ctx context.Context, number string) (Detail, error)
	List(ctx context.Context) ([]Employee, error)
	ListByDepartment(ctx context.Context, departmentCode string) ([]Employee, error)
	Update(ctx context.Context, number string, e Employee) error
	Delete(ctx context.Context, number string) error
	ExistsByDepartment(ctx context.Context, departmentCode string) (bool, error)
	ExistsByRole(ctx context.Context, roleCode string) (bool, error)
	SetEvaluation(ctx context.Context, number string, evaluatedBy string, evaluatedAt time.Time) error
	UpdateStatusByNumbers(ctx context.Context, numbers []string, status bool) (int64, error)
}
