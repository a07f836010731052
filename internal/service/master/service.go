package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/talentbase/competency-backend-go/internal/domain/employee"
	"github.com/talentbase/competency-backend-go/internal/domain/ledger"
	"github.com/talentbase/competency-backend-go/internal/domain/master/competency"
	"github.com/talentbase/competency-backend-go/internal/domain/master/department"
	"github.com/talentbase/competency-backend-go/internal/domain/master/role"
	"github.com/talentbase/competency-backend-go/internal/domain/rolematrix"
)

type MasterService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, code string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, code string) error

	// Role operations
	CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error)
	GetRole(ctx context.Context, code string) (role.RoleResponse, error)
	ListRoles(ctx context.Context) ([]role.RoleResponse, error)
	UpdateRole(ctx context.Context, req role.UpdateRoleRequest) error
	DeleteRole(ctx context.Context, code string) error

	// Competency operations
	CreateCompetency(ctx context.Context, req competency.CreateCompetencyRequest) (competency.CompetencyResponse, error)
	GetCompetency(ctx context.Context, code string) (competency.CompetencyResponse, error)
	ListCompetencies(ctx context.Context) ([]competency.CompetencyResponse, error)
	UpdateCompetency(ctx context.Context, req competency.UpdateCompetencyRequest) error
	DeleteCompetency(ctx context.Context, code string) error
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	roleRepo       role.RoleRepository
	competencyRepo competency.CompetencyRepository
	employeeRepo   employee.EmployeeRepository
	matrixRepo     rolematrix.RoleCompetencyRepository
	ledgerRepo     ledger.LedgerRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	roleRepo role.RoleRepository,
	competencyRepo competency.CompetencyRepository,
	employeeRepo employee.EmployeeRepository,
	matrixRepo rolematrix.RoleCompetencyRepository,
	ledgerRepo ledger.LedgerRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		roleRepo:       roleRepo,
		competencyRepo: competencyRepo,
		employeeRepo:   employeeRepo,
		matrixRepo:     matrixRepo,
		ledgerRepo:     ledgerRepo,
	}
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Code: req.Code,
		Name: req.Name,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return department.DepartmentResponse{}, department.ErrDepartmentExists
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return department.DepartmentResponse{Code: created.Code, Name: created.Name}, nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, code string) (department.DepartmentResponse, error) {
	entity, err := s.departmentRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.DepartmentResponse{}, department.ErrDepartmentNotFound
		}
		return department.DepartmentResponse{}, err
	}

	return department.DepartmentResponse{Code: entity.Code, Name: entity.Name}, nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.DepartmentResponse{Code: d.Code, Name: d.Name})
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.departmentRepo.Update(ctx, req); err != nil {
		if isUniqueViolation(err) {
			return department.ErrDepartmentExists
		}
		return err
	}
	return nil
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, code string) error {
	if _, err := s.departmentRepo.GetByCode(ctx, code); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.ErrDepartmentNotFound
		}
		return err
	}

	inUse, err := s.employeeRepo.ExistsByDepartment(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to check department usage: %w", err)
	}
	if inUse {
		return department.ErrDepartmentInUse
	}

	return s.departmentRepo.Delete(ctx, code)
}

// ==================== ROLE OPERATIONS ====================

func (s *masterServiceImpl) CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	created, err := s.roleRepo.Create(ctx, role.Role{
		Code: req.Code,
		Name: req.Name,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return role.RoleResponse{}, role.ErrRoleExists
		}
		return role.RoleResponse{}, fmt.Errorf("failed to create role: %w", err)
	}

	return role.RoleResponse{Code: created.Code, Name: created.Name}, nil
}

func (s *masterServiceImpl) GetRole(ctx context.Context, code string) (role.RoleResponse, error) {
	entity, err := s.roleRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.RoleResponse{}, role.ErrRoleNotFound
		}
		return role.RoleResponse{}, err
	}

	return role.RoleResponse{Code: entity.Code, Name: entity.Name}, nil
}

func (s *masterServiceImpl) ListRoles(ctx context.Context) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, role.RoleResponse{Code: r.Code, Name: r.Name})
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateRole(ctx context.Context, req role.UpdateRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.roleRepo.Update(ctx, req); err != nil {
		if isUniqueViolation(err) {
			return role.ErrRoleExists
		}
		return err
	}
	return nil
}

func (s *masterServiceImpl) DeleteRole(ctx context.Context, code string) error {
	if _, err := s.roleRepo.GetByCode(ctx, code); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.ErrRoleNotFound
		}
		return err
	}

	inUse, err := s.employeeRepo.ExistsByRole(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to check role usage: %w", err)
	}
	if !inUse {
		inUse, err = s.matrixRepo.ExistsByRole(ctx, code)
		if err != nil {
			return fmt.Errorf("failed to check role assignments: %w", err)
		}
	}
	if inUse {
		return role.ErrRoleInUse
	}

	return s.roleRepo.Delete(ctx, code)
}

// ==================== COMPETENCY OPERATIONS ====================

func (s *masterServiceImpl) CreateCompetency(ctx context.Context, req competency.CreateCompetencyRequest) (competency.CompetencyResponse, error) {
	if err := req.Validate(); err != nil {
		return competency.CompetencyResponse{}, err
	}

	created, err := s.competencyRepo.Create(ctx, competency.Competency{
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		RequiredScore: req.RequiredScore,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return competency.CompetencyResponse{}, competency.ErrCompetencyExists
		}
		return competency.CompetencyResponse{}, fmt.Errorf("failed to create competency: %w", err)
	}

	return competency.NewCompetencyResponse(created), nil
}

func (s *masterServiceImpl) GetCompetency(ctx context.Context, code string) (competency.CompetencyResponse, error) {
	entity, err := s.competencyRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return competency.CompetencyResponse{}, competency.ErrCompetencyNotFound
		}
		return competency.CompetencyResponse{}, err
	}

	return competency.NewCompetencyResponse(entity), nil
}

func (s *masterServiceImpl) ListCompetencies(ctx context.Context) ([]competency.CompetencyResponse, error) {
	competencies, err := s.competencyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]competency.CompetencyResponse, 0, len(competencies))
	for _, c := range competencies {
		responses = append(responses, competency.NewCompetencyResponse(c))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateCompetency(ctx context.Context, req competency.UpdateCompetencyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.competencyRepo.Update(ctx, req); err != nil {
		if isUniqueViolation(err) {
			return competency.ErrCompetencyExists
		}
		return err
	}
	return nil
}

func (s *masterServiceImpl) DeleteCompetency(ctx context.Context, code string) error {
	if _, err := s.competencyRepo.GetByCode(ctx, code); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return competency.ErrCompetencyNotFound
		}
		return err
	}

	inUse, err := s.ledgerRepo.ExistsByCompetency(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to check competency usage: %w", err)
	}
	if !inUse {
		inUse, err = s.matrixRepo.ExistsByCompetency(ctx, code)
		if err != nil {
			return fmt.Errorf("failed to check competency assignments: %w", err)
		}
	}
	if inUse {
		return competency.ErrCompetencyInUse
	}

	return s.competencyRepo.Delete(ctx, code)
}
