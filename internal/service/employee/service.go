package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/talentbase/competency-backend-go/internal/domain/access"
	"github.com/talentbase/competency-backend-go/internal/domain/employee"
	"github.com/talentbase/competency-backend-go/internal/domain/ledger"
	"github.com/talentbase/competency-backend-go/internal/domain/master/competency"
	"github.com/talentbase/competency-backend-go/internal/domain/master/department"
	"github.com/talentbase/competency-backend-go/internal/domain/master/role"
	"github.com/talentbase/competency-backend-go/internal/domain/rolematrix"
	"github.com/talentbase/competency-backend-go/internal/pkg/database"
)

type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Get(ctx context.Context, number string) (employee.DetailResponse, error)
	List(ctx context.Context, identity access.Identity) ([]employee.EmployeeResponse, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	Delete(ctx context.Context, number string) error
	Import(ctx context.Context, records []employee.ImportRecord) (employee.ImportSummary, error)
}

type employeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	roleRepo       role.RoleRepository
	competencyRepo competency.CompetencyRepository
	matrixRepo     rolematrix.RoleCompetencyRepository
	ledgerRepo     ledger.LedgerRepository
	transactor     database.Transactor
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	roleRepo role.RoleRepository,
	competencyRepo competency.CompetencyRepository,
	matrixRepo rolematrix.RoleCompetencyRepository,
	ledgerRepo ledger.LedgerRepository,
	transactor database.Transactor,
) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		roleRepo:       roleRepo,
		competencyRepo: competencyRepo,
		matrixRepo:     matrixRepo,
		ledgerRepo:     ledgerRepo,
		transactor:     transactor,
	}
}

// checkReferences verifies the department and role an employee points at
// actually exist before any write happens.
func (s *employeeServiceImpl) checkReferences(ctx context.Context, departmentCode, roleCode string) error {
	if _, err := s.departmentRepo.GetByCode(ctx, departmentCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.ErrDepartmentNotFound
		}
		return err
	}
	if _, err := s.roleRepo.GetByCode(ctx, roleCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.ErrRoleNotFound
		}
		return err
	}
	return nil
}

// provisionFromRole copies the role's current matrix into the employee's
// ledger. Required scores are snapshotted from the matrix as it stands right
// now; later matrix edits leave these rows untouched.
func (s *employeeServiceImpl) provisionFromRole(ctx context.Context, employeeNumber, roleCode string) error {
	assignments, err := s.matrixRepo.ListByRole(ctx, roleCode)
	if err != nil {
		return err
	}
	if len(assignments) == 0 {
		return nil
	}

	rows := make([]ledger.EmployeeCompetency, 0, len(assignments))
	for _, rc := range assignments {
		rows = append(rows, ledger.EmployeeCompetency{
			EmployeeNumber: employeeNumber,
			CompetencyCode: rc.CompetencyCode,
			RequiredScore:  rc.RequiredScore,
			ActualScore:    0,
		})
	}
	return s.ledgerRepo.CreateBatch(ctx, rows)
}

func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.checkReferences(ctx, req.DepartmentCode, req.RoleCode); err != nil {
		return employee.EmployeeResponse{}, err
	}

	entity := employee.Employee{
		EmployeeNumber:        req.EmployeeNumber,
		EmployeeName:          req.EmployeeName,
		JobCode:               req.JobCode,
		ReportingEmployeeName: req.ReportingEmployeeName,
		RoleCode:              req.RoleCode,
		DepartmentCode:        req.DepartmentCode,
	}

	var created employee.Employee
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.employeeRepo.Create(ctx, entity)
		if err != nil {
			return err
		}
		return s.provisionFromRole(ctx, created.EmployeeNumber, created.RoleCode)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNumberExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.NewEmployeeResponse(created), nil
}

func (s *employeeServiceImpl) Get(ctx context.Context, number string) (employee.DetailResponse, error) {
	detail, err := s.employeeRepo.GetDetail(ctx, number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.DetailResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.DetailResponse{}, err
	}

	return employee.DetailResponse{
		EmployeeResponse: employee.NewEmployeeResponse(detail.Employee),
		Department:       detail.DepartmentName,
		Role:             detail.RoleName,
	}, nil
}

// List returns every employee for elevated callers and only the caller's own
// department for everyone else.
func (s *employeeServiceImpl) List(ctx context.Context, identity access.Identity) ([]employee.EmployeeResponse, error) {
	var (
		employees []employee.Employee
		err       error
	)
	if identity.Elevated() {
		employees, err = s.employeeRepo.List(ctx)
	} else {
		employees, err = s.employeeRepo.ListByDepartment(ctx, identity.DepartmentCode)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}
	return responses, nil
}

// Update rewrites the employee record and rebuilds its ledger from the new
// role's matrix. Accumulated actual scores do not survive the rebuild.
func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.checkReferences(ctx, req.DepartmentCode, req.RoleCode); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByNumber(ctx, req.Number); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}

	entity := employee.Employee{
		EmployeeNumber:        req.EmployeeNumber,
		EmployeeName:          req.EmployeeName,
		JobCode:               req.JobCode,
		ReportingEmployeeName: req.ReportingEmployeeName,
		RoleCode:              req.RoleCode,
		DepartmentCode:        req.DepartmentCode,
	}

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.ledgerRepo.DeleteByEmployee(ctx, req.Number); err != nil {
			return err
		}
		if err := s.employeeRepo.Update(ctx, req.Number, entity); err != nil {
			return err
		}
		return s.provisionFromRole(ctx, entity.EmployeeNumber, entity.RoleCode)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNumberExists
		}
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByNumber(ctx, entity.EmployeeNumber)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(updated), nil
}

func (s *employeeServiceImpl) Delete(ctx context.Context, number string) error {
	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.ledgerRepo.DeleteByEmployee(ctx, number); err != nil {
			return err
		}
		return s.employeeRepo.Delete(ctx, number)
	})
}

// Import ingests normalized records from the external bulk feed. Each record
// commits or fails on its own; a bad record never rolls back its neighbors.
func (s *employeeServiceImpl) Import(ctx context.Context, records []employee.ImportRecord) (employee.ImportSummary, error) {
	summary := employee.ImportSummary{
		Results:        make([]employee.ImportResult, 0, len(records)),
		TotalProcessed: len(records),
	}

	for _, record := range records {
		result := employee.ImportResult{EmployeeNumber: record.EmployeeNumber}
		if err := s.importOne(ctx, record); err != nil {
			result.Status = "error"
			result.Message = err.Error()
			summary.ErrorCount++
		} else {
			result.Status = "success"
			result.Message = "employee imported"
			summary.SuccessCount++
		}
		summary.Results = append(summary.Results, result)
	}

	return summary, nil
}

func (s *employeeServiceImpl) importOne(ctx context.Context, record employee.ImportRecord) error {
	if record.EmployeeNumber == "" || record.EmployeeName == "" {
		return errors.New("employee_number and employee_name are required")
	}
	if record.RoleCode == "" || record.Department == "" {
		return errors.New("role_code and department are required")
	}

	if err := s.checkReferences(ctx, record.Department, record.RoleCode); err != nil {
		return err
	}

	overrides := make(map[string]int, len(record.Competencies))
	for _, rc := range record.Competencies {
		if rc.Code == "" {
			continue
		}
		overrides[rc.Code] = rc.Score
	}

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err := s.employeeRepo.Create(ctx, employee.Employee{
			EmployeeNumber:        record.EmployeeNumber,
			EmployeeName:          record.EmployeeName,
			JobCode:               record.JobCode,
			ReportingEmployeeName: record.ReportingEmployeeName,
			RoleCode:              record.RoleCode,
			DepartmentCode:        record.Department,
		})
		if err != nil {
			return err
		}
		return s.provisionImport(ctx, created.EmployeeNumber, created.RoleCode, overrides)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrEmployeeNumberExists
		}
		return err
	}
	return nil
}

// provisionImport provisions from the role matrix like provisionFromRole,
// then layers the feed's per-employee required-score overrides on top. Codes
// from the feed that are neither in the matrix nor in the catalog are logged
// and dropped rather than failing the record.
func (s *employeeServiceImpl) provisionImport(ctx context.Context, employeeNumber, roleCode string, overrides map[string]int) error {
	assignments, err := s.matrixRepo.ListByRole(ctx, roleCode)
	if err != nil {
		return err
	}

	rows := make([]ledger.EmployeeCompetency, 0, len(assignments)+len(overrides))
	inMatrix := make(map[string]struct{}, len(assignments))
	for _, rc := range assignments {
		required := rc.RequiredScore
		if override, ok := overrides[rc.CompetencyCode]; ok {
			required = override
		}
		inMatrix[rc.CompetencyCode] = struct{}{}
		rows = append(rows, ledger.EmployeeCompetency{
			EmployeeNumber: employeeNumber,
			CompetencyCode: rc.CompetencyCode,
			RequiredScore:  required,
			ActualScore:    0,
		})
	}

	var extraCodes []string
	for code := range overrides {
		if _, ok := inMatrix[code]; !ok {
			extraCodes = append(extraCodes, code)
		}
	}
	if len(extraCodes) > 0 {
		known, err := s.competencyRepo.ListByCodes(ctx, extraCodes)
		if err != nil {
			return err
		}
		knownCodes := make(map[string]struct{}, len(known))
		for _, c := range known {
			knownCodes[c.Code] = struct{}{}
		}
		for _, code := range extraCodes {
			if _, ok := knownCodes[code]; !ok {
				slog.WarnContext(ctx, "skipping unknown competency in import",
					"employee_number", employeeNumber,
					"competency_code", code,
				)
				continue
			}
			rows = append(rows, ledger.EmployeeCompetency{
				EmployeeNumber: employeeNumber,
				CompetencyCode: code,
				RequiredScore:  overrides[code],
				ActualScore:    0,
			})
		}
	}

	if len(rows) == 0 {
		return nil
	}
	return s.ledgerRepo.CreateBatch(ctx, rows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
