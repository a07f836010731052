package master

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbase/competency-backend-go/internal/domain/employee"
	"github.com/talentbase/competency-backend-go/internal/domain/ledger"
	"github.com/talentbase/competency-backend-go/internal/domain/master/competency"
	"github.com/talentbase/competency-backend-go/internal/domain/master/department"
	"github.com/talentbase/competency-backend-go/internal/domain/master/role"
	"github.com/talentbase/competency-backend-go/internal/domain/rolematrix"
	"github.com/talentbase/competency-backend-go/internal/pkg/validator"
	"github.com/talentbase/competency-backend-go/internal/repository/memory"
)

func newTestService(store *memory.Store) MasterService {
	return NewMasterService(
		store.Departments(),
		store.Roles(),
		store.Competencies(),
		store.Employees(),
		store.RoleCompetencies(),
		store.Ledger(),
	)
}

func TestCreateDepartment(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(memory.NewStore())

	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Code: "ENG", Name: "Engineering"})
	require.NoError(t, err)
	assert.Equal(t, "ENG", created.Code)
	assert.Equal(t, "Engineering", created.Name)

	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Code: "ENG", Name: "Engineering Again"})
	assert.ErrorIs(t, err, department.ErrDepartmentExists)
}

func TestCreateDepartmentValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(memory.NewStore())

	_, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Code: "", Name: ""})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "department_code")
	assert.Contains(t, validationErrs.ToMap(), "name")
}

func TestGetDepartmentNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(memory.NewStore())

	_, err := svc.GetDepartment(ctx, "NOPE")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestUpdateDepartment(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(memory.NewStore())

	_, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Code: "ENG", Name: "Engineering"})
	require.NoError(t, err)

	err = svc.UpdateDepartment(ctx, department.UpdateDepartmentRequest{Code: "ENG", NewCode: "ENG", Name: "Engineering & Product"})
	require.NoError(t, err)

	got, err := svc.GetDepartment(ctx, "ENG")
	require.NoError(t, err)
	assert.Equal(t, "Engineering & Product", got.Name)

	err = svc.UpdateDepartment(ctx, department.UpdateDepartmentRequest{Code: "GONE", NewCode: "GONE", Name: "Ghost"})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestDeleteDepartmentGuardedByEmployees(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store)

	_, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Code: "ENG", Name: "Engineering"})
	require.NoError(t, err)

	_, err = store.Employees().Create(ctx, employee.Employee{
		EmployeeNumber: "E001",
		EmployeeName:   "Dana",
		RoleCode:       "DEV",
		DepartmentCode: "ENG",
	})
	require.NoError(t, err)

	err = svc.DeleteDepartment(ctx, "ENG")
	assert.ErrorIs(t, err, department.ErrDepartmentInUse)

	require.NoError(t, store.Employees().Delete(ctx, "E001"))
	require.NoError(t, svc.DeleteDepartment(ctx, "ENG"))

	err = svc.DeleteDepartment(ctx, "ENG")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestCreateRoleDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(memory.NewStore())

	_, err := svc.CreateRole(ctx, role.CreateRoleRequest{Code: "DEV", Name: "Developer"})
	require.NoError(t, err)

	_, err = svc.CreateRole(ctx, role.CreateRoleRequest{Code: "DEV", Name: "Developer"})
	assert.ErrorIs(t, err, role.ErrRoleExists)
}

func TestDeleteRoleGuards(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store)

	_, err := svc.CreateRole(ctx, role.CreateRoleRequest{Code: "DEV", Name: "Developer"})
	require.NoError(t, err)

	// Guard via employees.
	_, err = store.Employees().Create(ctx, employee.Employee{
		EmployeeNumber: "E001",
		EmployeeName:   "Dana",
		RoleCode:       "DEV",
		DepartmentCode: "ENG",
	})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.DeleteRole(ctx, "DEV"), role.ErrRoleInUse)
	require.NoError(t, store.Employees().Delete(ctx, "E001"))

	// Guard via matrix assignments.
	err = store.RoleCompetencies().CreateBatch(ctx, []rolematrix.RoleCompetency{
		{RoleCode: "DEV", CompetencyCode: "GO", RequiredScore: 4},
	})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.DeleteRole(ctx, "DEV"), role.ErrRoleInUse)

	_, err = store.RoleCompetencies().DeleteByRoleAndCodes(ctx, "DEV", []string{"GO"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteRole(ctx, "DEV"))
}

func TestCompetencyCRUD(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(memory.NewStore())

	created, err := svc.CreateCompetency(ctx, competency.CreateCompetencyRequest{
		Code:          "GO",
		Name:          "Go Programming",
		Description:   "Backend development in Go",
		RequiredScore: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.RequiredScore)

	err = svc.UpdateCompetency(ctx, competency.UpdateCompetencyRequest{
		Code:          "GO",
		NewCode:       "GO",
		Name:          "Go Programming",
		Description:   "Backend and tooling in Go",
		RequiredScore: 5,
	})
	require.NoError(t, err)

	got, err := svc.GetCompetency(ctx, "GO")
	require.NoError(t, err)
	assert.Equal(t, 5, got.RequiredScore)
	assert.Equal(t, "Backend and tooling in Go", got.Description)
}

func TestDeleteCompetencyGuards(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store)

	_, err := svc.CreateCompetency(ctx, competency.CreateCompetencyRequest{Code: "GO", Name: "Go", RequiredScore: 4})
	require.NoError(t, err)

	// Guard via the employee ledger.
	err = store.Ledger().CreateBatch(ctx, []ledger.EmployeeCompetency{
		{EmployeeNumber: "E001", CompetencyCode: "GO", RequiredScore: 4},
	})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.DeleteCompetency(ctx, "GO"), competency.ErrCompetencyInUse)

	require.NoError(t, store.Ledger().DeleteByEmployee(ctx, "E001"))

	// Guard via matrix assignments.
	err = store.RoleCompetencies().CreateBatch(ctx, []rolematrix.RoleCompetency{
		{RoleCode: "DEV", CompetencyCode: "GO", RequiredScore: 4},
	})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.DeleteCompetency(ctx, "GO"), competency.ErrCompetencyInUse)

	_, err = store.RoleCompetencies().DeleteByRoleAndCodes(ctx, "DEV", []string{"GO"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCompetency(ctx, "GO"))
}

func TestListCatalog(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(memory.NewStore())

	departments, err := svc.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Empty(t, departments)

	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Code: "ENG", Name: "Engineering"})
	require.NoError(t, err)
	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Code: "FIN", Name: "Finance"})
	require.NoError(t, err)

	departments, err = svc.ListDepartments(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "Engineering", departments[0].Name)
	assert.Equal(t, "Finance", departments[1].Name)
}
