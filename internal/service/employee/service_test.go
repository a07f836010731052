package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbase/competency-backend-go/internal/domain/access"
	"github.com/talentbase/competency-backend-go/internal/domain/employee"
	"github.com/talentbase/competency-backend-go/internal/domain/master/competency"
	"github.com/talentbase/competency-backend-go/internal/domain/master/department"
	"github.com/talentbase/competency-backend-go/internal/domain/master/role"
	"github.com/talentbase/competency-backend-go/internal/domain/rolematrix"
	"github.com/talentbase/competency-backend-go/internal/repository/memory"
)

func newTestService(t *testing.T) (EmployeeService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewEmployeeService(
		store.Employees(),
		store.Departments(),
		store.Roles(),
		store.Competencies(),
		store.RoleCompetencies(),
		store.Ledger(),
		store.Transactor(),
	)
	return svc, store
}

func seedOrg(t *testing.T, store *memory.Store) {
	t.Helper()
	ctx := context.Background()

	for _, d := range []department.Department{
		{Code: "ENG", Name: "Engineering"},
		{Code: "FIN", Name: "Finance"},
	} {
		_, err := store.Departments().Create(ctx, d)
		require.NoError(t, err)
	}
	for _, r := range []role.Role{
		{Code: "DEV", Name: "Developer"},
		{Code: "ACC", Name: "Accountant"},
	} {
		_, err := store.Roles().Create(ctx, r)
		require.NoError(t, err)
	}
	for _, c := range []competency.Competency{
		{Code: "GO", Name: "Go", RequiredScore: 4},
		{Code: "SQL", Name: "SQL", RequiredScore: 3},
		{Code: "XLS", Name: "Spreadsheets", RequiredScore: 3},
	} {
		_, err := store.Competencies().Create(ctx, c)
		require.NoError(t, err)
	}

	err := store.RoleCompetencies().CreateBatch(ctx, []rolematrix.RoleCompetency{
		{RoleCode: "DEV", CompetencyCode: "GO", RequiredScore: 4},
		{RoleCode: "DEV", CompetencyCode: "SQL", RequiredScore: 3},
		{RoleCode: "ACC", CompetencyCode: "XLS", RequiredScore: 3},
	})
	require.NoError(t, err)
}

func TestCreateProvisionsFromRoleMatrix(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedOrg(t, store)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeNumber: "E001",
		EmployeeName:   "Dana",
		RoleCode:       "DEV",
		DepartmentCode: "ENG",
	})
	require.NoError(t, err)
	assert.False(t, created.EvaluationStatus)

	rows, err := store.Ledger().ListByEmployee(ctx, "E001")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "GO", rows[0].CompetencyCode)
	assert.Equal(t, 4, rows[0].RequiredScore)
	assert.Equal(t, 0, rows[0].ActualScore)
	assert.Equal(t, "SQL", rows[1].CompetencyCode)
}

func TestCreateSnapshotIsolatedFromLaterMatrixEdits(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedOrg(t, store)

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeNumber: "E001",
		EmployeeName:   "Dana",
		RoleCode:       "DEV",
		DepartmentCode: "ENG",
	})
	require.NoError(t, err)

	// Later matrix edits must not leak into the already provisioned ledger.
	_, err = store.RoleCompetencies().DeleteByRoleAndCodes(ctx, "DEV", []string{"GO", "SQL"})
	require.NoError(t, err)

	rows, err := store.Ledger().ListByEmployee(ctx, "E001")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestCreateRejectsDuplicateAndDanglingRefs(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedOrg(t, store)

	req := employee.CreateEmployeeRequest{
		EmployeeNumber: "E001",
		EmployeeName:   "Dana",
		RoleCode:       "DEV",
		DepartmentCode: "ENG",
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNumberExists)

	req.EmployeeNumber = "E002"
	req.DepartmentCode = "GHOST"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)

	req.DepartmentCode = "ENG"
	req.RoleCode = "GHOST"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, role.ErrRoleNotFound)
}

func TestGetJoinsNames(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedOrg(t, store)

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeNumber: "E001",
		EmployeeName:   "Dana",
		RoleCode:       "DEV",
		DepartmentCode: "ENG",
	})
	require.NoError(t, err)

	detail, err := svc.Get(ctx, "E001")
	require.NoError(t, err)
	assert.Equal(t, "Engineering", detail.Department)
	assert.Equal(t, "Developer", detail.Role)

	_, err = svc.Get(ctx, "E999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetFallsBackOnDanglingRefs(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	// Seed an employee whose department and role were never registered.
	_, err := store.Employees().Create(ctx, employee.Employee{
		EmployeeNumber: "E001",
		EmployeeName:   "Dana",
		RoleCode:       "GONE",
		DepartmentCode: "GONE",
	})
	require.NoError(t, err)

	detail, err := svc.Get(ctx, "E001")
	require.NoError(t, err)
	assert.Equal(t, "Unknown Department", detail.Department)
	assert.Equal(t, "Unknown Role", detail.Role)
}

func TestListScopedByRole(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedOrg(t, store)

	for _, req := range []employee.CreateEmployeeRequest{
		{EmployeeNumber: "E001", EmployeeName: "Dana", RoleCode: "DEV", DepartmentCode: "ENG"},
		{EmployeeNumber: "E002", EmployeeName: "Sam", RoleCode: "DEV", DepartmentCode: "ENG"},
		{EmployeeNumber: "E003", EmployeeName: "Kim", RoleCode: "ACC", DepartmentCode: "FIN"},
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, access.Identity{Role: access.RoleHR})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	all, err = svc.List(ctx, access.Identity{Role: access.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	scoped, err := svc.List(ctx, access.Identity{Role: access.RoleHOD, DepartmentCode: "ENG"})
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	assert.Equal(t, "E001", scoped[0].EmployeeNumber)

	scoped, err = svc.List(ctx, access.Identity{Role: access.RoleEmployee, DepartmentCode: "FIN"})
	require.NoError(t, err)
	assert.Len(t, scoped, 1)
}

func TestUpdateRebuildsLedgerFromNewRole(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedOrg(t, store)

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeNumber: "E001",
		EmployeeName:   "Dana",
		RoleCode:       "DEV",
		DepartmentCode: "ENG",
	})
	require.NoError(t, err)

	// Record an actual score; the rebuild must not preserve it.
	matched, err := store.Ledger().UpdateActualScore(ctx, "E001", "GO", 4)
	require.NoError(t, err)
	require.Equal(t, int64(1), matched)

	updated, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		Number: "E001",
		CreateEmployeeRequest: employee.CreateEmployeeRequest{
			EmployeeNumber: "E001",
			EmployeeName:   "Dana",
			RoleCode:       "ACC",
			DepartmentCode: "FIN",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "ACC", updated.RoleCode)

	rows, err := store.Ledger().ListByEmployee(ctx, "E001")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "XLS", rows[0].CompetencyCode)
	assert.Equal(t, 0, rows[0].ActualScore)
}

func TestUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedOrg(t, store)

	_, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		Number: "E404",
		CreateEmployeeRequest: employee.CreateEmployeeRequest{
			EmployeeNumber: "E404",
			EmployeeName:   "Ghost",
			RoleCode:       "DEV",
			DepartmentCode: "ENG",
		},
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteRemovesLedger(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedOrg(t, store)

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeNumber: "E001",
		EmployeeName:   "Dana",
		RoleCode:       "DEV",
		DepartmentCode: "ENG",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "E001"))

	rows, err := store.Ledger().ListByEmployee(ctx, "E001")
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.ErrorIs(t, svc.Delete(ctx, "E001"), employee.ErrEmployeeNotFound)
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedOrg(t, store)

	summary, err := svc.Import(ctx, []employee.ImportRecord{
		{
			EmployeeNumber: "E001",
			EmployeeName:   "Dana",
			RoleCode:       "DEV",
			Department:     "ENG",
			Competencies: []employee.ImportCompetency{
				{Code: "GO", Score: 5},      // override matrix required score
				{Code: "XLS", Score: 2},     // extra, exists in catalog
				{Code: "UNKNOWN", Score: 3}, // skipped with a log line
			},
		},
		{
			EmployeeNumber: "E002",
			EmployeeName:   "Sam",
			RoleCode:       "DEV",
			Department:     "GHOST", // unknown department fails the record
		},
		{
			EmployeeNumber: "", // missing required fields
			EmployeeName:   "Nameless",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalProcessed)
	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 2, summary.ErrorCount)
	require.Len(t, summary.Results, 3)
	assert.Equal(t, "success", summary.Results[0].Status)
	assert.Equal(t, "error", summary.Results[1].Status)
	assert.Equal(t, "error", summary.Results[2].Status)

	rows, err := store.Ledger().ListByEmployee(ctx, "E001")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	byCode := make(map[string]int, len(rows))
	for _, row := range rows {
		byCode[row.CompetencyCode] = row.RequiredScore
	}
	assert.Equal(t, 5, byCode["GO"])
	assert.Equal(t, 3, byCode["SQL"])
	assert.Equal(t, 2, byCode["XLS"])

	// The failed record left nothing behind.
	_, err = svc.Get(ctx, "E002")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestImportDuplicateEmployee(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedOrg(t, store)

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeNumber: "E001",
		EmployeeName:   "Dana",
		RoleCode:       "DEV",
		DepartmentCode: "ENG",
	})
	require.NoError(t, err)

	summary, err := svc.Import(ctx, []employee.ImportRecord{
		{EmployeeNumber: "E001", EmployeeName: "Dana Again", RoleCode: "DEV", Department: "ENG"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ErrorCount)
	assert.Equal(t, "error", summary.Results[0].Status)
}
