package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbase/competency-backend-go/internal/domain/employee"
	"github.com/talentbase/competency-backend-go/internal/domain/ledger"
	"github.com/talentbase/competency-backend-go/internal/domain/master/competency"
	"github.com/talentbase/competency-backend-go/internal/domain/master/department"
	"github.com/talentbase/competency-backend-go/internal/domain/report"
	"github.com/talentbase/competency-backend-go/internal/repository/memory"
)

func newTestService(t *testing.T) (ReportService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewReportService(store.Reports(), store.Competencies(), store.Departments())
	return svc, store
}

// seedGapFixture seeds one competency with required 5 and actual scores
// 4, 3, 2 and 1: one employee each in buckets gap 1, 2 and 3, and one whose
// gap of 4 lands in no bucket.
func seedGapFixture(t *testing.T, store *memory.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Competencies().Create(ctx, competency.Competency{Code: "GO", Name: "Go", RequiredScore: 5})
	require.NoError(t, err)
	_, err = store.Competencies().Create(ctx, competency.Competency{Code: "IDLE", Name: "Idle", RequiredScore: 3})
	require.NoError(t, err)

	_, err = store.Departments().Create(ctx, department.Department{Code: "ENG", Name: "Engineering"})
	require.NoError(t, err)

	actuals := map[string]int{"E001": 4, "E002": 3, "E003": 2, "E004": 1}
	for number, actual := range actuals {
		_, err := store.Employees().Create(ctx, employee.Employee{
			EmployeeNumber: number,
			EmployeeName:   "Employee " + number,
			DepartmentCode: "ENG",
		})
		require.NoError(t, err)

		err = store.Ledger().CreateBatch(ctx, []ledger.EmployeeCompetency{
			{EmployeeNumber: number, CompetencyCode: "GO", RequiredScore: 5, ActualScore: actual},
		})
		require.NoError(t, err)
	}
}

func TestGapHistogram(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedGapFixture(t, store)

	entries, err := svc.GapHistogram(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byCode := make(map[string]report.GapHistogramEntry, len(entries))
	for _, e := range entries {
		byCode[e.CompetencyCode] = e
	}

	goEntry := byCode["GO"]
	assert.Equal(t, 1, goEntry.Gap1)
	assert.Equal(t, 1, goEntry.Gap2)
	assert.Equal(t, 1, goEntry.Gap3)
	// The gap-4 employee is in no bucket and not in the total.
	assert.Equal(t, 3, goEntry.TotalGapEmployees)

	// A competency nobody holds still appears, with zero buckets.
	idleEntry, ok := byCode["IDLE"]
	require.True(t, ok)
	assert.Equal(t, 0, idleEntry.Gap1)
	assert.Equal(t, 0, idleEntry.TotalGapEmployees)
}

func TestGapRanking(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedGapFixture(t, store)

	entries, err := svc.GapRanking(ctx, "GO")
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// Worst gap first.
	assert.Equal(t, "E004", entries[0].EmployeeNumber)
	assert.Equal(t, 4, entries[0].Gap)
	assert.Equal(t, "E001", entries[3].EmployeeNumber)
	assert.Equal(t, 1, entries[3].Gap)
}

func TestGapRankingExcludesMetRequirements(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedGapFixture(t, store)

	// Lift one employee to the requirement; they drop out of the ranking.
	matched, err := store.Ledger().UpdateActualScore(ctx, "E001", "GO", 5)
	require.NoError(t, err)
	require.Equal(t, int64(1), matched)

	entries, err := svc.GapRanking(ctx, "GO")
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	_, err = svc.GapRanking(ctx, "MISSING")
	assert.ErrorIs(t, err, competency.ErrCompetencyNotFound)
}

func TestEmployeeCompetencyDetails(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedGapFixture(t, store)

	entries, err := svc.EmployeeCompetencyDetails(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "E001", entries[0].EmployeeNumber)
	assert.Equal(t, "Employee E001", entries[0].EmployeeName)
	assert.Equal(t, "Go", entries[0].CompetencyName)
}

func TestDepartmentPerformance(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedGapFixture(t, store)

	// Required 5 against actuals 4,3,2,1: nobody meets it, average 2.5.
	result, err := svc.DepartmentPerformance(ctx, "ENG")
	require.NoError(t, err)
	assert.Equal(t, "Engineering", result.DepartmentName)
	require.Len(t, result.Competencies, 1)

	stat := result.Competencies[0]
	assert.Equal(t, "GO", stat.CompetencyCode)
	assert.Equal(t, 4, stat.EmployeesEvaluated)
	assert.Equal(t, 0, stat.EmployeesMeetingRequired)
	assert.Equal(t, 2.5, stat.AverageScore)
	assert.Equal(t, 0.0, stat.FulfillmentRate)
	assert.Equal(t, 1, stat.Rank)

	// Single competency: the department summary equals its stats.
	assert.Equal(t, 2.5, result.OverallAverageScore)
	assert.Equal(t, 0.0, result.OverallFulfillmentRate)

	_, err = svc.DepartmentPerformance(ctx, "GHOST")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestDepartmentPerformanceRequiredScoreFromCatalog(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	_, err := store.Departments().Create(ctx, department.Department{Code: "ENG", Name: "Engineering"})
	require.NoError(t, err)
	_, err = store.Competencies().Create(ctx, competency.Competency{Code: "GO", Name: "Go", RequiredScore: 5})
	require.NoError(t, err)

	// Ledger rows snapshotted before the catalog was raised to 5: the
	// report's required_score column follows the catalog, not the snapshots.
	for _, number := range []string{"E001", "E002"} {
		_, err := store.Employees().Create(ctx, employee.Employee{
			EmployeeNumber: number,
			EmployeeName:   "Employee " + number,
			DepartmentCode: "ENG",
		})
		require.NoError(t, err)
		err = store.Ledger().CreateBatch(ctx, []ledger.EmployeeCompetency{
			{EmployeeNumber: number, CompetencyCode: "GO", RequiredScore: 3, ActualScore: 3},
		})
		require.NoError(t, err)
	}

	result, err := svc.DepartmentPerformance(ctx, "ENG")
	require.NoError(t, err)
	require.Len(t, result.Competencies, 1)
	assert.Equal(t, 5, result.Competencies[0].RequiredScore)
	// Meeting-required still compares each row against its own snapshot.
	assert.Equal(t, 2, result.Competencies[0].EmployeesMeetingRequired)
}

func TestDepartmentPerformanceFulfillmentRounding(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	_, err := store.Departments().Create(ctx, department.Department{Code: "ENG", Name: "Engineering"})
	require.NoError(t, err)
	_, err = store.Competencies().Create(ctx, competency.Competency{Code: "GO", Name: "Go", RequiredScore: 3})
	require.NoError(t, err)

	// 3 of 4 meet the requirement: fulfillment 75.0.
	actuals := map[string]int{"E001": 3, "E002": 4, "E003": 3, "E004": 2}
	for number, actual := range actuals {
		_, err := store.Employees().Create(ctx, employee.Employee{
			EmployeeNumber: number,
			EmployeeName:   "Employee " + number,
			DepartmentCode: "ENG",
		})
		require.NoError(t, err)
		err = store.Ledger().CreateBatch(ctx, []ledger.EmployeeCompetency{
			{EmployeeNumber: number, CompetencyCode: "GO", RequiredScore: 3, ActualScore: actual},
		})
		require.NoError(t, err)
	}

	result, err := svc.DepartmentPerformance(ctx, "ENG")
	require.NoError(t, err)
	require.Len(t, result.Competencies, 1)
	assert.Equal(t, 75.0, result.Competencies[0].FulfillmentRate)
	assert.Equal(t, 3.0, result.Competencies[0].AverageScore)
	assert.Equal(t, 3, result.Competencies[0].EmployeesMeetingRequired)
}

func TestOrganizationRanking(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	for _, c := range []competency.Competency{
		{Code: "GO", Name: "Go", RequiredScore: 4},
		{Code: "SQL", Name: "SQL", RequiredScore: 3},
	} {
		_, err := store.Competencies().Create(ctx, c)
		require.NoError(t, err)
	}

	_, err := store.Employees().Create(ctx, employee.Employee{EmployeeNumber: "E001", EmployeeName: "Dana"})
	require.NoError(t, err)
	_, err = store.Employees().Create(ctx, employee.Employee{EmployeeNumber: "E002", EmployeeName: "Sam"})
	require.NoError(t, err)

	err = store.Ledger().CreateBatch(ctx, []ledger.EmployeeCompetency{
		// GO: both short of requirement, average 3, fulfillment 0.
		{EmployeeNumber: "E001", CompetencyCode: "GO", RequiredScore: 4, ActualScore: 3},
		{EmployeeNumber: "E002", CompetencyCode: "GO", RequiredScore: 4, ActualScore: 3},
		// SQL: both meet it, average 3.5, fulfillment 100.
		{EmployeeNumber: "E001", CompetencyCode: "SQL", RequiredScore: 3, ActualScore: 3},
		{EmployeeNumber: "E002", CompetencyCode: "SQL", RequiredScore: 3, ActualScore: 4},
	})
	require.NoError(t, err)

	entries, err := svc.OrganizationRanking(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "SQL", entries[0].CompetencyCode)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 100.0, entries[0].FulfillmentRate)
	assert.Equal(t, 3.5, entries[0].AverageScore)
	assert.Equal(t, 0.5, entries[0].PerformanceGap) // 3.5 average vs catalog 3

	assert.Equal(t, "GO", entries[1].CompetencyCode)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, -1.0, entries[1].PerformanceGap) // 3 average vs catalog 4
}
