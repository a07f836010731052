package memory

import (
	"context"
	"sort"

	"github.com/talentbase/competency-backend-go/internal/domain/report"
)

type reportRepo struct {
	st *state
}

func (r *reportRepo) AllLedgerScores(_ context.Context) ([]report.LedgerScore, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var result []report.LedgerScore
	for _, row := range r.st.ledger {
		result = append(result, report.LedgerScore{
			CompetencyCode: row.CompetencyCode,
			RequiredScore:  row.RequiredScore,
			ActualScore:    row.ActualScore,
		})
	}
	return result, nil
}

func (r *reportRepo) Details(_ context.Context) ([]report.DetailEntry, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var result []report.DetailEntry
	for _, row := range r.st.ledger {
		entry := report.DetailEntry{
			EmployeeNumber: row.EmployeeNumber,
			CompetencyCode: row.CompetencyCode,
			RequiredScore:  row.RequiredScore,
			ActualScore:    row.ActualScore,
		}
		if e, ok := r.st.employees[row.EmployeeNumber]; ok {
			entry.EmployeeName = e.EmployeeName
		}
		if c, ok := r.st.competencies[row.CompetencyCode]; ok {
			entry.CompetencyName = c.Name
			entry.CompetencyDescription = c.Description
		}
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].EmployeeNumber != result[j].EmployeeNumber {
			return result[i].EmployeeNumber < result[j].EmployeeNumber
		}
		return result[i].CompetencyCode < result[j].CompetencyCode
	})
	return result, nil
}

func (r *reportRepo) ScoresByCompetency(_ context.Context, competencyCode string) ([]report.GapSourceRow, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var result []report.GapSourceRow
	for _, row := range r.st.ledger {
		if row.CompetencyCode != competencyCode {
			continue
		}
		src := report.GapSourceRow{
			EmployeeNumber: row.EmployeeNumber,
			RequiredScore:  row.RequiredScore,
			ActualScore:    row.ActualScore,
		}
		if e, ok := r.st.employees[row.EmployeeNumber]; ok {
			src.EmployeeName = e.EmployeeName
		}
		result = append(result, src)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EmployeeNumber < result[j].EmployeeNumber })
	return result, nil
}

func (r *reportRepo) ScoresByDepartment(_ context.Context, departmentCode string) ([]report.StatRow, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var result []report.StatRow
	for _, row := range r.st.ledger {
		e, ok := r.st.employees[row.EmployeeNumber]
		if !ok || e.DepartmentCode != departmentCode {
			continue
		}
		result = append(result, r.statRow(row.CompetencyCode, row.RequiredScore, row.ActualScore))
	}
	return result, nil
}

func (r *reportRepo) ScoresAll(_ context.Context) ([]report.StatRow, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var result []report.StatRow
	for _, row := range r.st.ledger {
		result = append(result, r.statRow(row.CompetencyCode, row.RequiredScore, row.ActualScore))
	}
	return result, nil
}

// statRow must be called with st.mu held.
func (r *reportRepo) statRow(code string, required, actual int) report.StatRow {
	row := report.StatRow{
		CompetencyCode: code,
		RequiredScore:  required,
		ActualScore:    actual,
	}
	if c, ok := r.st.competencies[code]; ok {
		row.CompetencyName = c.Name
		row.Description = c.Description
		row.CatalogRequiredScore = c.RequiredScore
	}
	return row
}
