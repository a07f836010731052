package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/talentbase/competency-backend-go/internal/domain/ledger"
)

type ledgerRepo struct {
	st *state
}

func (r *ledgerRepo) ListByEmployee(_ context.Context, employeeNumber string) ([]ledger.EmployeeCompetency, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var result []ledger.EmployeeCompetency
	for _, row := range r.st.ledger {
		if row.EmployeeNumber == employeeNumber {
			result = append(result, row)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CompetencyCode < result[j].CompetencyCode })
	return result, nil
}

func (r *ledgerRepo) ListDetailed(_ context.Context, employeeNumber string) ([]ledger.DetailRow, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var result []ledger.DetailRow
	for _, row := range r.st.ledger {
		if row.EmployeeNumber != employeeNumber {
			continue
		}
		detail := ledger.DetailRow{
			CompetencyCode: row.CompetencyCode,
			RequiredScore:  row.RequiredScore,
			ActualScore:    row.ActualScore,
		}
		if c, ok := r.st.competencies[row.CompetencyCode]; ok {
			detail.Name = c.Name
			detail.Description = c.Description
		}
		result = append(result, detail)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CompetencyCode < result[j].CompetencyCode })
	return result, nil
}

func (r *ledgerRepo) CreateBatch(_ context.Context, rows []ledger.EmployeeCompetency) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, row := range rows {
		key := pairKey(row.EmployeeNumber, row.CompetencyCode)
		if _, exists := r.st.ledger[key]; exists {
			return uniqueViolation("employee_competencies_employee_number_competency_code_key")
		}
		if row.ID == "" {
			row.ID = uuid.NewString()
		}
		r.st.ledger[key] = row
	}
	return nil
}

func (r *ledgerRepo) DeleteByEmployee(_ context.Context, employeeNumber string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for key, row := range r.st.ledger {
		if row.EmployeeNumber == employeeNumber {
			delete(r.st.ledger, key)
		}
	}
	return nil
}

func (r *ledgerRepo) DeleteByEmployeeAndCodes(_ context.Context, employeeNumber string, competencyCodes []string) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var deleted int64
	for _, code := range competencyCodes {
		key := pairKey(employeeNumber, code)
		if _, exists := r.st.ledger[key]; exists {
			delete(r.st.ledger, key)
			deleted++
		}
	}
	return deleted, nil
}

func (r *ledgerRepo) UpdateActualScore(_ context.Context, employeeNumber string, competencyCode string, actualScore int) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	key := pairKey(employeeNumber, competencyCode)
	row, exists := r.st.ledger[key]
	if !exists {
		return 0, nil
	}
	row.ActualScore = actualScore
	r.st.ledger[key] = row
	return 1, nil
}

func (r *ledgerRepo) ExistsByCompetency(_ context.Context, competencyCode string) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, row := range r.st.ledger {
		if row.CompetencyCode == competencyCode {
			return true, nil
		}
	}
	return false, nil
}
