package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/talentbase/competency-backend-go/internal/domain/ledger"
	"github.com/talentbase/competency-backend-go/internal/pkg/database"
)

type ledgerRepositoryImpl struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) ledger.LedgerRepository {
	return &ledgerRepositoryImpl{db: db}
}

// ListByEmployee implements ledger.LedgerRepository.
func (r *ledgerRepositoryImpl) ListByEmployee(ctx context.Context, employeeNumber string) ([]ledger.EmployeeCompetency, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_number, competency_code, required_score, actual_score
		FROM employee_competencies
		WHERE employee_number = $1
		ORDER BY competency_code ASC
	`

	rows, err := q.Query(ctx, query, employeeNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee competencies: %w", err)
	}
	defer rows.Close()

	var result []ledger.EmployeeCompetency
	for rows.Next() {
		var ec ledger.EmployeeCompetency
		if err := rows.Scan(&ec.ID, &ec.EmployeeNumber, &ec.CompetencyCode, &ec.RequiredScore, &ec.ActualScore); err != nil {
			return nil, fmt.Errorf("failed to scan employee competency: %w", err)
		}
		result = append(result, ec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// ListDetailed implements ledger.LedgerRepository.
func (r *ledgerRepositoryImpl) ListDetailed(ctx context.Context, employeeNumber string) ([]ledger.DetailRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ec.competency_code, c.name, c.description, ec.required_score, ec.actual_score
		FROM employee_competencies ec
		JOIN competencies c ON c.code = ec.competency_code
		WHERE ec.employee_number = $1
		ORDER BY ec.competency_code ASC
	`

	rows, err := q.Query(ctx, query, employeeNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee competency details: %w", err)
	}
	defer rows.Close()

	var result []ledger.DetailRow
	for rows.Next() {
		var row ledger.DetailRow
		if err := rows.Scan(&row.CompetencyCode, &row.Name, &row.Description, &row.RequiredScore, &row.ActualScore); err != nil {
			return nil, fmt.Errorf("failed to scan employee competency detail: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// CreateBatch implements ledger.LedgerRepository.
func (r *ledgerRepositoryImpl) CreateBatch(ctx context.Context, rows []ledger.EmployeeCompetency) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_competencies (id, employee_number, competency_code, required_score, actual_score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`

	for _, row := range rows {
		id := row.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := q.Exec(ctx, query, id, row.EmployeeNumber, row.CompetencyCode, row.RequiredScore, row.ActualScore); err != nil {
			return fmt.Errorf("failed to create employee competency %s/%s: %w", row.EmployeeNumber, row.CompetencyCode, err)
		}
	}

	return nil
}

// DeleteByEmployee implements ledger.LedgerRepository.
func (r *ledgerRepositoryImpl) DeleteByEmployee(ctx context.Context, employeeNumber string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employee_competencies WHERE employee_number = $1`

	if _, err := q.Exec(ctx, query, employeeNumber); err != nil {
		return fmt.Errorf("failed to delete employee competencies: %w", err)
	}

	return nil
}

// DeleteByEmployeeAndCodes implements ledger.LedgerRepository.
func (r *ledgerRepositoryImpl) DeleteByEmployeeAndCodes(ctx context.Context, employeeNumber string, competencyCodes []string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM employee_competencies
		WHERE employee_number = $1 AND competency_code = ANY($2)
	`

	commandTag, err := q.Exec(ctx, query, employeeNumber, competencyCodes)
	if err != nil {
		return 0, fmt.Errorf("failed to delete employee competencies: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

// UpdateActualScore implements ledger.LedgerRepository. Returns the number
// of rows matched; zero means the pair has no ledger row and the caller
// decides whether that is an error.
func (r *ledgerRepositoryImpl) UpdateActualScore(ctx context.Context, employeeNumber string, competencyCode string, actualScore int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_competencies
		SET actual_score = $1, updated_at = NOW()
		WHERE employee_number = $2 AND competency_code = $3
	`

	commandTag, err := q.Exec(ctx, query, actualScore, employeeNumber, competencyCode)
	if err != nil {
		return 0, fmt.Errorf("failed to update actual score: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

// ExistsByCompetency implements ledger.LedgerRepository.
func (r *ledgerRepositoryImpl) ExistsByCompetency(ctx context.Context, competencyCode string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM employee_competencies WHERE competency_code = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, competencyCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check ledger references: %w", err)
	}

	return exists, nil
}
