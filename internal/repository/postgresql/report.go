package postgresql

import (
	"context"
	"fmt"

	"github.com/talentbase/competency-backend-go/internal/domain/report"
	"github.com/talentbase/competency-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// AllLedgerScores implements report.ReportRepository.
func (r *reportRepositoryImpl) AllLedgerScores(ctx context.Context) ([]report.LedgerScore, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT competency_code, required_score, actual_score
		FROM employee_competencies
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger scores: %w", err)
	}
	defer rows.Close()

	var result []report.LedgerScore
	for rows.Next() {
		var s report.LedgerScore
		if err := rows.Scan(&s.CompetencyCode, &s.RequiredScore, &s.ActualScore); err != nil {
			return nil, fmt.Errorf("failed to scan ledger score: %w", err)
		}
		result = append(result, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Details implements report.ReportRepository.
func (r *reportRepositoryImpl) Details(ctx context.Context) ([]report.DetailEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.employee_number, e.employee_name, c.code, c.name, c.description,
			ec.required_score, ec.actual_score
		FROM employee_competencies ec
		JOIN employees e ON e.employee_number = ec.employee_number
		JOIN competencies c ON c.code = ec.competency_code
		ORDER BY e.employee_number ASC, c.code ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee competency details: %w", err)
	}
	defer rows.Close()

	var result []report.DetailEntry
	for rows.Next() {
		var d report.DetailEntry
		if err := rows.Scan(
			&d.EmployeeNumber,
			&d.EmployeeName,
			&d.CompetencyCode,
			&d.CompetencyName,
			&d.CompetencyDescription,
			&d.RequiredScore,
			&d.ActualScore,
		); err != nil {
			return nil, fmt.Errorf("failed to scan detail entry: %w", err)
		}
		result = append(result, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// ScoresByCompetency implements report.ReportRepository.
func (r *reportRepositoryImpl) ScoresByCompetency(ctx context.Context, competencyCode string) ([]report.GapSourceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ec.employee_number, e.employee_name, ec.required_score, ec.actual_score
		FROM employee_competencies ec
		JOIN employees e ON e.employee_number = ec.employee_number
		WHERE ec.competency_code = $1
	`

	rows, err := q.Query(ctx, query, competencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get competency scores: %w", err)
	}
	defer rows.Close()

	var result []report.GapSourceRow
	for rows.Next() {
		var row report.GapSourceRow
		if err := rows.Scan(&row.EmployeeNumber, &row.EmployeeName, &row.RequiredScore, &row.ActualScore); err != nil {
			return nil, fmt.Errorf("failed to scan competency score: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

const statRowQuery = `
	SELECT c.code, c.name, c.description, c.required_score,
		ec.required_score, ec.actual_score
	FROM employee_competencies ec
	JOIN competencies c ON c.code = ec.competency_code
	JOIN employees e ON e.employee_number = ec.employee_number
`

func (r *reportRepositoryImpl) scanStatRows(ctx context.Context, query string, args ...interface{}) ([]report.StatRow, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get stat rows: %w", err)
	}
	defer rows.Close()

	var result []report.StatRow
	for rows.Next() {
		var row report.StatRow
		if err := rows.Scan(
			&row.CompetencyCode,
			&row.CompetencyName,
			&row.Description,
			&row.CatalogRequiredScore,
			&row.RequiredScore,
			&row.ActualScore,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stat row: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// ScoresByDepartment implements report.ReportRepository.
func (r *reportRepositoryImpl) ScoresByDepartment(ctx context.Context, departmentCode string) ([]report.StatRow, error) {
	return r.scanStatRows(ctx, statRowQuery+` WHERE e.department_code = $1`, departmentCode)
}

// ScoresAll implements report.ReportRepository.
func (r *reportRepositoryImpl) ScoresAll(ctx context.Context) ([]report.StatRow, error) {
	return r.scanStatRows(ctx, statRowQuery)
}
