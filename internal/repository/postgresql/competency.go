package postgresql

import (
	"context"
	"fmt"

	"github.com/talentbase/competency-backend-go/internal/domain/master/competency"
	"github.com/talentbase/competency-backend-go/internal/pkg/database"
)

type competencyRepositoryImpl struct {
	db *database.DB
}

func NewCompetencyRepository(db *database.DB) competency.CompetencyRepository {
	return &competencyRepositoryImpl{db: db}
}

// Create implements competency.CompetencyRepository.
func (r *competencyRepositoryImpl) Create(ctx context.Context, c competency.Competency) (competency.Competency, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO competencies (code, name, description, required_score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING code, name, description, required_score
	`

	var result competency.Competency
	err := q.QueryRow(ctx, query, c.Code, c.Name, c.Description, c.RequiredScore).Scan(
		&result.Code,
		&result.Name,
		&result.Description,
		&result.RequiredScore,
	)

	if err != nil {
		return competency.Competency{}, fmt.Errorf("failed to create competency: %w", err)
	}

	return result, nil
}

// GetByCode implements competency.CompetencyRepository.
func (r *competencyRepositoryImpl) GetByCode(ctx context.Context, code string) (competency.Competency, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT code, name, description, required_score
		FROM competencies
		WHERE code = $1
	`

	var result competency.Competency
	err := q.QueryRow(ctx, query, code).Scan(
		&result.Code,
		&result.Name,
		&result.Description,
		&result.RequiredScore,
	)

	if err != nil {
		return competency.Competency{}, err
	}

	return result, nil
}

// List implements competency.CompetencyRepository.
func (r *competencyRepositoryImpl) List(ctx context.Context) ([]competency.Competency, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT code, name, description, required_score
		FROM competencies
		ORDER BY code ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get competencies: %w", err)
	}
	defer rows.Close()

	var competencies []competency.Competency
	for rows.Next() {
		var c competency.Competency
		if err := rows.Scan(&c.Code, &c.Name, &c.Description, &c.RequiredScore); err != nil {
			return nil, fmt.Errorf("failed to scan competency: %w", err)
		}
		competencies = append(competencies, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return competencies, nil
}

// ListByCodes implements competency.CompetencyRepository.
func (r *competencyRepositoryImpl) ListByCodes(ctx context.Context, codes []string) ([]competency.Competency, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT code, name, description, required_score
		FROM competencies
		WHERE code = ANY($1)
	`

	rows, err := q.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to get competencies by codes: %w", err)
	}
	defer rows.Close()

	var competencies []competency.Competency
	for rows.Next() {
		var c competency.Competency
		if err := rows.Scan(&c.Code, &c.Name, &c.Description, &c.RequiredScore); err != nil {
			return nil, fmt.Errorf("failed to scan competency: %w", err)
		}
		competencies = append(competencies, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return competencies, nil
}

// Update implements competency.CompetencyRepository.
func (r *competencyRepositoryImpl) Update(ctx context.Context, req competency.UpdateCompetencyRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE competencies
		SET code = $1, name = $2, description = $3, required_score = $4, updated_at = NOW()
		WHERE code = $5
	`

	commandTag, err := q.Exec(ctx, query, req.NewCode, req.Name, req.Description, req.RequiredScore, req.Code)
	if err != nil {
		return fmt.Errorf("failed to update competency: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return competency.ErrCompetencyNotFound
	}

	return nil
}

// Delete implements competency.CompetencyRepository.
func (r *competencyRepositoryImpl) Delete(ctx context.Context, code string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM competencies WHERE code = $1`

	commandTag, err := q.Exec(ctx, query, code)
	if err != nil {
		return fmt.Errorf("failed to delete competency: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return competency.ErrCompetencyNotFound
	}

	return nil
}
