package postgresql

import (
	"context"
	"fmt"

	"github.com/talentbase/competency-backend-go/internal/domain/rolematrix"
	"github.com/talentbase/competency-backend-go/internal/pkg/database"
)

type roleCompetencyRepositoryImpl struct {
	db *database.DB
}

func NewRoleCompetencyRepository(db *database.DB) rolematrix.RoleCompetencyRepository {
	return &roleCompetencyRepositoryImpl{db: db}
}

// ListByRole implements rolematrix.RoleCompetencyRepository.
func (r *roleCompetencyRepositoryImpl) ListByRole(ctx context.Context, roleCode string) ([]rolematrix.RoleCompetency, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT role_code, competency_code, required_score
		FROM role_competencies
		WHERE role_code = $1
		ORDER BY competency_code ASC
	`

	rows, err := q.Query(ctx, query, roleCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get role competencies: %w", err)
	}
	defer rows.Close()

	var assignments []rolematrix.RoleCompetency
	for rows.Next() {
		var rc rolematrix.RoleCompetency
		if err := rows.Scan(&rc.RoleCode, &rc.CompetencyCode, &rc.RequiredScore); err != nil {
			return nil, fmt.Errorf("failed to scan role competency: %w", err)
		}
		assignments = append(assignments, rc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return assignments, nil
}

// CreateBatch implements rolematrix.RoleCompetencyRepository.
func (r *roleCompetencyRepositoryImpl) CreateBatch(ctx context.Context, rcs []rolematrix.RoleCompetency) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO role_competencies (role_code, competency_code, required_score, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`

	for _, rc := range rcs {
		if _, err := q.Exec(ctx, query, rc.RoleCode, rc.CompetencyCode, rc.RequiredScore); err != nil {
			return fmt.Errorf("failed to create role competency %s/%s: %w", rc.RoleCode, rc.CompetencyCode, err)
		}
	}

	return nil
}

// DeleteByRoleAndCodes implements rolematrix.RoleCompetencyRepository.
func (r *roleCompetencyRepositoryImpl) DeleteByRoleAndCodes(ctx context.Context, roleCode string, competencyCodes []string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM role_competencies
		WHERE role_code = $1 AND competency_code = ANY($2)
	`

	commandTag, err := q.Exec(ctx, query, roleCode, competencyCodes)
	if err != nil {
		return 0, fmt.Errorf("failed to delete role competencies: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

// ExistsByRole implements rolematrix.RoleCompetencyRepository.
func (r *roleCompetencyRepositoryImpl) ExistsByRole(ctx context.Context, roleCode string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM role_competencies WHERE role_code = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, roleCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check role competencies: %w", err)
	}

	return exists, nil
}

// ExistsByCompetency implements rolematrix.RoleCompetencyRepository.
func (r *roleCompetencyRepositoryImpl) ExistsByCompetency(ctx context.Context, competencyCode string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM role_competencies WHERE competency_code = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, competencyCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check competency assignments: %w", err)
	}

	return exists, nil
}
