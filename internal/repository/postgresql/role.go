package postgresql

import (
	"context"
	"fmt"

	"github.com/talentbase/competency-backend-go/internal/domain/master/role"
	"github.com/talentbase/competency-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

// Create implements role.RoleRepository.
func (r *roleRepositoryImpl) Create(ctx context.Context, rl role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roles (role_code, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING role_code, name
	`

	var result role.Role
	err := q.QueryRow(ctx, query, rl.Code, rl.Name).Scan(
		&result.Code,
		&result.Name,
	)

	if err != nil {
		return role.Role{}, fmt.Errorf("failed to create role: %w", err)
	}

	return result, nil
}

// GetByCode implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByCode(ctx context.Context, code string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT role_code, name
		FROM roles
		WHERE role_code = $1
	`

	var result role.Role
	err := q.QueryRow(ctx, query, code).Scan(
		&result.Code,
		&result.Name,
	)

	if err != nil {
		return role.Role{}, err
	}

	return result, nil
}

// List implements role.RoleRepository.
func (r *roleRepositoryImpl) List(ctx context.Context) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT role_code, name
		FROM roles
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		var rl role.Role
		if err := rows.Scan(&rl.Code, &rl.Name); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, rl)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

// Update implements role.RoleRepository.
func (r *roleRepositoryImpl) Update(ctx context.Context, req role.UpdateRoleRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE roles
		SET role_code = $1, name = $2, updated_at = NOW()
		WHERE role_code = $3
	`

	commandTag, err := q.Exec(ctx, query, req.NewCode, req.Name, req.Code)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}

	return nil
}

// Delete implements role.RoleRepository.
func (r *roleRepositoryImpl) Delete(ctx context.Context, code string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM roles WHERE role_code = $1`

	commandTag, err := q.Exec(ctx, query, code)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}

	return nil
}
