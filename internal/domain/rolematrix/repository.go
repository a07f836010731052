package rolematrix

import "context"

type RoleCompetencyRepository interface {
	ListByRole(ctx context.Context, roleCode string) ([]RoleCompetency, error)
	CreateBatch(ctx context.Context, rows []RoleCompetency) error
	DeleteByRoleAndCodes(ctx context.Context, roleCode string, competencyCodes []string) (int64, error)
	ExistsByRole(ctx context.Context, roleCode string) (bool, error)
	ExistsByCompetency(ctx context.Context, competencyCode string) (bool, error)
}
