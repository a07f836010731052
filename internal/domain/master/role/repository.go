package role

import "context"

type RoleRepository interface {
	Create(ctx context.Context, role Role) (Role, error)
	GetByCode(ctx context.Context, code string) (Role, error)
	List(ctx context.Context) ([]Role, error)
	Update(ctx context.Context, req UpdateRoleRequest) error
	Delete(ctx context.Context, code string) error
}
