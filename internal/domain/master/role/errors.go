package role

import "errors"

var (
	ErrRoleNotFound = errors.New("role not found")
	ErrRoleExists   = errors.New("role with this code or name already exists")
	ErrRoleInUse    = errors.New("role still referenced by employees or competency assignments")
)
