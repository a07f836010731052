package access

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"
)

// Role is the flat capability label carried in the verified token. The core
// treats it as an opaque string matched against per-operation allow-lists;
// there is no hierarchy or policy engine behind it.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleHOD      Role = "HOD"
	RoleEmployee Role = "EMPLOYEE"
)

var (
	ErrInvalidToken     = errors.New("invalid or missing token")
	ErrInvalidClaims    = errors.New("token is missing identity claims")
	ErrForbidden        = errors.New("role not permitted for this operation")
	ErrUnauthorizedRole = errors.New("unknown role")
)

// Identity is the verified (identity, role, department) triple supplied by
// the external authentication collaborator with every request.
type Identity struct {
	EmployeeNumber string
	Role           Role
	DepartmentCode string
}

// Elevated reports whether the identity may see data across departments.
func (i Identity) Elevated() bool {
	return i.Role == RoleHR || i.Role == RoleAdmin
}

// FromContext extracts the caller identity from the verified JWT claims.
func FromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Identity{}, ErrInvalidClaims
	}
	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return Identity{}, ErrInvalidClaims
	}
	// department_code may legitimately be absent for ADMIN tokens.
	departmentCode, _ := claims["department_code"].(string)

	return Identity{
		EmployeeNumber: sub,
		Role:           Role(roleStr),
		DepartmentCode: departmentCode,
	}, nil
}
