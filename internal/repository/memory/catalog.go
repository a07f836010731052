package memory

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/talentbase/competency-backend-go/internal/domain/master/competency"
	"github.com/talentbase/competency-backend-go/internal/domain/master/department"
	"github.com/talentbase/competency-backend-go/internal/domain/master/role"
)

type departmentRepo struct {
	st *state
}

func (r *departmentRepo) Create(_ context.Context, d department.Department) (department.Department, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.departments[d.Code]; exists {
		return department.Department{}, uniqueViolation("departments_pkey")
	}
	for _, existing := range r.st.departments {
		if existing.Name == d.Name {
			return department.Department{}, uniqueViolation("departments_name_key")
		}
	}
	r.st.departments[d.Code] = d
	return d, nil
}

func (r *departmentRepo) GetByCode(_ context.Context, code string) (department.Department, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	d, exists := r.st.departments[code]
	if !exists {
		return department.Department{}, pgx.ErrNoRows
	}
	return d, nil
}

func (r *departmentRepo) List(_ context.Context) ([]department.Department, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var result []department.Department
	for _, d := range r.st.departments {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *departmentRepo) Update(_ context.Context, req department.UpdateDepartmentRequest) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	d, exists := r.st.departments[req.Code]
	if !exists {
		return department.ErrDepartmentNotFound
	}
	for code, existing := range r.st.departments {
		if code == req.Code {
			continue
		}
		if code == req.NewCode || existing.Name == req.Name {
			return uniqueViolation("departments_name_key")
		}
	}
	delete(r.st.departments, req.Code)
	d.Code = req.NewCode
	d.Name = req.Name
	r.st.departments[d.Code] = d
	return nil
}

func (r *departmentRepo) Delete(_ context.Context, code string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.departments[code]; !exists {
		return department.ErrDepartmentNotFound
	}
	delete(r.st.departments, code)
	return nil
}

type roleRepo struct {
	st *state
}

func (r *roleRepo) Create(_ context.Context, rl role.Role) (role.Role, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.roles[rl.Code]; exists {
		return role.Role{}, uniqueViolation("roles_pkey")
	}
	for _, existing := range r.st.roles {
		if existing.Name == rl.Name {
			return role.Role{}, uniqueViolation("roles_name_key")
		}
	}
	r.st.roles[rl.Code] = rl
	return rl, nil
}

func (r *roleRepo) GetByCode(_ context.Context, code string) (role.Role, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	rl, exists := r.st.roles[code]
	if !exists {
		return role.Role{}, pgx.ErrNoRows
	}
	return rl, nil
}

func (r *roleRepo) List(_ context.Context) ([]role.Role, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var result []role.Role
	for _, rl := range r.st.roles {
		result = append(result, rl)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *roleRepo) Update(_ context.Context, req role.UpdateRoleRequest) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	rl, exists := r.st.roles[req.Code]
	if !exists {
		return role.ErrRoleNotFound
	}
	for code, existing := range r.st.roles {
		if code == req.Code {
			continue
		}
		if code == req.NewCode || existing.Name == req.Name {
			return uniqueViolation("roles_name_key")
		}
	}
	delete(r.st.roles, req.Code)
	rl.Code = req.NewCode
	rl.Name = req.Name
	r.st.roles[rl.Code] = rl
	return nil
}

func (r *roleRepo) Delete(_ context.Context, code string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.roles[code]; !exists {
		return role.ErrRoleNotFound
	}
	delete(r.st.roles, code)
	return nil
}

type competencyRepo struct {
	st *state
}

func (r *competencyRepo) Create(_ context.Context, c competency.Competency) (competency.Competency, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.competencies[c.Code]; exists {
		return competency.Competency{}, uniqueViolation("competencies_pkey")
	}
	r.st.competencies[c.Code] = c
	return c, nil
}

func (r *competencyRepo) GetByCode(_ context.Context, code string) (competency.Competency, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	c, exists := r.st.competencies[code]
	if !exists {
		return competency.Competency{}, pgx.ErrNoRows
	}
	return c, nil
}

func (r *competencyRepo) List(_ context.Context) ([]competency.Competency, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var result []competency.Competency
	for _, c := range r.st.competencies {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

func (r *competencyRepo) ListByCodes(_ context.Context, codes []string) ([]competency.Competency, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var result []competency.Competency
	for _, code := range codes {
		if c, exists := r.st.competencies[code]; exists {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *competencyRepo) Update(_ context.Context, req competency.UpdateCompetencyRequest) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	c, exists := r.st.competencies[req.Code]
	if !exists {
		return competency.ErrCompetencyNotFound
	}
	if req.NewCode != req.Code {
		if _, taken := r.st.competencies[req.NewCode]; taken {
			return uniqueViolation("competencies_pkey")
		}
	}
	delete(r.st.competencies, req.Code)
	c.Code = req.NewCode
	c.Name = req.Name
	c.Description = req.Description
	c.RequiredScore = req.RequiredScore
	r.st.competencies[c.Code] = c
	return nil
}

func (r *competencyRepo) Delete(_ context.Context, code string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.competencies[code]; !exists {
		return competency.ErrCompetencyNotFound
	}
	delete(r.st.competencies, code)
	return nil
}
