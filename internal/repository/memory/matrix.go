package memory

import (
	"context"
	"sort"

	"github.com/talentbase/competency-backend-go/internal/domain/rolematrix"
)

type matrixRepo struct {
	st *state
}

func (r *matrixRepo) ListByRole(_ context.Context, roleCode string) ([]rolematrix.RoleCompetency, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var result []rolematrix.RoleCompetency
	for _, rc := range r.st.matrix {
		if rc.RoleCode == roleCode {
			result = append(result, rc)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CompetencyCode < result[j].CompetencyCode })
	return result, nil
}

func (r *matrixRepo) CreateBatch(_ context.Context, rows []rolematrix.RoleCompetency) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, rc := range rows {
		key := pairKey(rc.RoleCode, rc.CompetencyCode)
		if _, exists := r.st.matrix[key]; exists {
			return uniqueViolation("role_competencies_role_code_competency_code_key")
		}
		r.st.matrix[key] = rc
	}
	return nil
}

func (r *matrixRepo) DeleteByRoleAndCodes(_ context.Context, roleCode string, competencyCodes []string) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var deleted int64
	for _, code := range competencyCodes {
		key := pairKey(roleCode, code)
		if _, exists := r.st.matrix[key]; exists {
			delete(r.st.matrix, key)
			deleted++
		}
	}
	return deleted, nil
}

func (r *matrixRepo) ExistsByRole(_ context.Context, roleCode string) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, rc := range r.st.matrix {
		if rc.RoleCode == roleCode {
			return true, nil
		}
	}
	return false, nil
}

func (r *matrixRepo) ExistsByCompetency(_ context.Context, competencyCode string) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, rc := range r.st.matrix {
		if rc.CompetencyCode == competencyCode {
			return true, nil
		}
	}
	return false, nil
}
