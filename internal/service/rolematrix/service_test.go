package rolematrix

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbase/competency-backend-go/internal/domain/master/competency"
	"github.com/talentbase/competency-backend-go/internal/domain/master/role"
	"github.com/talentbase/competency-backend-go/internal/domain/rolematrix"
	"github.com/talentbase/competency-backend-go/internal/repository/memory"
)

func newTestService(t *testing.T) (RoleMatrixService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewRoleMatrixService(store.Roles(), store.Competencies(), store.RoleCompetencies(), store.Transactor())
	return svc, store
}

func seedCatalog(t *testing.T, store *memory.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Roles().Create(ctx, role.Role{Code: "DEV", Name: "Developer"})
	require.NoError(t, err)

	for _, c := range []competency.Competency{
		{Code: "GO", Name: "Go", RequiredScore: 4},
		{Code: "SQL", Name: "SQL", RequiredScore: 3},
		{Code: "K8S", Name: "Kubernetes", RequiredScore: 2},
	} {
		_, err := store.Competencies().Create(ctx, c)
		require.NoError(t, err)
	}
}

func TestAssignCopiesCatalogScore(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedCatalog(t, store)

	result, err := svc.Assign(ctx, "DEV", rolematrix.AssignCompetenciesRequest{
		CompetencyCodes: []string{"GO", "SQL"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"GO", "SQL"}, result.AddedCodes)

	rows, err := svc.ListByRole(ctx, "DEV")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 4, rows[0].RequiredScore) // GO
	assert.Equal(t, 3, rows[1].RequiredScore) // SQL
}

func TestAssignSkipsAlreadyAssigned(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedCatalog(t, store)

	_, err := svc.Assign(ctx, "DEV", rolematrix.AssignCompetenciesRequest{CompetencyCodes: []string{"GO"}})
	require.NoError(t, err)

	result, err := svc.Assign(ctx, "DEV", rolematrix.AssignCompetenciesRequest{CompetencyCodes: []string{"GO", "SQL"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"SQL"}, result.AddedCodes)

	// Re-sending the identical request adds nothing and does not error.
	result, err = svc.Assign(ctx, "DEV", rolematrix.AssignCompetenciesRequest{CompetencyCodes: []string{"GO", "SQL"}})
	require.NoError(t, err)
	assert.Empty(t, result.AddedCodes)
}

func TestAssignReportsAllMissingCodes(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedCatalog(t, store)

	_, err := svc.Assign(ctx, "DEV", rolematrix.AssignCompetenciesRequest{
		CompetencyCodes: []string{"GO", "RUST", "HASKELL"},
	})
	var missingErr *competency.MissingCodesError
	require.ErrorAs(t, err, &missingErr)
	assert.ElementsMatch(t, []string{"RUST", "HASKELL"}, missingErr.Codes)

	// Nothing was persisted, GO included.
	rows, err := svc.ListByRole(ctx, "DEV")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAssignUnknownRole(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedCatalog(t, store)

	_, err := svc.Assign(ctx, "GHOST", rolematrix.AssignCompetenciesRequest{CompetencyCodes: []string{"GO"}})
	assert.ErrorIs(t, err, role.ErrRoleNotFound)

	_, err = svc.ListByRole(ctx, "GHOST")
	assert.ErrorIs(t, err, role.ErrRoleNotFound)
}

func TestUnassign(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedCatalog(t, store)

	_, err := svc.Assign(ctx, "DEV", rolematrix.AssignCompetenciesRequest{CompetencyCodes: []string{"GO", "SQL"}})
	require.NoError(t, err)

	result, err := svc.Unassign(ctx, "DEV", rolematrix.UnassignCompetenciesRequest{CompetencyCodes: []string{"GO"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.RemovedCount)
	assert.Equal(t, []string{"GO"}, result.RemovedCodes)

	_, err = svc.Unassign(ctx, "DEV", rolematrix.UnassignCompetenciesRequest{CompetencyCodes: []string{"GO"}})
	assert.ErrorIs(t, err, rolematrix.ErrNoAssignmentsMatched)
}
