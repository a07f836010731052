// Package rolematrix manages which competencies a role demands and at what
// score. The matrix is the template new employees are provisioned from; it
// never retroactively touches ledgers that were already provisioned.
package rolematrix

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentbase/competency-backend-go/internal/domain/master/competency"
	"github.com/talentbase/competency-backend-go/internal/domain/master/role"
	"github.com/talentbase/competency-backend-go/internal/domain/rolematrix"
	"github.com/talentbase/competency-backend-go/internal/pkg/database"
)

type RoleMatrixService interface {
	ListByRole(ctx context.Context, roleCode string) ([]rolematrix.RoleCompetencyResponse, error)
	Assign(ctx context.Context, roleCode string, req rolematrix.AssignCompetenciesRequest) (rolematrix.AssignCompetenciesResponse, error)
	Unassign(ctx context.Context, roleCode string, req rolematrix.UnassignCompetenciesRequest) (rolematrix.UnassignCompetenciesResponse, error)
}

type roleMatrixServiceImpl struct {
	roleRepo       role.RoleRepository
	competencyRepo competency.CompetencyRepository
	matrixRepo     rolematrix.RoleCompetencyRepository
	transactor     database.Transactor
}

func NewRoleMatrixService(
	roleRepo role.RoleRepository,
	competencyRepo competency.CompetencyRepository,
	matrixRepo rolematrix.RoleCompetencyRepository,
	transactor database.Transactor,
) RoleMatrixService {
	return &roleMatrixServiceImpl{
		roleRepo:       roleRepo,
		competencyRepo: competencyRepo,
		matrixRepo:     matrixRepo,
		transactor:     transactor,
	}
}

func (s *roleMatrixServiceImpl) ListByRole(ctx context.Context, roleCode string) ([]rolematrix.RoleCompetencyResponse, error) {
	if _, err := s.roleRepo.GetByCode(ctx, roleCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, role.ErrRoleNotFound
		}
		return nil, err
	}

	rows, err := s.matrixRepo.ListByRole(ctx, roleCode)
	if err != nil {
		return nil, err
	}

	responses := make([]rolematrix.RoleCompetencyResponse, 0, len(rows))
	for _, rc := range rows {
		responses = append(responses, rolematrix.RoleCompetencyResponse{
			RoleCode:       rc.RoleCode,
			CompetencyCode: rc.CompetencyCode,
			RequiredScore:  rc.RequiredScore,
		})
	}
	return responses, nil
}

// Assign adds the requested competencies to the role's matrix. Codes already
// assigned are skipped, so re-sending the same request is a no-op; codes
// absent from the catalog fail the whole call with the full missing list.
func (s *roleMatrixServiceImpl) Assign(ctx context.Context, roleCode string, req rolematrix.AssignCompetenciesRequest) (rolematrix.AssignCompetenciesResponse, error) {
	if err := req.Validate(); err != nil {
		return rolematrix.AssignCompetenciesResponse{}, err
	}

	if _, err := s.roleRepo.GetByCode(ctx, roleCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rolematrix.AssignCompetenciesResponse{}, role.ErrRoleNotFound
		}
		return rolematrix.AssignCompetenciesResponse{}, err
	}

	existing, err := s.matrixRepo.ListByRole(ctx, roleCode)
	if err != nil {
		return rolematrix.AssignCompetenciesResponse{}, err
	}
	assigned := make(map[string]struct{}, len(existing))
	for _, rc := range existing {
		assigned[rc.CompetencyCode] = struct{}{}
	}

	seen := make(map[string]struct{}, len(req.CompetencyCodes))
	var newCodes []string
	for _, code := range req.CompetencyCodes {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		if _, ok := assigned[code]; !ok {
			newCodes = append(newCodes, code)
		}
	}

	if len(newCodes) == 0 {
		return rolematrix.AssignCompetenciesResponse{RoleCode: roleCode, AddedCodes: []string{}}, nil
	}

	competencies, err := s.competencyRepo.ListByCodes(ctx, newCodes)
	if err != nil {
		return rolematrix.AssignCompetenciesResponse{}, err
	}
	byCode := make(map[string]competency.Competency, len(competencies))
	for _, c := range competencies {
		byCode[c.Code] = c
	}

	var missing []string
	for _, code := range newCodes {
		if _, ok := byCode[code]; !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		return rolematrix.AssignCompetenciesResponse{}, &competency.MissingCodesError{Codes: missing}
	}

	rows := make([]rolematrix.RoleCompetency, 0, len(newCodes))
	for _, code := range newCodes {
		rows = append(rows, rolematrix.RoleCompetency{
			RoleCode:       roleCode,
			CompetencyCode: code,
			RequiredScore:  byCode[code].RequiredScore,
		})
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.matrixRepo.CreateBatch(ctx, rows)
	})
	if err != nil {
		return rolematrix.AssignCompetenciesResponse{}, fmt.Errorf("failed to assign competencies: %w", err)
	}

	return rolematrix.AssignCompetenciesResponse{RoleCode: roleCode, AddedCodes: newCodes}, nil
}

func (s *roleMatrixServiceImpl) Unassign(ctx context.Context, roleCode string, req rolematrix.UnassignCompetenciesRequest) (rolematrix.UnassignCompetenciesResponse, error) {
	if err := req.Validate(); err != nil {
		return rolematrix.UnassignCompetenciesResponse{}, err
	}

	if _, err := s.roleRepo.GetByCode(ctx, roleCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rolematrix.UnassignCompetenciesResponse{}, role.ErrRoleNotFound
		}
		return rolematrix.UnassignCompetenciesResponse{}, err
	}

	removed, err := s.matrixRepo.DeleteByRoleAndCodes(ctx, roleCode, req.CompetencyCodes)
	if err != nil {
		return rolematrix.UnassignCompetenciesResponse{}, err
	}
	if removed == 0 {
		return rolematrix.UnassignCompetenciesResponse{}, rolematrix.ErrNoAssignmentsMatched
	}

	return rolematrix.UnassignCompetenciesResponse{
		RoleCode:     roleCode,
		RemovedCodes: req.CompetencyCodes,
		RemovedCount: removed,
	}, nil
}
