// Package ledger exposes the per-employee competency ledger: the rows an
// employee is measured against, plus manual assignment and removal beyond
// what role provisioning granted.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/talentbase/competency-backend-go/internal/domain/employee"
	"github.com/talentbase/competency-backend-go/internal/domain/ledger"
	"github.com/talentbase/competency-backend-go/internal/domain/master/competency"
	"github.com/talentbase/competency-backend-go/internal/pkg/database"
)

type LedgerService interface {
	GetForEmployee(ctx context.Context, employeeNumber string) ([]ledger.RowResponse, error)
	Assign(ctx context.Context, employeeNumber string, req ledger.AssignCompetenciesRequest) (ledger.AssignResponse, error)
	Remove(ctx context.Context, employeeNumber string, req ledger.RemoveCompetenciesRequest) (ledger.RemoveResponse, error)
}

type ledgerServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	competencyRepo competency.CompetencyRepository
	ledgerRepo     ledger.LedgerRepository
	transactor     database.Transactor
}

func NewLedgerService(
	employeeRepo employee.EmployeeRepository,
	competencyRepo competency.CompetencyRepository,
	ledgerRepo ledger.LedgerRepository,
	transactor database.Transactor,
) LedgerService {
	return &ledgerServiceImpl{
		employeeRepo:   employeeRepo,
		competencyRepo: competencyRepo,
		ledgerRepo:     ledgerRepo,
		transactor:     transactor,
	}
}

func (s *ledgerServiceImpl) checkEmployee(ctx context.Context, number string) error {
	if _, err := s.employeeRepo.GetByNumber(ctx, number); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

func (s *ledgerServiceImpl) GetForEmployee(ctx context.Context, employeeNumber string) ([]ledger.RowResponse, error) {
	if err := s.checkEmployee(ctx, employeeNumber); err != nil {
		return nil, err
	}

	rows, err := s.ledgerRepo.ListDetailed(ctx, employeeNumber)
	if err != nil {
		return nil, err
	}

	responses := make([]ledger.RowResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, ledger.RowResponse{
			Code:          row.CompetencyCode,
			Name:          row.Name,
			Description:   row.Description,
			RequiredScore: row.RequiredScore,
			ActualScore:   row.ActualScore,
			Gap:           row.RequiredScore - row.ActualScore,
		})
	}
	return responses, nil
}

// Assign grants the employee extra competencies directly, outside role
// provisioning. Required scores come from the catalog; codes the employee
// already holds are skipped; codes the catalog does not know fail the call
// with the full missing list.
func (s *ledgerServiceImpl) Assign(ctx context.Context, employeeNumber string, req ledger.AssignCompetenciesRequest) (ledger.AssignResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.AssignResponse{}, err
	}
	if err := s.checkEmployee(ctx, employeeNumber); err != nil {
		return ledger.AssignResponse{}, err
	}

	existing, err := s.ledgerRepo.ListByEmployee(ctx, employeeNumber)
	if err != nil {
		return ledger.AssignResponse{}, err
	}
	held := make(map[string]struct{}, len(existing))
	for _, row := range existing {
		held[row.CompetencyCode] = struct{}{}
	}

	seen := make(map[string]struct{}, len(req.CompetencyCodes))
	var newCodes []string
	for _, code := range req.CompetencyCodes {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		if _, ok := held[code]; !ok {
			newCodes = append(newCodes, code)
		}
	}

	if len(newCodes) == 0 {
		return ledger.AssignResponse{AddedCodes: []string{}}, nil
	}

	competencies, err := s.competencyRepo.ListByCodes(ctx, newCodes)
	if err != nil {
		return ledger.AssignResponse{}, err
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
		return ledger.AssignResponse{}, &competency.MissingCodesError{Codes: missing}
	}

	rows := make([]ledger.EmployeeCompetency, 0, len(newCodes))
	for _, code := range newCodes {
		rows = append(rows, ledger.EmployeeCompetency{
			EmployeeNumber: employeeNumber,
			CompetencyCode: code,
			RequiredScore:  byCode[code].RequiredScore,
			ActualScore:    0,
		})
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.ledgerRepo.CreateBatch(ctx, rows)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ledger.AssignResponse{}, fmt.Errorf("competency already assigned: %w", err)
		}
		return ledger.AssignResponse{}, fmt.Errorf("failed to assign competencies: %w", err)
	}

	return ledger.AssignResponse{AddedCodes: newCodes}, nil
}

func (s *ledgerServiceImpl) Remove(ctx context.Context, employeeNumber string, req ledger.RemoveCompetenciesRequest) (ledger.RemoveResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.RemoveResponse{}, err
	}
	if err := s.checkEmployee(ctx, employeeNumber); err != nil {
		return ledger.RemoveResponse{}, err
	}

	// Removing codes the employee never held is not an error; the count
	// tells the caller what actually happened.
	removed, err := s.ledgerRepo.DeleteByEmployeeAndCodes(ctx, employeeNumber, req.CompetencyCodes)
	if err != nil {
		return ledger.RemoveResponse{}, err
	}

	return ledger.RemoveResponse{RemovedCount: removed}, nil
}
