// Package evaluation writes actual scores into employee ledgers and stamps
// the employee's evaluation metadata. It is the only writer of
// actual_score anywhere in the system.
package evaluation

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/talentbase/competency-backend-go/internal/domain/access"
	"github.com/talentbase/competency-backend-go/internal/domain/employee"
	"github.com/talentbase/competency-backend-go/internal/domain/evaluation"
	"github.com/talentbase/competency-backend-go/internal/domain/ledger"
	"github.com/talentbase/competency-backend-go/internal/pkg/database"
)

type EvaluationService interface {
	Submit(ctx context.Context, employeeNumber string, evaluator access.Identity, req evaluation.SubmitRequest) (evaluation.SubmitResponse, error)
	BulkSetStatus(ctx context.Context, req employee.BulkEvaluationStatusRequest) (evaluation.BulkStatusResponse, error)
}

type evaluationServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	ledgerRepo   ledger.LedgerRepository
	transactor   database.Transactor
	now          func() time.Time
}

func NewEvaluationService(
	employeeRepo employee.EmployeeRepository,
	ledgerRepo ledger.LedgerRepository,
	transactor database.Transactor,
) EvaluationService {
	return &evaluationServiceImpl{
		employeeRepo: employeeRepo,
		ledgerRepo:   ledgerRepo,
		transactor:   transactor,
		now:          time.Now,
	}
}

// Submit applies the evaluator's scores to the employee's ledger. Malformed
// entries are skipped, entries for competencies the employee does not hold
// are counted but never create rows, and the whole submission (score writes
// plus the evaluation stamp) commits or rolls back as one unit. The
// evaluator must resolve to a registered employee.
func (s *evaluationServiceImpl) Submit(ctx context.Context, employeeNumber string, evaluator access.Identity, req evaluation.SubmitRequest) (evaluation.SubmitResponse, error) {
	if err := req.Validate(); err != nil {
		return evaluation.SubmitResponse{}, err
	}

	if _, err := s.employeeRepo.GetByNumber(ctx, employeeNumber); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return evaluation.SubmitResponse{}, employee.ErrEmployeeNotFound
		}
		return evaluation.SubmitResponse{}, err
	}

	resp := evaluation.SubmitResponse{EmployeeNumber: employeeNumber}
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, entry := range req.Scores {
			if entry.CompetencyCode == nil || entry.ActualScore == nil {
				resp.Skipped++
				continue
			}
			matched, err := s.ledgerRepo.UpdateActualScore(ctx, employeeNumber, *entry.CompetencyCode, *entry.ActualScore)
			if err != nil {
				return err
			}
			if matched == 0 {
				resp.Unmatched++
				continue
			}
			resp.Updated++
		}

		evaluatorRecord, err := s.employeeRepo.GetByNumber(ctx, evaluator.EmployeeNumber)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.ErrEvaluatorNotFound
			}
			return err
		}

		return s.employeeRepo.SetEvaluation(ctx, employeeNumber, evaluatorRecord.EmployeeName, s.now())
	})
	if err != nil {
		return evaluation.SubmitResponse{}, err
	}

	return resp, nil
}

func (s *evaluationServiceImpl) BulkSetStatus(ctx context.Context, req employee.BulkEvaluationStatusRequest) (evaluation.BulkStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return evaluation.BulkStatusResponse{}, err
	}

	matched, err := s.employeeRepo.UpdateStatusByNumbers(ctx, req.EmployeeNumbers, req.Status)
	if err != nil {
		return evaluation.BulkStatusResponse{}, err
	}
	if matched == 0 {
		return evaluation.BulkStatusResponse{}, employee.ErrNoEmployeesMatched
	}

	return evaluation.BulkStatusResponse{MatchedCount: matched, Status: req.Status}, nil
}
