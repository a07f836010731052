package ledger

import "context"

type LedgerRepository interface {
	ListByEmployee(ctx context.Context, employeeNumber string) ([]EmployeeCompetency, error)
	ListDetailed(ctx context.Context, employeeNumber string) ([]DetailRow, error)
	CreateBatch(ctx context.Context, rows []EmployeeCompetency) error
	DeleteByEmployee(ctx context.Context, employeeNumber string) error
	DeleteByEmployeeAndCodes(ctx context.Context, employeeNumber string, competencyCodes []string) (int64, error)
	UpdateActualScore(ctx context.Context, employeeNumber string, competencyCode string, actualScore int) (int64, error)
	ExistsByCompetency(ctx context.Context, competencyCode string) (bool, error)
}
