package report

import "context"

// LedgerScore is one ledger row reduced to what the gap histogram needs.
type LedgerScore struct {
	CompetencyCode string
	RequiredScore  int
	ActualScore    int
}

// GapSourceRow is a ledger row joined with the owning employee's name.
type GapSourceRow struct {
	EmployeeNumber string
	EmployeeName   string
	RequiredScore  int
	ActualScore    int
}

// StatRow feeds the performance statistics: a ledger row joined with its
// competency catalog entry. CatalogRequiredScore is the catalog default,
// RequiredScore the per-row snapshot fulfillment is measured against.
type StatRow struct {
	CompetencyCode       string
	CompetencyName       string
	Description          string
	CatalogRequiredScore int
	RequiredScore        int
	ActualScore          int
}

// ReportRepository returns flat joined rows; all derived metrics (buckets,
// averages, fulfillment, ranks) are computed in the report service.
type ReportRepository interface {
	AllLedgerScores(ctx context.Context) ([]LedgerScore, error)
	Details(ctx context.Context) ([]DetailEntry, error)
	ScoresByCompetency(ctx context.Context, competencyCode string) ([]GapSourceRow, error)
	ScoresByDepartment(ctx context.Context, departmentCode string) ([]StatRow, error)
	ScoresAll(ctx context.Context) ([]StatRow, error)
}
