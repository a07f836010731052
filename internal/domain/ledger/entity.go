package ledger

// EmployeeCompetency is the central fact row: one per (employee, competency)
// pair. RequiredScore is a point-in-time snapshot taken at provisioning or
// assignment; ActualScore is written only by the evaluation workflow.
type EmployeeCompetency struct {
	ID             string
	EmployeeNumber string
	CompetencyCode string
	RequiredScore  int
	ActualScore    int
}

// DetailRow is a ledger row joined with its competency catalog entry.
type DetailRow struct {
	CompetencyCode string
	Name           string
	Description    string
	RequiredScore  int
	ActualScore    int
}
