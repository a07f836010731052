package rolematrix

// RoleCompetency is one row of the role-competency matrix: the authoritative
// required score a role demands for a competency. Employee ledgers copy this
// value at provisioning time; later matrix edits never flow back into them.
type RoleCompetency struct {
	RoleCode       string
	CompetencyCode string
	RequiredScore  int
}
