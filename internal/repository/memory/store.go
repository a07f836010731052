// Package memory implements the repository interfaces over in-process maps,
// mirroring the pgx error contract (pgx.ErrNoRows, pgconn unique-violation
// errors) so services behave identically over either backend. It exists so
// the service suite runs without a PostgreSQL instance.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/talentbase/competency-backend-go/internal/domain/employee"
	"github.com/talentbase/competency-backend-go/internal/domain/ledger"
	"github.com/talentbase/competency-backend-go/internal/domain/master/competency"
	"github.com/talentbase/competency-backend-go/internal/domain/master/department"
	"github.com/talentbase/competency-backend-go/internal/domain/master/role"
	"github.com/talentbase/competency-backend-go/internal/domain/report"
	"github.com/talentbase/competency-backend-go/internal/domain/rolematrix"
	"github.com/talentbase/competency-backend-go/internal/pkg/database"
)

type state struct {
	mu           sync.Mutex
	departments  map[string]department.Department
	roles        map[string]role.Role
	competencies map[string]competency.Competency
	matrix       map[string]rolematrix.RoleCompetency  // keyed role|competency
	employees    map[string]employee.Employee
	ledger       map[string]ledger.EmployeeCompetency // keyed employee|competency
}

type Store struct {
	st *state
}

func NewStore() *Store {
	return &Store{st: &state{
		departments:  make(map[string]department.Department),
		roles:        make(map[string]role.Role),
		competencies: make(map[string]competency.Competency),
		matrix:       make(map[string]rolematrix.RoleCompetency),
		employees:    make(map[string]employee.Employee),
		ledger:       make(map[string]ledger.EmployeeCompetency),
	}}
}

func (s *Store) Departments() department.DepartmentRepository   { return &departmentRepo{st: s.st} }
func (s *Store) Roles() role.RoleRepository                     { return &roleRepo{st: s.st} }
func (s *Store) Competencies() competency.CompetencyRepository  { return &competencyRepo{st: s.st} }
func (s *Store) RoleCompetencies() rolematrix.RoleCompetencyRepository { return &matrixRepo{st: s.st} }
func (s *Store) Employees() employee.EmployeeRepository         { return &employeeRepo{st: s.st} }
func (s *Store) Ledger() ledger.LedgerRepository                { return &ledgerRepo{st: s.st} }
func (s *Store) Reports() report.ReportRepository               { return &reportRepo{st: s.st} }

// Transactor snapshots the whole store before fn and restores the snapshot
// when fn fails, giving the same all-or-nothing visibility the SQL
// transaction helper provides.
func (s *Store) Transactor() database.Transactor { return &memTransactor{st: s.st} }

type memTransactor struct {
	st *state
}

func (t *memTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := t.st.clone()
	if err := fn(ctx); err != nil {
		t.st.restore(snapshot)
		return err
	}
	return nil
}

type snapshot struct {
	departments  map[string]department.Department
	roles        map[string]role.Role
	competencies map[string]competency.Competency
	matrix       map[string]rolematrix.RoleCompetency
	employees    map[string]employee.Employee
	ledger       map[string]ledger.EmployeeCompetency
}

func (st *state) clone() snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()
	return snapshot{
		departments:  maps.Clone(st.departments),
		roles:        maps.Clone(st.roles),
		competencies: maps.Clone(st.competencies),
		matrix:       maps.Clone(st.matrix),
		employees:    maps.Clone(st.employees),
		ledger:       maps.Clone(st.ledger),
	}
}

func (st *state) restore(s snapshot) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.departments = s.departments
	st.roles = s.roles
	st.competencies = s.competencies
	st.matrix = s.matrix
	st.employees = s.employees
	st.ledger = s.ledger
}

// uniqueViolation mimics the error pgx surfaces for a violated unique
// constraint so the services' 23505 translation is exercised here too.
func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func pairKey(a, b string) string {
	return a + "|" + b
}
