package employee

import "time"

type Employee struct {
	EmployeeNumber        string
	EmployeeName          string
	JobCode               string
	ReportingEmployeeName string
	RoleCode              string
	DepartmentCode        string
	EvaluationStatus      bool
	EvaluationBy          *string
	LastEvaluatedDate     *time.Time
}

// Detail is an employee joined with its department and role names. When the
// join misses (dangling code), the names fall back to "Unknown Department" /
// "Unknown Role" instead of failing the lookup.
type Detail struct {
	Employee
	DepartmentName string
	RoleName       string
}
