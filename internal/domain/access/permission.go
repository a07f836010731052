package access

// Permission names one protected operation of the backend. Allow-lists are
// stored as data so they stay auditable and testable apart from HTTP.
type Permission string

const (
	PermissionCatalogManage     Permission = "catalog.manage"
	PermissionMatrixManage      Permission = "matrix.manage"
	PermissionEmployeeManage    Permission = "employee.manage"
	PermissionEmployeeList      Permission = "employee.list"
	PermissionLedgerManage      Permission = "ledger.manage"
	PermissionEvaluationSubmit  Permission = "evaluation.submit"
	PermissionEvaluationBulk    Permission = "evaluation.bulk_status"
	PermissionReportGap         Permission = "report.gap"
	PermissionReportDetails     Permission = "report.details"
	PermissionReportPerformance Permission = "report.performance"
)

// OperationRoles maps each protected operation to its allowed role set.
var OperationRoles = map[Permission][]Role{
	PermissionCatalogManage:     {RoleHR, RoleAdmin},
	PermissionMatrixManage:      {RoleHR},
	PermissionEmployeeManage:    {RoleHR, RoleAdmin},
	PermissionEmployeeList:      {RoleHR, RoleAdmin, RoleHOD},
	PermissionLedgerManage:      {RoleHR},
	PermissionEvaluationSubmit:  {RoleAdmin, RoleHOD},
	PermissionEvaluationBulk:    {RoleHR},
	PermissionReportGap:         {RoleHR},
	PermissionReportDetails:     {RoleHR, RoleHOD},
	PermissionReportPerformance: {RoleHR, RoleAdmin, RoleHOD},
}

// Allowed checks the role against the operation's allow-list. Unknown roles
// and unknown permissions never match.
func Allowed(role Role, permission Permission) bool {
	roles, exists := OperationRoles[permission]
	if !exists {
		return false
	}

	for _, r := range roles {
		if r == role {
			return true
		}
	}

	return false
}
