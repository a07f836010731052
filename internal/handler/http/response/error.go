package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/talentbase/competency-backend-go/internal/domain/access"
	"github.com/talentbase/competency-backend-go/internal/domain/employee"
	"github.com/talentbase/competency-backend-go/internal/domain/master/competency"
	"github.com/talentbase/competency-backend-go/internal/domain/master/department"
	"github.com/talentbase/competency-backend-go/internal/domain/master/role"
	"github.com/talentbase/competency-backend-go/internal/domain/rolematrix"
	"github.com/talentbase/competency-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Batch competency lookups report every missing code at once.
	var missingErr *competency.MissingCodesError
	if errors.As(err, &missingErr) {
		details := make(map[string]string, len(missingErr.Codes))
		for i, code := range missingErr.Codes {
			details["missing["+strconv.Itoa(i)+"]"] = code
		}
		NotFoundWithDetails(w, "One or more competencies not found", details)
		return
	}

	switch {
	// Access errors
	case errors.Is(err, access.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, access.ErrInvalidClaims):
		Unauthorized(w, "Token is missing identity claims")
	case errors.Is(err, access.ErrForbidden), errors.Is(err, access.ErrUnauthorizedRole):
		Forbidden(w, "Role not permitted for this operation")

	// Catalog errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentExists):
		Conflict(w, "Department already exists")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department still has employees assigned")
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrRoleExists):
		Conflict(w, "Role already exists")
	case errors.Is(err, role.ErrRoleInUse):
		Conflict(w, "Role still referenced by employees or competency assignments")
	case errors.Is(err, competency.ErrCompetencyNotFound):
		NotFound(w, "Competency not found")
	case errors.Is(err, competency.ErrCompetencyExists):
		Conflict(w, "Competency already exists")
	case errors.Is(err, competency.ErrCompetencyInUse):
		Conflict(w, "Competency still referenced by employee or role assignments")

	// Matrix errors
	case errors.Is(err, rolematrix.ErrNoAssignmentsMatched):
		NotFound(w, "No matching competency assignments found")

	// Employee errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNumberExists):
		Conflict(w, "Employee number already exists")
	case errors.Is(err, employee.ErrEvaluatorNotFound):
		NotFound(w, "Evaluator not found")
	case errors.Is(err, employee.ErrNoEmployeesMatched):
		NotFound(w, "No employees found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
