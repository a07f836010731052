package employee

import (
	"time"

	"github.com/talentbase/competency-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeNumber        string `json:"employee_number"`
	EmployeeName          string `json:"employee_name"`
	JobCode               string `json:"job_code"`
	ReportingEmployeeName string `json:"reporting_employee_name"`
	RoleCode              string `json:"role_code"`
	DepartmentCode        string `json:"department_code"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]string{
		"employee_number": r.EmployeeNumber,
		"employee_name":   r.EmployeeName,
		"role_code":       r.RoleCode,
		"department_code": r.DepartmentCode,
	}
	for field, value := range required {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	Number string `json:"-"` // From URL
	CreateEmployeeRequest
}

type EmployeeResponse struct {
	EmployeeNumber        string     `json:"employee_number"`
	EmployeeName          string     `json:"employee_name"`
	JobCode               string     `json:"job_code"`
	ReportingEmployeeName string     `json:"reporting_employee_name"`
	RoleCode              string     `json:"role_code"`
	DepartmentCode        string     `json:"department_code"`
	EvaluationStatus      bool       `json:"evaluation_status"`
	EvaluationBy          *string    `json:"evaluation_by"`
	LastEvaluatedDate     *time.Time `json:"last_evaluated_date"`
}

type DetailResponse struct {
	EmployeeResponse
	Department string `json:"department"`
	Role       string `json:"role"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeNumber:        e.EmployeeNumber,
		EmployeeName:          e.EmployeeName,
		JobCode:               e.JobCode,
		ReportingEmployeeName: e.ReportingEmployeeName,
		RoleCode:              e.RoleCode,
		DepartmentCode:        e.DepartmentCode,
		EvaluationStatus:      e.EvaluationStatus,
		EvaluationBy:          e.EvaluationBy,
		LastEvaluatedDate:     e.LastEvaluatedDate,
	}
}

// ImportRecord is one normalized employee record produced by the external
// bulk-ingestion collaborator. Competency scores are required_score
// overrides for that employee, never actual scores.
type ImportRecord struct {
	EmployeeNumber        string             `json:"employee_number"`
	EmployeeName          string             `json:"employee_name"`
	JobCode               string             `json:"job_code"`
	ReportingEmployeeName string             `json:"reporting_employee_name"`
	RoleCode              string             `json:"role_code"`
	Department            string             `json:"department"`
	Competencies          []ImportCompetency `json:"competencies"`
}

type ImportCompetency struct {
	Code  string `json:"code"`
	Score int    `json:"score"`
}

type ImportResult struct {
	EmployeeNumber string `json:"employee_number"`
	Status         string `json:"status"`
	Message        string `json:"message"`
}

type ImportSummary struct {
	Results        []ImportResult `json:"results"`
	TotalProcessed int            `json:"total_processed"`
	SuccessCount   int            `json:"success_count"`
	ErrorCount     int            `json:"error_count"`
}

type BulkEvaluationStatusRequest struct {
	EmployeeNumbers []string `json:"employee_numbers"`
	Status          bool     `json:"status"`
}

func (r *BulkEvaluationStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeNumbers) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_numbers",
			Message: "employee_numbers is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
