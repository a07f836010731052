package department

import "github.com/talentbase/competency-backend-go/internal/pkg/validator"

type CreateDepartmentRequest struct {
	Code string `json:"department_code"`
	Name string `json:"name"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_code",
			Message: "department_code is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateDepartmentRequest struct {
	Code    string `json:"-"` // From URL
	NewCode string `json:"department_code"`
	Name    string `json:"name"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_code",
			Message: "department_code is required",
		})
	}

	if validator.IsEmpty(r.NewCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_code",
			Message: "department_code is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DepartmentResponse struct {
	Code string `json:"department_code"`
	Name string `json:"name"`
}
