package role

import "github.com/talentbase/competency-backend-go/internal/pkg/validator"

type CreateRoleRequest struct {
	Code string `json:"role_code"`
	Name string `json:"name"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "role_code",
			Message: "role_code is required",
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

type UpdateRoleRequest struct {
	Code    string `json:"-"` // From URL
	NewCode string `json:"role_code"`
	Name    string `json:"name"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) || validator.IsEmpty(r.NewCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "role_code",
			Message: "role_code is required",
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

type RoleResponse struct {
	Code string `json:"role_code"`
	Name string `json:"name"`
}
