package competency

import "github.com/talentbase/competency-backend-go/internal/pkg/validator"

type CreateCompetencyRequest struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	RequiredScore int    `json:"required_score"`
}

func (r *CreateCompetencyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.RequiredScore < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "required_score",
			Message: "required_score must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCompetencyRequest struct {
	Code          string `json:"-"` // From URL
	NewCode       string `json:"code"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	RequiredScore int    `json:"required_score"`
}

func (r *UpdateCompetencyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) || validator.IsEmpty(r.NewCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.RequiredScore < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "required_score",
			Message: "required_score must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CompetencyResponse struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	RequiredScore int    `json:"required_score"`
}

func NewCompetencyResponse(c Competency) CompetencyResponse {
	return CompetencyResponse{
		Code:          c.Code,
		Name:          c.Name,
		Description:   c.Description,
		RequiredScore: c.RequiredScore,
	}
}
