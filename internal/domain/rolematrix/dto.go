package rolematrix

import "github.com/talentbase/competency-backend-go/internal/pkg/validator"

type AssignCompetenciesRequest struct {
	CompetencyCodes []string `json:"competency_codes"`
}

func (r *AssignCompetenciesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.CompetencyCodes) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "competency_codes",
			Message: "competency_codes is required",
		})
	}
	for _, code := range r.CompetencyCodes {
		if validator.IsEmpty(code) {
			errs = append(errs, validator.ValidationError{
				Field:   "competency_codes",
				Message: "competency_codes must not contain empty codes",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UnassignCompetenciesRequest struct {
	CompetencyCodes []string `json:"competency_codes"`
}

func (r *UnassignCompetenciesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.CompetencyCodes) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "competency_codes",
			Message: "competency_codes is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RoleCompetencyResponse struct {
	RoleCode       string `json:"role_code"`
	CompetencyCode string `json:"competency_code"`
	RequiredScore  int    `json:"required_score"`
}

type AssignCompetenciesResponse struct {
	RoleCode   string   `json:"role_code"`
	AddedCodes []string `json:"added_codes"`
}

type UnassignCompetenciesResponse struct {
	RoleCode     string   `json:"role_code"`
	RemovedCodes []string `json:"removed_codes"`
	RemovedCount int64    `json:"removed_count"`
}
