package ledger

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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RemoveCompetenciesRequest struct {
	CompetencyCodes []string `json:"competency_codes"`
}

func (r *RemoveCompetenciesRequest) Validate() error {
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

// RowResponse is one ledger row in the employee view, with the gap derived
// on the way out; it is never stored.
type RowResponse struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	RequiredScore int    `json:"required_score"`
	ActualScore   int    `json:"actual_score"`
	Gap           int    `json:"gap"`
}

type AssignResponse struct {
	AddedCodes []string `json:"added_codes"`
}

type RemoveResponse struct {
	RemovedCount int64 `json:"removed_count"`
}
