package evaluation

import "github.com/talentbase/competency-backend-go/internal/pkg/validator"

// ScoreEntry is one submitted score. Both fields are pointers so a missing
// field is distinguishable from a zero value; entries missing either are
// skipped rather than rejected.
type ScoreEntry struct {
	CompetencyCode *string `json:"competency_code"`
	ActualScore    *int    `json:"actual_score"`
}

type SubmitRequest struct {
	Scores []ScoreEntry `json:"scores"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Scores) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "scores",
			Message: "scores is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SubmitResponse reports what happened to each submitted entry: updated
// rows, skipped malformed entries, and well-formed entries that matched no
// ledger row.
type SubmitResponse struct {
	EmployeeNumber string `json:"employee_number"`
	Updated        int    `json:"updated"`
	Skipped        int    `json:"skipped"`
	Unmatched      int    `json:"unmatched"`
}

type BulkStatusResponse struct {
	MatchedCount int64 `json:"matched_count"`
	Status       bool  `json:"status"`
}
