package competency

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCompetencyNotFound = errors.New("competency not found")
	ErrCompetencyExists   = errors.New("competency with this code already exists")
	ErrCompetencyInUse    = errors.New("competency still referenced by employee or role assignments")
)

// MissingCodesError reports which requested competency codes do not exist,
// so partial-batch callers can surface the full list in one response.
type MissingCodesError struct {
	Codes []string
}

func (e *MissingCodesError) Error() string {
	return fmt.Sprintf("competencies not found: %s", strings.Join(e.Codes, ", "))
}
