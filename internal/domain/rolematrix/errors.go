package rolematrix

import "errors"

var ErrNoAssignmentsMatched = errors.New("no matching competency assignments found")
