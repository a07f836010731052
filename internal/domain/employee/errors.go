package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeNumberExists = errors.New("employee with this number already exists")
	ErrEvaluatorNotFound    = errors.New("evaluator not found")
	ErrNoEmployeesMatched   = errors.New("no employees found")
)
