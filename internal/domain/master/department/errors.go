package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentExists   = errors.New("department with this code or name already exists")
	ErrDepartmentInUse    = errors.New("department still has employees assigned")
)
