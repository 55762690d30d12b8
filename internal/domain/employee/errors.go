package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("employee email already exists")
	ErrEmployeeInUse    = errors.New("employee has related records, cannot delete")
)
