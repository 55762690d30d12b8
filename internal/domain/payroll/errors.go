package payroll

import "errors"

var (
	ErrInvalidPeriod     = errors.New("invalid payroll period")
	ErrInvalidRate       = errors.New("invalid pay rate")
	ErrAggregationFailed = errors.New("failed to aggregate assignments")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrPayrollNotFound   = errors.New("payroll record not found")
	ErrPayrollTerminal   = errors.New("payroll record is finalized, cannot recompute")
	ErrInvalidTransition = errors.New("invalid payroll status transition")
	ErrRecomputeConflict = errors.New("concurrent payroll computation for the same period")
)
