package payroll

import (
	"context"
	"time"
)

// RateSource provides the employee pay rates the calculator snapshots.
type RateSource interface {
	GetPayRates(ctx context.Context, employeeID string) (PayRates, error)
}

// AssignmentSource lists the assignment occurrences for an employee
// inside a closed date interval.
type AssignmentSource interface {
	ListAssignmentFacts(ctx context.Context, employeeID string, start, end time.Time) ([]AssignmentFact, error)
}

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	// Create inserts a new pending record. A unique-constraint
	// violation on (employee_id, start_date, end_date) is reported
	// as ErrRecomputeConflict.
	Create(ctx context.Context, record Payroll) (Payroll, error)

	// Replace overwrites the derived and snapshot fields of an
	// existing pending record. Status and notes are untouched.
	Replace(ctx context.Context, record Payroll) (Payroll, error)

	GetByID(ctx context.Context, id string) (Payroll, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) (Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]Payroll, int64, error)

	MarkPaid(ctx context.Context, id string, paymentDate time.Time) error
	Cancel(ctx context.Context, id string) error
	UpdateNotes(ctx context.Context, id string, notes *string) error
}
