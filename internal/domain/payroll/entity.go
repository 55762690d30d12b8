package payroll

import "time"

// PeriodType enum
type PeriodType string

const (
	PeriodTypeWeekly  PeriodType = "weekly"
	PeriodTypeMonthly PeriodType = "monthly"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusPending   PayrollStatus = "pending"
	PayrollStatusPaid      PayrollStatus = "paid"
	PayrollStatusCancelled PayrollStatus = "cancelled"
)

// Terminal reports whether no further status transition is allowed.
func (s PayrollStatus) Terminal() bool {
	return s == PayrollStatusPaid || s == PayrollStatusCancelled
}

// Period - closed calendar-day interval, both bounds inclusive
type Period struct {
	StartDate time.Time
	EndDate   time.Time
}

// Contains reports whether d falls inside the period.
func (p Period) Contains(d time.Time) bool {
	d = d.Truncate(24 * time.Hour)
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}

// Payroll - computed payroll record for one employee and period.
// Amounts are integer yen. UnitPay and HourlyOvertimePay are snapshots
// of the employee rates at computation time.
type Payroll struct {
	ID                string
	EmployeeID        string
	PeriodType        PeriodType
	StartDate         time.Time
	EndDate           time.Time
	SiteCount         int64
	WorkHours         *int64 // nil when hours are not tracked for the period
	OvertimeHours     *int64
	UnitPay           int64
	SitePay           int64
	HourlyOvertimePay int64
	Overtime          int64
	TotalAmount       int64
	Status            PayrollStatus
	PaymentDate       *time.Time
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	EmployeeName *string
}

// PayRates - employee pay rates as configured, nil when unset
type PayRates struct {
	UnitPay           *int64
	HourlyOvertimePay *int64
}

// AssignmentFact - one site assignment occurrence inside a period
type AssignmentFact struct {
	OccurrenceDate time.Time
	WorkHours      *int64
	OvertimeHours  *int64
}

// RawAggregate - assignment facts reduced over a period. Hour fields
// stay nil when no fact in the period carried hour data.
type RawAggregate struct {
	SiteCount     int64
	WorkHours     *int64
	OvertimeHours *int64
}

// Derived - amounts computed from a RawAggregate and rate snapshots
type Derived struct {
	SitePay     int64
	Overtime    int64
	TotalAmount int64
}
