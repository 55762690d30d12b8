package employee

import "time"

// Employee - a worker dispatched to job sites. Pay rates are integer
// yen; nil means the rate has not been configured yet.
type Employee struct {
	ID                string
	Name              string
	NameKana          *string
	Email             *string
	Phone             *string
	Address           *string
	UnitPay           *int64 // yen per site worked
	HourlyOvertimePay *int64 // yen per overtime hour
	HireDate          *time.Time
	IsActive          bool
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
