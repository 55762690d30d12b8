package site

import "time"

// Site - one day of work at a client location. WorkDate is the
// occurrence date every assignment on the site inherits.
type Site struct {
	ID        string
	ClientID  *string
	Name      string
	Address   *string
	WorkDate  time.Time
	StartTime *string // "HH:MM"
	EndTime   *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	ClientName    *string
	EmployeeCount *int64
}

// SiteAssignment - an employee dispatched to a site. Hour fields come
// from an external hour-tracking import and stay nil when untracked.
type SiteAssignment struct {
	ID            string
	SiteID        string
	EmployeeID    string
	WorkHours     *int64
	OvertimeHours *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
}
