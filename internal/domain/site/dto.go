package site

import (
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/validator"
)

type CreateSiteRequest struct {
	ClientID  *string `json:"client_id,omitempty"`
	Name      string  `json:"name"`
	Address   *string `json:"address,omitempty"`
	WorkDate  string  `json:"work_date"`
	StartTime *string `json:"start_time,omitempty"` // "HH:MM"
	EndTime   *string `json:"end_time,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *CreateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not exceed 255 characters"})
	}
	if r.ClientID != nil && !validator.IsValidUUID(*r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "must be a valid UUID"})
	}
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.StartTime != nil && !validator.IsValidTimeOfDay(*r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be a valid time (HH:MM)"})
	}
	if r.EndTime != nil && !validator.IsValidTimeOfDay(*r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be a valid time (HH:MM)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSiteRequest struct {
	ID        string  `json:"-"`
	ClientID  *string `json:"client_id,omitempty"`
	Name      *string `json:"name,omitempty"`
	Address   *string `json:"address,omitempty"`
	WorkDate  *string `json:"work_date,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *UpdateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.ClientID != nil && *r.ClientID != "" && !validator.IsValidUUID(*r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "must be a valid UUID"})
	}
	if r.WorkDate != nil {
		if _, ok := validator.IsValidDate(*r.WorkDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "work_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.StartTime != nil && !validator.IsValidTimeOfDay(*r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be a valid time (HH:MM)"})
	}
	if r.EndTime != nil && !validator.IsValidTimeOfDay(*r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be a valid time (HH:MM)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignEmployeeRequest struct {
	SiteID        string `json:"-"`
	EmployeeID    string `json:"employee_id"`
	WorkHours     *int64 `json:"work_hours,omitempty"`
	OvertimeHours *int64 `json:"overtime_hours,omitempty"`
}

func (r *AssignEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if r.WorkHours != nil && *r.WorkHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "work_hours", Message: "must be non-negative"})
	}
	if r.OvertimeHours != nil && *r.OvertimeHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAssignmentRequest struct {
	SiteID        string `json:"-"`
	EmployeeID    string `json:"-"`
	WorkHours     *int64 `json:"work_hours,omitempty"`
	OvertimeHours *int64 `json:"overtime_hours,omitempty"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkHours != nil && *r.WorkHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "work_hours", Message: "must be non-negative"})
	}
	if r.OvertimeHours != nil && *r.OvertimeHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SiteResponse struct {
	ID            string  `json:"id"`
	ClientID      *string `json:"client_id,omitempty"`
	ClientName    *string `json:"client_name,omitempty"`
	Name          string  `json:"name"`
	Address       *string `json:"address,omitempty"`
	WorkDate      string  `json:"work_date"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	EmployeeCount *int64  `json:"employee_count,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type SiteAssignmentResponse struct {
	ID            string  `json:"id"`
	SiteID        string  `json:"site_id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	WorkHours     *int64  `json:"work_hours,omitempty"`
	OvertimeHours *int64  `json:"overtime_hours,omitempty"`
}

type SiteFilter struct {
	ClientID  *string `json:"client_id,omitempty"`
	DateFrom  *string `json:"date_from,omitempty"`
	DateTo    *string `json:"date_to,omitempty"`
	Search    *string `json:"search,omitempty"`
	Page      int     `json:"page"`
	Limit     int     `json:"limit"`
	SortBy    string  `json:"sort_by"`
	SortOrder string  `json:"sort_order"`
}

type ListSiteResponse struct {
	Data       []SiteResponse `json:"data"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}
