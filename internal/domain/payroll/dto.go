package payroll

import (
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/validator"
)

type ComputePayrollRequest struct {
	EmployeeID string `json:"employee_id"`
	PeriodType string `json:"period_type"` // "weekly" or "monthly"
	AnchorDate string `json:"anchor_date"` // "2006-01-02", any day inside the period
}

func (r *ComputePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if r.PeriodType != string(PeriodTypeWeekly) && r.PeriodType != string(PeriodTypeMonthly) {
		errs = append(errs, validator.ValidationError{Field: "period_type", Message: "must be 'weekly' or 'monthly'"})
	}
	if _, ok := validator.IsValidDate(r.AnchorDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "anchor_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPaidRequest struct {
	ID          string  `json:"-"`
	PaymentDate *string `json:"payment_date,omitempty"` // defaults to today
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateNotesRequest struct {
	ID    string  `json:"-"`
	Notes *string `json:"notes"`
}

type PayrollResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	PeriodType        string  `json:"period_type"`
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	SiteCount         int64   `json:"site_count"`
	WorkHours         *int64  `json:"work_hours,omitempty"`
	OvertimeHours     *int64  `json:"overtime_hours,omitempty"`
	UnitPay           int64   `json:"unit_pay"`
	SitePay           int64   `json:"site_pay"`
	HourlyOvertimePay int64   `json:"hourly_overtime_pay"`
	Overtime          int64   `json:"overtime"`
	TotalAmount       int64   `json:"total_amount"`
	Status            string  `json:"status"`
	PaymentDate       *string `json:"payment_date,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type PayrollFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	PeriodType *string `json:"period_type,omitempty"`
	Status     *string `json:"status,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	SortBy     string  `json:"sort_by"`
	SortOrder  string  `json:"sort_order"`
}

type ListPayrollResponse struct {
	Data       []PayrollResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
