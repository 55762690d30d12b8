package employee

import (
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name              string  `json:"name"`
	NameKana          *string `json:"name_kana,omitempty"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	UnitPay           *int64  `json:"unit_pay,omitempty"`
	HourlyOvertimePay *int64  `json:"hourly_overtime_pay,omitempty"`
	HireDate          *string `json:"hire_date,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not exceed 255 characters"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if r.UnitPay != nil && *r.UnitPay < 0 {
		errs = append(errs, validator.ValidationError{Field: "unit_pay", Message: "must be non-negative"})
	}
	if r.HourlyOvertimePay != nil && *r.HourlyOvertimePay < 0 {
		errs = append(errs, validator.ValidationError{Field: "hourly_overtime_pay", Message: "must be non-negative"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string  `json:"-"`
	Name              *string `json:"name,omitempty"`
	NameKana          *string `json:"name_kana,omitempty"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	UnitPay           *int64  `json:"unit_pay,omitempty"`
	HourlyOvertimePay *int64  `json:"hourly_overtime_pay,omitempty"`
	HireDate          *string `json:"hire_date,omitempty"`
	IsActive          *bool   `json:"is_active,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if r.UnitPay != nil && *r.UnitPay < 0 {
		errs = append(errs, validator.ValidationError{Field: "unit_pay", Message: "must be non-negative"})
	}
	if r.HourlyOvertimePay != nil && *r.HourlyOvertimePay < 0 {
		errs = append(errs, validator.ValidationError{Field: "hourly_overtime_pay", Message: "must be non-negative"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	NameKana          *string `json:"name_kana,omitempty"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	UnitPay           *int64  `json:"unit_pay,omitempty"`
	HourlyOvertimePay *int64  `json:"hourly_overtime_pay,omitempty"`
	HireDate          *string `json:"hire_date,omitempty"`
	IsActive          bool    `json:"is_active"`
	Notes             *string `json:"notes,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type EmployeeFilter struct {
	Search     *string `json:"search,omitempty"` // matches name or kana
	ActiveOnly bool    `json:"active_only"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	SortBy     string  `json:"sort_by"`
	SortOrder  string  `json:"sort_order"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
