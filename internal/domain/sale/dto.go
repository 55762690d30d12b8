package sale

import (
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/validator"
)

type CreateSaleRequest struct {
	ClientID string  `json:"client_id"`
	SiteID   *string `json:"site_id,omitempty"`
	Amount   int64   `json:"amount"`
	SaleDate string  `json:"sale_date"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *CreateSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "is required"})
	} else if !validator.IsValidUUID(r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "must be a valid UUID"})
	}
	if r.SiteID != nil && !validator.IsValidUUID(*r.SiteID) {
		errs = append(errs, validator.ValidationError{Field: "site_id", Message: "must be a valid UUID"})
	}
	if r.Amount < 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.SaleDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "sale_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSaleRequest struct {
	ID       string  `json:"-"`
	ClientID *string `json:"client_id,omitempty"`
	SiteID   *string `json:"site_id,omitempty"`
	Amount   *int64  `json:"amount,omitempty"`
	SaleDate *string `json:"sale_date,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *UpdateSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClientID != nil && !validator.IsValidUUID(*r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "must be a valid UUID"})
	}
	if r.SiteID != nil && *r.SiteID != "" && !validator.IsValidUUID(*r.SiteID) {
		errs = append(errs, validator.ValidationError{Field: "site_id", Message: "must be a valid UUID"})
	}
	if r.Amount != nil && *r.Amount < 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if r.SaleDate != nil {
		if _, ok := validator.IsValidDate(*r.SaleDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "sale_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SaleResponse struct {
	ID         string  `json:"id"`
	ClientID   string  `json:"client_id"`
	ClientName *string `json:"client_name,omitempty"`
	SiteID     *string `json:"site_id,omitempty"`
	SiteName   *string `json:"site_name,omitempty"`
	Amount     int64   `json:"amount"`
	SaleDate   string  `json:"sale_date"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type SaleFilter struct {
	ClientID  *string `json:"client_id,omitempty"`
	DateFrom  *string `json:"date_from,omitempty"`
	DateTo    *string `json:"date_to,omitempty"`
	Page      int     `json:"page"`
	Limit     int     `json:"limit"`
	SortBy    string  `json:"sort_by"`
	SortOrder string  `json:"sort_order"`
}

type ListSaleResponse struct {
	Data       []SaleResponse `json:"data"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}
