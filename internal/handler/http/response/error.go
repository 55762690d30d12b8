package response

import (
	"errors"
	"net/http"

	"github.com/kensetsu-apps/works-backend-go/internal/domain/auth"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/client"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/employee"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/payroll"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/sale"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/site"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/user"
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrInvalidRate):
		BadRequest(w, "Employee pay rates are invalid", nil)
	case errors.Is(err, payroll.ErrAggregationFailed):
		ServiceUnavailable(w, "Assignment data is temporarily unavailable, retry later")
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollTerminal):
		Conflict(w, "Payroll record is finalized and cannot be recomputed")
	case errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, "Payroll status transition not allowed")
	case errors.Is(err, payroll.ErrRecomputeConflict):
		Conflict(w, "Payroll is being computed by another request, retry")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Employee email already exists")
	case errors.Is(err, employee.ErrEmployeeInUse):
		Conflict(w, "Employee has related records")

	// Site domain errors
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, site.ErrAssignmentNotFound):
		NotFound(w, "Site assignment not found")
	case errors.Is(err, site.ErrAssignmentExists):
		Conflict(w, "Employee already assigned to this site")

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrClientInUse):
		Conflict(w, "Client has related records")

	// Sale domain errors
	case errors.Is(err, sale.ErrSaleNotFound):
		NotFound(w, "Sale not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
