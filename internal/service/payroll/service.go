package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/payroll"
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/database"
	"golang.org/x/sync/singleflight"
)

type PayrollServiceImpl struct {
	db               *database.DB
	payrollRepo      payroll.PayrollRepository
	rateSource       payroll.RateSource
	assignmentSource payroll.AssignmentSource

	// Coalesces concurrent computations of the same employee-period
	// key; the unique index on payrolls is the storage backstop.
	recompute singleflight.Group
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	rateSource payroll.RateSource,
	assignmentSource payroll.AssignmentSource,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:               db,
		payrollRepo:      payrollRepo,
		rateSource:       rateSource,
		assignmentSource: assignmentSource,
	}
}

// ComputePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) ComputePayroll(ctx context.Context, req payroll.ComputePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	anchor, _ := time.Parse("2006-01-02", req.AnchorDate)
	period, err := payroll.ResolvePeriod(payroll.PeriodType(req.PeriodType), anchor)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	key := fmt.Sprintf("%s|%s|%s", req.EmployeeID, period.StartDate.Format("2006-01-02"), period.EndDate.Format("2006-01-02"))
	result, err, _ := s.recompute.Do(key, func() (interface{}, error) {
		return s.compute(ctx, req.EmployeeID, payroll.PeriodType(req.PeriodType), period)
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toPayrollResponse(result.(payroll.Payroll)), nil
}

func (s *PayrollServiceImpl) compute(ctx context.Context, employeeID string, periodType payroll.PeriodType, period payroll.Period) (payroll.Payroll, error) {
	existing, err := s.payrollRepo.GetByEmployeePeriod(ctx, employeeID, period.StartDate, period.EndDate)
	exists := true
	if err != nil {
		if !errors.Is(err, payroll.ErrPayrollNotFound) {
			return payroll.Payroll{}, err
		}
		exists = false
	}
	if exists && existing.Status.Terminal() {
		return payroll.Payroll{}, payroll.ErrPayrollTerminal
	}

	rates, err := s.rateSource.GetPayRates(ctx, employeeID)
	if err != nil {
		return payroll.Payroll{}, err
	}

	facts, err := s.assignmentSource.ListAssignmentFacts(ctx, employeeID, period.StartDate, period.EndDate)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("%w: %v", payroll.ErrAggregationFailed, err)
	}

	agg := AggregateFacts(facts)
	derived, err := payroll.Calculate(agg, rates)
	if err != nil {
		return payroll.Payroll{}, err
	}

	record := payroll.Payroll{
		EmployeeID:        employeeID,
		PeriodType:        periodType,
		StartDate:         period.StartDate,
		EndDate:           period.EndDate,
		SiteCount:         agg.SiteCount,
		WorkHours:         agg.WorkHours,
		OvertimeHours:     agg.OvertimeHours,
		UnitPay:           orZero(rates.UnitPay),
		SitePay:           derived.SitePay,
		HourlyOvertimePay: orZero(rates.HourlyOvertimePay),
		Overtime:          derived.Overtime,
		TotalAmount:       derived.TotalAmount,
		Status:            payroll.PayrollStatusPending,
	}

	if !exists {
		record.ID = uuid.NewString()
		return s.payrollRepo.Create(ctx, record)
	}

	record.ID = existing.ID
	record.Notes = existing.Notes
	return s.payrollRepo.Replace(ctx, record)
}

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toPayrollResponse(record), nil
}

// ListPayrolls implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	records, totalCount, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toPayrollResponse(record))
	}

	return payroll.ListPayrollResponse{
		Data:       responses,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// MarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, req payroll.MarkPaidRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	paymentDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.PaymentDate != nil {
		paymentDate, _ = time.Parse("2006-01-02", *req.PaymentDate)
	}

	return s.payrollRepo.MarkPaid(ctx, req.ID, paymentDate)
}

// Cancel implements payroll.PayrollService.
func (s *PayrollServiceImpl) Cancel(ctx context.Context, id string) error {
	return s.payrollRepo.Cancel(ctx, id)
}

// UpdateNotes implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdateNotes(ctx context.Context, req payroll.UpdateNotesRequest) error {
	return s.payrollRepo.UpdateNotes(ctx, req.ID, req.Notes)
}

func toPayrollResponse(p payroll.Payroll) payroll.PayrollResponse {
	resp := payroll.PayrollResponse{
		ID:                p.ID,
		EmployeeID:        p.EmployeeID,
		EmployeeName:      p.EmployeeName,
		PeriodType:        string(p.PeriodType),
		StartDate:         p.StartDate.Format("2006-01-02"),
		EndDate:           p.EndDate.Format("2006-01-02"),
		SiteCount:         p.SiteCount,
		WorkHours:         p.WorkHours,
		OvertimeHours:     p.OvertimeHours,
		UnitPay:           p.UnitPay,
		SitePay:           p.SitePay,
		HourlyOvertimePay: p.HourlyOvertimePay,
		Overtime:          p.Overtime,
		TotalAmount:       p.TotalAmount,
		Status:            string(p.Status),
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         p.UpdatedAt.Format(time.RFC3339),
	}
	if p.PaymentDate != nil {
		formatted := p.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &formatted
	}
	return resp
}

func orZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
