package payroll

import "context"

type PayrollService interface {
	// ComputePayroll runs the full pipeline for one employee and
	// period: resolve the window, aggregate assignments, snapshot
	// rates, calculate amounts, and create or replace the pending
	// record for the period.
	ComputePayroll(ctx context.Context, req ComputePayrollRequest) (PayrollResponse, error)

	GetPayroll(ctx context.Context, id string) (PayrollResponse, error)
	ListPayrolls(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)

	MarkPaid(ctx context.Context, req MarkPaidRequest) error
	Cancel(ctx context.Context, id string) error
	UpdateNotes(ctx context.Context, req UpdateNotesRequest) error
}
