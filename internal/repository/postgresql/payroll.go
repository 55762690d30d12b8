package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/payroll"
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `id, employee_id, period_type, start_date, end_date, site_count,
	work_hours, overtime_hours, unit_pay, site_pay, hourly_overtime_pay,
	overtime, total_amount, status, payment_date, notes, created_at, updated_at`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.PeriodType,
		&p.StartDate,
		&p.EndDate,
		&p.SiteCount,
		&p.WorkHours,
		&p.OvertimeHours,
		&p.UnitPay,
		&p.SitePay,
		&p.HourlyOvertimePay,
		&p.Overtime,
		&p.TotalAmount,
		&p.Status,
		&p.PaymentDate,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			id, employee_id, period_type, start_date, end_date, site_count,
			work_hours, overtime_hours, unit_pay, site_pay, hourly_overtime_pay,
			overtime, total_amount, status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + payrollColumns

	created, err := scanPayroll(q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.PeriodType,
		record.StartDate,
		record.EndDate,
		record.SiteCount,
		record.WorkHours,
		record.OvertimeHours,
		record.UnitPay,
		record.SitePay,
		record.HourlyOvertimePay,
		record.Overtime,
		record.TotalAmount,
		record.Status,
		record.Notes,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payrolls_employee_period") {
			return payroll.Payroll{}, payroll.ErrRecomputeConflict
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return created, nil
}

// Replace implements payroll.PayrollRepository. Only pending records
// are replaced; derived and snapshot fields are overwritten as a unit
// while status and notes stay as they are.
func (r *payrollRepositoryImpl) Replace(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET site_count = $1, work_hours = $2, overtime_hours = $3,
			unit_pay = $4, site_pay = $5, hourly_overtime_pay = $6,
			overtime = $7, total_amount = $8, updated_at = NOW()
		WHERE id = $9 AND status = 'pending'
		RETURNING ` + payrollColumns

	replaced, err := scanPayroll(q.QueryRow(ctx, query,
		record.SiteCount,
		record.WorkHours,
		record.OvertimeHours,
		record.UnitPay,
		record.SitePay,
		record.HourlyOvertimePay,
		record.Overtime,
		record.TotalAmount,
		record.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish missing from finalized
			var status payroll.PayrollStatus
			checkErr := q.QueryRow(ctx, `SELECT status FROM payrolls WHERE id = $1`, record.ID).Scan(&status)
			if errors.Is(checkErr, pgx.ErrNoRows) {
				return payroll.Payroll{}, payroll.ErrPayrollNotFound
			}
			if checkErr != nil {
				return payroll.Payroll{}, fmt.Errorf("failed to check payroll status: %w", checkErr)
			}
			return payroll.Payroll{}, payroll.ErrPayrollTerminal
		}
		return payroll.Payroll{}, fmt.Errorf("failed to replace payroll record: %w", err)
	}

	return replaced, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.period_type, p.start_date, p.end_date, p.site_count,
			p.work_hours, p.overtime_hours, p.unit_pay, p.site_pay, p.hourly_overtime_pay,
			p.overtime, p.total_amount, p.status, p.payment_date, p.notes, p.created_at, p.updated_at,
			e.name
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.EmployeeID,
		&p.PeriodType,
		&p.StartDate,
		&p.EndDate,
		&p.SiteCount,
		&p.WorkHours,
		&p.OvertimeHours,
		&p.UnitPay,
		&p.SitePay,
		&p.HourlyOvertimePay,
		&p.Overtime,
		&p.TotalAmount,
		&p.Status,
		&p.PaymentDate,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return p, nil
}

// GetByEmployeePeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls
		WHERE employee_id = $1 AND start_date = $2 AND end_date = $3
	`

	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID, start, end))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.PeriodType != nil {
		conditions = append(conditions, fmt.Sprintf("p.period_type = $%d", argIdx))
		args = append(args, *filter.PeriodType)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM payrolls p WHERE ` + whereClause
	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	// Whitelist sortable columns
	sortColumns := map[string]string{
		"start_date":   "p.start_date",
		"end_date":     "p.end_date",
		"total_amount": "p.total_amount",
		"status":       "p.status",
		"created_at":   "p.created_at",
	}
	sortBy, ok := sortColumns[filter.SortBy]
	if !ok {
		sortBy = "p.start_date"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	listQuery := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.period_type, p.start_date, p.end_date, p.site_count,
			p.work_hours, p.overtime_hours, p.unit_pay, p.site_pay, p.hourly_overtime_pay,
			p.overtime, p.total_amount, p.status, p.payment_date, p.notes, p.created_at, p.updated_at,
			e.name
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereClause, sortBy, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		err := rows.Scan(
			&p.ID,
			&p.EmployeeID,
			&p.PeriodType,
			&p.StartDate,
			&p.EndDate,
			&p.SiteCount,
			&p.WorkHours,
			&p.OvertimeHours,
			&p.UnitPay,
			&p.SitePay,
			&p.HourlyOvertimePay,
			&p.Overtime,
			&p.TotalAmount,
			&p.Status,
			&p.PaymentDate,
			&p.Notes,
			&p.CreatedAt,
			&p.UpdatedAt,
			&p.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}

	return records, totalCount, nil
}

// MarkPaid implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) MarkPaid(ctx context.Context, id string, paymentDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	var status payroll.PayrollStatus
	err := q.QueryRow(ctx, `SELECT status FROM payrolls WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.ErrPayrollNotFound
		}
		return fmt.Errorf("failed to check payroll status: %w", err)
	}
	if status != payroll.PayrollStatusPending {
		return payroll.ErrInvalidTransition
	}

	tag, err := q.Exec(ctx, `
		UPDATE payrolls
		SET status = 'paid', payment_date = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'
	`, paymentDate, id)
	if err != nil {
		return fmt.Errorf("failed to mark payroll paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Lost a race to another transition
		return payroll.ErrInvalidTransition
	}

	return nil
}

// Cancel implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Cancel(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var status payroll.PayrollStatus
	err := q.QueryRow(ctx, `SELECT status FROM payrolls WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.ErrPayrollNotFound
		}
		return fmt.Errorf("failed to check payroll status: %w", err)
	}
	if status != payroll.PayrollStatusPending {
		return payroll.ErrInvalidTransition
	}

	tag, err := q.Exec(ctx, `
		UPDATE payrolls
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`, id)
	if err != nil {
		return fmt.Errorf("failed to cancel payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrInvalidTransition
	}

	return nil
}

// UpdateNotes implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateNotes(ctx context.Context, id string, notes *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payrolls
		SET notes = $1, updated_at = NOW()
		WHERE id = $2
	`, notes, id)
	if err != nil {
		return fmt.Errorf("failed to update payroll notes: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}
