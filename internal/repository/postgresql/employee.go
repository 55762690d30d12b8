package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/employee"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/payroll"
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// NewRateSource exposes the employees table as the payroll rate
// source; pay rates live on the employee row.
func NewRateSource(db *database.DB) payroll.RateSource {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, name_kana, email, phone, address, unit_pay,
	hourly_overtime_pay, hire_date, is_active, notes, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.NameKana,
		&e.Email,
		&e.Phone,
		&e.Address,
		&e.UnitPay,
		&e.HourlyOvertimePay,
		&e.HireDate,
		&e.IsActive,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, name, name_kana, email, phone, address, unit_pay,
			hourly_overtime_pay, hire_date, is_active, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID,
		emp.Name,
		emp.NameKana,
		emp.Email,
		emp.Phone,
		emp.Address,
		emp.UnitPay,
		emp.HourlyOvertimePay,
		emp.HireDate,
		emp.IsActive,
		emp.Notes,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR name_kana ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "is_active = true")
	}

	whereClause := strings.Join(conditions, " AND ")

	var totalCount int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE `+whereClause, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	sortColumns := map[string]string{
		"name":       "name",
		"hire_date":  "hire_date",
		"created_at": "created_at",
	}
	sortBy, ok := sortColumns[filter.SortBy]
	if !ok {
		sortBy = "name"
	}
	sortOrder := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	listQuery := fmt.Sprintf(`
		SELECT `+employeeColumns+`
		FROM employees
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereClause, sortBy, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, totalCount, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.NameKana != nil {
		addSet("name_kana", *req.NameKana)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Address != nil {
		addSet("address", *req.Address)
	}
	if req.UnitPay != nil {
		addSet("unit_pay", *req.UnitPay)
	}
	if req.HourlyOvertimePay != nil {
		addSet("hourly_overtime_pay", *req.HourlyOvertimePay)
	}
	if req.HireDate != nil {
		hireDate, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return fmt.Errorf("invalid hire_date: %w", err)
		}
		addSet("hire_date", hireDate)
	}
	if req.IsActive != nil {
		addSet("is_active", *req.IsActive)
	}
	if req.Notes != nil {
		addSet("notes", *req.Notes)
	}

	if len(setClauses) == 1 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE employees SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_email") {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return employee.ErrEmployeeInUse
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// GetPayRates implements payroll.RateSource.
func (r *employeeRepositoryImpl) GetPayRates(ctx context.Context, employeeID string) (payroll.PayRates, error) {
	q := GetQuerier(ctx, r.db)

	var rates payroll.PayRates
	err := q.QueryRow(ctx, `
		SELECT unit_pay, hourly_overtime_pay FROM employees WHERE id = $1
	`, employeeID).Scan(&rates.UnitPay, &rates.HourlyOvertimePay)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayRates{}, payroll.ErrEmployeeNotFound
		}
		return payroll.PayRates{}, fmt.Errorf("failed to get pay rates: %w", err)
	}

	return rates, nil
}
