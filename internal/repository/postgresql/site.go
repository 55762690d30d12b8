package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/payroll"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/site"
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/database"
)

type siteRepositoryImpl struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.SiteRepository {
	return &siteRepositoryImpl{db: db}
}

// NewAssignmentSource exposes site assignments as the payroll
// assignment source; the occurrence date is the owning site's
// work_date.
func NewAssignmentSource(db *database.DB) payroll.AssignmentSource {
	return &siteRepositoryImpl{db: db}
}

const siteColumns = `id, client_id, name, address, work_date, start_time, end_time,
	notes, created_at, updated_at`

func scanSite(row pgx.Row) (site.Site, error) {
	var s site.Site
	err := row.Scan(
		&s.ID,
		&s.ClientID,
		&s.Name,
		&s.Address,
		&s.WorkDate,
		&s.StartTime,
		&s.EndTime,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// Create implements site.SiteRepository.
func (r *siteRepositoryImpl) Create(ctx context.Context, s site.Site) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sites (
			id, client_id, name, address, work_date, start_time, end_time, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + siteColumns

	created, err := scanSite(q.QueryRow(ctx, query,
		s.ID,
		s.ClientID,
		s.Name,
		s.Address,
		s.WorkDate,
		s.StartTime,
		s.EndTime,
		s.Notes,
	))
	if err != nil {
		return site.Site{}, fmt.Errorf("failed to create site: %w", err)
	}

	return created, nil
}

// GetByID implements site.SiteRepository.
func (r *siteRepositoryImpl) GetByID(ctx context.Context, id string) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.client_id, s.name, s.address, s.work_date, s.start_time, s.end_time,
			s.notes, s.created_at, s.updated_at,
			c.name,
			(SELECT COUNT(*) FROM site_assignments sa WHERE sa.site_id = s.id)
		FROM sites s
		LEFT JOIN clients c ON c.id = s.client_id
		WHERE s.id = $1
	`

	var s site.Site
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.ClientID,
		&s.Name,
		&s.Address,
		&s.WorkDate,
		&s.StartTime,
		&s.EndTime,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.ClientName,
		&s.EmployeeCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to get site: %w", err)
	}

	return s, nil
}

// List implements site.SiteRepository.
func (r *siteRepositoryImpl) List(ctx context.Context, filter site.SiteFilter) ([]site.Site, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.ClientID != nil {
		conditions = append(conditions, fmt.Sprintf("s.client_id = $%d", argIdx))
		args = append(args, *filter.ClientID)
		argIdx++
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("s.work_date >= $%d", argIdx))
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("s.work_date <= $%d", argIdx))
		args = append(args, *filter.DateTo)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("s.name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var totalCount int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM sites s WHERE `+whereClause, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count sites: %w", err)
	}

	sortColumns := map[string]string{
		"work_date":  "s.work_date",
		"name":       "s.name",
		"created_at": "s.created_at",
	}
	sortBy, ok := sortColumns[filter.SortBy]
	if !ok {
		sortBy = "s.work_date"
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
		SELECT s.id, s.client_id, s.name, s.address, s.work_date, s.start_time, s.end_time,
			s.notes, s.created_at, s.updated_at,
			c.name,
			(SELECT COUNT(*) FROM site_assignments sa WHERE sa.site_id = s.id)
		FROM sites s
		LEFT JOIN clients c ON c.id = s.client_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereClause, sortBy, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		var s site.Site
		err := rows.Scan(
			&s.ID,
			&s.ClientID,
			&s.Name,
			&s.Address,
			&s.WorkDate,
			&s.StartTime,
			&s.EndTime,
			&s.Notes,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.ClientName,
			&s.EmployeeCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}

	return sites, totalCount, nil
}

// Update implements site.SiteRepository.
func (r *siteRepositoryImpl) Update(ctx context.Context, req site.UpdateSiteRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.ClientID != nil {
		if *req.ClientID == "" {
			setClauses = append(setClauses, "client_id = NULL")
		} else {
			addSet("client_id", *req.ClientID)
		}
	}
	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Address != nil {
		addSet("address", *req.Address)
	}
	if req.WorkDate != nil {
		workDate, err := time.Parse("2006-01-02", *req.WorkDate)
		if err != nil {
			return fmt.Errorf("invalid work_date: %w", err)
		}
		addSet("work_date", workDate)
	}
	if req.StartTime != nil {
		addSet("start_time", *req.StartTime)
	}
	if req.EndTime != nil {
		addSet("end_time", *req.EndTime)
	}
	if req.Notes != nil {
		addSet("notes", *req.Notes)
	}

	if len(setClauses) == 1 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE sites SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update site: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return site.ErrSiteNotFound
	}

	return nil
}

// Delete implements site.SiteRepository.
func (r *siteRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return site.ErrSiteNotFound
	}

	return nil
}

// AssignEmployee implements site.SiteRepository.
func (r *siteRepositoryImpl) AssignEmployee(ctx context.Context, a site.SiteAssignment) (site.SiteAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO site_assignments (id, site_id, employee_id, work_hours, overtime_hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, site_id, employee_id, work_hours, overtime_hours, created_at, updated_at
	`

	var created site.SiteAssignment
	err := q.QueryRow(ctx, query,
		a.ID,
		a.SiteID,
		a.EmployeeID,
		a.WorkHours,
		a.OvertimeHours,
	).Scan(
		&created.ID,
		&created.SiteID,
		&created.EmployeeID,
		&created.WorkHours,
		&created.OvertimeHours,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_site_assignments_site_employee") {
			return site.SiteAssignment{}, site.ErrAssignmentExists
		}
		return site.SiteAssignment{}, fmt.Errorf("failed to assign employee: %w", err)
	}

	return created, nil
}

// ListAssignments implements site.SiteRepository.
func (r *siteRepositoryImpl) ListAssignments(ctx context.Context, siteID string) ([]site.SiteAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.site_id, sa.employee_id, sa.work_hours, sa.overtime_hours,
			sa.created_at, sa.updated_at, e.name
		FROM site_assignments sa
		JOIN employees e ON e.id = sa.employee_id
		WHERE sa.site_id = $1
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list site assignments: %w", err)
	}
	defer rows.Close()

	var assignments []site.SiteAssignment
	for rows.Next() {
		var a site.SiteAssignment
		err := rows.Scan(
			&a.ID,
			&a.SiteID,
			&a.EmployeeID,
			&a.WorkHours,
			&a.OvertimeHours,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// UpdateAssignmentHours implements site.SiteRepository.
func (r *siteRepositoryImpl) UpdateAssignmentHours(ctx context.Context, req site.UpdateAssignmentRequest) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE site_assignments
		SET work_hours = $1, overtime_hours = $2, updated_at = NOW()
		WHERE site_id = $3 AND employee_id = $4
	`, req.WorkHours, req.OvertimeHours, req.SiteID, req.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to update assignment hours: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return site.ErrAssignmentNotFound
	}

	return nil
}

// UnassignEmployee implements site.SiteRepository.
func (r *siteRepositoryImpl) UnassignEmployee(ctx context.Context, siteID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM site_assignments WHERE site_id = $1 AND employee_id = $2
	`, siteID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to unassign employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return site.ErrAssignmentNotFound
	}

	return nil
}

// ListAssignmentFacts implements payroll.AssignmentSource. The window
// is a closed interval on the owning site's work_date.
func (r *siteRepositoryImpl) ListAssignmentFacts(ctx context.Context, employeeID string, start, end time.Time) ([]payroll.AssignmentFact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.work_date, sa.work_hours, sa.overtime_hours
		FROM site_assignments sa
		JOIN sites s ON s.id = sa.site_id
		WHERE sa.employee_id = $1 AND s.work_date BETWEEN $2 AND $3
		ORDER BY s.work_date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignment facts: %w", err)
	}
	defer rows.Close()

	var facts []payroll.AssignmentFact
	for rows.Next() {
		var f payroll.AssignmentFact
		if err := rows.Scan(&f.OccurrenceDate, &f.WorkHours, &f.OvertimeHours); err != nil {
			return nil, fmt.Errorf("failed to scan assignment fact: %w", err)
		}
		facts = append(facts, f)
	}

	return facts, nil
}
