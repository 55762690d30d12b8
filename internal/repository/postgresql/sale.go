package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/sale"
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/database"
)

type saleRepositoryImpl struct {
	db *database.DB
}

func NewSaleRepository(db *database.DB) sale.SaleRepository {
	return &saleRepositoryImpl{db: db}
}

// Create implements sale.SaleRepository.
func (r *saleRepositoryImpl) Create(ctx context.Context, s sale.Sale) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sales (id, client_id, site_id, amount, sale_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, client_id, site_id, amount, sale_date, notes, created_at, updated_at
	`

	var created sale.Sale
	err := q.QueryRow(ctx, query,
		s.ID,
		s.ClientID,
		s.SiteID,
		s.Amount,
		s.SaleDate,
		s.Notes,
	).Scan(
		&created.ID,
		&created.ClientID,
		&created.SiteID,
		&created.Amount,
		&created.SaleDate,
		&created.Notes,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return sale.Sale{}, fmt.Errorf("failed to create sale: %w", err)
	}

	return created, nil
}

// GetByID implements sale.SaleRepository.
func (r *saleRepositoryImpl) GetByID(ctx context.Context, id string) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.client_id, sa.site_id, sa.amount, sa.sale_date, sa.notes,
			sa.created_at, sa.updated_at, c.name, st.name
		FROM sales sa
		JOIN clients c ON c.id = sa.client_id
		LEFT JOIN sites st ON st.id = sa.site_id
		WHERE sa.id = $1
	`

	var s sale.Sale
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.ClientID,
		&s.SiteID,
		&s.Amount,
		&s.SaleDate,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.ClientName,
		&s.SiteName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sale.Sale{}, sale.ErrSaleNotFound
		}
		return sale.Sale{}, fmt.Errorf("failed to get sale: %w", err)
	}

	return s, nil
}

// List implements sale.SaleRepository.
func (r *saleRepositoryImpl) List(ctx context.Context, filter sale.SaleFilter) ([]sale.Sale, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.ClientID != nil {
		conditions = append(conditions, fmt.Sprintf("sa.client_id = $%d", argIdx))
		args = append(args, *filter.ClientID)
		argIdx++
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("sa.sale_date >= $%d", argIdx))
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("sa.sale_date <= $%d", argIdx))
		args = append(args, *filter.DateTo)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var totalCount int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM sales sa WHERE `+whereClause, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	sortColumns := map[string]string{
		"sale_date":  "sa.sale_date",
		"amount":     "sa.amount",
		"created_at": "sa.created_at",
	}
	sortBy, ok := sortColumns[filter.SortBy]
	if !ok {
		sortBy = "sa.sale_date"
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
		SELECT sa.id, sa.client_id, sa.site_id, sa.amount, sa.sale_date, sa.notes,
			sa.created_at, sa.updated_at, c.name, st.name
		FROM sales sa
		JOIN clients c ON c.id = sa.client_id
		LEFT JOIN sites st ON st.id = sa.site_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereClause, sortBy, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var sales []sale.Sale
	for rows.Next() {
		var s sale.Sale
		err := rows.Scan(
			&s.ID,
			&s.ClientID,
			&s.SiteID,
			&s.Amount,
			&s.SaleDate,
			&s.Notes,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.ClientName,
			&s.SiteName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}

	return sales, totalCount, nil
}

// Update implements sale.SaleRepository.
func (r *saleRepositoryImpl) Update(ctx context.Context, req sale.UpdateSaleRequest) error {
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
		addSet("client_id", *req.ClientID)
	}
	if req.SiteID != nil {
		if *req.SiteID == "" {
			setClauses = append(setClauses, "site_id = NULL")
		} else {
			addSet("site_id", *req.SiteID)
		}
	}
	if req.Amount != nil {
		addSet("amount", *req.Amount)
	}
	if req.SaleDate != nil {
		saleDate, err := time.Parse("2006-01-02", *req.SaleDate)
		if err != nil {
			return fmt.Errorf("invalid sale_date: %w", err)
		}
		addSet("sale_date", saleDate)
	}
	if req.Notes != nil {
		addSet("notes", *req.Notes)
	}

	if len(setClauses) == 1 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE sales SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sale.ErrSaleNotFound
	}

	return nil
}

// Delete implements sale.SaleRepository.
func (r *saleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sale.ErrSaleNotFound
	}

	return nil
}
