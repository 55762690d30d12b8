package sale

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/client"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/sale"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/site"
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/database"
)

type SaleServiceImpl struct {
	db         *database.DB
	saleRepo   sale.SaleRepository
	clientRepo client.ClientRepository
	siteRepo   site.SiteRepository
}

func NewSaleService(
	db *database.DB,
	saleRepo sale.SaleRepository,
	clientRepo client.ClientRepository,
	siteRepo site.SiteRepository,
) sale.SaleService {
	return &SaleServiceImpl{
		db:         db,
		saleRepo:   saleRepo,
		clientRepo: clientRepo,
		siteRepo:   siteRepo,
	}
}

// CreateSale implements sale.SaleService.
func (s *SaleServiceImpl) CreateSale(ctx context.Context, req sale.CreateSaleRequest) (sale.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.SaleResponse{}, err
	}

	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		return sale.SaleResponse{}, err
	}
	if req.SiteID != nil {
		if _, err := s.siteRepo.GetByID(ctx, *req.SiteID); err != nil {
			return sale.SaleResponse{}, err
		}
	}

	saleDate, _ := time.Parse("2006-01-02", req.SaleDate)
	newSale := sale.Sale{
		ID:       uuid.NewString(),
		ClientID: req.ClientID,
		SiteID:   req.SiteID,
		Amount:   req.Amount,
		SaleDate: saleDate,
		Notes:    req.Notes,
	}

	created, err := s.saleRepo.Create(ctx, newSale)
	if err != nil {
		return sale.SaleResponse{}, err
	}

	return toSaleResponse(created), nil
}

// GetSale implements sale.SaleService.
func (s *SaleServiceImpl) GetSale(ctx context.Context, id string) (sale.SaleResponse, error) {
	found, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return sale.SaleResponse{}, err
	}
	return toSaleResponse(found), nil
}

// ListSales implements sale.SaleService.
func (s *SaleServiceImpl) ListSales(ctx context.Context, filter sale.SaleFilter) (sale.ListSaleResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	sales, totalCount, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		return sale.ListSaleResponse{}, err
	}

	responses := make([]sale.SaleResponse, 0, len(sales))
	for _, found := range sales {
		responses = append(responses, toSaleResponse(found))
	}

	return sale.ListSaleResponse{
		Data:       responses,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// UpdateSale implements sale.SaleService.
func (s *SaleServiceImpl) UpdateSale(ctx context.Context, req sale.UpdateSaleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.ClientID != nil {
		if _, err := s.clientRepo.GetByID(ctx, *req.ClientID); err != nil {
			return err
		}
	}
	if req.SiteID != nil && *req.SiteID != "" {
		if _, err := s.siteRepo.GetByID(ctx, *req.SiteID); err != nil {
			return err
		}
	}
	return s.saleRepo.Update(ctx, req)
}

// DeleteSale implements sale.SaleService.
func (s *SaleServiceImpl) DeleteSale(ctx context.Context, id string) error {
	return s.saleRepo.Delete(ctx, id)
}

func toSaleResponse(s sale.Sale) sale.SaleResponse {
	return sale.SaleResponse{
		ID:         s.ID,
		ClientID:   s.ClientID,
		ClientName: s.ClientName,
		SiteID:     s.SiteID,
		SiteName:   s.SiteName,
		Amount:     s.Amount,
		SaleDate:   s.SaleDate.Format("2006-01-02"),
		Notes:      s.Notes,
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  s.UpdatedAt.Format(time.RFC3339),
	}
}
