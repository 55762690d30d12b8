package sale

import (
	"context"
)

type SaleService interface {
	CreateSale(ctx context.Context, req CreateSaleRequest) (SaleResponse, error)
	GetSale(ctx context.Context, id string) (SaleResponse, error)
	ListSales(ctx context.Context, filter SaleFilter) (ListSaleResponse, error)
	UpdateSale(ctx context.Context, req UpdateSaleRequest) error
	DeleteSale(ctx context.Context, id string) error
}
