package sale

import (
	"context"
)

type SaleRepository interface {
	Create(ctx context.Context, s Sale) (Sale, error)
	GetByID(ctx context.Context, id string) (Sale, error)
	List(ctx context.Context, filter SaleFilter) ([]Sale, int64, error)
	Update(ctx context.Context, req UpdateSaleRequest) error
	Delete(ctx context.Context, id string) error
}
