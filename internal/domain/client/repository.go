package client

import (
	"context"
)

type ClientRepository interface {
	Create(ctx context.Context, c Client) (Client, error)
	GetByID(ctx context.Context, id string) (Client, error)
	List(ctx context.Context, filter ClientFilter) ([]Client, int64, error)
	Update(ctx context.Context, req UpdateClientRequest) error
	Delete(ctx context.Context, id string) error
}
