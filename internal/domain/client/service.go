package client

import (
	"context"
)

type ClientService interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (ClientResponse, error)
	GetClient(ctx context.Context, id string) (ClientResponse, error)
	ListClients(ctx context.Context, filter ClientFilter) (ListClientResponse, error)
	UpdateClient(ctx context.Context, req UpdateClientRequest) error
	DeleteClient(ctx context.Context, id string) error
}
