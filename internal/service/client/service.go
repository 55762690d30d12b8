package client

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/client"
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/database"
)

type ClientServiceImpl struct {
	db         *database.DB
	clientRepo client.ClientRepository
}

func NewClientService(db *database.DB, clientRepo client.ClientRepository) client.ClientService {
	return &ClientServiceImpl{
		db:         db,
		clientRepo: clientRepo,
	}
}

// CreateClient implements client.ClientService.
func (s *ClientServiceImpl) CreateClient(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	newClient := client.Client{
		ID:          uuid.NewString(),
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Notes:       req.Notes,
	}

	created, err := s.clientRepo.Create(ctx, newClient)
	if err != nil {
		return client.ClientResponse{}, err
	}

	return toClientResponse(created), nil
}

// GetClient implements client.ClientService.
func (s *ClientServiceImpl) GetClient(ctx context.Context, id string) (client.ClientResponse, error) {
	found, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return client.ClientResponse{}, err
	}
	return toClientResponse(found), nil
}

// ListClients implements client.ClientService.
func (s *ClientServiceImpl) ListClients(ctx context.Context, filter client.ClientFilter) (client.ListClientResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	clients, totalCount, err := s.clientRepo.List(ctx, filter)
	if err != nil {
		return client.ListClientResponse{}, err
	}

	responses := make([]client.ClientResponse, 0, len(clients))
	for _, found := range clients {
		responses = append(responses, toClientResponse(found))
	}

	return client.ListClientResponse{
		Data:       responses,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// UpdateClient implements client.ClientService.
func (s *ClientServiceImpl) UpdateClient(ctx context.Context, req client.UpdateClientRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.clientRepo.Update(ctx, req)
}

// DeleteClient implements client.ClientService.
func (s *ClientServiceImpl) DeleteClient(ctx context.Context, id string) error {
	return s.clientRepo.Delete(ctx, id)
}

func toClientResponse(c client.Client) client.ClientResponse {
	return client.ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		ContactName: c.ContactName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}
