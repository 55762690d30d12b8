package site

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/client"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/employee"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/site"
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/database"
)

type SiteServiceImpl struct {
	db           *database.DB
	siteRepo     site.SiteRepository
	clientRepo   client.ClientRepository
	employeeRepo employee.EmployeeRepository
}

func NewSiteService(
	db *database.DB,
	siteRepo site.SiteRepository,
	clientRepo client.ClientRepository,
	employeeRepo employee.EmployeeRepository,
) site.SiteService {
	return &SiteServiceImpl{
		db:           db,
		siteRepo:     siteRepo,
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateSite implements site.SiteService.
func (s *SiteServiceImpl) CreateSite(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	if req.ClientID != nil {
		if _, err := s.clientRepo.GetByID(ctx, *req.ClientID); err != nil {
			return site.SiteResponse{}, err
		}
	}

	workDate, _ := time.Parse("2006-01-02", req.WorkDate)
	newSite := site.Site{
		ID:        uuid.NewString(),
		ClientID:  req.ClientID,
		Name:      req.Name,
		Address:   req.Address,
		WorkDate:  workDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	}

	created, err := s.siteRepo.Create(ctx, newSite)
	if err != nil {
		return site.SiteResponse{}, err
	}

	return toSiteResponse(created), nil
}

// GetSite implements site.SiteService.
func (s *SiteServiceImpl) GetSite(ctx context.Context, id string) (site.SiteResponse, error) {
	found, err := s.siteRepo.GetByID(ctx, id)
	if err != nil {
		return site.SiteResponse{}, err
	}
	return toSiteResponse(found), nil
}

// ListSites implements site.SiteService.
func (s *SiteServiceImpl) ListSites(ctx context.Context, filter site.SiteFilter) (site.ListSiteResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	sites, totalCount, err := s.siteRepo.List(ctx, filter)
	if err != nil {
		return site.ListSiteResponse{}, err
	}

	responses := make([]site.SiteResponse, 0, len(sites))
	for _, found := range sites {
		responses = append(responses, toSiteResponse(found))
	}

	return site.ListSiteResponse{
		Data:       responses,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// UpdateSite implements site.SiteService.
func (s *SiteServiceImpl) UpdateSite(ctx context.Context, req site.UpdateSiteRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.ClientID != nil && *req.ClientID != "" {
		if _, err := s.clientRepo.GetByID(ctx, *req.ClientID); err != nil {
			return err
		}
	}
	return s.siteRepo.Update(ctx, req)
}

// DeleteSite implements site.SiteService.
func (s *SiteServiceImpl) DeleteSite(ctx context.Context, id string) error {
	return s.siteRepo.Delete(ctx, id)
}

// AssignEmployee implements site.SiteService.
func (s *SiteServiceImpl) AssignEmployee(ctx context.Context, req site.AssignEmployeeRequest) (site.SiteAssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteAssignmentResponse{}, err
	}

	if _, err := s.siteRepo.GetByID(ctx, req.SiteID); err != nil {
		return site.SiteAssignmentResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return site.SiteAssignmentResponse{}, err
	}

	assignment := site.SiteAssignment{
		ID:            uuid.NewString(),
		SiteID:        req.SiteID,
		EmployeeID:    req.EmployeeID,
		WorkHours:     req.WorkHours,
		OvertimeHours: req.OvertimeHours,
	}

	created, err := s.siteRepo.AssignEmployee(ctx, assignment)
	if err != nil {
		return site.SiteAssignmentResponse{}, err
	}

	return toAssignmentResponse(created), nil
}

// ListAssignments implements site.SiteService.
func (s *SiteServiceImpl) ListAssignments(ctx context.Context, siteID string) ([]site.SiteAssignmentResponse, error) {
	if _, err := s.siteRepo.GetByID(ctx, siteID); err != nil {
		return nil, err
	}

	assignments, err := s.siteRepo.ListAssignments(ctx, siteID)
	if err != nil {
		return nil, err
	}

	responses := make([]site.SiteAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toAssignmentResponse(a))
	}

	return responses, nil
}

// UpdateAssignmentHours implements site.SiteService.
func (s *SiteServiceImpl) UpdateAssignmentHours(ctx context.Context, req site.UpdateAssignmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.siteRepo.UpdateAssignmentHours(ctx, req)
}

// UnassignEmployee implements site.SiteService.
func (s *SiteServiceImpl) UnassignEmployee(ctx context.Context, siteID, employeeID string) error {
	return s.siteRepo.UnassignEmployee(ctx, siteID, employeeID)
}

func toSiteResponse(s site.Site) site.SiteResponse {
	return site.SiteResponse{
		ID:            s.ID,
		ClientID:      s.ClientID,
		ClientName:    s.ClientName,
		Name:          s.Name,
		Address:       s.Address,
		WorkDate:      s.WorkDate.Format("2006-01-02"),
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		Notes:         s.Notes,
		EmployeeCount: s.EmployeeCount,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     s.UpdatedAt.Format(time.RFC3339),
	}
}

func toAssignmentResponse(a site.SiteAssignment) site.SiteAssignmentResponse {
	return site.SiteAssignmentResponse{
		ID:            a.ID,
		SiteID:        a.SiteID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		WorkHours:     a.WorkHours,
		OvertimeHours: a.OvertimeHours,
	}
}
