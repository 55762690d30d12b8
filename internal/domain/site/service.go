package site

import (
	"context"
)

type SiteService interface {
	CreateSite(ctx context.Context, req CreateSiteRequest) (SiteResponse, error)
	GetSite(ctx context.Context, id string) (SiteResponse, error)
	ListSites(ctx context.Context, filter SiteFilter) (ListSiteResponse, error)
	UpdateSite(ctx context.Context, req UpdateSiteRequest) error
	DeleteSite(ctx context.Context, id string) error

	AssignEmployee(ctx context.Context, req AssignEmployeeRequest) (SiteAssignmentResponse, error)
	ListAssignments(ctx context.Context, siteID string) ([]SiteAssignmentResponse, error)
	UpdateAssignmentHours(ctx context.Context, req UpdateAssignmentRequest) error
	UnassignEmployee(ctx context.Context, siteID, employeeID string) error
}
