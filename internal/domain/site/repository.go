package site

import (
	"context"
)

type SiteRepository interface {
	Create(ctx context.Context, s Site) (Site, error)
	GetByID(ctx context.Context, id string) (Site, error)
	List(ctx context.Context, filter SiteFilter) ([]Site, int64, error)
	Update(ctx context.Context, req UpdateSiteRequest) error
	Delete(ctx context.Context, id string) error

	// Assignments
	AssignEmployee(ctx context.Context, a SiteAssignment) (SiteAssignment, error)
	ListAssignments(ctx context.Context, siteID string) ([]SiteAssignment, error)
	UpdateAssignmentHours(ctx context.Context, req UpdateAssignmentRequest) error
	UnassignEmployee(ctx context.Context, siteID, employeeID string) error
}
