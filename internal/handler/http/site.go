package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/site"
	"github.com/kensetsu-apps/works-backend-go/internal/handler/http/response"
)

type SiteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	AssignEmployee(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
	UpdateAssignmentHours(w http.ResponseWriter, r *http.Request)
	UnassignEmployee(w http.ResponseWriter, r *http.Request)
}

type siteHandlerImpl struct {
	siteService site.SiteService
}

func NewSiteHandler(siteService site.SiteService) SiteHandler {
	return &siteHandlerImpl{siteService: siteService}
}

func (h *siteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req site.CreateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.siteService.CreateSite(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Site created", result)
}

func (h *siteHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	result, err := h.siteService.GetSite(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *siteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := site.SiteFilter{
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}

	if v := r.URL.Query().Get("client_id"); v != "" {
		filter.ClientID = &v
	}
	if v := r.URL.Query().Get("date_from"); v != "" {
		filter.DateFrom = &v
	}
	if v := r.URL.Query().Get("date_to"); v != "" {
		filter.DateTo = &v
	}
	if v := r.URL.Query().Get("search"); v != "" {
		filter.Search = &v
	}
	if v := r.URL.Query().Get("page"); v != "" {
		filter.Page, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}

	result, err := h.siteService.ListSites(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

func (h *siteHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	var req site.UpdateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	if err := h.siteService.UpdateSite(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Site updated", nil)
}

func (h *siteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	if err := h.siteService.DeleteSite(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Site deleted", nil)
}

func (h *siteHandlerImpl) AssignEmployee(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "id")
	if siteID == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	var req site.AssignEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.SiteID = siteID

	result, err := h.siteService.AssignEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee assigned", result)
}

func (h *siteHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "id")
	if siteID == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	result, err := h.siteService.ListAssignments(r.Context(), siteID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *siteHandlerImpl) UpdateAssignmentHours(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "id")
	employeeID := chi.URLParam(r, "employeeId")
	if siteID == "" || employeeID == "" {
		response.BadRequest(w, "Site ID and employee ID are required", nil)
		return
	}

	var req site.UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.SiteID = siteID
	req.EmployeeID = employeeID

	if err := h.siteService.UpdateAssignmentHours(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment hours updated", nil)
}

func (h *siteHandlerImpl) UnassignEmployee(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "id")
	employeeID := chi.URLParam(r, "employeeId")
	if siteID == "" || employeeID == "" {
		response.BadRequest(w, "Site ID and employee ID are required", nil)
		return
	}

	if err := h.siteService.UnassignEmployee(r.Context(), siteID, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee unassigned", nil)
}
