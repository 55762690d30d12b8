package employee

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/employee"
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		ID:                uuid.NewString(),
		Name:              req.Name,
		NameKana:          req.NameKana,
		Email:             req.Email,
		Phone:             req.Phone,
		Address:           req.Address,
		UnitPay:           req.UnitPay,
		HourlyOvertimePay: req.HourlyOvertimePay,
		IsActive:          true,
		Notes:             req.Notes,
	}
	if req.HireDate != nil {
		hireDate, _ := time.Parse("2006-01-02", *req.HireDate)
		emp.HireDate = &hireDate
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	employees, totalCount, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	return employee.ListEmployeeResponse{
		Data:       responses,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.employeeRepo.Update(ctx, req)
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:                e.ID,
		Name:              e.Name,
		NameKana:          e.NameKana,
		Email:             e.Email,
		Phone:             e.Phone,
		Address:           e.Address,
		UnitPay:           e.UnitPay,
		HourlyOvertimePay: e.HourlyOvertimePay,
		IsActive:          e.IsActive,
		Notes:             e.Notes,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         e.UpdatedAt.Format(time.RFC3339),
	}
	if e.HireDate != nil {
		formatted := e.HireDate.Format("2006-01-02")
		resp.HireDate = &formatted
	}
	return resp
}
