package service

import (
	"context"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"
	"github.com/amine-amroussi/gestion-de-stock/internal/repository"
)

type EmployeeService interface {
	Create(ctx context.Context, req dto.EmployeeRequest) (*dto.EmployeeResponse, error)
	GetByCIN(ctx context.Context, cin string) (*dto.EmployeeResponse, error)
	List(ctx context.Context, filter dto.PageFilter) (*dto.EmployeeListResponse, error)
	Update(ctx context.Context, cin string, req dto.EmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, cin string) error
}

type employeeService struct {
	repo repository.EmployeeRepository
}

func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) Create(ctx context.Context, req dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if _, err := s.repo.FindByCIN(ctx, req.CIN); err == nil {
		return nil, apierror.BadRequest("Un employé avec ce CIN existe déjà")
	}
	employee := &model.Employee{
		CIN:       req.CIN,
		Name:      req.Name,
		Role:      req.Role,
		SalaryFix: req.SalaryFix,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, apierror.Internal("Erreur lors de la création de l'employé")
	}
	return employeeToResponse(employee), nil
}

func (s *employeeService) GetByCIN(ctx context.Context, cin string) (*dto.EmployeeResponse, error) {
	employee, err := s.repo.FindByCIN(ctx, cin)
	if err != nil {
		return nil, apierror.NotFound("Employé introuvable")
	}
	return employeeToResponse(employee), nil
}

func (s *employeeService) List(ctx context.Context, filter dto.PageFilter) (*dto.EmployeeListResponse, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	employees, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des employés")
	}

	resp := &dto.EmployeeListResponse{
		Employees: make([]dto.EmployeeResponse, 0, len(employees)),
		Pagination: dto.Pagination{
			TotalItems:  total,
			TotalPages:  totalPages(total, filter.Limit),
			CurrentPage: filter.Page,
			PageSize:    filter.Limit,
		},
	}
	for i := range employees {
		resp.Employees = append(resp.Employees, *employeeToResponse(&employees[i]))
	}
	return resp, nil
}

func (s *employeeService) Update(ctx context.Context, cin string, req dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := s.repo.FindByCIN(ctx, cin)
	if err != nil {
		return nil, apierror.NotFound("Employé introuvable")
	}
	employee.Name = req.Name
	employee.Role = req.Role
	employee.SalaryFix = req.SalaryFix
	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, apierror.Internal("Erreur lors de la mise à jour de l'employé")
	}
	return employeeToResponse(employee), nil
}

func (s *employeeService) Delete(ctx context.Context, cin string) error {
	if _, err := s.repo.FindByCIN(ctx, cin); err != nil {
		return apierror.NotFound("Employé introuvable")
	}
	if err := s.repo.Delete(ctx, cin); err != nil {
		return apierror.Internal("Erreur lors de la suppression de l'employé")
	}
	return nil
}

func employeeToResponse(e *model.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		CIN:       e.CIN,
		Name:      e.Name,
		Role:      e.Role,
		SalaryFix: e.SalaryFix,
	}
}
