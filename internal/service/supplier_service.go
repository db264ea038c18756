package service

import (
	"context"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"
	"github.com/amine-amroussi/gestion-de-stock/internal/repository"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.SupplierRequest) (*dto.SupplierResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.SupplierResponse, error)
	List(ctx context.Context, filter dto.PageFilter) (*dto.SupplierListResponse, error)
	Update(ctx context.Context, id uint, req dto.SupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, id uint) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &model.Supplier{Name: req.Name, Address: req.Address, Phone: req.Phone}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, apierror.Internal("Erreur lors de la création du fournisseur")
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) GetByID(ctx context.Context, id uint) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Fournisseur introuvable")
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) List(ctx context.Context, filter dto.PageFilter) (*dto.SupplierListResponse, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	suppliers, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des fournisseurs")
	}

	resp := &dto.SupplierListResponse{
		Suppliers: make([]dto.SupplierResponse, 0, len(suppliers)),
		Pagination: dto.Pagination{
			TotalItems:  total,
			TotalPages:  totalPages(total, filter.Limit),
			CurrentPage: filter.Page,
			PageSize:    filter.Limit,
		},
	}
	for i := range suppliers {
		resp.Suppliers = append(resp.Suppliers, *supplierToResponse(&suppliers[i]))
	}
	return resp, nil
}

func (s *supplierService) Update(ctx context.Context, id uint, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Fournisseur introuvable")
	}
	supplier.Name = req.Name
	supplier.Address = req.Address
	supplier.Phone = req.Phone
	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, apierror.Internal("Erreur lors de la mise à jour du fournisseur")
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Fournisseur introuvable")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal("Erreur lors de la suppression du fournisseur")
	}
	return nil
}

func supplierToResponse(s *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{ID: s.ID, Name: s.Name, Address: s.Address, Phone: s.Phone}
}
