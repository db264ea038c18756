package service

import (
	"context"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"
	"github.com/amine-amroussi/gestion-de-stock/internal/repository"
)

type BoxService interface {
	Create(ctx context.Context, req dto.CreateBoxRequest) (*dto.BoxResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.BoxResponse, error)
	List(ctx context.Context, filter dto.PageFilter) (*dto.BoxListResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateBoxRequest) (*dto.BoxResponse, error)
	Delete(ctx context.Context, id uint) error
}

type boxService struct {
	repo repository.BoxRepository
}

func NewBoxService(repo repository.BoxRepository) BoxService {
	return &boxService{repo: repo}
}

func (s *boxService) Create(ctx context.Context, req dto.CreateBoxRequest) (*dto.BoxResponse, error) {
	box := &model.Box{
		Designation: req.Designation,
		Capacity:    req.Capacity,
		InStock:     req.InStock,
		Empty:       req.Empty,
	}
	if err := s.repo.Create(ctx, box); err != nil {
		return nil, apierror.BadRequest("Une caisse avec cette désignation existe déjà")
	}
	return boxToResponse(box), nil
}

func (s *boxService) GetByID(ctx context.Context, id uint) (*dto.BoxResponse, error) {
	box, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Caisse introuvable")
	}
	return boxToResponse(box), nil
}

func (s *boxService) List(ctx context.Context, filter dto.PageFilter) (*dto.BoxListResponse, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	boxes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des caisses")
	}

	resp := &dto.BoxListResponse{
		Boxes: make([]dto.BoxResponse, 0, len(boxes)),
		Pagination: dto.Pagination{
			TotalItems:  total,
			TotalPages:  totalPages(total, filter.Limit),
			CurrentPage: filter.Page,
			PageSize:    filter.Limit,
		},
	}
	for i := range boxes {
		resp.Boxes = append(resp.Boxes, *boxToResponse(&boxes[i]))
	}
	return resp, nil
}

func (s *boxService) Update(ctx context.Context, id uint, req dto.UpdateBoxRequest) (*dto.BoxResponse, error) {
	box, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Caisse introuvable")
	}
	if req.Designation != nil {
		box.Designation = *req.Designation
	}
	if req.Capacity != nil {
		box.Capacity = *req.Capacity
	}
	if err := s.repo.Update(ctx, box); err != nil {
		return nil, apierror.Internal("Erreur lors de la mise à jour de la caisse")
	}
	return boxToResponse(box), nil
}

func (s *boxService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Caisse introuvable")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal("Erreur lors de la suppression de la caisse")
	}
	return nil
}

func boxToResponse(b *model.Box) *dto.BoxResponse {
	return &dto.BoxResponse{
		ID:          b.ID,
		Designation: b.Designation,
		Capacity:    b.Capacity,
		InStock:     b.InStock,
		Empty:       b.Empty,
		Sent:        b.Sent,
	}
}
