package service

import (
	"context"
	"time"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"
	"github.com/amine-amroussi/gestion-de-stock/internal/repository"
)

type ChargeService interface {
	Create(ctx context.Context, req dto.CreateChargeRequest) (*dto.ChargeResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ChargeResponse, error)
	List(ctx context.Context, filter dto.PageFilter) (*dto.ChargeListResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateChargeRequest) (*dto.ChargeResponse, error)
}

type chargeService struct {
	repo repository.ChargeRepository
}

func NewChargeService(repo repository.ChargeRepository) ChargeService {
	return &chargeService{repo: repo}
}

func (s *chargeService) Create(ctx context.Context, req dto.CreateChargeRequest) (*dto.ChargeResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apierror.BadRequest("Date invalide, format attendu AAAA-MM-JJ")
	}
	if _, err := s.repo.FindByTypeAndDate(ctx, req.Type, date); err == nil {
		return nil, apierror.BadRequest("Une charge de ce type existe déjà à cette date")
	}

	charge := &model.Charge{Type: req.Type, Amount: req.Amount, Date: date}
	if err := s.repo.Create(ctx, charge); err != nil {
		return nil, apierror.Internal("Erreur lors de la création de la charge")
	}
	return chargeToResponse(charge), nil
}

func (s *chargeService) GetByID(ctx context.Context, id uint) (*dto.ChargeResponse, error) {
	charge, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Charge introuvable")
	}
	return chargeToResponse(charge), nil
}

func (s *chargeService) List(ctx context.Context, filter dto.PageFilter) (*dto.ChargeListResponse, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	charges, total, err := s.repo.List(ctx, filter.Page, filter.Limit)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des charges")
	}

	resp := &dto.ChargeListResponse{
		Charges: make([]dto.ChargeResponse, 0, len(charges)),
		Pagination: dto.Pagination{
			TotalItems:  total,
			TotalPages:  totalPages(total, filter.Limit),
			CurrentPage: filter.Page,
			PageSize:    filter.Limit,
		},
	}
	for i := range charges {
		resp.Charges = append(resp.Charges, *chargeToResponse(&charges[i]))
	}
	return resp, nil
}

func (s *chargeService) Update(ctx context.Context, id uint, req dto.UpdateChargeRequest) (*dto.ChargeResponse, error) {
	charge, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Charge introuvable")
	}
	if req.Type != nil {
		charge.Type = *req.Type
	}
	if req.Amount != nil {
		charge.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, apierror.BadRequest("Date invalide, format attendu AAAA-MM-JJ")
		}
		charge.Date = date
	}
	if err := s.repo.Update(ctx, charge); err != nil {
		return nil, apierror.Internal("Erreur lors de la mise à jour de la charge")
	}
	return chargeToResponse(charge), nil
}

func chargeToResponse(c *model.Charge) *dto.ChargeResponse {
	return &dto.ChargeResponse{
		ID:     c.ID,
		Type:   c.Type,
		Amount: c.Amount,
		Date:   c.Date.Format("2006-01-02"),
	}
}
