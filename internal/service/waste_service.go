package service

import (
	"context"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/repository"

	"gorm.io/gorm"
)

type WasteService interface {
	Create(ctx context.Context, req dto.CreateWasteRequest) (*dto.WasteResponse, error)
	List(ctx context.Context) (*dto.WasteListResponse, error)
	GetByProduct(ctx context.Context, productID uint) (*dto.WasteListResponse, error)
}

type wasteService struct {
	repo        repository.WasteRepository
	productRepo repository.ProductRepository
	ledger      LedgerService
}

func NewWasteService(repo repository.WasteRepository, productRepo repository.ProductRepository, ledger LedgerService) WasteService {
	return &wasteService{repo: repo, productRepo: productRepo, ledger: ledger}
}

// Create accumulates a manual spoilage declaration into the standing ledger.
// Declaring an existing product+type pair adds to the quantity.
func (s *wasteService) Create(ctx context.Context, req dto.CreateWasteRequest) (*dto.WasteResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, apierror.NotFound("Produit introuvable")
	}

	err = runTx(ctx, s.productRepo.DB(), func(tx *gorm.DB) error {
		return s.ledger.AdjustWasteTx(tx, req.ProductID, req.Type, req.Qtt)
	})
	if err != nil {
		return nil, wrapInternal(err, "waste create failed", "Erreur lors de l'enregistrement du déchet")
	}

	waste, err := s.repo.Find(ctx, req.ProductID, req.Type)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture du déchet")
	}
	return &dto.WasteResponse{
		ProductID:   waste.ProductID,
		Designation: product.Designation,
		Type:        waste.Type,
		Qtt:         waste.Qtt,
	}, nil
}

func (s *wasteService) List(ctx context.Context) (*dto.WasteListResponse, error) {
	wastes, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des déchets")
	}
	resp := &dto.WasteListResponse{Wastes: make([]dto.WasteResponse, 0, len(wastes))}
	for _, w := range wastes {
		item := dto.WasteResponse{ProductID: w.ProductID, Type: w.Type, Qtt: w.Qtt}
		if w.Product != nil {
			item.Designation = w.Product.Designation
		}
		resp.Wastes = append(resp.Wastes, item)
	}
	return resp, nil
}

func (s *wasteService) GetByProduct(ctx context.Context, productID uint) (*dto.WasteListResponse, error) {
	wastes, err := s.repo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des déchets")
	}
	if len(wastes) == 0 {
		return nil, apierror.NotFound("Aucun déchet pour ce produit")
	}
	resp := &dto.WasteListResponse{Wastes: make([]dto.WasteResponse, 0, len(wastes))}
	for _, w := range wastes {
		item := dto.WasteResponse{ProductID: w.ProductID, Type: w.Type, Qtt: w.Qtt}
		if w.Product != nil {
			item.Designation = w.Product.Designation
		}
		resp.Wastes = append(resp.Wastes, item)
	}
	return resp, nil
}
