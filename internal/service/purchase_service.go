package service

import (
	"context"
	"errors"
	"time"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"
	"github.com/amine-amroussi/gestion-de-stock/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseService interface {
	Create(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.PurchaseResponse, error)
	List(ctx context.Context, filter dto.PurchaseFilter) (*dto.PurchaseListResponse, error)
}

type purchaseService struct {
	repo         repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	ledger       LedgerService
}

func NewPurchaseService(
	repo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	ledger LedgerService,
) PurchaseService {
	return &purchaseService{
		repo:         repo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		ledger:       ledger,
	}
}

// Create records a supplier delivery in one transaction: the purchase row and
// its lines, the total rollup, the stock credits, the crate exchange and the
// waste pickup. Any failure rolls back the whole intake.
func (s *purchaseService) Create(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apierror.BadRequest("Date invalide, format attendu AAAA-MM-JJ")
	}

	var purchaseID uint
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.supplierRepo.FindByIDTx(tx, req.SupplierID); err != nil {
			return apierror.NotFound("Fournisseur introuvable")
		}

		purchase := &model.Purchase{
			SupplierID: req.SupplierID,
			Date:       date,
			Total:      decimal.Zero,
		}
		if err := s.repo.CreateTx(tx, purchase); err != nil {
			return err
		}
		purchaseID = purchase.ID

		total := decimal.Zero
		for _, line := range req.PurchaseProducts {
			p, err := s.productRepo.FindByIDTx(tx, line.ProductID)
			if err != nil {
				return apierror.NotFound("Produit introuvable")
			}
			if err := s.repo.CreateProductLineTx(tx, &model.PurchaseProduct{
				PurchaseID: purchase.ID,
				ProductID:  line.ProductID,
				Qtt:        line.Qtt,
				QttUnite:   line.QttUnite,
				Price:      line.Price,
			}); err != nil {
				return err
			}

			units := int64(p.CapacityByBox)*int64(line.Qtt) + int64(line.QttUnite)
			total = total.Add(line.Price.Mul(decimal.NewFromInt(units)))

			if err := s.ledger.CreditProductStockTx(tx, line.ProductID, line.Qtt, line.QttUnite, model.MovementPurchase, &purchase.ID); err != nil {
				return err
			}
		}

		for _, line := range req.PurchaseBoxes {
			if line.QttIn < 0 || line.QttOut < 0 {
				return apierror.BadRequest("Les quantités de caisses doivent être positives")
			}
			if err := s.repo.CreateBoxLineTx(tx, &model.PurchaseBox{
				PurchaseID: purchase.ID,
				BoxID:      line.BoxID,
				QttIn:      line.QttIn,
				QttOut:     line.QttOut,
			}); err != nil {
				return err
			}
			if err := s.ledger.ApplyBoxMovementTx(tx, line.BoxID, BoxMovement{
				Reason:      model.MovementPurchase,
				ReferenceID: &purchase.ID,
				QttIn:       line.QttIn,
				QttOut:      line.QttOut,
			}); err != nil {
				return err
			}
		}

		for _, line := range req.PurchaseWaste {
			if line.Qtt <= 0 {
				return apierror.BadRequest("La quantité de déchets doit être strictement positive")
			}
			if _, err := s.productRepo.FindByIDTx(tx, line.ProductID); err != nil {
				return apierror.NotFound("Produit introuvable")
			}
			if err := s.repo.CreateWasteLineTx(tx, &model.PurchaseWaste{
				PurchaseID: purchase.ID,
				ProductID:  line.ProductID,
				Type:       line.Type,
				Qtt:        line.Qtt,
			}); err != nil {
				return err
			}
			// Waste leaving with the supplier decrements the standing ledger.
			if err := s.ledger.AdjustWasteTx(tx, line.ProductID, line.Type, -line.Qtt); err != nil {
				return err
			}
		}

		return s.repo.UpdateTotalTx(tx, purchase.ID, total)
	})
	if err != nil {
		var apiErr *apierror.Error
		if errors.As(err, &apiErr) {
			return nil, err
		}
		log.Error().Err(err).Msg("purchase intake failed")
		return nil, apierror.Internal("Erreur lors de l'enregistrement de l'achat")
	}

	return s.GetByID(ctx, purchaseID)
}

func (s *purchaseService) GetByID(ctx context.Context, id uint) (*dto.PurchaseResponse, error) {
	purchase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Achat introuvable")
	}
	return purchaseToResponse(purchase), nil
}

func (s *purchaseService) List(ctx context.Context, filter dto.PurchaseFilter) (*dto.PurchaseListResponse, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	purchases, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des achats")
	}

	resp := &dto.PurchaseListResponse{
		Purchases:   make([]dto.PurchaseResponse, 0, len(purchases)),
		TotalItems:  total,
		TotalPages:  totalPages(total, filter.Limit),
		CurrentPage: filter.Page,
	}
	for i := range purchases {
		resp.Purchases = append(resp.Purchases, *purchaseToResponse(&purchases[i]))
	}
	return resp, nil
}

func purchaseToResponse(p *model.Purchase) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:         p.ID,
		SupplierID: p.SupplierID,
		Date:       p.Date.Format("2006-01-02"),
		Total:      p.Total,
	}
	if p.Supplier != nil {
		resp.SupplierName = p.Supplier.Name
	}
	for _, line := range p.Products {
		item := dto.PurchaseProductResponse{
			ProductID: line.ProductID,
			Qtt:       line.Qtt,
			QttUnite:  line.QttUnite,
			Price:     line.Price,
		}
		if line.Product != nil {
			item.Designation = line.Product.Designation
		}
		resp.PurchaseProducts = append(resp.PurchaseProducts, item)
	}
	for _, line := range p.Boxes {
		item := dto.PurchaseBoxResponse{
			BoxID:  line.BoxID,
			QttIn:  line.QttIn,
			QttOut: line.QttOut,
		}
		if line.Box != nil {
			item.Designation = line.Box.Designation
		}
		resp.PurchaseBoxes = append(resp.PurchaseBoxes, item)
	}
	for _, line := range p.Wastes {
		resp.PurchaseWaste = append(resp.PurchaseWaste, dto.PurchaseWasteResponse{
			ProductID: line.ProductID,
			Type:      line.Type,
			Qtt:       line.Qtt,
		})
	}
	return resp
}
