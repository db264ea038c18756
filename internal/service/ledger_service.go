package service

import (
	"context"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"
	"github.com/amine-amroussi/gestion-de-stock/internal/repository"

	"gorm.io/gorm"
)

// BoxMovement describes one crate-counter mutation. The reason decides which
// of the three counters move, so every call site shares a single rule instead
// of hand-rolling deltas.
type BoxMovement struct {
	Reason      string
	ReferenceID *uint
	// PurchaseIntake: QttIn crates delivered, QttOut empties handed back.
	// TripStart: QttOut crates loaded. TripFinish / EmptyTruck: QttIn returned.
	QttIn  int
	QttOut int
}

// LedgerService is the only path to the product and box stock counters. Every
// mutation runs inside the caller's transaction and leaves a StockMovement
// audit row behind.
type LedgerService interface {
	CreditProductStockTx(tx *gorm.DB, productID uint, boxQty, unitQty int, reason string, refID *uint) error
	DebitProductStockTx(tx *gorm.DB, productID uint, boxQty, unitQty int, reason string, refID *uint) error
	ApplyBoxMovementTx(tx *gorm.DB, boxID uint, mv BoxMovement) error
	AdjustWasteTx(tx *gorm.DB, productID uint, wasteType string, delta int) error
	ListMovements(ctx context.Context, filter dto.StockMovementFilter) (*dto.StockMovementListResponse, error)
}

type ledgerService struct {
	productRepo  repository.ProductRepository
	boxRepo      repository.BoxRepository
	wasteRepo    repository.WasteRepository
	movementRepo repository.StockMovementRepository
}

func NewLedgerService(
	productRepo repository.ProductRepository,
	boxRepo repository.BoxRepository,
	wasteRepo repository.WasteRepository,
	movementRepo repository.StockMovementRepository,
) LedgerService {
	return &ledgerService{
		productRepo:  productRepo,
		boxRepo:      boxRepo,
		wasteRepo:    wasteRepo,
		movementRepo: movementRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *ledgerService) CreditProductStockTx(tx *gorm.DB, productID uint, boxQty, unitQty int, reason string, refID *uint) error {
	if _, err := s.productRepo.FindByIDTx(tx, productID); err != nil {
		return apierror.NotFound("Produit introuvable")
	}
	if err := s.productRepo.AdjustStockTx(tx, productID, boxQty, unitQty); err != nil {
		return err
	}
	return s.movementRepo.CreateTx(tx, &model.StockMovement{
		EntityKind:  "product",
		EntityID:    productID,
		Reason:      reason,
		BoxDelta:    boxQty,
		UnitDelta:   unitQty,
		ReferenceID: refID,
	})
}

// DebitProductStockTx does not reject a debit that drives a counter negative;
// callers pre-validate sufficiency where the business rule requires it.
func (s *ledgerService) DebitProductStockTx(tx *gorm.DB, productID uint, boxQty, unitQty int, reason string, refID *uint) error {
	if _, err := s.productRepo.FindByIDTx(tx, productID); err != nil {
		return apierror.NotFound("Produit introuvable")
	}
	if err := s.productRepo.AdjustStockTx(tx, productID, -boxQty, -unitQty); err != nil {
		return err
	}
	return s.movementRepo.CreateTx(tx, &model.StockMovement{
		EntityKind:  "product",
		EntityID:    productID,
		Reason:      reason,
		BoxDelta:    -boxQty,
		UnitDelta:   -unitQty,
		ReferenceID: refID,
	})
}

func (s *ledgerService) ApplyBoxMovementTx(tx *gorm.DB, boxID uint, mv BoxMovement) error {
	box, err := s.boxRepo.FindByIDTx(tx, boxID)
	if err != nil {
		return apierror.NotFound("Caisse introuvable")
	}

	var inDelta, emptyDelta, sentDelta int
	switch mv.Reason {
	case model.MovementPurchase:
		// Crates delivered enter the warehouse; empties handed back to the
		// supplier leave the empty pool, which may never go negative.
		if box.Empty-mv.QttOut < 0 {
			return apierror.BadRequest("Caisses vides insuffisantes pour la reprise fournisseur")
		}
		inDelta, emptyDelta = mv.QttIn, -mv.QttOut
	case model.MovementTripStart:
		inDelta, sentDelta = -mv.QttOut, mv.QttOut
	case model.MovementTripFinish, model.MovementEmptyTruck:
		inDelta, emptyDelta, sentDelta = mv.QttIn, mv.QttIn, -mv.QttIn
	default:
		return apierror.Internal("Mouvement de caisse inconnu")
	}

	if err := s.boxRepo.AdjustCountersTx(tx, boxID, inDelta, emptyDelta, sentDelta); err != nil {
		return err
	}
	return s.movementRepo.CreateTx(tx, &model.StockMovement{
		EntityKind:  "box",
		EntityID:    boxID,
		Reason:      mv.Reason,
		BoxDelta:    inDelta,
		UnitDelta:   0,
		ReferenceID: mv.ReferenceID,
	})
}

// AdjustWasteTx upserts the standing waste row for product+type. The delta may
// be negative (supplier pickup); the caller owns any sufficiency check.
func (s *ledgerService) AdjustWasteTx(tx *gorm.DB, productID uint, wasteType string, delta int) error {
	if _, err := s.wasteRepo.FindTx(tx, productID, wasteType); err != nil {
		return s.wasteRepo.CreateTx(tx, &model.Waste{
			ProductID: productID,
			Type:      wasteType,
			Qtt:       delta,
		})
	}
	return s.wasteRepo.AdjustQttTx(tx, productID, wasteType, delta)
}

func (s *ledgerService) ListMovements(ctx context.Context, filter dto.StockMovementFilter) (*dto.StockMovementListResponse, error) {
	page, limit := normalizePage(filter.Page, filter.Limit)
	filter.Page, filter.Limit = page, limit

	movements, total, err := s.movementRepo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture du journal de stock")
	}
	resp := &dto.StockMovementListResponse{
		Movements: make([]dto.StockMovementResponse, 0, len(movements)),
		Pagination: dto.Pagination{
			TotalItems:  total,
			TotalPages:  totalPages(total, limit),
			CurrentPage: page,
			PageSize:    limit,
		},
	}
	for _, m := range movements {
		resp.Movements = append(resp.Movements, dto.StockMovementResponse{
			ID:          m.ID,
			EntityKind:  m.EntityKind,
			EntityID:    m.EntityID,
			Reason:      m.Reason,
			BoxDelta:    m.BoxDelta,
			UnitDelta:   m.UnitDelta,
			ReferenceID: m.ReferenceID,
			CreatedAt:   m.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
