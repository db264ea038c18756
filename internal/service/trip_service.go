package service

import (
	"context"
	"errors"
	"time"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"
	"github.com/amine-amroussi/gestion-de-stock/internal/repository"
	"github.com/amine-amroussi/gestion-de-stock/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TripService interface {
	Start(ctx context.Context, req dto.StartTripRequest) (*dto.TripResponse, error)
	Finish(ctx context.Context, id uint, req dto.FinishTripRequest) (*dto.TripResponse, error)
	Transfer(ctx context.Context, req dto.TransferTripRequest) (*dto.TripResponse, error)
	EmptyTruck(ctx context.Context, matricule string) (*dto.TripResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.TripResponse, error)
	ListActive(ctx context.Context) ([]dto.TripResponse, error)
	ListClosed(ctx context.Context, filter dto.TripFilter) (*dto.TripListResponse, error)
	LastTruck(ctx context.Context, matricule string) (*dto.LastTruckResponse, error)
	Invoice(ctx context.Context, id uint, invoiceType string) (*dto.InvoiceResponse, error)
}

type tripService struct {
	repo         repository.TripRepository
	productRepo  repository.ProductRepository
	truckRepo    repository.TruckRepository
	employeeRepo repository.EmployeeRepository
	chargeRepo   repository.ChargeRepository
	ledger       LedgerService
	dispatcher   *worker.Dispatcher
}

func NewTripService(
	repo repository.TripRepository,
	productRepo repository.ProductRepository,
	truckRepo repository.TruckRepository,
	employeeRepo repository.EmployeeRepository,
	chargeRepo repository.ChargeRepository,
	ledger LedgerService,
	dispatcher *worker.Dispatcher,
) TripService {
	return &tripService{
		repo:         repo,
		productRepo:  productRepo,
		truckRepo:    truckRepo,
		employeeRepo: employeeRepo,
		chargeRepo:   chargeRepo,
		ledger:       ledger,
		dispatcher:   dispatcher,
	}
}

// wrapInternal hides raw storage errors behind the generic internal message
// while letting typed business errors through untouched.
func wrapInternal(err error, logMsg, userMsg string) error {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		return err
	}
	log.Error().Err(err).Msg(logMsg)
	return apierror.Internal(userMsg)
}

// ── Start ─────────────────────────────────────────────────────────────────────

// Start opens a trip: one active trip per truck, debit the warehouse for
// everything loaded, all inside one transaction.
func (s *tripService) Start(ctx context.Context, req dto.StartTripRequest) (*dto.TripResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apierror.BadRequest("Date invalide, format attendu AAAA-MM-JJ")
	}
	if len(req.TripProducts) == 0 || len(req.TripBoxes) == 0 {
		return nil, apierror.BadRequest("La tournée doit contenir au moins un produit et une caisse")
	}

	var tripID uint
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.truckRepo.FindByMatriculeTx(tx, req.TruckMatricule); err != nil {
			return apierror.NotFound("Camion introuvable")
		}
		if _, err := s.employeeRepo.FindByCINTx(tx, req.DriverCIN); err != nil {
			return apierror.NotFound("Chauffeur introuvable")
		}
		if _, err := s.employeeRepo.FindByCINTx(tx, req.SellerCIN); err != nil {
			return apierror.NotFound("Vendeur introuvable")
		}
		if req.AssistantCIN != nil {
			if _, err := s.employeeRepo.FindByCINTx(tx, *req.AssistantCIN); err != nil {
				return apierror.NotFound("Assistant introuvable")
			}
		}

		if active, err := s.repo.FindActiveByTruckTx(tx, req.TruckMatricule); err == nil && active != nil {
			return apierror.BadRequest("Ce camion a déjà une tournée active")
		}

		trip := &model.Trip{
			TruckMatricule: req.TruckMatricule,
			DriverCIN:      req.DriverCIN,
			SellerCIN:      req.SellerCIN,
			AssistantCIN:   req.AssistantCIN,
			Date:           date,
			Zone:           req.Zone,
			IsActive:       true,
			WaitedAmount:   decimal.Zero,
			ReceivedAmount: decimal.Zero,
			Benefit:        decimal.Zero,
			Deff:           decimal.Zero,
		}
		if err := s.repo.CreateTx(tx, trip); err != nil {
			return err
		}
		tripID = trip.ID

		productLines := make([]model.TripProduct, 0, len(req.TripProducts))
		for _, line := range req.TripProducts {
			if _, err := s.productRepo.FindByIDTx(tx, line.ProductID); err != nil {
				return apierror.NotFound("Produit introuvable")
			}
			productLines = append(productLines, model.TripProduct{
				TripID:      trip.ID,
				ProductID:   line.ProductID,
				QttOut:      line.QttOut,
				QttOutUnite: line.QttOutUnite,
			})
			if err := s.ledger.DebitProductStockTx(tx, line.ProductID, line.QttOut, line.QttOutUnite, model.MovementTripStart, &trip.ID); err != nil {
				return err
			}
		}
		if err := s.repo.CreateProductsTx(tx, productLines); err != nil {
			return err
		}

		boxLines := make([]model.TripBox, 0, len(req.TripBoxes))
		for _, line := range req.TripBoxes {
			boxLines = append(boxLines, model.TripBox{
				TripID: trip.ID,
				BoxID:  line.BoxID,
				QttOut: line.QttOut,
			})
			if err := s.ledger.ApplyBoxMovementTx(tx, line.BoxID, BoxMovement{
				Reason:      model.MovementTripStart,
				ReferenceID: &trip.ID,
				QttOut:      line.QttOut,
			}); err != nil {
				return err
			}
		}
		return s.repo.CreateBoxesTx(tx, boxLines)
	})
	if err != nil {
		return nil, wrapInternal(err, "trip start failed", "Erreur lors du démarrage de la tournée")
	}

	return s.GetByID(ctx, tripID)
}

// ── Finish ────────────────────────────────────────────────────────────────────

// Finish settles a trip: record returns, compute units sold and the expected
// revenue, credit the warehouse, book wastes and charges, then close the trip.
// The trip stays active if anything fails.
func (s *tripService) Finish(ctx context.Context, id uint, req dto.FinishTripRequest) (*dto.TripResponse, error) {
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		trip, err := s.repo.FindByIDTx(tx, id)
		if err != nil {
			return apierror.NotFound("Tournée introuvable")
		}
		if !trip.IsActive {
			return apierror.BadRequest("Cette tournée est déjà clôturée")
		}

		waited := decimal.Zero
		for _, line := range req.TripProducts {
			tp, err := s.repo.FindProductLineTx(tx, trip.ID, line.ProductID)
			if err != nil {
				return apierror.NotFound("Ligne produit introuvable pour cette tournée")
			}
			if line.QttReutour > tp.QttOut {
				return apierror.BadRequest("La quantité retournée dépasse la quantité sortie")
			}
			product, err := s.productRepo.FindByIDTx(tx, line.ProductID)
			if err != nil {
				return apierror.NotFound("Produit introuvable")
			}

			tp.QttReutour = line.QttReutour
			tp.QttReutourUnite = line.QttReutourUnite
			tp.QttVendu = product.CapacityByBox*(tp.QttOut-tp.QttReutour) + (tp.QttOutUnite - tp.QttReutourUnite)
			if err := s.repo.SaveProductLineTx(tx, tp); err != nil {
				return err
			}

			waited = waited.Add(product.PriceUnite.Mul(decimal.NewFromInt(int64(tp.QttVendu))))

			if err := s.ledger.CreditProductStockTx(tx, line.ProductID, line.QttReutour, line.QttReutourUnite, model.MovementTripFinish, &trip.ID); err != nil {
				return err
			}
		}

		for _, line := range req.TripBoxes {
			tb, err := s.repo.FindBoxLineTx(tx, trip.ID, line.BoxID)
			if err != nil {
				return apierror.NotFound("Ligne caisse introuvable pour cette tournée")
			}
			tb.QttIn = line.QttIn
			if err := s.repo.SaveBoxLineTx(tx, tb); err != nil {
				return err
			}
			if err := s.ledger.ApplyBoxMovementTx(tx, line.BoxID, BoxMovement{
				Reason:      model.MovementTripFinish,
				ReferenceID: &trip.ID,
				QttIn:       line.QttIn,
			}); err != nil {
				return err
			}
		}

		for _, line := range req.TripWastes {
			if _, err := s.productRepo.FindByIDTx(tx, line.ProductID); err != nil {
				return apierror.NotFound("Produit introuvable")
			}
			if err := s.repo.CreateWasteLineTx(tx, &model.TripWaste{
				TripID:    trip.ID,
				ProductID: line.ProductID,
				Type:      line.Type,
				Qtt:       line.Qtt,
			}); err != nil {
				return err
			}
			if err := s.ledger.AdjustWasteTx(tx, line.ProductID, line.Type, line.Qtt); err != nil {
				return err
			}
		}

		for _, line := range req.TripCharges {
			charge := &model.Charge{
				Type:   line.Type,
				Amount: line.Amount,
				Date:   trip.Date,
			}
			if err := s.chargeRepo.CreateTx(tx, charge); err != nil {
				return err
			}
			if err := s.repo.CreateChargeLineTx(tx, &model.TripCharge{
				TripID:   trip.ID,
				ChargeID: charge.ID,
				Type:     line.Type,
				Amount:   line.Amount,
			}); err != nil {
				return err
			}
		}

		trip.WaitedAmount = waited
		trip.ReceivedAmount = req.ReceivedAmount
		trip.Benefit = waited.Sub(req.ReceivedAmount)
		trip.Deff = req.ReceivedAmount.Sub(waited)
		trip.IsActive = false
		return s.repo.SaveTx(tx, trip)
	})
	if err != nil {
		return nil, wrapInternal(err, "trip finish failed", "Erreur lors de la clôture de la tournée")
	}

	resp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueTripReport(ctx, worker.TripReportPayload{TripID: id}); err != nil {
			log.Warn().Err(err).Uint("trip_id", id).Msg("failed to enqueue settlement report")
		}
	}
	return resp, nil
}

// ── Transfer ──────────────────────────────────────────────────────────────────

// Transfer moves the unsold remainder of one trip into another active trip.
// This is a bookkeeping move between two in-flight loads; the warehouse
// counters do not change except for caller-supplied extra quantities, which
// are loaded from the warehouse.
func (s *tripService) Transfer(ctx context.Context, req dto.TransferTripRequest) (*dto.TripResponse, error) {
	if req.FromTripID == req.ToTripID {
		return nil, apierror.BadRequest("La tournée source et la tournée destination doivent être différentes")
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.repo.FindByIDTx(tx, req.FromTripID); err != nil {
			return apierror.NotFound("Tournée source introuvable")
		}
		dest, err := s.repo.FindByIDTx(tx, req.ToTripID)
		if err != nil {
			return apierror.NotFound("Tournée destination introuvable")
		}
		if !dest.IsActive {
			return apierror.BadRequest("La tournée destination est déjà clôturée")
		}

		for _, line := range req.TripProducts {
			src, err := s.repo.FindProductLineTx(tx, req.FromTripID, line.ProductID)
			if err != nil {
				return apierror.NotFound("Ligne produit introuvable dans la tournée source")
			}
			remaining := src.QttOut - src.QttReutour
			remainingUnite := src.QttOutUnite - src.QttReutourUnite
			if remaining <= 0 && remainingUnite <= 0 {
				return apierror.BadRequest("Aucun reste à transférer pour ce produit")
			}
			if remaining < 0 {
				remaining = 0
			}
			if remainingUnite < 0 {
				remainingUnite = 0
			}

			src.QttOut -= remaining
			src.QttOutUnite -= remainingUnite
			if err := s.repo.SaveProductLineTx(tx, src); err != nil {
				return err
			}

			if dst, err := s.repo.FindProductLineTx(tx, req.ToTripID, line.ProductID); err == nil {
				dst.QttOut += remaining + line.ExtraQtt
				dst.QttOutUnite += remainingUnite + line.ExtraQttUnite
				if err := s.repo.SaveProductLineTx(tx, dst); err != nil {
					return err
				}
			} else {
				if err := s.repo.CreateProductLineTx(tx, &model.TripProduct{
					TripID:      req.ToTripID,
					ProductID:   line.ProductID,
					QttOut:      remaining + line.ExtraQtt,
					QttOutUnite: remainingUnite + line.ExtraQttUnite,
				}); err != nil {
					return err
				}
			}

			// Extra quantities come out of the warehouse, unlike the remainder.
			if line.ExtraQtt > 0 || line.ExtraQttUnite > 0 {
				if err := s.ledger.DebitProductStockTx(tx, line.ProductID, line.ExtraQtt, line.ExtraQttUnite, model.MovementTripStart, &req.ToTripID); err != nil {
					return err
				}
			}
		}

		for _, line := range req.TripBoxes {
			src, err := s.repo.FindBoxLineTx(tx, req.FromTripID, line.BoxID)
			if err != nil {
				return apierror.NotFound("Ligne caisse introuvable dans la tournée source")
			}
			remaining := src.QttOut - src.QttIn
			if remaining <= 0 {
				return apierror.BadRequest("Aucune caisse restante à transférer")
			}

			src.QttOut -= remaining
			if err := s.repo.SaveBoxLineTx(tx, src); err != nil {
				return err
			}

			if dst, err := s.repo.FindBoxLineTx(tx, req.ToTripID, line.BoxID); err == nil {
				dst.QttOut += remaining + line.ExtraQtt
				if err := s.repo.SaveBoxLineTx(tx, dst); err != nil {
					return err
				}
			} else {
				if err := s.repo.CreateBoxLineTx(tx, &model.TripBox{
					TripID: req.ToTripID,
					BoxID:  line.BoxID,
					QttOut: remaining + line.ExtraQtt,
				}); err != nil {
					return err
				}
			}

			if line.ExtraQtt > 0 {
				if err := s.ledger.ApplyBoxMovementTx(tx, line.BoxID, BoxMovement{
					Reason:      model.MovementTripStart,
					ReferenceID: &req.ToTripID,
					QttOut:      line.ExtraQtt,
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapInternal(err, "trip transfer failed", "Erreur lors du transfert entre tournées")
	}

	return s.GetByID(ctx, req.ToTripID)
}

// ── Empty truck ───────────────────────────────────────────────────────────────

// EmptyTruck re-applies the ledger credits recorded on the most recently
// closed trip of a truck, then zeroes the return fields so a second call
// applies nothing.
func (s *tripService) EmptyTruck(ctx context.Context, matricule string) (*dto.TripResponse, error) {
	var tripID uint
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		trip, err := s.repo.FindLastClosedByTruckTx(tx, matricule)
		if err != nil {
			return apierror.NotFound("Aucune tournée clôturée pour ce camion")
		}
		tripID = trip.ID

		productLines, err := s.repo.ProductLinesTx(tx, trip.ID)
		if err != nil {
			return err
		}
		for i := range productLines {
			line := &productLines[i]
			if line.QttReutour > 0 || line.QttReutourUnite > 0 {
				if err := s.ledger.CreditProductStockTx(tx, line.ProductID, line.QttReutour, line.QttReutourUnite, model.MovementEmptyTruck, &trip.ID); err != nil {
					return err
				}
			}
			line.QttReutour = 0
			line.QttReutourUnite = 0
			if err := s.repo.SaveProductLineTx(tx, line); err != nil {
				return err
			}
		}

		boxLines, err := s.repo.BoxLinesTx(tx, trip.ID)
		if err != nil {
			return err
		}
		for i := range boxLines {
			line := &boxLines[i]
			if line.QttIn > 0 {
				if err := s.ledger.ApplyBoxMovementTx(tx, line.BoxID, BoxMovement{
					Reason:      model.MovementEmptyTruck,
					ReferenceID: &trip.ID,
					QttIn:       line.QttIn,
				}); err != nil {
					return err
				}
			}
			line.QttIn = 0
			if err := s.repo.SaveBoxLineTx(tx, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapInternal(err, "empty truck failed", "Erreur lors du vidage du camion")
	}

	return s.GetByID(ctx, tripID)
}

// ── Reads ─────────────────────────────────────────────────────────────────────

func (s *tripService) GetByID(ctx context.Context, id uint) (*dto.TripResponse, error) {
	trip, err := s.repo.FindByIDWithLines(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Tournée introuvable")
	}
	return tripToResponse(trip, true), nil
}

func (s *tripService) ListActive(ctx context.Context) ([]dto.TripResponse, error) {
	trips, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des tournées actives")
	}
	out := make([]dto.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *tripToResponse(&trips[i], false))
	}
	return out, nil
}

func (s *tripService) ListClosed(ctx context.Context, filter dto.TripFilter) (*dto.TripListResponse, error) {
	page, limit := normalizePage(filter.Page, filter.Limit)
	trips, total, err := s.repo.ListClosed(ctx, page, limit)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des tournées")
	}

	resp := &dto.TripListResponse{
		Trips:       make([]dto.TripResponse, 0, len(trips)),
		TotalItems:  total,
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
	}
	for i := range trips {
		resp.Trips = append(resp.Trips, *tripToResponse(&trips[i], false))
	}
	return resp, nil
}

// LastTruck shows what is still sitting in a truck after its most recent
// closed trip: the recorded returns that have not been emptied back yet.
func (s *tripService) LastTruck(ctx context.Context, matricule string) (*dto.LastTruckResponse, error) {
	trip, err := s.repo.FindLastClosedByTruck(ctx, matricule)
	if err != nil {
		return nil, apierror.NotFound("Aucune tournée clôturée pour ce camion")
	}
	full, err := s.repo.FindByIDWithLines(ctx, trip.ID)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture de la tournée")
	}

	resp := tripToResponse(full, true)
	return &dto.LastTruckResponse{
		Trip:         *resp,
		TripProducts: resp.TripProducts,
		TripBoxes:    resp.TripBoxes,
	}, nil
}

// Invoice builds a printable sheet for a trip. The morning view is the
// loading manifest, the afternoon view the full settlement.
func (s *tripService) Invoice(ctx context.Context, id uint, invoiceType string) (*dto.InvoiceResponse, error) {
	if invoiceType != "morning" && invoiceType != "afternoon" {
		return nil, apierror.BadRequest("Le type de facture doit être morning ou afternoon")
	}
	settlement := invoiceType == "afternoon"

	trip, err := s.repo.FindByIDWithLines(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Tournée introuvable")
	}

	inv := &dto.InvoiceResponse{
		TripID: trip.ID,
		Date:   trip.Date.Format("2006-01-02"),
		Truck:  trip.TruckMatricule,
		Zone:   trip.Zone,
	}
	if trip.Driver != nil {
		inv.Driver = trip.Driver.Name
	}
	if trip.Seller != nil {
		inv.Seller = trip.Seller.Name
	}
	if settlement {
		inv.Type = "règlement"
	} else {
		inv.Type = "chargement"
	}

	estimated := decimal.Zero
	for _, line := range trip.Products {
		item := dto.InvoiceProductLine{
			QttOut:      line.QttOut,
			QttOutUnite: line.QttOutUnite,
		}
		if line.Product != nil {
			item.Designation = line.Product.Designation
			item.PriceUnite = line.Product.PriceUnite
		}
		if settlement {
			reutour, reutourUnite, vendu := line.QttReutour, line.QttReutourUnite, line.QttVendu
			item.QttReutour = &reutour
			item.QttReutourUnite = &reutourUnite
			item.QttVendu = &vendu
			revenue := item.PriceUnite.Mul(decimal.NewFromInt(int64(vendu)))
			item.TotalRevenue = &revenue
			estimated = estimated.Add(revenue)
		}
		inv.Products = append(inv.Products, item)
	}
	for _, line := range trip.Boxes {
		item := dto.InvoiceBoxLine{QttOut: line.QttOut}
		if line.Box != nil {
			item.Designation = line.Box.Designation
		}
		if settlement {
			in := line.QttIn
			item.QttIn = &in
		}
		inv.Boxes = append(inv.Boxes, item)
	}
	for _, line := range trip.Wastes {
		w := dto.TripWasteResponse{ProductID: line.ProductID, Type: line.Type, Qtt: line.Qtt}
		if line.Product != nil {
			w.Designation = line.Product.Designation
		}
		inv.Wastes = append(inv.Wastes, w)
	}
	for _, line := range trip.Charges {
		inv.Charges = append(inv.Charges, dto.TripChargeResponse{Type: line.Type, Amount: line.Amount})
	}

	if settlement {
		waited, received, benefit, deff := trip.WaitedAmount, trip.ReceivedAmount, trip.Benefit, trip.Deff
		inv.Totals = dto.InvoiceTotals{
			EstimatedRevenue: &estimated,
			WaitedAmount:     &waited,
			ReceivedAmount:   &received,
			Benefit:          &benefit,
			Deff:             &deff,
		}
	}
	return inv, nil
}

// ── Mapping ───────────────────────────────────────────────────────────────────

func tripToResponse(t *model.Trip, withLines bool) *dto.TripResponse {
	resp := &dto.TripResponse{
		ID:             t.ID,
		TruckMatricule: t.TruckMatricule,
		Date:           t.Date.Format("2006-01-02"),
		Zone:           t.Zone,
		IsActive:       t.IsActive,
		WaitedAmount:   t.WaitedAmount,
		ReceivedAmount: t.ReceivedAmount,
		Benefit:        t.Benefit,
		Deff:           t.Deff,
		TotalCharges:   decimal.Zero,
	}
	if t.Driver != nil {
		resp.Driver = t.Driver.Name
	}
	if t.Seller != nil {
		resp.Seller = t.Seller.Name
	}
	if t.Assistant != nil {
		resp.Assistant = &t.Assistant.Name
	}
	if !withLines {
		return resp
	}

	for _, line := range t.Products {
		item := dto.TripProductResponse{
			ProductID:       line.ProductID,
			QttOut:          line.QttOut,
			QttOutUnite:     line.QttOutUnite,
			QttReutour:      line.QttReutour,
			QttReutourUnite: line.QttReutourUnite,
			QttVendu:        line.QttVendu,
		}
		if line.Product != nil {
			item.Designation = line.Product.Designation
			item.PriceUnite = line.Product.PriceUnite
			item.CapacityByBox = line.Product.CapacityByBox
		}
		resp.TripProducts = append(resp.TripProducts, item)
	}
	for _, line := range t.Boxes {
		item := dto.TripBoxResponse{
			BoxID:  line.BoxID,
			QttOut: line.QttOut,
			QttIn:  line.QttIn,
		}
		if line.Box != nil {
			item.Designation = line.Box.Designation
		}
		resp.TripBoxes = append(resp.TripBoxes, item)
	}
	for _, line := range t.Wastes {
		item := dto.TripWasteResponse{ProductID: line.ProductID, Type: line.Type, Qtt: line.Qtt}
		if line.Product != nil {
			item.Designation = line.Product.Designation
		}
		resp.TripWastes = append(resp.TripWastes, item)
		resp.TotalWastes += line.Qtt
	}
	for _, line := range t.Charges {
		resp.TripCharges = append(resp.TripCharges, dto.TripChargeResponse{Type: line.Type, Amount: line.Amount})
		resp.TotalCharges = resp.TotalCharges.Add(line.Amount)
	}
	return resp
}
