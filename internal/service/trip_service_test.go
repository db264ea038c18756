package service_test

import (
	"context"
	"testing"

	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"
	"github.com/amine-amroussi/gestion-de-stock/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tripFixture struct {
	svc       service.TripService
	trips     *stubTripRepo
	products  *stubProductRepo
	boxes     *stubBoxRepo
	movements *stubMovementRepo
	charges   *stubChargeRepo
	wastes    *stubWasteRepo
}

func buildTripSvc(trucks ...string) *tripFixture {
	products := newStubProductRepo()
	boxes := newStubBoxRepo()
	wastes := newStubWasteRepo()
	movements := &stubMovementRepo{}
	charges := &stubChargeRepo{}
	trips := newStubTripRepo()
	trips.productRef = products
	trips.boxRef = boxes

	employees := newStubEmployeeRepo()
	employees.seed("D1", "Karim", model.RoleDriver, 3000)
	employees.seed("S1", "Rachid", model.RoleSeller, 2800)

	ledger := service.NewLedgerService(products, boxes, wastes, movements)
	svc := service.NewTripService(trips, products, newStubTruckRepo(trucks...), employees, charges, ledger, nil)

	return &tripFixture{
		svc:       svc,
		trips:     trips,
		products:  products,
		boxes:     boxes,
		movements: movements,
		charges:   charges,
		wastes:    wastes,
	}
}

func startRequest(truck string, productID, boxID uint) dto.StartTripRequest {
	return dto.StartTripRequest{
		TruckMatricule: truck,
		DriverCIN:      "D1",
		SellerCIN:      "S1",
		Date:           "2025-06-10",
		Zone:           "Hay Hassani",
		TripProducts:   []dto.StartTripProductLine{{ProductID: productID, QttOut: 5}},
		TripBoxes:      []dto.StartTripBoxLine{{BoxID: boxID, QttOut: 10}},
	}
}

func TestStartTrip_DebitsWarehouse(t *testing.T) {
	f := buildTripSvc("A-123")
	p := f.products.seed("Coca 33cl", 12, 10, 100, 40)
	b := f.boxes.seed("Caisse 24", 50, 50, 0)

	resp, err := f.svc.Start(context.Background(), startRequest("A-123", p.ID, b.ID))
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.Equal(t, "A-123", resp.TruckMatricule)

	// 5 boxes loaded out of 100
	assert.Equal(t, 95, f.products.products[p.ID].Stock)
	assert.Equal(t, 40, f.products.products[p.ID].UniteInStock)

	// 10 crates: warehouse 50→40, sent 0→10, empty untouched
	assert.Equal(t, 40, f.boxes.boxes[b.ID].InStock)
	assert.Equal(t, 50, f.boxes.boxes[b.ID].Empty)
	assert.Equal(t, 10, f.boxes.boxes[b.ID].Sent)

	// One audit row per counter mutation
	assert.Len(t, f.movements.movements, 2)
	assert.Equal(t, model.MovementTripStart, f.movements.movements[0].Reason)
}

func TestStartTrip_TruckAlreadyOut(t *testing.T) {
	f := buildTripSvc("A-123")
	p := f.products.seed("Coca 33cl", 12, 10, 100, 0)
	b := f.boxes.seed("Caisse 24", 50, 50, 0)

	_, err := f.svc.Start(context.Background(), startRequest("A-123", p.ID, b.ID))
	require.NoError(t, err)

	_, err = f.svc.Start(context.Background(), startRequest("A-123", p.ID, b.ID))
	assert.ErrorContains(t, err, "déjà une tournée active")
}

func TestStartTrip_UnknownTruck(t *testing.T) {
	f := buildTripSvc("A-123")
	p := f.products.seed("Coca 33cl", 12, 10, 100, 0)
	b := f.boxes.seed("Caisse 24", 50, 50, 0)

	_, err := f.svc.Start(context.Background(), startRequest("Z-999", p.ID, b.ID))
	assert.ErrorContains(t, err, "Camion introuvable")
}

func TestStartTrip_BadDate(t *testing.T) {
	f := buildTripSvc("A-123")
	req := startRequest("A-123", 1, 1)
	req.Date = "10/06/2025"
	_, err := f.svc.Start(context.Background(), req)
	assert.ErrorContains(t, err, "Date invalide")
}

func TestFinishTrip_Settlement(t *testing.T) {
	f := buildTripSvc("A-123")
	p := f.products.seed("Coca 33cl", 12, 10, 100, 40)
	b := f.boxes.seed("Caisse 24", 50, 50, 0)

	started, err := f.svc.Start(context.Background(), startRequest("A-123", p.ID, b.ID))
	require.NoError(t, err)

	// 2 of 5 boxes come back: sold = 12×(5−2) = 36 units, expected = 360
	resp, err := f.svc.Finish(context.Background(), started.ID, dto.FinishTripRequest{
		TripProducts:   []dto.FinishTripProductLine{{ProductID: p.ID, QttReutour: 2}},
		TripBoxes:      []dto.FinishTripBoxLine{{BoxID: b.ID, QttIn: 8}},
		ReceivedAmount: decimal.NewFromInt(360),
	})
	require.NoError(t, err)

	assert.False(t, resp.IsActive)
	assert.Equal(t, "360", resp.WaitedAmount.String())
	assert.Equal(t, "0", resp.Benefit.String())
	assert.Equal(t, "0", resp.Deff.String())
	require.Len(t, resp.TripProducts, 1)
	assert.Equal(t, 36, resp.TripProducts[0].QttVendu)

	// Returns back in the warehouse: 95 + 2
	assert.Equal(t, 97, f.products.products[p.ID].Stock)

	// 8 of 10 crates returned: inStock 40+8, empty 50+8, sent 10−8
	assert.Equal(t, 48, f.boxes.boxes[b.ID].InStock)
	assert.Equal(t, 58, f.boxes.boxes[b.ID].Empty)
	assert.Equal(t, 2, f.boxes.boxes[b.ID].Sent)
}

func TestFinishTrip_ShortfallAndSurplus(t *testing.T) {
	f := buildTripSvc("A-123")
	p := f.products.seed("Coca 33cl", 12, 10, 100, 0)
	b := f.boxes.seed("Caisse 24", 50, 50, 0)

	started, err := f.svc.Start(context.Background(), startRequest("A-123", p.ID, b.ID))
	require.NoError(t, err)

	// expected 360, received 300 → benefit +60 (missing), deff −60
	resp, err := f.svc.Finish(context.Background(), started.ID, dto.FinishTripRequest{
		TripProducts:   []dto.FinishTripProductLine{{ProductID: p.ID, QttReutour: 2}},
		TripBoxes:      []dto.FinishTripBoxLine{{BoxID: b.ID, QttIn: 10}},
		ReceivedAmount: decimal.NewFromInt(300),
	})
	require.NoError(t, err)
	assert.Equal(t, "60", resp.Benefit.String())
	assert.Equal(t, "-60", resp.Deff.String())
}

func TestFinishTrip_ZeroSaleRoundTrip(t *testing.T) {
	f := buildTripSvc("A-123")
	p := f.products.seed("Coca 33cl", 12, 10, 100, 0)
	b := f.boxes.seed("Caisse 24", 50, 50, 0)

	started, err := f.svc.Start(context.Background(), startRequest("A-123", p.ID, b.ID))
	require.NoError(t, err)

	// Everything comes back untouched
	resp, err := f.svc.Finish(context.Background(), started.ID, dto.FinishTripRequest{
		TripProducts:   []dto.FinishTripProductLine{{ProductID: p.ID, QttReutour: 5}},
		TripBoxes:      []dto.FinishTripBoxLine{{BoxID: b.ID, QttIn: 10}},
		ReceivedAmount: decimal.Zero,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TripProducts[0].QttVendu)
	assert.Equal(t, "0", resp.WaitedAmount.String())
	assert.Equal(t, 100, f.products.products[p.ID].Stock)
	assert.Equal(t, 50, f.boxes.boxes[b.ID].InStock)
	assert.Equal(t, 0, f.boxes.boxes[b.ID].Sent)
}

func TestFinishTrip_ReturnExceedsOut(t *testing.T) {
	f := buildTripSvc("A-123")
	p := f.products.seed("Coca 33cl", 12, 10, 100, 0)
	b := f.boxes.seed("Caisse 24", 50, 50, 0)

	started, err := f.svc.Start(context.Background(), startRequest("A-123", p.ID, b.ID))
	require.NoError(t, err)

	_, err = f.svc.Finish(context.Background(), started.ID, dto.FinishTripRequest{
		TripProducts:   []dto.FinishTripProductLine{{ProductID: p.ID, QttReutour: 6}},
		TripBoxes:      []dto.FinishTripBoxLine{{BoxID: b.ID, QttIn: 10}},
		ReceivedAmount: decimal.Zero,
	})
	assert.ErrorContains(t, err, "dépasse la quantité sortie")
}

func TestFinishTrip_AlreadyClosed(t *testing.T) {
	f := buildTripSvc("A-123")
	p := f.products.seed("Coca 33cl", 12, 10, 100, 0)
	b := f.boxes.seed("Caisse 24", 50, 50, 0)

	started, err := f.svc.Start(context.Background(), startRequest("A-123", p.ID, b.ID))
	require.NoError(t, err)

	finish := dto.FinishTripRequest{
		TripProducts:   []dto.FinishTripProductLine{{ProductID: p.ID, QttReutour: 2}},
		TripBoxes:      []dto.FinishTripBoxLine{{BoxID: b.ID, QttIn: 10}},
		ReceivedAmount: decimal.NewFromInt(360),
	}
	_, err = f.svc.Finish(context.Background(), started.ID, finish)
	require.NoError(t, err)

	_, err = f.svc.Finish(context.Background(), started.ID, finish)
	assert.ErrorContains(t, err, "déjà clôturée")
}

func TestFinishTrip_BooksWastesAndCharges(t *testing.T) {
	f := buildTripSvc("A-123")
	p := f.products.seed("Coca 33cl", 12, 10, 100, 0)
	b := f.boxes.seed("Caisse 24", 50, 50, 0)

	started, err := f.svc.Start(context.Background(), startRequest("A-123", p.ID, b.ID))
	require.NoError(t, err)

	resp, err := f.svc.Finish(context.Background(), started.ID, dto.FinishTripRequest{
		TripProducts:   []dto.FinishTripProductLine{{ProductID: p.ID, QttReutour: 2}},
		TripBoxes:      []dto.FinishTripBoxLine{{BoxID: b.ID, QttIn: 10}},
		TripWastes:     []dto.TripWasteLine{{ProductID: p.ID, Type: "cassé", Qtt: 3}},
		TripCharges:    []dto.TripChargeLine{{Type: "carburant", Amount: decimal.NewFromInt(150)}},
		ReceivedAmount: decimal.NewFromInt(360),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalWastes)
	assert.Equal(t, "150", resp.TotalCharges.String())

	// Standing waste ledger got the declaration
	w, err := f.wastes.Find(context.Background(), p.ID, "cassé")
	require.NoError(t, err)
	assert.Equal(t, 3, w.Qtt)

	// A Charge row exists independently of the trip
	require.Len(t, f.charges.charges, 1)
	assert.Equal(t, "carburant", f.charges.charges[0].Type)
}

func TestTransfer_MovesRemainder(t *testing.T) {
	f := buildTripSvc("A-123", "B-456")
	p := f.products.seed("Coca 33cl", 12, 10, 100, 0)
	b := f.boxes.seed("Caisse 24", 50, 50, 0)

	fromTrip, err := f.svc.Start(context.Background(), startRequest("A-123", p.ID, b.ID))
	require.NoError(t, err)

	toReq := startRequest("B-456", p.ID, b.ID)
	toReq.TripProducts[0].QttOut = 3
	toReq.TripBoxes[0].QttOut = 4
	toTrip, err := f.svc.Start(context.Background(), toReq)
	require.NoError(t, err)

	stockAfterStarts := f.products.products[p.ID].Stock // 100 − 5 − 3 = 92

	resp, err := f.svc.Transfer(context.Background(), dto.TransferTripRequest{
		FromTripID:   fromTrip.ID,
		ToTripID:     toTrip.ID,
		TripProducts: []dto.TransferProductLine{{ProductID: p.ID}},
		TripBoxes:    []dto.TransferBoxLine{{BoxID: b.ID}},
	})
	require.NoError(t, err)

	// Remainder (5 boxes, 10 crates) now rides with the destination
	require.Len(t, resp.TripProducts, 1)
	assert.Equal(t, 8, resp.TripProducts[0].QttOut)
	require.Len(t, resp.TripBoxes, 1)
	assert.Equal(t, 14, resp.TripBoxes[0].QttOut)

	// Source line drained
	src, err := f.trips.FindProductLineTx(nil, fromTrip.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, src.QttOut)

	// The warehouse never saw the goods move
	assert.Equal(t, stockAfterStarts, f.products.products[p.ID].Stock)
}

func TestTransfer_ExtraComesFromWarehouse(t *testing.T) {
	f := buildTripSvc("A-123", "B-456")
	p := f.products.seed("Coca 33cl", 12, 10, 100, 0)
	b := f.boxes.seed("Caisse 24", 50, 50, 0)

	fromTrip, err := f.svc.Start(context.Background(), startRequest("A-123", p.ID, b.ID))
	require.NoError(t, err)
	toReq := startRequest("B-456", p.ID, b.ID)
	toReq.TripProducts[0].QttOut = 3
	toReq.TripBoxes[0].QttOut = 4
	toTrip, err := f.svc.Start(context.Background(), toReq)
	require.NoError(t, err)

	resp, err := f.svc.Transfer(context.Background(), dto.TransferTripRequest{
		FromTripID:   fromTrip.ID,
		ToTripID:     toTrip.ID,
		TripProducts: []dto.TransferProductLine{{ProductID: p.ID, ExtraQtt: 2}},
		TripBoxes:    []dto.TransferBoxLine{{BoxID: b.ID, ExtraQtt: 3}},
	})
	require.NoError(t, err)

	// remainder 5 + extra 2 on top of the destination's own 3
	assert.Equal(t, 10, resp.TripProducts[0].QttOut)
	// extras are a real warehouse debit: 100 − 5 − 3 − 2
	assert.Equal(t, 90, f.products.products[p.ID].Stock)
	// crates: 50 − 10 − 4 − 3 in stock, sent gains the extra 3
	assert.Equal(t, 33, f.boxes.boxes[b.ID].InStock)
	assert.Equal(t, 17, f.boxes.boxes[b.ID].Sent)
}

func TestTransfer_DestinationClosed(t *testing.T) {
	f := buildTripSvc("A-123", "B-456")
	p := f.products.seed("Coca 33cl", 12, 10, 100, 0)
	b := f.boxes.seed("Caisse 24", 50, 50, 0)

	fromTrip, err := f.svc.Start(context.Background(), startRequest("A-123", p.ID, b.ID))
	require.NoError(t, err)
	toTrip, err := f.svc.Start(context.Background(), startRequest("B-456", p.ID, b.ID))
	require.NoError(t, err)

	_, err = f.svc.Finish(context.Background(), toTrip.ID, dto.FinishTripRequest{
		TripProducts:   []dto.FinishTripProductLine{{ProductID: p.ID, QttReutour: 5}},
		TripBoxes:      []dto.FinishTripBoxLine{{BoxID: b.ID, QttIn: 10}},
		ReceivedAmount: decimal.Zero,
	})
	require.NoError(t, err)

	_, err = f.svc.Transfer(context.Background(), dto.TransferTripRequest{
		FromTripID:   fromTrip.ID,
		ToTripID:     toTrip.ID,
		TripProducts: []dto.TransferProductLine{{ProductID: p.ID}},
	})
	assert.ErrorContains(t, err, "destination est déjà clôturée")
}

func TestTransfer_SameTrip(t *testing.T) {
	f := buildTripSvc("A-123")
	_, err := f.svc.Transfer(context.Background(), dto.TransferTripRequest{FromTripID: 1, ToTripID: 1})
	assert.ErrorContains(t, err, "doivent être différentes")
}

func TestEmptyTruck_CreditsAndZeroes(t *testing.T) {
	f := buildTripSvc("A-123")
	p := f.products.seed("Coca 33cl", 12, 10, 100, 0)
	b := f.boxes.seed("Caisse 24", 50, 50, 0)

	started, err := f.svc.Start(context.Background(), startRequest("A-123", p.ID, b.ID))
	require.NoError(t, err)
	_, err = f.svc.Finish(context.Background(), started.ID, dto.FinishTripRequest{
		TripProducts:   []dto.FinishTripProductLine{{ProductID: p.ID, QttReutour: 2}},
		TripBoxes:      []dto.FinishTripBoxLine{{BoxID: b.ID, QttIn: 8}},
		ReceivedAmount: decimal.NewFromInt(360),
	})
	require.NoError(t, err)

	resp, err := f.svc.EmptyTruck(context.Background(), "A-123")
	require.NoError(t, err)
	assert.Equal(t, started.ID, resp.ID)

	// The recorded returns are re-credited, then the fields are zeroed
	assert.Equal(t, 99, f.products.products[p.ID].Stock)
	line, err := f.trips.FindProductLineTx(nil, started.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, line.QttReutour)

	boxLine, err := f.trips.FindBoxLineTx(nil, started.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, boxLine.QttIn)

	// A second emptying finds nothing left to apply
	stockBefore := f.products.products[p.ID].Stock
	inStockBefore := f.boxes.boxes[b.ID].InStock
	_, err = f.svc.EmptyTruck(context.Background(), "A-123")
	require.NoError(t, err)
	assert.Equal(t, stockBefore, f.products.products[p.ID].Stock)
	assert.Equal(t, inStockBefore, f.boxes.boxes[b.ID].InStock)
}

func TestEmptyTruck_NoClosedTrip(t *testing.T) {
	f := buildTripSvc("A-123")
	_, err := f.svc.EmptyTruck(context.Background(), "A-123")
	assert.ErrorContains(t, err, "Aucune tournée clôturée")
}

func TestInvoice_LoadingVsSettlement(t *testing.T) {
	f := buildTripSvc("A-123")
	p := f.products.seed("Coca 33cl", 12, 10, 100, 0)
	b := f.boxes.seed("Caisse 24", 50, 50, 0)

	started, err := f.svc.Start(context.Background(), startRequest("A-123", p.ID, b.ID))
	require.NoError(t, err)

	inv, err := f.svc.Invoice(context.Background(), started.ID, "morning")
	require.NoError(t, err)
	assert.Equal(t, "chargement", inv.Type)
	assert.Nil(t, inv.Totals.WaitedAmount)

	_, err = f.svc.Invoice(context.Background(), started.ID, "soir")
	assert.ErrorContains(t, err, "morning ou afternoon")

	_, err = f.svc.Finish(context.Background(), started.ID, dto.FinishTripRequest{
		TripProducts:   []dto.FinishTripProductLine{{ProductID: p.ID, QttReutour: 2}},
		TripBoxes:      []dto.FinishTripBoxLine{{BoxID: b.ID, QttIn: 10}},
		ReceivedAmount: decimal.NewFromInt(360),
	})
	require.NoError(t, err)

	inv, err = f.svc.Invoice(context.Background(), started.ID, "afternoon")
	require.NoError(t, err)
	assert.Equal(t, "règlement", inv.Type)
	require.NotNil(t, inv.Totals.WaitedAmount)
	assert.Equal(t, "360", inv.Totals.WaitedAmount.String())
	require.Len(t, inv.Products, 1)
	require.NotNil(t, inv.Products[0].QttVendu)
	assert.Equal(t, 36, *inv.Products[0].QttVendu)
}
