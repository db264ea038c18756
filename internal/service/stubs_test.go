package service_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"
	"github.com/amine-amroussi/gestion-de-stock/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNotFound = errors.New("not found")

// ── Product repository stub ───────────────────────────────────────────────────

type stubProductRepo struct {
	products map[uint]*model.Product
	seq      uint
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product)}
}

func (r *stubProductRepo) seed(designation string, capacity int, price float64, stock, units int) *model.Product {
	r.seq++
	p := &model.Product{
		ID:            r.seq,
		Designation:   designation,
		Genre:         "soda",
		PriceUnite:    decimal.NewFromFloat(price),
		CapacityByBox: capacity,
		Stock:         stock,
		UniteInStock:  units,
	}
	r.products[p.ID] = p
	return p
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.seq++
	p.ID = r.seq
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubProductRepo) FindByDesignation(_ context.Context, designation string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Designation == designation {
			return p, nil
		}
	}
	return nil, errNotFound
}

func (r *stubProductRepo) List(_ context.Context, _ dto.PageFilter) ([]model.Product, int64, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return errNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubProductRepo) AdjustStockTx(_ *gorm.DB, id uint, boxDelta, unitDelta int) error {
	p, ok := r.products[id]
	if !ok {
		return errNotFound
	}
	p.Stock += boxDelta
	p.UniteInStock += unitDelta
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Box repository stub ───────────────────────────────────────────────────────

type stubBoxRepo struct {
	boxes map[uint]*model.Box
	seq   uint
}

func newStubBoxRepo() *stubBoxRepo {
	return &stubBoxRepo{boxes: make(map[uint]*model.Box)}
}

func (r *stubBoxRepo) seed(designation string, inStock, empty, sent int) *model.Box {
	r.seq++
	b := &model.Box{
		ID:          r.seq,
		Designation: designation,
		Capacity:    24,
		InStock:     inStock,
		Empty:       empty,
		Sent:        sent,
	}
	r.boxes[b.ID] = b
	return b
}

func (r *stubBoxRepo) Create(_ context.Context, b *model.Box) error {
	r.seq++
	b.ID = r.seq
	r.boxes[b.ID] = b
	return nil
}

func (r *stubBoxRepo) FindByID(_ context.Context, id uint) (*model.Box, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubBoxRepo) List(_ context.Context, _ dto.PageFilter) ([]model.Box, int64, error) {
	out := make([]model.Box, 0, len(r.boxes))
	for _, b := range r.boxes {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *stubBoxRepo) Update(_ context.Context, b *model.Box) error {
	if _, ok := r.boxes[b.ID]; !ok {
		return errNotFound
	}
	r.boxes[b.ID] = b
	return nil
}

func (r *stubBoxRepo) Delete(_ context.Context, id uint) error {
	delete(r.boxes, id)
	return nil
}

func (r *stubBoxRepo) FindByIDTx(_ *gorm.DB, id uint) (*model.Box, error) {
	b, ok := r.boxes[id]
	if !ok {
		return nil, errNotFound
	}
	return b, nil
}

func (r *stubBoxRepo) AdjustCountersTx(_ *gorm.DB, id uint, inDelta, emptyDelta, sentDelta int) error {
	b, ok := r.boxes[id]
	if !ok {
		return errNotFound
	}
	b.InStock += inDelta
	b.Empty += emptyDelta
	b.Sent += sentDelta
	return nil
}

var _ repository.BoxRepository = (*stubBoxRepo)(nil)

// ── Waste repository stub ─────────────────────────────────────────────────────

type wasteKey struct {
	productID uint
	wasteType string
}

type stubWasteRepo struct {
	wastes map[wasteKey]*model.Waste
}

func newStubWasteRepo() *stubWasteRepo {
	return &stubWasteRepo{wastes: make(map[wasteKey]*model.Waste)}
}

func (r *stubWasteRepo) Find(_ context.Context, productID uint, wasteType string) (*model.Waste, error) {
	return r.FindTx(nil, productID, wasteType)
}

func (r *stubWasteRepo) FindByProduct(_ context.Context, productID uint) ([]model.Waste, error) {
	var out []model.Waste
	for _, w := range r.wastes {
		if w.ProductID == productID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *stubWasteRepo) List(_ context.Context) ([]model.Waste, error) {
	out := make([]model.Waste, 0, len(r.wastes))
	for _, w := range r.wastes {
		out = append(out, *w)
	}
	return out, nil
}

func (r *stubWasteRepo) Create(_ context.Context, w *model.Waste) error {
	return r.CreateTx(nil, w)
}

func (r *stubWasteRepo) Save(_ context.Context, w *model.Waste) error {
	r.wastes[wasteKey{w.ProductID, w.Type}] = w
	return nil
}

func (r *stubWasteRepo) FindTx(_ *gorm.DB, productID uint, wasteType string) (*model.Waste, error) {
	w, ok := r.wastes[wasteKey{productID, wasteType}]
	if !ok {
		return nil, errNotFound
	}
	return w, nil
}

func (r *stubWasteRepo) CreateTx(_ *gorm.DB, w *model.Waste) error {
	r.wastes[wasteKey{w.ProductID, w.Type}] = w
	return nil
}

func (r *stubWasteRepo) AdjustQttTx(_ *gorm.DB, productID uint, wasteType string, delta int) error {
	w, ok := r.wastes[wasteKey{productID, wasteType}]
	if !ok {
		return errNotFound
	}
	w.Qtt += delta
	return nil
}

var _ repository.WasteRepository = (*stubWasteRepo)(nil)

// ── Stock movement repository stub ────────────────────────────────────────────

type stubMovementRepo struct {
	movements []model.StockMovement
}

func (r *stubMovementRepo) CreateTx(_ *gorm.DB, m *model.StockMovement) error {
	m.ID = uint(len(r.movements) + 1)
	r.movements = append(r.movements, *m)
	return nil
}

func (r *stubMovementRepo) List(_ context.Context, filter dto.StockMovementFilter) ([]model.StockMovement, int64, error) {
	var out []model.StockMovement
	for _, m := range r.movements {
		if filter.EntityKind != "" && m.EntityKind != filter.EntityKind {
			continue
		}
		if filter.Reason != "" && m.Reason != filter.Reason {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

var _ repository.StockMovementRepository = (*stubMovementRepo)(nil)

// ── Trip repository stub ──────────────────────────────────────────────────────

type stubTripRepo struct {
	trips        map[uint]*model.Trip
	productLines []*model.TripProduct
	boxLines     []*model.TripBox
	wasteLines   []*model.TripWaste
	chargeLines  []*model.TripCharge
	seq          uint

	// optional — lets FindByIDWithLines resolve designations and prices
	productRef *stubProductRepo
	boxRef     *stubBoxRepo
}

func newStubTripRepo() *stubTripRepo {
	return &stubTripRepo{trips: make(map[uint]*model.Trip)}
}

func (r *stubTripRepo) FindByID(_ context.Context, id uint) (*model.Trip, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubTripRepo) FindByIDWithLines(_ context.Context, id uint) (*model.Trip, error) {
	t, ok := r.trips[id]
	if !ok {
		return nil, errNotFound
	}
	full := *t
	full.Products = nil
	for _, line := range r.productLines {
		if line.TripID != id {
			continue
		}
		l := *line
		if r.productRef != nil {
			l.Product = r.productRef.products[l.ProductID]
		}
		full.Products = append(full.Products, l)
	}
	for _, line := range r.boxLines {
		if line.TripID != id {
			continue
		}
		l := *line
		if r.boxRef != nil {
			l.Box = r.boxRef.boxes[l.BoxID]
		}
		full.Boxes = append(full.Boxes, l)
	}
	for _, line := range r.wasteLines {
		if line.TripID == id {
			full.Wastes = append(full.Wastes, *line)
		}
	}
	for _, line := range r.chargeLines {
		if line.TripID == id {
			full.Charges = append(full.Charges, *line)
		}
	}
	return &full, nil
}

func (r *stubTripRepo) FindActiveByTruck(_ context.Context, matricule string) (*model.Trip, error) {
	return r.FindActiveByTruckTx(nil, matricule)
}

func (r *stubTripRepo) FindLastClosedByTruck(_ context.Context, matricule string) (*model.Trip, error) {
	return r.FindLastClosedByTruckTx(nil, matricule)
}

func (r *stubTripRepo) ListActive(_ context.Context) ([]model.Trip, error) {
	var out []model.Trip
	for _, t := range r.trips {
		if t.IsActive {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTripRepo) ListClosed(_ context.Context, _, _ int) ([]model.Trip, int64, error) {
	var out []model.Trip
	for _, t := range r.trips {
		if !t.IsActive {
			out = append(out, *t)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubTripRepo) ListBySellerBetween(_ context.Context, sellerCIN string, from, to time.Time) ([]model.Trip, error) {
	var out []model.Trip
	for _, t := range r.trips {
		if t.SellerCIN == sellerCIN && !t.Date.Before(from) && t.Date.Before(to) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTripRepo) ListBetween(_ context.Context, from, to time.Time) ([]model.Trip, error) {
	var out []model.Trip
	for _, t := range r.trips {
		if !t.Date.Before(from) && t.Date.Before(to) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTripRepo) CreateTx(_ *gorm.DB, t *model.Trip) error {
	r.seq++
	t.ID = r.seq
	r.trips[t.ID] = t
	return nil
}

func (r *stubTripRepo) SaveTx(_ *gorm.DB, t *model.Trip) error {
	r.trips[t.ID] = t
	return nil
}

func (r *stubTripRepo) FindByIDTx(_ *gorm.DB, id uint) (*model.Trip, error) {
	t, ok := r.trips[id]
	if !ok {
		return nil, errNotFound
	}
	return t, nil
}

func (r *stubTripRepo) FindActiveByTruckTx(_ *gorm.DB, matricule string) (*model.Trip, error) {
	for _, t := range r.trips {
		if t.TruckMatricule == matricule && t.IsActive {
			return t, nil
		}
	}
	return nil, errNotFound
}

func (r *stubTripRepo) FindLastClosedByTruckTx(_ *gorm.DB, matricule string) (*model.Trip, error) {
	var last *model.Trip
	for _, t := range r.trips {
		if t.TruckMatricule != matricule || t.IsActive {
			continue
		}
		if last == nil || t.Date.After(last.Date) || (t.Date.Equal(last.Date) && t.ID > last.ID) {
			last = t
		}
	}
	if last == nil {
		return nil, errNotFound
	}
	return last, nil
}

func (r *stubTripRepo) CreateProductsTx(_ *gorm.DB, lines []model.TripProduct) error {
	for i := range lines {
		l := lines[i]
		r.productLines = append(r.productLines, &l)
	}
	return nil
}

func (r *stubTripRepo) CreateBoxesTx(_ *gorm.DB, lines []model.TripBox) error {
	for i := range lines {
		l := lines[i]
		r.boxLines = append(r.boxLines, &l)
	}
	return nil
}

func (r *stubTripRepo) FindProductLineTx(_ *gorm.DB, tripID, productID uint) (*model.TripProduct, error) {
	for _, l := range r.productLines {
		if l.TripID == tripID && l.ProductID == productID {
			return l, nil
		}
	}
	return nil, errNotFound
}

func (r *stubTripRepo) FindBoxLineTx(_ *gorm.DB, tripID, boxID uint) (*model.TripBox, error) {
	for _, l := range r.boxLines {
		if l.TripID == tripID && l.BoxID == boxID {
			return l, nil
		}
	}
	return nil, errNotFound
}

func (r *stubTripRepo) ProductLinesTx(_ *gorm.DB, tripID uint) ([]model.TripProduct, error) {
	var out []model.TripProduct
	for _, l := range r.productLines {
		if l.TripID == tripID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubTripRepo) BoxLinesTx(_ *gorm.DB, tripID uint) ([]model.TripBox, error) {
	var out []model.TripBox
	for _, l := range r.boxLines {
		if l.TripID == tripID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubTripRepo) SaveProductLineTx(_ *gorm.DB, line *model.TripProduct) error {
	for i, l := range r.productLines {
		if l.TripID == line.TripID && l.ProductID == line.ProductID {
			r.productLines[i] = line
			return nil
		}
	}
	return errNotFound
}

func (r *stubTripRepo) SaveBoxLineTx(_ *gorm.DB, line *model.TripBox) error {
	for i, l := range r.boxLines {
		if l.TripID == line.TripID && l.BoxID == line.BoxID {
			r.boxLines[i] = line
			return nil
		}
	}
	return errNotFound
}

func (r *stubTripRepo) CreateProductLineTx(_ *gorm.DB, line *model.TripProduct) error {
	r.productLines = append(r.productLines, line)
	return nil
}

func (r *stubTripRepo) CreateBoxLineTx(_ *gorm.DB, line *model.TripBox) error {
	r.boxLines = append(r.boxLines, line)
	return nil
}

func (r *stubTripRepo) CreateWasteLineTx(_ *gorm.DB, line *model.TripWaste) error {
	r.wasteLines = append(r.wasteLines, line)
	return nil
}

func (r *stubTripRepo) CreateChargeLineTx(_ *gorm.DB, line *model.TripCharge) error {
	r.chargeLines = append(r.chargeLines, line)
	return nil
}

func (r *stubTripRepo) DB() *gorm.DB { return nil }

var _ repository.TripRepository = (*stubTripRepo)(nil)

// ── Truck repository stub ─────────────────────────────────────────────────────

type stubTruckRepo struct {
	trucks map[string]*model.Truck
}

func newStubTruckRepo(matricules ...string) *stubTruckRepo {
	r := &stubTruckRepo{trucks: make(map[string]*model.Truck)}
	for _, m := range matricules {
		r.trucks[m] = &model.Truck{Matricule: m, Capacity: 200}
	}
	return r
}

func (r *stubTruckRepo) Create(_ context.Context, t *model.Truck) error {
	r.trucks[t.Matricule] = t
	return nil
}

func (r *stubTruckRepo) FindByMatricule(_ context.Context, matricule string) (*model.Truck, error) {
	return r.FindByMatriculeTx(nil, matricule)
}

func (r *stubTruckRepo) List(_ context.Context) ([]model.Truck, error) {
	out := make([]model.Truck, 0, len(r.trucks))
	for _, t := range r.trucks {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTruckRepo) Update(_ context.Context, t *model.Truck) error {
	r.trucks[t.Matricule] = t
	return nil
}

func (r *stubTruckRepo) Delete(_ context.Context, matricule string) error {
	delete(r.trucks, matricule)
	return nil
}

func (r *stubTruckRepo) FindByMatriculeTx(_ *gorm.DB, matricule string) (*model.Truck, error) {
	t, ok := r.trucks[matricule]
	if !ok {
		return nil, errNotFound
	}
	return t, nil
}

var _ repository.TruckRepository = (*stubTruckRepo)(nil)

// ── Employee repository stub ──────────────────────────────────────────────────

type stubEmployeeRepo struct {
	employees map[string]*model.Employee
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (r *stubEmployeeRepo) seed(cin, name, role string, salary float64) *model.Employee {
	e := &model.Employee{CIN: cin, Name: name, Role: role, SalaryFix: decimal.NewFromFloat(salary)}
	r.employees[cin] = e
	return e
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	r.employees[e.CIN] = e
	return nil
}

func (r *stubEmployeeRepo) FindByCIN(_ context.Context, cin string) (*model.Employee, error) {
	return r.FindByCINTx(nil, cin)
}

func (r *stubEmployeeRepo) List(_ context.Context, _ dto.PageFilter) ([]model.Employee, int64, error) {
	out := make([]model.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *model.Employee) error {
	r.employees[e.CIN] = e
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, cin string) error {
	delete(r.employees, cin)
	return nil
}

func (r *stubEmployeeRepo) FindByCINTx(_ *gorm.DB, cin string) (*model.Employee, error) {
	e, ok := r.employees[cin]
	if !ok {
		return nil, errNotFound
	}
	return e, nil
}

var _ repository.EmployeeRepository = (*stubEmployeeRepo)(nil)

// ── Charge repository stub ────────────────────────────────────────────────────

type stubChargeRepo struct {
	charges []*model.Charge
	seq     uint
}

func (r *stubChargeRepo) Create(_ context.Context, c *model.Charge) error {
	return r.CreateTx(nil, c)
}

func (r *stubChargeRepo) FindByID(_ context.Context, id uint) (*model.Charge, error) {
	for _, c := range r.charges {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (r *stubChargeRepo) FindByTypeAndDate(_ context.Context, chargeType string, date time.Time) (*model.Charge, error) {
	for _, c := range r.charges {
		if c.Type == chargeType && c.Date.Equal(date) {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (r *stubChargeRepo) List(_ context.Context, _, _ int) ([]model.Charge, int64, error) {
	out := make([]model.Charge, 0, len(r.charges))
	for _, c := range r.charges {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubChargeRepo) ListBetween(_ context.Context, from, to time.Time) ([]model.Charge, error) {
	var out []model.Charge
	for _, c := range r.charges {
		if !c.Date.Before(from) && c.Date.Before(to) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubChargeRepo) Update(_ context.Context, c *model.Charge) error {
	for i, existing := range r.charges {
		if existing.ID == c.ID {
			r.charges[i] = c
			return nil
		}
	}
	return errNotFound
}

func (r *stubChargeRepo) CreateTx(_ *gorm.DB, c *model.Charge) error {
	r.seq++
	c.ID = r.seq
	r.charges = append(r.charges, c)
	return nil
}

var _ repository.ChargeRepository = (*stubChargeRepo)(nil)

// ── Supplier repository stub ──────────────────────────────────────────────────

type stubSupplierRepo struct {
	suppliers map[uint]*model.Supplier
	seq       uint
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uint]*model.Supplier)}
}

func (r *stubSupplierRepo) seed(name string) *model.Supplier {
	r.seq++
	s := &model.Supplier{ID: r.seq, Name: name}
	r.suppliers[s.ID] = s
	return s
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	r.seq++
	s.ID = r.seq
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uint) (*model.Supplier, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubSupplierRepo) List(_ context.Context, _ dto.PageFilter) ([]model.Supplier, int64, error) {
	out := make([]model.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id uint) error {
	delete(r.suppliers, id)
	return nil
}

func (r *stubSupplierRepo) FindByIDTx(_ *gorm.DB, id uint) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

// ── Purchase repository stub ──────────────────────────────────────────────────

type stubPurchaseRepo struct {
	purchases    map[uint]*model.Purchase
	productLines []*model.PurchaseProduct
	boxLines     []*model.PurchaseBox
	wasteLines   []*model.PurchaseWaste
	seq          uint

	supplierRef *stubSupplierRepo
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{purchases: make(map[uint]*model.Purchase)}
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id uint) (*model.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, errNotFound
	}
	full := *p
	if r.supplierRef != nil {
		full.Supplier = r.supplierRef.suppliers[p.SupplierID]
	}
	for _, line := range r.productLines {
		if line.PurchaseID == id {
			full.Products = append(full.Products, *line)
		}
	}
	for _, line := range r.boxLines {
		if line.PurchaseID == id {
			full.Boxes = append(full.Boxes, *line)
		}
	}
	for _, line := range r.wasteLines {
		if line.PurchaseID == id {
			full.Wastes = append(full.Wastes, *line)
		}
	}
	return &full, nil
}

func (r *stubPurchaseRepo) List(_ context.Context, _ dto.PurchaseFilter) ([]model.Purchase, int64, error) {
	out := make([]model.Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPurchaseRepo) ListBetween(_ context.Context, from, to time.Time) ([]model.Purchase, error) {
	var out []model.Purchase
	for _, p := range r.purchases {
		if !p.Date.Before(from) && p.Date.Before(to) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPurchaseRepo) CreateTx(_ *gorm.DB, p *model.Purchase) error {
	r.seq++
	p.ID = r.seq
	r.purchases[p.ID] = p
	return nil
}

func (r *stubPurchaseRepo) CreateProductLineTx(_ *gorm.DB, line *model.PurchaseProduct) error {
	r.productLines = append(r.productLines, line)
	return nil
}

func (r *stubPurchaseRepo) CreateBoxLineTx(_ *gorm.DB, line *model.PurchaseBox) error {
	r.boxLines = append(r.boxLines, line)
	return nil
}

func (r *stubPurchaseRepo) CreateWasteLineTx(_ *gorm.DB, line *model.PurchaseWaste) error {
	r.wasteLines = append(r.wasteLines, line)
	return nil
}

func (r *stubPurchaseRepo) UpdateTotalTx(_ *gorm.DB, id uint, total decimal.Decimal) error {
	p, ok := r.purchases[id]
	if !ok {
		return errNotFound
	}
	p.Total = total
	return nil
}

func (r *stubPurchaseRepo) DB() *gorm.DB { return nil }

var _ repository.PurchaseRepository = (*stubPurchaseRepo)(nil)

// ── Payment repository stub ───────────────────────────────────────────────────

type stubPaymentRepo struct {
	payments map[uint]*model.PaymentEmployee
	seq      uint
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: make(map[uint]*model.PaymentEmployee)}
}

func (r *stubPaymentRepo) Create(_ context.Context, p *model.PaymentEmployee) error {
	for _, existing := range r.payments {
		if existing.EmployeeCIN == p.EmployeeCIN && existing.Month == p.Month && existing.Year == p.Year {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	r.seq++
	p.ID = r.seq
	r.payments[p.ID] = p
	return nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id uint) (*model.PaymentEmployee, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubPaymentRepo) FindByEmployeePeriod(_ context.Context, cin string, month, year int) (*model.PaymentEmployee, error) {
	for _, p := range r.payments {
		if p.EmployeeCIN == cin && p.Month == month && p.Year == year {
			return p, nil
		}
	}
	return nil, errNotFound
}

func (r *stubPaymentRepo) List(_ context.Context) ([]model.PaymentEmployee, error) {
	out := make([]model.PaymentEmployee, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPaymentRepo) ListByPeriods(_ context.Context, periods [][2]int) ([]model.PaymentEmployee, error) {
	var out []model.PaymentEmployee
	for _, p := range r.payments {
		for _, period := range periods {
			if p.Year == period[0] && p.Month == period[1] {
				out = append(out, *p)
				break
			}
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	p, ok := r.payments[id]
	if !ok {
		return errNotFound
	}
	p.Status = status
	return nil
}

var _ repository.PaymentRepository = (*stubPaymentRepo)(nil)
