package repository

import (
	"context"
	"time"

	"github.com/amine-amroussi/gestion-de-stock/internal/model"

	"gorm.io/gorm"
)

// TripRepository covers the trip aggregate: the trip row plus its product,
// box, waste and charge lines. Mutations used by the lifecycle run inside
// the caller's transaction.
type TripRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Trip, error)
	FindByIDWithLines(ctx context.Context, id uint) (*model.Trip, error)
	FindActiveByTruck(ctx context.Context, matricule string) (*model.Trip, error)
	FindLastClosedByTruck(ctx context.Context, matricule string) (*model.Trip, error)
	ListActive(ctx context.Context) ([]model.Trip, error)
	ListClosed(ctx context.Context, page, limit int) ([]model.Trip, int64, error)
	ListBySellerBetween(ctx context.Context, sellerCIN string, from, to time.Time) ([]model.Trip, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]model.Trip, error)

	CreateTx(tx *gorm.DB, t *model.Trip) error
	SaveTx(tx *gorm.DB, t *model.Trip) error
	FindByIDTx(tx *gorm.DB, id uint) (*model.Trip, error)
	FindActiveByTruckTx(tx *gorm.DB, matricule string) (*model.Trip, error)
	FindLastClosedByTruckTx(tx *gorm.DB, matricule string) (*model.Trip, error)

	CreateProductsTx(tx *gorm.DB, lines []model.TripProduct) error
	CreateBoxesTx(tx *gorm.DB, lines []model.TripBox) error
	FindProductLineTx(tx *gorm.DB, tripID, productID uint) (*model.TripProduct, error)
	FindBoxLineTx(tx *gorm.DB, tripID, boxID uint) (*model.TripBox, error)
	ProductLinesTx(tx *gorm.DB, tripID uint) ([]model.TripProduct, error)
	BoxLinesTx(tx *gorm.DB, tripID uint) ([]model.TripBox, error)
	SaveProductLineTx(tx *gorm.DB, line *model.TripProduct) error
	SaveBoxLineTx(tx *gorm.DB, line *model.TripBox) error
	CreateProductLineTx(tx *gorm.DB, line *model.TripProduct) error
	CreateBoxLineTx(tx *gorm.DB, line *model.TripBox) error
	CreateWasteLineTx(tx *gorm.DB, line *model.TripWaste) error
	CreateChargeLineTx(tx *gorm.DB, line *model.TripCharge) error

	DB() *gorm.DB
}

type tripRepo struct{ db *gorm.DB }

func NewTripRepository(db *gorm.DB) TripRepository { return &tripRepo{db: db} }

func (r *tripRepo) FindByID(ctx context.Context, id uint) (*model.Trip, error) {
	var t model.Trip
	err := r.db.WithContext(ctx).
		Preload("Truck").Preload("Driver").Preload("Seller").Preload("Assistant").
		First(&t, id).Error
	return &t, err
}

func (r *tripRepo) FindByIDWithLines(ctx context.Context, id uint) (*model.Trip, error) {
	var t model.Trip
	err := r.db.WithContext(ctx).
		Preload("Truck").Preload("Driver").Preload("Seller").Preload("Assistant").
		Preload("Products.Product").
		Preload("Boxes.Box").
		Preload("Wastes.Product").
		Preload("Charges.Charge").
		First(&t, id).Error
	return &t, err
}

func (r *tripRepo) FindActiveByTruck(ctx context.Context, matricule string) (*model.Trip, error) {
	var t model.Trip
	err := r.db.WithContext(ctx).
		Where("truck_matricule = ? AND is_active = true", matricule).
		First(&t).Error
	return &t, err
}

func (r *tripRepo) FindLastClosedByTruck(ctx context.Context, matricule string) (*model.Trip, error) {
	var t model.Trip
	err := r.db.WithContext(ctx).
		Where("truck_matricule = ? AND is_active = false", matricule).
		Order("date DESC").
		First(&t).Error
	return &t, err
}

func (r *tripRepo) ListActive(ctx context.Context) ([]model.Trip, error) {
	var trips []model.Trip
	err := r.db.WithContext(ctx).
		Preload("Truck").Preload("Driver").Preload("Seller").Preload("Assistant").
		Where("is_active = true").
		Find(&trips).Error
	return trips, err
}

func (r *tripRepo) ListClosed(ctx context.Context, page, limit int) ([]model.Trip, int64, error) {
	var trips []model.Trip
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Trip{}).Where("is_active = false")
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := q.Preload("Truck").Preload("Driver").Preload("Seller").
		Order("date DESC").Limit(limit).Offset(offset).Find(&trips).Error
	return trips, total, err
}

func (r *tripRepo) ListBySellerBetween(ctx context.Context, sellerCIN string, from, to time.Time) ([]model.Trip, error) {
	var trips []model.Trip
	err := r.db.WithContext(ctx).
		Where("seller_cin = ? AND date >= ? AND date < ?", sellerCIN, from, to).
		Find(&trips).Error
	return trips, err
}

func (r *tripRepo) ListBetween(ctx context.Context, from, to time.Time) ([]model.Trip, error) {
	var trips []model.Trip
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Find(&trips).Error
	return trips, err
}

func (r *tripRepo) CreateTx(tx *gorm.DB, t *model.Trip) error { return tx.Create(t).Error }
func (r *tripRepo) SaveTx(tx *gorm.DB, t *model.Trip) error   { return tx.Save(t).Error }

func (r *tripRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Trip, error) {
	var t model.Trip
	err := tx.First(&t, id).Error
	return &t, err
}

func (r *tripRepo) FindActiveByTruckTx(tx *gorm.DB, matricule string) (*model.Trip, error) {
	var t model.Trip
	err := tx.Where("truck_matricule = ? AND is_active = true", matricule).First(&t).Error
	return &t, err
}

func (r *tripRepo) FindLastClosedByTruckTx(tx *gorm.DB, matricule string) (*model.Trip, error) {
	var t model.Trip
	err := tx.Where("truck_matricule = ? AND is_active = false", matricule).
		Order("date DESC").First(&t).Error
	return &t, err
}

func (r *tripRepo) CreateProductsTx(tx *gorm.DB, lines []model.TripProduct) error {
	return tx.Create(&lines).Error
}

func (r *tripRepo) CreateBoxesTx(tx *gorm.DB, lines []model.TripBox) error {
	return tx.Create(&lines).Error
}

func (r *tripRepo) FindProductLineTx(tx *gorm.DB, tripID, productID uint) (*model.TripProduct, error) {
	var line model.TripProduct
	err := tx.Where("trip_id = ? AND product_id = ?", tripID, productID).First(&line).Error
	return &line, err
}

func (r *tripRepo) FindBoxLineTx(tx *gorm.DB, tripID, boxID uint) (*model.TripBox, error) {
	var line model.TripBox
	err := tx.Where("trip_id = ? AND box_id = ?", tripID, boxID).First(&line).Error
	return &line, err
}

func (r *tripRepo) ProductLinesTx(tx *gorm.DB, tripID uint) ([]model.TripProduct, error) {
	var lines []model.TripProduct
	err := tx.Where("trip_id = ?", tripID).Find(&lines).Error
	return lines, err
}

func (r *tripRepo) BoxLinesTx(tx *gorm.DB, tripID uint) ([]model.TripBox, error) {
	var lines []model.TripBox
	err := tx.Where("trip_id = ?", tripID).Find(&lines).Error
	return lines, err
}

func (r *tripRepo) SaveProductLineTx(tx *gorm.DB, line *model.TripProduct) error {
	return tx.Save(line).Error
}

func (r *tripRepo) SaveBoxLineTx(tx *gorm.DB, line *model.TripBox) error {
	return tx.Save(line).Error
}

func (r *tripRepo) CreateProductLineTx(tx *gorm.DB, line *model.TripProduct) error {
	return tx.Create(line).Error
}

func (r *tripRepo) CreateBoxLineTx(tx *gorm.DB, line *model.TripBox) error {
	return tx.Create(line).Error
}

func (r *tripRepo) CreateWasteLineTx(tx *gorm.DB, line *model.TripWaste) error {
	return tx.Create(line).Error
}

func (r *tripRepo) CreateChargeLineTx(tx *gorm.DB, line *model.TripCharge) error {
	return tx.Create(line).Error
}

func (r *tripRepo) DB() *gorm.DB { return r.db }
