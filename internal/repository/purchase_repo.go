package repository

import (
	"context"
	"time"

	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Purchase, error)
	List(ctx context.Context, filter dto.PurchaseFilter) ([]model.Purchase, int64, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]model.Purchase, error)

	CreateTx(tx *gorm.DB, p *model.Purchase) error
	CreateProductLineTx(tx *gorm.DB, line *model.PurchaseProduct) error
	CreateBoxLineTx(tx *gorm.DB, line *model.PurchaseBox) error
	CreateWasteLineTx(tx *gorm.DB, line *model.PurchaseWaste) error
	UpdateTotalTx(tx *gorm.DB, id uint, total decimal.Decimal) error

	DB() *gorm.DB
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) FindByID(ctx context.Context, id uint) (*model.Purchase, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Products.Product").
		Preload("Boxes.Box").
		Preload("Wastes.Product").
		First(&p, id).Error
	return &p, err
}

func (r *purchaseRepo) List(ctx context.Context, filter dto.PurchaseFilter) ([]model.Purchase, int64, error) {
	var purchases []model.Purchase
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Purchase{})

	if filter.SupplierID != 0 {
		q = q.Where("supplier_id = ?", filter.SupplierID)
	}
	if filter.DateFrom != "" {
		if from, err := time.Parse("2006-01-02", filter.DateFrom); err == nil {
			q = q.Where("date >= ?", from)
		}
	}
	if filter.DateTo != "" {
		if to, err := time.Parse("2006-01-02", filter.DateTo); err == nil {
			q = q.Where("date <= ?", to.Add(24*time.Hour-time.Second))
		}
	}
	if filter.TotalMin != "" {
		if min, err := decimal.NewFromString(filter.TotalMin); err == nil {
			q = q.Where("total >= ?", min)
		}
	}
	if filter.TotalMax != "" {
		if max, err := decimal.NewFromString(filter.TotalMax); err == nil {
			q = q.Where("total <= ?", max)
		}
	}
	if filter.Search != "" {
		q = q.Joins("JOIN suppliers ON suppliers.id = purchases.supplier_id").
			Where("suppliers.name ILIKE ?", "%"+filter.Search+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Supplier").
		Preload("Products.Product").
		Preload("Boxes.Box").
		Preload("Wastes.Product").
		Order("date DESC").Limit(filter.Limit).Offset(offset).Find(&purchases).Error
	return purchases, total, err
}

func (r *purchaseRepo) ListBetween(ctx context.Context, from, to time.Time) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) CreateTx(tx *gorm.DB, p *model.Purchase) error { return tx.Create(p).Error }

func (r *purchaseRepo) CreateProductLineTx(tx *gorm.DB, line *model.PurchaseProduct) error {
	return tx.Create(line).Error
}

func (r *purchaseRepo) CreateBoxLineTx(tx *gorm.DB, line *model.PurchaseBox) error {
	return tx.Create(line).Error
}

func (r *purchaseRepo) CreateWasteLineTx(tx *gorm.DB, line *model.PurchaseWaste) error {
	return tx.Create(line).Error
}

func (r *purchaseRepo) UpdateTotalTx(tx *gorm.DB, id uint, total decimal.Decimal) error {
	return tx.Model(&model.Purchase{}).Where("id = ?", id).Update("total", total).Error
}

func (r *purchaseRepo) DB() *gorm.DB { return r.db }
