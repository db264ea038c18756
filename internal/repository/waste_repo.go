package repository

import (
	"context"

	"github.com/amine-amroussi/gestion-de-stock/internal/model"

	"gorm.io/gorm"
)

type WasteRepository interface {
	Find(ctx context.Context, productID uint, wasteType string) (*model.Waste, error)
	FindByProduct(ctx context.Context, productID uint) ([]model.Waste, error)
	List(ctx context.Context) ([]model.Waste, error)
	Create(ctx context.Context, w *model.Waste) error
	Save(ctx context.Context, w *model.Waste) error

	FindTx(tx *gorm.DB, productID uint, wasteType string) (*model.Waste, error)
	CreateTx(tx *gorm.DB, w *model.Waste) error
	AdjustQttTx(tx *gorm.DB, productID uint, wasteType string, delta int) error
}

type wasteRepo struct{ db *gorm.DB }

func NewWasteRepository(db *gorm.DB) WasteRepository { return &wasteRepo{db: db} }

func (r *wasteRepo) Find(ctx context.Context, productID uint, wasteType string) (*model.Waste, error) {
	var w model.Waste
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND type = ?", productID, wasteType).
		First(&w).Error
	return &w, err
}

func (r *wasteRepo) FindByProduct(ctx context.Context, productID uint) ([]model.Waste, error) {
	var wastes []model.Waste
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("product_id = ?", productID).
		Find(&wastes).Error
	return wastes, err
}

func (r *wasteRepo) List(ctx context.Context) ([]model.Waste, error) {
	var wastes []model.Waste
	err := r.db.WithContext(ctx).Preload("Product").Find(&wastes).Error
	return wastes, err
}

func (r *wasteRepo) Create(ctx context.Context, w *model.Waste) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *wasteRepo) Save(ctx context.Context, w *model.Waste) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *wasteRepo) FindTx(tx *gorm.DB, productID uint, wasteType string) (*model.Waste, error) {
	var w model.Waste
	err := tx.Where("product_id = ? AND type = ?", productID, wasteType).First(&w).Error
	return &w, err
}

func (r *wasteRepo) CreateTx(tx *gorm.DB, w *model.Waste) error {
	return tx.Create(w).Error
}

func (r *wasteRepo) AdjustQttTx(tx *gorm.DB, productID uint, wasteType string, delta int) error {
	return tx.Model(&model.Waste{}).
		Where("product_id = ? AND type = ?", productID, wasteType).
		Update("qtt", gorm.Expr("qtt + ?", delta)).Error
}
