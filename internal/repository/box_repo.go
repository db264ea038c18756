package repository

import (
	"context"

	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"

	"gorm.io/gorm"
)

type BoxRepository interface {
	Create(ctx context.Context, b *model.Box) error
	FindByID(ctx context.Context, id uint) (*model.Box, error)
	List(ctx context.Context, filter dto.PageFilter) ([]model.Box, int64, error)
	Update(ctx context.Context, b *model.Box) error
	Delete(ctx context.Context, id uint) error

	FindByIDTx(tx *gorm.DB, id uint) (*model.Box, error)
	AdjustCountersTx(tx *gorm.DB, id uint, inDelta, emptyDelta, sentDelta int) error
}

type boxRepo struct{ db *gorm.DB }

func NewBoxRepository(db *gorm.DB) BoxRepository { return &boxRepo{db: db} }

func (r *boxRepo) Create(ctx context.Context, b *model.Box) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *boxRepo) FindByID(ctx context.Context, id uint) (*model.Box, error) {
	var b model.Box
	err := r.db.WithContext(ctx).First(&b, id).Error
	return &b, err
}

func (r *boxRepo) List(ctx context.Context, filter dto.PageFilter) ([]model.Box, int64, error) {
	var boxes []model.Box
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Box{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("id ASC").Limit(filter.Limit).Offset(offset).Find(&boxes).Error
	return boxes, total, err
}

func (r *boxRepo) Update(ctx context.Context, b *model.Box) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *boxRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Box{}, id).Error
}

func (r *boxRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Box, error) {
	var b model.Box
	err := tx.First(&b, id).Error
	return &b, err
}

func (r *boxRepo) AdjustCountersTx(tx *gorm.DB, id uint, inDelta, emptyDelta, sentDelta int) error {
	return tx.Model(&model.Box{}).Where("id = ?", id).Updates(map[string]interface{}{
		"in_stock": gorm.Expr("in_stock + ?", inDelta),
		"empty":    gorm.Expr("empty + ?", emptyDelta),
		"sent":     gorm.Expr("sent + ?", sentDelta),
	}).Error
}
