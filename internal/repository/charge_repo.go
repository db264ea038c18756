package repository

import (
	"context"
	"time"

	"github.com/amine-amroussi/gestion-de-stock/internal/model"

	"gorm.io/gorm"
)

type ChargeRepository interface {
	Create(ctx context.Context, c *model.Charge) error
	FindByID(ctx context.Context, id uint) (*model.Charge, error)
	FindByTypeAndDate(ctx context.Context, chargeType string, date time.Time) (*model.Charge, error)
	List(ctx context.Context, page, limit int) ([]model.Charge, int64, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]model.Charge, error)
	Update(ctx context.Context, c *model.Charge) error
	CreateTx(tx *gorm.DB, c *model.Charge) error
}

type chargeRepo struct{ db *gorm.DB }

func NewChargeRepository(db *gorm.DB) ChargeRepository { return &chargeRepo{db: db} }

func (r *chargeRepo) Create(ctx context.Context, c *model.Charge) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *chargeRepo) FindByID(ctx context.Context, id uint) (*model.Charge, error) {
	var c model.Charge
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *chargeRepo) FindByTypeAndDate(ctx context.Context, chargeType string, date time.Time) (*model.Charge, error) {
	var c model.Charge
	err := r.db.WithContext(ctx).
		Where("type = ? AND date = ?", chargeType, date).
		First(&c).Error
	return &c, err
}

func (r *chargeRepo) List(ctx context.Context, page, limit int) ([]model.Charge, int64, error) {
	var charges []model.Charge
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Charge{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := q.Order("date DESC").Limit(limit).Offset(offset).Find(&charges).Error
	return charges, total, err
}

func (r *chargeRepo) ListBetween(ctx context.Context, from, to time.Time) ([]model.Charge, error) {
	var charges []model.Charge
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Find(&charges).Error
	return charges, err
}

func (r *chargeRepo) Update(ctx context.Context, c *model.Charge) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *chargeRepo) CreateTx(tx *gorm.DB, c *model.Charge) error {
	return tx.Create(c).Error
}
