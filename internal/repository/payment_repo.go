package repository

import (
	"context"

	"github.com/amine-amroussi/gestion-de-stock/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *model.PaymentEmployee) error
	FindByID(ctx context.Context, id uint) (*model.PaymentEmployee, error)
	FindByEmployeePeriod(ctx context.Context, cin string, month, year int) (*model.PaymentEmployee, error)
	List(ctx context.Context) ([]model.PaymentEmployee, error)
	ListByPeriods(ctx context.Context, periods [][2]int) ([]model.PaymentEmployee, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type paymentRepo struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) PaymentRepository { return &paymentRepo{db: db} }

func (r *paymentRepo) Create(ctx context.Context, p *model.PaymentEmployee) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paymentRepo) FindByID(ctx context.Context, id uint) (*model.PaymentEmployee, error) {
	var p model.PaymentEmployee
	err := r.db.WithContext(ctx).Preload("Employee").First(&p, id).Error
	return &p, err
}

func (r *paymentRepo) FindByEmployeePeriod(ctx context.Context, cin string, month, year int) (*model.PaymentEmployee, error) {
	var p model.PaymentEmployee
	err := r.db.WithContext(ctx).
		Where("employee_cin = ? AND month = ? AND year = ?", cin, month, year).
		First(&p).Error
	return &p, err
}

func (r *paymentRepo) List(ctx context.Context) ([]model.PaymentEmployee, error) {
	var payments []model.PaymentEmployee
	err := r.db.WithContext(ctx).Preload("Employee").Order("year DESC, month DESC").Find(&payments).Error
	return payments, err
}

// ListByPeriods fetches payments matching any of the (year, month) pairs.
func (r *paymentRepo) ListByPeriods(ctx context.Context, periods [][2]int) ([]model.PaymentEmployee, error) {
	if len(periods) == 0 {
		return nil, nil
	}
	q := r.db.WithContext(ctx).Model(&model.PaymentEmployee{})
	cond := r.db.Session(&gorm.Session{NewDB: true})
	for _, p := range periods {
		cond = cond.Or("year = ? AND month = ?", p[0], p[1])
	}
	var payments []model.PaymentEmployee
	err := q.Where(cond).Find(&payments).Error
	return payments, err
}

func (r *paymentRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&model.PaymentEmployee{}).
		Where("id = ?", id).
		Update("status", status).Error
}
