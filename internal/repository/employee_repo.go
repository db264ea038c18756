package repository

import (
	"context"

	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) error
	FindByCIN(ctx context.Context, cin string) (*model.Employee, error)
	List(ctx context.Context, filter dto.PageFilter) ([]model.Employee, int64, error)
	Update(ctx context.Context, e *model.Employee) error
	Delete(ctx context.Context, cin string) error
	FindByCINTx(tx *gorm.DB, cin string) (*model.Employee, error)
}

type employeeRepo struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository { return &employeeRepo{db: db} }

func (r *employeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employeeRepo) FindByCIN(ctx context.Context, cin string) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).Where("cin = ?", cin).First(&e).Error
	return &e, err
}

func (r *employeeRepo) List(ctx context.Context, filter dto.PageFilter) ([]model.Employee, int64, error) {
	var employees []model.Employee
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Employee{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("cin ASC").Limit(filter.Limit).Offset(offset).Find(&employees).Error
	return employees, total, err
}

func (r *employeeRepo) Update(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *employeeRepo) Delete(ctx context.Context, cin string) error {
	return r.db.WithContext(ctx).Where("cin = ?", cin).Delete(&model.Employee{}).Error
}

func (r *employeeRepo) FindByCINTx(tx *gorm.DB, cin string) (*model.Employee, error) {
	var e model.Employee
	err := tx.Where("cin = ?", cin).First(&e).Error
	return &e, err
}
