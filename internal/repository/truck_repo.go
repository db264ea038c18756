package repository

import (
	"context"

	"github.com/amine-amroussi/gestion-de-stock/internal/model"

	"gorm.io/gorm"
)

type TruckRepository interface {
	Create(ctx context.Context, t *model.Truck) error
	FindByMatricule(ctx context.Context, matricule string) (*model.Truck, error)
	List(ctx context.Context) ([]model.Truck, error)
	Update(ctx context.Context, t *model.Truck) error
	Delete(ctx context.Context, matricule string) error
	FindByMatriculeTx(tx *gorm.DB, matricule string) (*model.Truck, error)
}

type truckRepo struct{ db *gorm.DB }

func NewTruckRepository(db *gorm.DB) TruckRepository { return &truckRepo{db: db} }

func (r *truckRepo) Create(ctx context.Context, t *model.Truck) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *truckRepo) FindByMatricule(ctx context.Context, matricule string) (*model.Truck, error) {
	var t model.Truck
	err := r.db.WithContext(ctx).Where("matricule = ?", matricule).First(&t).Error
	return &t, err
}

func (r *truckRepo) List(ctx context.Context) ([]model.Truck, error) {
	var trucks []model.Truck
	err := r.db.WithContext(ctx).Order("matricule ASC").Find(&trucks).Error
	return trucks, err
}

func (r *truckRepo) Update(ctx context.Context, t *model.Truck) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *truckRepo) Delete(ctx context.Context, matricule string) error {
	return r.db.WithContext(ctx).Where("matricule = ?", matricule).Delete(&model.Truck{}).Error
}

func (r *truckRepo) FindByMatriculeTx(tx *gorm.DB, matricule string) (*model.Truck, error) {
	var t model.Truck
	err := tx.Where("matricule = ?", matricule).First(&t).Error
	return &t, err
}
