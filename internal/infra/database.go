package infra

import (
	"fmt"

	"github.com/amine-amroussi/gestion-de-stock/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// for every table the application owns.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

// RunMigrations creates or updates the schema. Master data first, then the
// documents that reference it.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Box{},
		&model.Product{},
		&model.Supplier{},
		&model.Truck{},
		&model.Employee{},
		&model.User{},
		&model.Purchase{},
		&model.PurchaseProduct{},
		&model.PurchaseBox{},
		&model.PurchaseWaste{},
		&model.Trip{},
		&model.TripProduct{},
		&model.TripBox{},
		&model.TripWaste{},
		&model.TripCharge{},
		&model.Waste{},
		&model.Charge{},
		&model.PaymentEmployee{},
		&model.StockMovement{},
	)
}
