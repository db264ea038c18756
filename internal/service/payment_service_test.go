package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"
	"github.com/amine-amroussi/gestion-de-stock/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPaymentSvc() (service.PaymentService, *stubPaymentRepo, *stubEmployeeRepo, *stubTripRepo) {
	payments := newStubPaymentRepo()
	employees := newStubEmployeeRepo()
	trips := newStubTripRepo()
	return service.NewPaymentService(payments, employees, trips), payments, employees, trips
}

func seedClosedTrip(trips *stubTripRepo, seller string, date time.Time, waited, received int64) {
	trips.seq++
	trips.trips[trips.seq] = &model.Trip{
		ID:             trips.seq,
		TruckMatricule: "A-123",
		SellerCIN:      seller,
		Date:           date,
		IsActive:       false,
		WaitedAmount:   decimal.NewFromInt(waited),
		ReceivedAmount: decimal.NewFromInt(received),
	}
}

func TestCreatePayment_CreditFromTrips(t *testing.T) {
	svc, _, employees, trips := buildPaymentSvc()
	employees.seed("S1", "Rachid", model.RoleSeller, 2800)

	june := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	seedClosedTrip(trips, "S1", june, 300, 350)                 // +50
	seedClosedTrip(trips, "S1", june.AddDate(0, 0, 10), 200, 180) // −20
	seedClosedTrip(trips, "S1", june.AddDate(0, 1, 2), 100, 999)  // July — outside the period
	seedClosedTrip(trips, "S2", june, 100, 500)                  // someone else's trip

	resp, err := svc.Create(context.Background(), dto.CreatePaymentRequest{
		EmployeeCIN: "S1",
		Month:       6,
		Year:        2025,
		Status:      "pending",
	})
	require.NoError(t, err)

	assert.Equal(t, "2800", resp.Total.String())
	assert.Equal(t, "30", resp.Credit.String())
	assert.Equal(t, "2830", resp.NetPay.String())
	assert.Equal(t, "pending", resp.Status)
}

func TestCreatePayment_ActiveTripsExcluded(t *testing.T) {
	svc, _, employees, trips := buildPaymentSvc()
	employees.seed("S1", "Rachid", model.RoleSeller, 2800)

	june := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	seedClosedTrip(trips, "S1", june, 300, 400)
	// An in-flight trip must not contribute yet
	trips.seq++
	trips.trips[trips.seq] = &model.Trip{
		ID:             trips.seq,
		SellerCIN:      "S1",
		Date:           june,
		IsActive:       true,
		WaitedAmount:   decimal.Zero,
		ReceivedAmount: decimal.NewFromInt(1000),
	}

	resp, err := svc.Create(context.Background(), dto.CreatePaymentRequest{
		EmployeeCIN: "S1", Month: 6, Year: 2025, Status: "pending",
	})
	require.NoError(t, err)
	assert.Equal(t, "100", resp.Credit.String())
}

func TestCreatePayment_DuplicatePeriod(t *testing.T) {
	svc, _, employees, _ := buildPaymentSvc()
	employees.seed("S1", "Rachid", model.RoleSeller, 2800)

	req := dto.CreatePaymentRequest{EmployeeCIN: "S1", Month: 6, Year: 2025, Status: "pending"}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorContains(t, err, "existe déjà pour cet employé")
}

func TestCreatePayment_UnknownEmployee(t *testing.T) {
	svc, _, _, _ := buildPaymentSvc()
	_, err := svc.Create(context.Background(), dto.CreatePaymentRequest{
		EmployeeCIN: "GHOST", Month: 6, Year: 2025, Status: "pending",
	})
	assert.ErrorContains(t, err, "Employé introuvable")
}

func TestUpdatePaymentStatus(t *testing.T) {
	svc, _, employees, _ := buildPaymentSvc()
	employees.seed("S1", "Rachid", model.RoleSeller, 2800)

	created, err := svc.Create(context.Background(), dto.CreatePaymentRequest{
		EmployeeCIN: "S1", Month: 6, Year: 2025, Status: "pending",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), created.ID, "paid")
	require.NoError(t, err)
	assert.Equal(t, "paid", updated.Status)
}
