package service

import (
	"context"
	"time"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/repository"

	"github.com/shopspring/decimal"
)

type RevenueService interface {
	Summary(ctx context.Context, filter dto.RevenueFilter) (*dto.RevenueSummaryResponse, error)
}

type revenueService struct {
	tripRepo     repository.TripRepository
	purchaseRepo repository.PurchaseRepository
	paymentRepo  repository.PaymentRepository
	chargeRepo   repository.ChargeRepository
}

func NewRevenueService(
	tripRepo repository.TripRepository,
	purchaseRepo repository.PurchaseRepository,
	paymentRepo repository.PaymentRepository,
	chargeRepo repository.ChargeRepository,
) RevenueService {
	return &revenueService{
		tripRepo:     tripRepo,
		purchaseRepo: purchaseRepo,
		paymentRepo:  paymentRepo,
		chargeRepo:   chargeRepo,
	}
}

// resolveWindow turns the period keyword into a concrete [from, to] range.
func resolveWindow(filter dto.RevenueFilter, now time.Time) (time.Time, time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := today.Add(24*time.Hour - time.Second)

	switch filter.Period {
	case "", "today":
		return today, end, nil
	case "lastWeek":
		return today.AddDate(0, 0, -7), end, nil
	case "last15Days":
		return today.AddDate(0, 0, -15), end, nil
	case "lastMonth":
		return today.AddDate(0, -1, 0), end, nil
	case "custom":
		if filter.StartDate == "" || filter.EndDate == "" {
			return time.Time{}, time.Time{}, apierror.BadRequest("La période personnalisée exige une date de début et une date de fin")
		}
		from, err := time.Parse("2006-01-02", filter.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, apierror.BadRequest("Date de début invalide, format attendu AAAA-MM-JJ")
		}
		to, err := time.Parse("2006-01-02", filter.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, apierror.BadRequest("Date de fin invalide, format attendu AAAA-MM-JJ")
		}
		if to.Before(from) {
			return time.Time{}, time.Time{}, apierror.BadRequest("La date de fin précède la date de début")
		}
		return from, to.Add(24*time.Hour - time.Second), nil
	default:
		return time.Time{}, time.Time{}, apierror.BadRequest("Période inconnue")
	}
}

// Summary aggregates cash in (trip settlements) against cash out (purchases,
// payroll, charges) over the window, with per-day breakdowns.
func (s *revenueService) Summary(ctx context.Context, filter dto.RevenueFilter) (*dto.RevenueSummaryResponse, error) {
	from, to, err := resolveWindow(filter, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	resp := &dto.RevenueSummaryResponse{
		RevenueByDate:   map[string]string{},
		PurchasesByDate: map[string]string{},
		PaymentsByDate:  map[string]string{},
		ChargesByDate:   map[string]string{},
		Period:          filter.Period,
		StartDate:       from.Format("2006-01-02"),
		EndDate:         to.Format("2006-01-02"),
	}
	if resp.Period == "" {
		resp.Period = "today"
	}

	totalRevenue := decimal.Zero
	revenueByDate := map[string]decimal.Decimal{}
	trips, err := s.tripRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des tournées")
	}
	for _, t := range trips {
		if t.IsActive {
			continue
		}
		day := t.Date.Format("2006-01-02")
		totalRevenue = totalRevenue.Add(t.ReceivedAmount)
		revenueByDate[day] = revenueByDate[day].Add(t.ReceivedAmount)
	}

	totalPurchases := decimal.Zero
	purchasesByDate := map[string]decimal.Decimal{}
	purchases, err := s.purchaseRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des achats")
	}
	for _, p := range purchases {
		day := p.Date.Format("2006-01-02")
		totalPurchases = totalPurchases.Add(p.Total)
		purchasesByDate[day] = purchasesByDate[day].Add(p.Total)
	}

	totalPayments := decimal.Zero
	paymentsByDate := map[string]decimal.Decimal{}
	payments, err := s.paymentRepo.ListByPeriods(ctx, monthsIn(from, to))
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des paiements")
	}
	for _, p := range payments {
		day := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		totalPayments = totalPayments.Add(p.NetPay)
		paymentsByDate[day] = paymentsByDate[day].Add(p.NetPay)
	}

	totalCharges := decimal.Zero
	chargesByDate := map[string]decimal.Decimal{}
	charges, err := s.chargeRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des charges")
	}
	for _, c := range charges {
		day := c.Date.Format("2006-01-02")
		totalCharges = totalCharges.Add(c.Amount)
		chargesByDate[day] = chargesByDate[day].Add(c.Amount)
	}

	resp.TotalRevenue = totalRevenue.StringFixed(2)
	resp.TotalPurchases = totalPurchases.StringFixed(2)
	resp.TotalPayments = totalPayments.StringFixed(2)
	resp.TotalCharges = totalCharges.StringFixed(2)
	for day, v := range revenueByDate {
		resp.RevenueByDate[day] = v.StringFixed(2)
	}
	for day, v := range purchasesByDate {
		resp.PurchasesByDate[day] = v.StringFixed(2)
	}
	for day, v := range paymentsByDate {
		resp.PaymentsByDate[day] = v.StringFixed(2)
	}
	for day, v := range chargesByDate {
		resp.ChargesByDate[day] = v.StringFixed(2)
	}
	return resp, nil
}

// monthsIn lists the (year, month) pairs the window touches.
func monthsIn(from, to time.Time) [][2]int {
	var periods [][2]int
	cur := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(to) {
		periods = append(periods, [2]int{cur.Year(), int(cur.Month())})
		cur = cur.AddDate(0, 1, 0)
	}
	return periods
}
