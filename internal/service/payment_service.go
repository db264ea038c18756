package service

import (
	"context"
	"time"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"
	"github.com/amine-amroussi/gestion-de-stock/internal/repository"

	"github.com/shopspring/decimal"
)

type PaymentService interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.PaymentResponse, error)
	List(ctx context.Context) (*dto.PaymentListResponse, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*dto.PaymentResponse, error)
}

type paymentService struct {
	repo         repository.PaymentRepository
	employeeRepo repository.EmployeeRepository
	tripRepo     repository.TripRepository
}

func NewPaymentService(
	repo repository.PaymentRepository,
	employeeRepo repository.EmployeeRepository,
	tripRepo repository.TripRepository,
) PaymentService {
	return &paymentService{repo: repo, employeeRepo: employeeRepo, tripRepo: tripRepo}
}

// Create computes one employee's payroll for a month. Total is the fixed
// salary; Credit sums received minus expected over the month's trips where the
// employee was the seller, so a seller who brought back less cash than
// expected sees the shortfall deducted. One payment per employee per period.
func (s *paymentService) Create(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	employee, err := s.employeeRepo.FindByCIN(ctx, req.EmployeeCIN)
	if err != nil {
		return nil, apierror.NotFound("Employé introuvable")
	}

	if existing, err := s.repo.FindByEmployeePeriod(ctx, req.EmployeeCIN, req.Month, req.Year); err == nil && existing != nil && existing.ID != 0 {
		return nil, apierror.BadRequest("Un paiement existe déjà pour cet employé sur cette période")
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	credit := decimal.Zero
	trips, err := s.tripRepo.ListBySellerBetween(ctx, req.EmployeeCIN, from, to)
	if err != nil {
		return nil, apierror.Internal("Erreur lors du calcul du crédit de l'employé")
	}
	for _, t := range trips {
		if t.IsActive {
			continue
		}
		credit = credit.Add(t.ReceivedAmount.Sub(t.WaitedAmount))
	}

	payment := &model.PaymentEmployee{
		EmployeeCIN: req.EmployeeCIN,
		Month:       req.Month,
		Year:        req.Year,
		Total:       employee.SalaryFix,
		Credit:      credit,
		NetPay:      employee.SalaryFix.Add(credit),
		Status:      req.Status,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, apierror.BadRequest("Un paiement existe déjà pour cet employé sur cette période")
	}
	return paymentToResponse(payment), nil
}

func (s *paymentService) GetByID(ctx context.Context, id uint) (*dto.PaymentResponse, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Paiement introuvable")
	}
	return paymentToResponse(payment), nil
}

func (s *paymentService) List(ctx context.Context) (*dto.PaymentListResponse, error) {
	payments, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des paiements")
	}
	resp := &dto.PaymentListResponse{Payments: make([]dto.PaymentResponse, 0, len(payments))}
	for i := range payments {
		resp.Payments = append(resp.Payments, *paymentToResponse(&payments[i]))
	}
	return resp, nil
}

func (s *paymentService) UpdateStatus(ctx context.Context, id uint, status string) (*dto.PaymentResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, apierror.NotFound("Paiement introuvable")
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, apierror.Internal("Erreur lors de la mise à jour du paiement")
	}
	return s.GetByID(ctx, id)
}

func paymentToResponse(p *model.PaymentEmployee) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:          p.ID,
		EmployeeCIN: p.EmployeeCIN,
		Month:       p.Month,
		Year:        p.Year,
		Total:       p.Total,
		Credit:      p.Credit,
		NetPay:      p.NetPay,
		Status:      p.Status,
	}
}
