package service

import (
	"context"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"
	"github.com/amine-amroussi/gestion-de-stock/internal/repository"
)

type TruckService interface {
	Create(ctx context.Context, req dto.TruckRequest) (*dto.TruckResponse, error)
	GetByMatricule(ctx context.Context, matricule string) (*dto.TruckResponse, error)
	List(ctx context.Context) ([]dto.TruckResponse, error)
	Update(ctx context.Context, matricule string, req dto.TruckRequest) (*dto.TruckResponse, error)
	Delete(ctx context.Context, matricule string) error
}

type truckService struct {
	repo repository.TruckRepository
}

func NewTruckService(repo repository.TruckRepository) TruckService {
	return &truckService{repo: repo}
}

func (s *truckService) Create(ctx context.Context, req dto.TruckRequest) (*dto.TruckResponse, error) {
	if _, err := s.repo.FindByMatricule(ctx, req.Matricule); err == nil {
		return nil, apierror.BadRequest("Un camion avec cette immatriculation existe déjà")
	}
	truck := &model.Truck{Matricule: req.Matricule, Capacity: req.Capacity}
	if err := s.repo.Create(ctx, truck); err != nil {
		return nil, apierror.Internal("Erreur lors de la création du camion")
	}
	return &dto.TruckResponse{Matricule: truck.Matricule, Capacity: truck.Capacity}, nil
}

func (s *truckService) GetByMatricule(ctx context.Context, matricule string) (*dto.TruckResponse, error) {
	truck, err := s.repo.FindByMatricule(ctx, matricule)
	if err != nil {
		return nil, apierror.NotFound("Camion introuvable")
	}
	return &dto.TruckResponse{Matricule: truck.Matricule, Capacity: truck.Capacity}, nil
}

func (s *truckService) List(ctx context.Context) ([]dto.TruckResponse, error) {
	trucks, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des camions")
	}
	out := make([]dto.TruckResponse, 0, len(trucks))
	for _, t := range trucks {
		out = append(out, dto.TruckResponse{Matricule: t.Matricule, Capacity: t.Capacity})
	}
	return out, nil
}

func (s *truckService) Update(ctx context.Context, matricule string, req dto.TruckRequest) (*dto.TruckResponse, error) {
	truck, err := s.repo.FindByMatricule(ctx, matricule)
	if err != nil {
		return nil, apierror.NotFound("Camion introuvable")
	}
	truck.Capacity = req.Capacity
	if err := s.repo.Update(ctx, truck); err != nil {
		return nil, apierror.Internal("Erreur lors de la mise à jour du camion")
	}
	return &dto.TruckResponse{Matricule: truck.Matricule, Capacity: truck.Capacity}, nil
}

func (s *truckService) Delete(ctx context.Context, matricule string) error {
	if _, err := s.repo.FindByMatricule(ctx, matricule); err != nil {
		return apierror.NotFound("Camion introuvable")
	}
	if err := s.repo.Delete(ctx, matricule); err != nil {
		return apierror.Internal("Erreur lors de la suppression du camion")
	}
	return nil
}
