package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	orderRepo   repository.OrderRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, orderRepo repository.OrderRepository) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		orderRepo:   orderRepo,
	}
}

func (s *vehicleService) Register(ctx context.Context, v *domain.Vehicle) error {
	if err := s.validate(ctx, v); err != nil {
		return err
	}
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	return s.vehicleRepo.Create(ctx, v)
}

func (s *vehicleService) Get(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) Update(ctx context.Context, v *domain.Vehicle) error {
	if _, err := s.vehicleRepo.GetByID(ctx, v.ID); err != nil {
		return err
	}
	if err := s.validate(ctx, v); err != nil {
		return err
	}
	return s.vehicleRepo.Update(ctx, v)
}

func (s *vehicleService) Delete(ctx context.Context, id int32) error {
	if _, err := s.vehicleRepo.GetByID(ctx, id); err != nil {
		return err
	}
	hasActive, err := s.orderRepo.HasActiveByVehicle(ctx, id)
	if err != nil {
		return err
	}
	if hasActive {
		return domain.StateError("vehicle has approved or active rentals")
	}
	return s.vehicleRepo.Delete(ctx, id)
}

func (s *vehicleService) ListAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListByStatus(ctx, domain.VehicleStatusAvailable)
}

func (s *vehicleService) Search(ctx context.Context, brand, model string, year int32, maxRateCents int64) ([]domain.Vehicle, error) {
	return s.vehicleRepo.Search(ctx, brand, model, year, maxRateCents)
}

func (s *vehicleService) SetRented(ctx context.Context, id int32) error {
	return s.vehicleRepo.UpdateStatus(ctx, id, domain.VehicleStatusRented)
}

func (s *vehicleService) SetAvailable(ctx context.Context, id int32) error {
	return s.vehicleRepo.UpdateStatus(ctx, id, domain.VehicleStatusAvailable)
}

func (s *vehicleService) SetMaintenance(ctx context.Context, id int32) error {
	return s.vehicleRepo.UpdateStatus(ctx, id, domain.VehicleStatusMaintenance)
}

// IsAvailableForRental reports whether the vehicle is AVAILABLE and free
// of conflicting approved or active orders in the period.
func (s *vehicleService) IsAvailableForRental(ctx context.Context, id int32, startDate, endDate string) (bool, error) {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if v.Status != domain.VehicleStatusAvailable {
		return false, nil
	}
	conflicts, err := s.orderRepo.FindConflicting(ctx, id, startDate, endDate)
	if err != nil {
		return false, err
	}
	return len(conflicts) == 0, nil
}

func (s *vehicleService) validate(ctx context.Context, v *domain.Vehicle) error {
	if strings.TrimSpace(v.Registration) == "" {
		return domain.ValidationError("registration is required")
	}
	if strings.TrimSpace(v.Plate) == "" {
		return domain.ValidationError("license plate is required")
	}
	if strings.TrimSpace(v.Brand) == "" || strings.TrimSpace(v.Model) == "" {
		return domain.ValidationError("brand and model are required")
	}
	if v.Year < 1900 || v.Year > int32(time.Now().Year())+1 {
		return domain.ValidationError("invalid year: %d", v.Year)
	}
	if v.DailyRateCents <= 0 {
		return domain.ValidationError("daily rate must be greater than zero")
	}

	// Uniqueness on registration and plate.
	existing, err := s.vehicleRepo.GetByRegistration(ctx, v.Registration)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil && existing.ID != v.ID {
		return domain.ValidationError("registration already in use")
	}
	existing, err = s.vehicleRepo.GetByPlate(ctx, v.Plate)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil && existing.ID != v.ID {
		return domain.ValidationError("license plate already in use")
	}
	return nil
}
