package service_test

import (
	"context"
	"errors"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newVehicleService() (service.VehicleService, *MockVehicleRepo, *MockOrderRepo) {
	vehicleRepo := new(MockVehicleRepo)
	orderRepo := new(MockOrderRepo)
	svc := service.NewVehicleService(vehicleRepo, orderRepo)
	return svc, vehicleRepo, orderRepo
}

func validVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		Registration:   "REG-001",
		Plate:          "ABC1D23",
		Brand:          "Fiat",
		Model:          "Uno",
		Year:           2024,
		Color:          "red",
		DailyRateCents: 10000,
		OwnerType:      domain.OwnerTypeCompany,
	}
}

func TestVehicleService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Defaults To Available", func(t *testing.T) {
		svc, vehicleRepo, _ := newVehicleService()
		v := validVehicle()
		vehicleRepo.On("GetByRegistration", ctx, "REG-001").Return(nil, domain.NotFoundError("vehicle", 0))
		vehicleRepo.On("GetByPlate", ctx, "ABC1D23").Return(nil, domain.NotFoundError("vehicle", 0))
		vehicleRepo.On("Create", ctx, v).Return(nil)

		err := svc.Register(ctx, v)
		assert.NoError(t, err)
		assert.Equal(t, domain.VehicleStatusAvailable, v.Status)
	})

	t.Run("Duplicate Plate", func(t *testing.T) {
		svc, vehicleRepo, _ := newVehicleService()
		v := validVehicle()
		vehicleRepo.On("GetByRegistration", ctx, "REG-001").Return(nil, domain.NotFoundError("vehicle", 0))
		vehicleRepo.On("GetByPlate", ctx, "ABC1D23").Return(&domain.Vehicle{ID: 9, Plate: "ABC1D23"}, nil)

		err := svc.Register(ctx, v)
		assert.ErrorIs(t, err, domain.ErrValidation)
		vehicleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Year", func(t *testing.T) {
		svc, _, _ := newVehicleService()
		v := validVehicle()
		v.Year = 1850

		err := svc.Register(ctx, v)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Zero Daily Rate", func(t *testing.T) {
		svc, _, _ := newVehicleService()
		v := validVehicle()
		v.DailyRateCents = 0

		err := svc.Register(ctx, v)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Registration Lookup Fails", func(t *testing.T) {
		svc, vehicleRepo, _ := newVehicleService()
		v := validVehicle()
		lookupErr := errors.New("connection reset")
		vehicleRepo.On("GetByRegistration", ctx, "REG-001").Return(nil, lookupErr)

		err := svc.Register(ctx, v)
		assert.ErrorIs(t, err, lookupErr)
		vehicleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestVehicleService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, vehicleRepo, orderRepo := newVehicleService()
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(&domain.Vehicle{ID: 2}, nil)
		orderRepo.On("HasActiveByVehicle", ctx, int32(2)).Return(false, nil)
		vehicleRepo.On("Delete", ctx, int32(2)).Return(nil)

		err := svc.Delete(ctx, 2)
		assert.NoError(t, err)
	})

	t.Run("Blocked By Active Rental", func(t *testing.T) {
		svc, vehicleRepo, orderRepo := newVehicleService()
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(&domain.Vehicle{ID: 2}, nil)
		orderRepo.On("HasActiveByVehicle", ctx, int32(2)).Return(true, nil)

		err := svc.Delete(ctx, 2)
		assert.ErrorIs(t, err, domain.ErrState)
		vehicleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestVehicleService_IsAvailableForRental(t *testing.T) {
	ctx := context.Background()

	t.Run("Available And Free", func(t *testing.T) {
		svc, vehicleRepo, orderRepo := newVehicleService()
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(&domain.Vehicle{ID: 2, Status: domain.VehicleStatusAvailable}, nil)
		orderRepo.On("FindConflicting", ctx, int32(2), "2026-09-10", "2026-09-12").Return([]domain.RentalOrder{}, nil)

		ok, err := svc.IsAvailableForRental(ctx, 2, "2026-09-10", "2026-09-12")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("In Maintenance", func(t *testing.T) {
		svc, vehicleRepo, _ := newVehicleService()
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(&domain.Vehicle{ID: 2, Status: domain.VehicleStatusMaintenance}, nil)

		ok, err := svc.IsAvailableForRental(ctx, 2, "2026-09-10", "2026-09-12")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Booked In Period", func(t *testing.T) {
		svc, vehicleRepo, orderRepo := newVehicleService()
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(&domain.Vehicle{ID: 2, Status: domain.VehicleStatusAvailable}, nil)
		orderRepo.On("FindConflicting", ctx, int32(2), "2026-09-10", "2026-09-12").
			Return([]domain.RentalOrder{{ID: 9, Status: domain.OrderStatusActive}}, nil)

		ok, err := svc.IsAvailableForRental(ctx, 2, "2026-09-10", "2026-09-12")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
