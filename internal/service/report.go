package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type reportService struct {
	orderRepo    repository.OrderRepository
	vehicleRepo  repository.VehicleRepository
	contractRepo repository.ContractRepository
	userRepo     repository.UserRepository
}

func NewReportService(
	orderRepo repository.OrderRepository,
	vehicleRepo repository.VehicleRepository,
	contractRepo repository.ContractRepository,
	userRepo repository.UserRepository,
) ReportService {
	return &reportService{
		orderRepo:    orderRepo,
		vehicleRepo:  vehicleRepo,
		contractRepo: contractRepo,
		userRepo:     userRepo,
	}
}

var (
	orderStatuses = []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusUnderEvaluation,
		domain.OrderStatusApproved,
		domain.OrderStatusRejected,
		domain.OrderStatusCancelled,
		domain.OrderStatusActive,
		domain.OrderStatusCompleted,
	}
	vehicleStatuses = []domain.VehicleStatus{
		domain.VehicleStatusAvailable,
		domain.VehicleStatusRented,
		domain.VehicleStatusMaintenance,
		domain.VehicleStatusUnavailable,
	}
	contractStatuses = []domain.ContractStatus{
		domain.ContractStatusActive,
		domain.ContractStatusCompleted,
		domain.ContractStatusCancelled,
		domain.ContractStatusSuspended,
	}
)

func (s *reportService) Dashboard(ctx context.Context) (*domain.DashboardReport, error) {
	report := &domain.DashboardReport{
		OrdersByStatus:    make(map[domain.OrderStatus]int32),
		VehiclesByStatus:  make(map[domain.VehicleStatus]int32),
		ContractsByStatus: make(map[domain.ContractStatus]int32),
	}

	for _, st := range orderStatuses {
		count, err := s.orderRepo.CountByStatus(ctx, st)
		if err != nil {
			return nil, err
		}
		report.OrdersByStatus[st] = count
	}
	for _, st := range vehicleStatuses {
		count, err := s.vehicleRepo.CountByStatus(ctx, st)
		if err != nil {
			return nil, err
		}
		report.VehiclesByStatus[st] = count
	}
	for _, st := range contractStatuses {
		count, err := s.contractRepo.CountByStatus(ctx, st)
		if err != nil {
			return nil, err
		}
		report.ContractsByStatus[st] = count
	}

	total, err := s.userRepo.CountClients(ctx, false)
	if err != nil {
		return nil, err
	}
	active, err := s.userRepo.CountClients(ctx, true)
	if err != nil {
		return nil, err
	}
	report.TotalClients = total
	report.ActiveClients = active
	return report, nil
}
