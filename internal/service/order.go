package service

import (
	"context"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/utils"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
	clientSvc   ClientService
	contractSvc ContractService
	emailSvc    EmailService
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
	clientSvc ClientService,
	contractSvc ContractService,
	emailSvc EmailService,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		clientSvc:   clientSvc,
		contractSvc: contractSvc,
		emailSvc:    emailSvc,
	}
}

func (s *orderService) Create(ctx context.Context, clientID, vehicleID int32, startDate, endDate, observations string) (*domain.RentalOrder, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, domain.ValidationError("%v", err)
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, domain.ValidationError("%v", err)
	}
	if start.After(end) {
		return nil, domain.ValidationError("start date must not be after end date")
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if start.Before(today) {
		return nil, domain.ValidationError("start date must not be in the past")
	}

	client, err := s.userRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	eligible, err := s.clientSvc.IsEligibleForRental(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, domain.StateError("client is not eligible for rental")
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		return nil, domain.AvailabilityError("vehicle is %s", vehicle.Status)
	}
	conflicts, err := s.orderRepo.FindConflicting(ctx, vehicleID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, domain.AvailabilityError("vehicle already booked for the requested period")
	}

	total, err := utils.RentalCost(vehicle.DailyRateCents, start, end)
	if err != nil {
		return nil, domain.ValidationError("%v", err)
	}
	if total <= 0 {
		return nil, domain.ValidationError("total amount must be greater than zero")
	}

	order := &domain.RentalOrder{
		ClientID:         clientID,
		VehicleID:        vehicleID,
		StartDate:        startDate,
		EndDate:          endDate,
		TotalAmountCents: total,
		Status:           domain.OrderStatusPending,
		Observations:     observations,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.emailSvc.SendOrderReceived(ctx, client.Email, client.Name, order); err != nil {
		logger.Warn("failed to send order received email", "order_id", order.ID, "error", err)
	}
	return order, nil
}

func (s *orderService) Get(ctx context.Context, actor domain.Actor, orderID int32) (*domain.RentalOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	// Clients may only see their own orders; agents see everything.
	if actor.Role == domain.RoleClient && order.ClientID != actor.UserID {
		return nil, domain.ErrUnauthorized
	}
	return order, nil
}

func (s *orderService) ListByClient(ctx context.Context, clientID int32) ([]domain.RentalOrder, error) {
	return s.orderRepo.ListByClient(ctx, clientID)
}

func (s *orderService) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.RentalOrder, error) {
	return s.orderRepo.ListByStatus(ctx, status)
}

func (s *orderService) ListPending(ctx context.Context) ([]domain.RentalOrder, error) {
	return s.orderRepo.ListPending(ctx)
}

func (s *orderService) StartEvaluation(ctx context.Context, actor domain.Actor, orderID int32) (*domain.RentalOrder, error) {
	if actor.Role != domain.RoleAgent {
		return nil, domain.ErrUnauthorized
	}
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusPending {
		return nil, domain.StateError("only pending orders can move to evaluation")
	}
	order.Status = domain.OrderStatusUnderEvaluation
	order.EvaluatedBy = &actor.UserID
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Evaluate records an agent's decision. Approval marks the vehicle
// RENTED, issues the contract and moves the order straight to ACTIVE;
// there is no observable APPROVED resting state.
func (s *orderService) Evaluate(ctx context.Context, actor domain.Actor, orderID int32, approve bool, notes string) (*domain.RentalOrder, error) {
	if actor.Role != domain.RoleAgent {
		return nil, domain.ErrUnauthorized
	}
	agent, err := s.userRepo.GetAgentProfile(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanBeEvaluated() {
		return nil, domain.StateError("order cannot be evaluated in status %s", order.Status)
	}

	order.EvaluatedBy = &actor.UserID
	order.EvaluationNotes = notes

	if !approve {
		order.Status = domain.OrderStatusRejected
		if err := s.orderRepo.Update(ctx, order); err != nil {
			return nil, err
		}
		s.notifyEvaluated(ctx, order, false, notes)
		return order, nil
	}

	order.Status = domain.OrderStatusApproved
	if err := s.vehicleRepo.UpdateStatus(ctx, order.VehicleID, domain.VehicleStatusRented); err != nil {
		return nil, err
	}
	if _, err := s.contractSvc.CreateForOrder(ctx, order, agent); err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatusActive
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	s.notifyEvaluated(ctx, order, true, notes)
	return order, nil
}

func (s *orderService) Cancel(ctx context.Context, actor domain.Actor, orderID int32, reason string) (*domain.RentalOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleClient && order.ClientID != actor.UserID {
		return nil, domain.ErrUnauthorized
	}
	if !order.CanBeCancelled() {
		return nil, domain.StateError("order cannot be cancelled in status %s", order.Status)
	}

	order.Status = domain.OrderStatusCancelled
	order.EvaluationNotes = reason
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	// Release the vehicle if this rental was holding it.
	vehicle, err := s.vehicleRepo.GetByID(ctx, order.VehicleID)
	if err == nil && vehicle.Status == domain.VehicleStatusRented {
		if err := s.vehicleRepo.UpdateStatus(ctx, order.VehicleID, domain.VehicleStatusAvailable); err != nil {
			return nil, err
		}
	}

	if client, err := s.userRepo.GetByID(ctx, order.ClientID); err == nil {
		if err := s.emailSvc.SendOrderCancelled(ctx, client.Email, client.Name, order, reason); err != nil {
			logger.Warn("failed to send order cancelled email", "order_id", order.ID, "error", err)
		}
	}
	return order, nil
}

func (s *orderService) Complete(ctx context.Context, actor domain.Actor, orderID int32) (*domain.RentalOrder, error) {
	if actor.Role != domain.RoleAgent {
		return nil, domain.ErrUnauthorized
	}
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.completeOrder(ctx, order)
}

func (s *orderService) completeOrder(ctx context.Context, order *domain.RentalOrder) (*domain.RentalOrder, error) {
	if order.Status != domain.OrderStatusActive {
		return nil, domain.StateError("only active orders can be completed")
	}

	order.Status = domain.OrderStatusCompleted
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.UpdateStatus(ctx, order.VehicleID, domain.VehicleStatusAvailable); err != nil {
		return nil, err
	}

	// Close out the contract if one was issued.
	contract, err := s.contractSvc.GetByOrder(ctx, order.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if contract != nil && contract.IsActive() {
		if _, err := s.contractSvc.Complete(ctx, contract.ID); err != nil {
			return nil, err
		}
	}

	if client, err := s.userRepo.GetByID(ctx, order.ClientID); err == nil {
		if err := s.emailSvc.SendOrderCompleted(ctx, client.Email, client.Name, order); err != nil {
			logger.Warn("failed to send order completed email", "order_id", order.ID, "error", err)
		}
	}
	return order, nil
}

func (s *orderService) FindConflicts(ctx context.Context, vehicleID int32, startDate, endDate string) ([]domain.RentalOrder, error) {
	if _, err := utils.ParseDate(startDate); err != nil {
		return nil, domain.ValidationError("%v", err)
	}
	if _, err := utils.ParseDate(endDate); err != nil {
		return nil, domain.ValidationError("%v", err)
	}
	return s.orderRepo.FindConflicting(ctx, vehicleID, startDate, endDate)
}

func (s *orderService) ProcessExpired(ctx context.Context) (int, error) {
	today := time.Now().UTC().Format(utils.DateLayout)
	expired, err := s.orderRepo.ListExpiredActive(ctx, today)
	if err != nil {
		return 0, err
	}
	completed := 0
	for i := range expired {
		if _, err := s.completeOrder(ctx, &expired[i]); err != nil {
			logger.Error("failed to complete expired order", "order_id", expired[i].ID, "error", err)
			continue
		}
		completed++
	}
	return completed, nil
}

func (s *orderService) notifyEvaluated(ctx context.Context, order *domain.RentalOrder, approved bool, notes string) {
	client, err := s.userRepo.GetByID(ctx, order.ClientID)
	if err != nil {
		return
	}
	if err := s.emailSvc.SendOrderEvaluated(ctx, client.Email, client.Name, order, approved, notes); err != nil {
		logger.Warn("failed to send order evaluated email", "order_id", order.ID, "error", err)
	}
}
