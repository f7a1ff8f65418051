package service

import (
	"context"

	"carrental-backend/internal/domain"
)

type AuthService interface {
	SignupClient(ctx context.Context, name, email, password, cpf, profession string) (*domain.User, error)
	SignupAgent(ctx context.Context, name, email, password, cpf, cnpj string, agentType domain.AgentType) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, string, *domain.User, error) // access, refresh, user
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type ClientService interface {
	GetProfile(ctx context.Context, clientID int32) (*domain.User, *domain.ClientProfile, []domain.Employment, error)
	UpdateProfile(ctx context.Context, clientID int32, name, profession string) error
	Activate(ctx context.Context, clientID int32) error
	Deactivate(ctx context.Context, clientID int32) error
	AddEmployment(ctx context.Context, clientID int32, employer, position string, salaryCents int64) (*domain.Employment, error)
	RemoveEmployment(ctx context.Context, clientID, employmentID int32) error
	TotalIncome(ctx context.Context, clientID int32) (int64, error)
	IsEligibleForRental(ctx context.Context, clientID int32) (bool, error)
}

type AgentService interface {
	GetProfile(ctx context.Context, agentID int32) (*domain.User, *domain.AgentProfile, error)
	ListBanks(ctx context.Context) ([]domain.User, error)
}

type VehicleService interface {
	Register(ctx context.Context, v *domain.Vehicle) error
	Get(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	ListAvailable(ctx context.Context) ([]domain.Vehicle, error)
	Search(ctx context.Context, brand, model string, year int32, maxRateCents int64) ([]domain.Vehicle, error)
	SetRented(ctx context.Context, id int32) error
	SetAvailable(ctx context.Context, id int32) error
	SetMaintenance(ctx context.Context, id int32) error
	IsAvailableForRental(ctx context.Context, id int32, startDate, endDate string) (bool, error)
}

type OrderService interface {
	Create(ctx context.Context, clientID, vehicleID int32, startDate, endDate, observations string) (*domain.RentalOrder, error)
	Get(ctx context.Context, actor domain.Actor, orderID int32) (*domain.RentalOrder, error)
	ListByClient(ctx context.Context, clientID int32) ([]domain.RentalOrder, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.RentalOrder, error)
	ListPending(ctx context.Context) ([]domain.RentalOrder, error)
	StartEvaluation(ctx context.Context, actor domain.Actor, orderID int32) (*domain.RentalOrder, error)
	Evaluate(ctx context.Context, actor domain.Actor, orderID int32, approve bool, notes string) (*domain.RentalOrder, error)
	Cancel(ctx context.Context, actor domain.Actor, orderID int32, reason string) (*domain.RentalOrder, error)
	Complete(ctx context.Context, actor domain.Actor, orderID int32) (*domain.RentalOrder, error)
	FindConflicts(ctx context.Context, vehicleID int32, startDate, endDate string) ([]domain.RentalOrder, error)
	// ProcessExpired completes every ACTIVE order whose end date has passed
	// and returns how many were completed.
	ProcessExpired(ctx context.Context) (int, error)
}

type ContractService interface {
	CreateForOrder(ctx context.Context, order *domain.RentalOrder, agent *domain.AgentProfile) (*domain.Contract, error)
	CreateCreditContract(ctx context.Context, orderID, bankID int32, creditCents int64, interestRatePct float64) (*domain.Contract, error)
	Get(ctx context.Context, id int32) (*domain.Contract, error)
	GetByOrder(ctx context.Context, orderID int32) (*domain.Contract, error)
	GetByNumber(ctx context.Context, number string) (*domain.Contract, error)
	TotalWithInterest(c *domain.Contract) int64
	Complete(ctx context.Context, id int32) (*domain.Contract, error)
	Cancel(ctx context.Context, id int32, reason string) (*domain.Contract, error)
	Suspend(ctx context.Context, id int32, reason string) (*domain.Contract, error)
	Reactivate(ctx context.Context, id int32) (*domain.Contract, error)
	ListByBank(ctx context.Context, bankID int32) ([]domain.Contract, error)
	ListByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.Contract, error)
	ListWithCredit(ctx context.Context) ([]domain.Contract, error)
	ProcessExpired(ctx context.Context) (int, error)
}

type ReportService interface {
	Dashboard(ctx context.Context) (*domain.DashboardReport, error)
}

type EmailService interface {
	SendOrderReceived(ctx context.Context, email, name string, order *domain.RentalOrder) error
	SendOrderEvaluated(ctx context.Context, email, name string, order *domain.RentalOrder, approved bool, notes string) error
	SendOrderCancelled(ctx context.Context, email, name string, order *domain.RentalOrder, reason string) error
	SendOrderCompleted(ctx context.Context, email, name string, order *domain.RentalOrder) error
}
