package repository

import (
	"context"

	"carrental-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	SetActive(ctx context.Context, id int32, active bool) error
	CountClients(ctx context.Context, activeOnly bool) (int32, error)

	// Role-discriminated profiles
	CreateClientProfile(ctx context.Context, profile *domain.ClientProfile) error
	GetClientProfile(ctx context.Context, userID int32) (*domain.ClientProfile, error)
	UpdateClientProfile(ctx context.Context, profile *domain.ClientProfile) error
	CreateAgentProfile(ctx context.Context, profile *domain.AgentProfile) error
	GetAgentProfile(ctx context.Context, userID int32) (*domain.AgentProfile, error)
	GetAgentByCNPJ(ctx context.Context, cnpj string) (*domain.AgentProfile, error)
	ListBanks(ctx context.Context) ([]domain.User, error)
}

type EmploymentRepository interface {
	Create(ctx context.Context, emp *domain.Employment) error
	GetByID(ctx context.Context, id int32) (*domain.Employment, error)
	Delete(ctx context.Context, id int32) error
	ListByClient(ctx context.Context, clientID int32) ([]domain.Employment, error)
	CountByClient(ctx context.Context, clientID int32) (int32, error)
	TotalSalaryByClient(ctx context.Context, clientID int32) (int64, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	GetByRegistration(ctx context.Context, registration string) (*domain.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error
	Delete(ctx context.Context, id int32) error
	ListByStatus(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error)
	Search(ctx context.Context, brand, model string, year int32, maxRateCents int64) ([]domain.Vehicle, error)
	CountByStatus(ctx context.Context, status domain.VehicleStatus) (int32, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.RentalOrder) error
	GetByID(ctx context.Context, id int32) (*domain.RentalOrder, error)
	Update(ctx context.Context, o *domain.RentalOrder) error
	ListByClient(ctx context.Context, clientID int32) ([]domain.RentalOrder, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.RentalOrder, error)
	ListPending(ctx context.Context) ([]domain.RentalOrder, error)
	// FindConflicting returns APPROVED or ACTIVE orders for the vehicle whose
	// period overlaps [start, end] with inclusive bounds.
	FindConflicting(ctx context.Context, vehicleID int32, startDate, endDate string) ([]domain.RentalOrder, error)
	ListExpiredActive(ctx context.Context, today string) ([]domain.RentalOrder, error)
	HasActiveByVehicle(ctx context.Context, vehicleID int32) (bool, error)
	CountByStatus(ctx context.Context, status domain.OrderStatus) (int32, error)
	CountByClient(ctx context.Context, clientID int32) (int32, error)
}

type ContractRepository interface {
	Create(ctx context.Context, c *domain.Contract) error
	GetByID(ctx context.Context, id int32) (*domain.Contract, error)
	GetByNumber(ctx context.Context, number string) (*domain.Contract, error)
	GetByOrderID(ctx context.Context, orderID int32) (*domain.Contract, error)
	Update(ctx context.Context, c *domain.Contract) error
	ListByBank(ctx context.Context, bankID int32) ([]domain.Contract, error)
	ListByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.Contract, error)
	ListWithCredit(ctx context.Context) ([]domain.Contract, error)
	ListExpiredActive(ctx context.Context, today string) ([]domain.Contract, error)
	CountByStatus(ctx context.Context, status domain.ContractStatus) (int32, error)
}
