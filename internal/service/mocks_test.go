package service_test

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) SetActive(ctx context.Context, id int32, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}
func (m *MockUserRepo) CountClients(ctx context.Context, activeOnly bool) (int32, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockUserRepo) CreateClientProfile(ctx context.Context, profile *domain.ClientProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
func (m *MockUserRepo) GetClientProfile(ctx context.Context, userID int32) (*domain.ClientProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientProfile), args.Error(1)
}
func (m *MockUserRepo) UpdateClientProfile(ctx context.Context, profile *domain.ClientProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
func (m *MockUserRepo) CreateAgentProfile(ctx context.Context, profile *domain.AgentProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
func (m *MockUserRepo) GetAgentProfile(ctx context.Context, userID int32) (*domain.AgentProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgentProfile), args.Error(1)
}
func (m *MockUserRepo) GetAgentByCNPJ(ctx context.Context, cnpj string) (*domain.AgentProfile, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgentProfile), args.Error(1)
}
func (m *MockUserRepo) ListBanks(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockEmploymentRepo
type MockEmploymentRepo struct {
	mock.Mock
}

func (m *MockEmploymentRepo) Create(ctx context.Context, emp *domain.Employment) error {
	args := m.Called(ctx, emp)
	return args.Error(0)
}
func (m *MockEmploymentRepo) GetByID(ctx context.Context, id int32) (*domain.Employment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employment), args.Error(1)
}
func (m *MockEmploymentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEmploymentRepo) ListByClient(ctx context.Context, clientID int32) ([]domain.Employment, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.Employment), args.Error(1)
}
func (m *MockEmploymentRepo) CountByClient(ctx context.Context, clientID int32) (int32, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockEmploymentRepo) TotalSalaryByClient(ctx context.Context, clientID int32) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) GetByRegistration(ctx context.Context, registration string) (*domain.Vehicle, error) {
	args := m.Called(ctx, registration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) ListByStatus(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Search(ctx context.Context, brand, model string, year int32, maxRateCents int64) ([]domain.Vehicle, error) {
	args := m.Called(ctx, brand, model, year, maxRateCents)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) CountByStatus(ctx context.Context, status domain.VehicleStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, o *domain.RentalOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id int32) (*domain.RentalOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalOrder), args.Error(1)
}
func (m *MockOrderRepo) Update(ctx context.Context, o *domain.RentalOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepo) ListByClient(ctx context.Context, clientID int32) ([]domain.RentalOrder, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.RentalOrder), args.Error(1)
}
func (m *MockOrderRepo) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.RentalOrder, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.RentalOrder), args.Error(1)
}
func (m *MockOrderRepo) ListPending(ctx context.Context) ([]domain.RentalOrder, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RentalOrder), args.Error(1)
}
func (m *MockOrderRepo) FindConflicting(ctx context.Context, vehicleID int32, startDate, endDate string) ([]domain.RentalOrder, error) {
	args := m.Called(ctx, vehicleID, startDate, endDate)
	return args.Get(0).([]domain.RentalOrder), args.Error(1)
}
func (m *MockOrderRepo) ListExpiredActive(ctx context.Context, today string) ([]domain.RentalOrder, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]domain.RentalOrder), args.Error(1)
}
func (m *MockOrderRepo) HasActiveByVehicle(ctx context.Context, vehicleID int32) (bool, error) {
	args := m.Called(ctx, vehicleID)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepo) CountByStatus(ctx context.Context, status domain.OrderStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockOrderRepo) CountByClient(ctx context.Context, clientID int32) (int32, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int32), args.Error(1)
}

// MockContractRepo
type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) Create(ctx context.Context, c *domain.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockContractRepo) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractRepo) GetByNumber(ctx context.Context, number string) (*domain.Contract, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractRepo) GetByOrderID(ctx context.Context, orderID int32) (*domain.Contract, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractRepo) Update(ctx context.Context, c *domain.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockContractRepo) ListByBank(ctx context.Context, bankID int32) ([]domain.Contract, error) {
	args := m.Called(ctx, bankID)
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractRepo) ListByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.Contract, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractRepo) ListWithCredit(ctx context.Context) ([]domain.Contract, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractRepo) ListExpiredActive(ctx context.Context, today string) ([]domain.Contract, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractRepo) CountByStatus(ctx context.Context, status domain.ContractStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOrderReceived(ctx context.Context, email, name string, order *domain.RentalOrder) error {
	args := m.Called(ctx, email, name, order)
	return args.Error(0)
}
func (m *MockEmailService) SendOrderEvaluated(ctx context.Context, email, name string, order *domain.RentalOrder, approved bool, notes string) error {
	args := m.Called(ctx, email, name, order, approved, notes)
	return args.Error(0)
}
func (m *MockEmailService) SendOrderCancelled(ctx context.Context, email, name string, order *domain.RentalOrder, reason string) error {
	args := m.Called(ctx, email, name, order, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendOrderCompleted(ctx context.Context, email, name string, order *domain.RentalOrder) error {
	args := m.Called(ctx, email, name, order)
	return args.Error(0)
}

// MockClientService
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) GetProfile(ctx context.Context, clientID int32) (*domain.User, *domain.ClientProfile, []domain.Employment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*domain.ClientProfile), args.Get(2).([]domain.Employment), args.Error(3)
}
func (m *MockClientService) UpdateProfile(ctx context.Context, clientID int32, name, profession string) error {
	args := m.Called(ctx, clientID, name, profession)
	return args.Error(0)
}
func (m *MockClientService) Activate(ctx context.Context, clientID int32) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}
func (m *MockClientService) Deactivate(ctx context.Context, clientID int32) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}
func (m *MockClientService) AddEmployment(ctx context.Context, clientID int32, employer, position string, salaryCents int64) (*domain.Employment, error) {
	args := m.Called(ctx, clientID, employer, position, salaryCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employment), args.Error(1)
}
func (m *MockClientService) RemoveEmployment(ctx context.Context, clientID, employmentID int32) error {
	args := m.Called(ctx, clientID, employmentID)
	return args.Error(0)
}
func (m *MockClientService) TotalIncome(ctx context.Context, clientID int32) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockClientService) IsEligibleForRental(ctx context.Context, clientID int32) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

// MockContractService
type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) CreateForOrder(ctx context.Context, order *domain.RentalOrder, agent *domain.AgentProfile) (*domain.Contract, error) {
	args := m.Called(ctx, order, agent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) CreateCreditContract(ctx context.Context, orderID, bankID int32, creditCents int64, interestRatePct float64) (*domain.Contract, error) {
	args := m.Called(ctx, orderID, bankID, creditCents, interestRatePct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) Get(ctx context.Context, id int32) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) GetByOrder(ctx context.Context, orderID int32) (*domain.Contract, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) GetByNumber(ctx context.Context, number string) (*domain.Contract, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) TotalWithInterest(c *domain.Contract) int64 {
	args := m.Called(c)
	return args.Get(0).(int64)
}
func (m *MockContractService) Complete(ctx context.Context, id int32) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) Cancel(ctx context.Context, id int32, reason string) (*domain.Contract, error) {
	args := m.Called(ctx, id, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) Suspend(ctx context.Context, id int32, reason string) (*domain.Contract, error) {
	args := m.Called(ctx, id, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) Reactivate(ctx context.Context, id int32) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) ListByBank(ctx context.Context, bankID int32) ([]domain.Contract, error) {
	args := m.Called(ctx, bankID)
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractService) ListByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.Contract, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractService) ListWithCredit(ctx context.Context) ([]domain.Contract, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractService) ProcessExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32, email string, role domain.Role) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateRefreshToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
