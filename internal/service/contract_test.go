package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newContractService() (service.ContractService, *MockContractRepo, *MockOrderRepo, *MockUserRepo) {
	contractRepo := new(MockContractRepo)
	orderRepo := new(MockOrderRepo)
	userRepo := new(MockUserRepo)
	svc := service.NewContractService(contractRepo, orderRepo, userRepo)
	return svc, contractRepo, orderRepo, userRepo
}

func TestContractService_CreateForOrder(t *testing.T) {
	ctx := context.Background()
	order := &domain.RentalOrder{
		ID:               5,
		ClientID:         1,
		VehicleID:        2,
		StartDate:        "2026-09-10",
		EndDate:          "2026-09-12",
		TotalAmountCents: 20000,
		Status:           domain.OrderStatusApproved,
	}

	t.Run("Company Agent", func(t *testing.T) {
		svc, contractRepo, _, _ := newContractService()
		agent := &domain.AgentProfile{UserID: 10, AgentType: domain.AgentTypeCompany}

		contractRepo.On("GetByOrderID", ctx, int32(5)).Return(nil, domain.NotFoundError("contract", 5))
		contractRepo.On("Create", ctx, mock.AnythingOfType("*domain.Contract")).Return(nil)

		contract, err := svc.CreateForOrder(ctx, order, agent)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(contract.ContractNumber, "CONT-"))
		assert.Equal(t, int64(20000), contract.ValueCents)
		assert.Equal(t, domain.ContractTypeRental, contract.Type)
		assert.Equal(t, domain.ContractStatusActive, contract.Status)
		assert.Nil(t, contract.BankID)
		assert.Equal(t, "2026-09-10", *contract.StartDate)
		assert.Equal(t, "2026-09-12", *contract.EndDate)
	})

	t.Run("Bank Agent Recorded", func(t *testing.T) {
		svc, contractRepo, _, _ := newContractService()
		bank := &domain.AgentProfile{UserID: 20, AgentType: domain.AgentTypeBank}

		contractRepo.On("GetByOrderID", ctx, int32(5)).Return(nil, domain.NotFoundError("contract", 5))
		contractRepo.On("Create", ctx, mock.AnythingOfType("*domain.Contract")).Return(nil)

		contract, err := svc.CreateForOrder(ctx, order, bank)
		assert.NoError(t, err)
		assert.NotNil(t, contract.BankID)
		assert.Equal(t, int32(20), *contract.BankID)
	})

	t.Run("Duplicate Contract", func(t *testing.T) {
		svc, contractRepo, _, _ := newContractService()

		contractRepo.On("GetByOrderID", ctx, int32(5)).Return(&domain.Contract{ID: 7, RentalOrderID: 5}, nil)

		contract, err := svc.CreateForOrder(ctx, order, nil)
		assert.Nil(t, contract)
		assert.ErrorIs(t, err, domain.ErrState)
	})

	t.Run("Duplicate Check Lookup Fails", func(t *testing.T) {
		svc, contractRepo, _, _ := newContractService()
		lookupErr := errors.New("connection reset")

		contractRepo.On("GetByOrderID", ctx, int32(5)).Return(nil, lookupErr)

		contract, err := svc.CreateForOrder(ctx, order, nil)
		assert.Nil(t, contract)
		assert.ErrorIs(t, err, lookupErr)
		contractRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})
}

func TestContractService_CreateCreditContract(t *testing.T) {
	ctx := context.Background()
	bank := &domain.AgentProfile{UserID: 20, AgentType: domain.AgentTypeBank}
	order := &domain.RentalOrder{ID: 5, TotalAmountCents: 20000, StartDate: "2026-09-10", EndDate: "2026-09-12", Status: domain.OrderStatusActive}

	t.Run("Upgrades Existing Rental Contract", func(t *testing.T) {
		svc, contractRepo, orderRepo, userRepo := newContractService()
		existing := &domain.Contract{
			ID:             7,
			ContractNumber: "CONT-x",
			RentalOrderID:  5,
			SignatureDate:  "2026-09-01",
			ValueCents:     20000,
			Type:           domain.ContractTypeRental,
			Status:         domain.ContractStatusActive,
		}

		userRepo.On("GetAgentProfile", ctx, int32(20)).Return(bank, nil)
		orderRepo.On("GetByID", ctx, int32(5)).Return(order, nil)
		contractRepo.On("GetByOrderID", ctx, int32(5)).Return(existing, nil)
		contractRepo.On("Update", ctx, existing).Return(nil)

		contract, err := svc.CreateCreditContract(ctx, 5, 20, 50000, 10)
		assert.NoError(t, err)
		assert.Equal(t, domain.ContractTypeRentalWithCredit, contract.Type)
		assert.Equal(t, int64(50000), *contract.CreditCents)
		assert.Equal(t, float64(10), *contract.InterestRatePct)
		assert.Equal(t, int32(20), *contract.BankID)
	})

	t.Run("Non-Bank Agent", func(t *testing.T) {
		svc, _, _, userRepo := newContractService()
		company := &domain.AgentProfile{UserID: 30, AgentType: domain.AgentTypeCompany}

		userRepo.On("GetAgentProfile", ctx, int32(30)).Return(company, nil)

		contract, err := svc.CreateCreditContract(ctx, 5, 30, 50000, 10)
		assert.Nil(t, contract)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Credit Already Granted", func(t *testing.T) {
		svc, contractRepo, orderRepo, userRepo := newContractService()
		credit := int64(50000)
		rate := 10.0
		bankID := int32(20)
		existing := &domain.Contract{
			ID:              7,
			RentalOrderID:   5,
			ValueCents:      20000,
			Type:            domain.ContractTypeRentalWithCredit,
			Status:          domain.ContractStatusActive,
			BankID:          &bankID,
			CreditCents:     &credit,
			InterestRatePct: &rate,
		}

		userRepo.On("GetAgentProfile", ctx, int32(20)).Return(bank, nil)
		orderRepo.On("GetByID", ctx, int32(5)).Return(order, nil)
		contractRepo.On("GetByOrderID", ctx, int32(5)).Return(existing, nil)

		contract, err := svc.CreateCreditContract(ctx, 5, 20, 10000, 5)
		assert.Nil(t, contract)
		assert.ErrorIs(t, err, domain.ErrState)
	})

	t.Run("Invalid Credit Amount", func(t *testing.T) {
		svc, _, _, userRepo := newContractService()

		userRepo.On("GetAgentProfile", ctx, int32(20)).Return(bank, nil)

		contract, err := svc.CreateCreditContract(ctx, 5, 20, 0, 10)
		assert.Nil(t, contract)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestContractService_TotalWithInterest(t *testing.T) {
	svc, _, _, _ := newContractService()

	t.Run("No Credit", func(t *testing.T) {
		c := &domain.Contract{ValueCents: 20000, Type: domain.ContractTypeRental}
		assert.Equal(t, int64(20000), svc.TotalWithInterest(c))
	})

	t.Run("With Credit", func(t *testing.T) {
		credit := int64(50000)
		rate := 10.0
		c := &domain.Contract{
			ValueCents:      20000,
			Type:            domain.ContractTypeRentalWithCredit,
			CreditCents:     &credit,
			InterestRatePct: &rate,
		}
		// 20000 + 50000*10% = 25000
		assert.Equal(t, int64(25000), svc.TotalWithInterest(c))
	})

	t.Run("Half Up Rounding", func(t *testing.T) {
		credit := int64(333)
		rate := 1.5
		c := &domain.Contract{
			ValueCents:      1000,
			Type:            domain.ContractTypeCredit,
			CreditCents:     &credit,
			InterestRatePct: &rate,
		}
		// 333 * 1.5% = 4.995, rounds to 5
		assert.Equal(t, int64(1005), svc.TotalWithInterest(c))
	})
}

func TestContractService_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Complete Active", func(t *testing.T) {
		svc, contractRepo, _, _ := newContractService()
		c := &domain.Contract{ID: 7, Status: domain.ContractStatusActive}

		contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		contractRepo.On("Update", ctx, c).Return(nil)

		res, err := svc.Complete(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.ContractStatusCompleted, res.Status)
	})

	t.Run("Suspend Then Reactivate", func(t *testing.T) {
		svc, contractRepo, _, _ := newContractService()
		c := &domain.Contract{ID: 7, Status: domain.ContractStatusActive}

		contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		contractRepo.On("Update", ctx, c).Return(nil)

		res, err := svc.Suspend(ctx, 7, "missed payment")
		assert.NoError(t, err)
		assert.Equal(t, domain.ContractStatusSuspended, res.Status)
		assert.Contains(t, res.Terms, "missed payment")

		res, err = svc.Reactivate(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.ContractStatusActive, res.Status)
	})

	t.Run("Cancel Completed Fails", func(t *testing.T) {
		svc, contractRepo, _, _ := newContractService()
		c := &domain.Contract{ID: 7, Status: domain.ContractStatusCompleted}

		contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)

		res, err := svc.Cancel(ctx, 7, "")
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrState)
	})
}
