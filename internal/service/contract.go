package service

import (
	"context"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/utils"

	"github.com/google/uuid"
)

type contractService struct {
	contractRepo repository.ContractRepository
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
}

func NewContractService(contractRepo repository.ContractRepository, orderRepo repository.OrderRepository, userRepo repository.UserRepository) ContractService {
	return &contractService{
		contractRepo: contractRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
	}
}

// CreateForOrder issues the rental contract for an approved order.
// Exactly one contract may exist per order; the evaluating agent is
// recorded as the bank only when it is of type BANK.
func (s *contractService) CreateForOrder(ctx context.Context, order *domain.RentalOrder, agent *domain.AgentProfile) (*domain.Contract, error) {
	existing, err := s.contractRepo.GetByOrderID(ctx, order.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.StateError("contract already exists for order %d", order.ID)
	}

	start := order.StartDate
	end := order.EndDate
	contract := &domain.Contract{
		ContractNumber: "CONT-" + uuid.New().String(),
		RentalOrderID:  order.ID,
		SignatureDate:  time.Now().UTC().Format(utils.DateLayout),
		StartDate:      &start,
		EndDate:        &end,
		ValueCents:     order.TotalAmountCents,
		Type:           domain.ContractTypeRental,
		Status:         domain.ContractStatusActive,
	}
	if agent != nil && agent.AgentType == domain.AgentTypeBank {
		contract.BankID = &agent.UserID
	}

	if err := s.validate(contract); err != nil {
		return nil, err
	}
	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

// CreateCreditContract attaches bank credit terms to an order's
// contract, creating the contract if approval has not issued one yet.
func (s *contractService) CreateCreditContract(ctx context.Context, orderID, bankID int32, creditCents int64, interestRatePct float64) (*domain.Contract, error) {
	bank, err := s.userRepo.GetAgentProfile(ctx, bankID)
	if err != nil {
		return nil, err
	}
	if bank.AgentType != domain.AgentTypeBank {
		return nil, domain.ValidationError("only banks can grant credit")
	}
	if creditCents <= 0 {
		return nil, domain.ValidationError("credit amount must be greater than zero")
	}
	if interestRatePct < 0 {
		return nil, domain.ValidationError("interest rate must not be negative")
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	existing, err := s.contractRepo.GetByOrderID(ctx, orderID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.HasCredit() {
			return nil, domain.StateError("contract %s already carries credit terms", existing.ContractNumber)
		}
		existing.Type = domain.ContractTypeRentalWithCredit
		existing.BankID = &bankID
		existing.CreditCents = &creditCents
		existing.InterestRatePct = &interestRatePct
		if err := s.validate(existing); err != nil {
			return nil, err
		}
		if err := s.contractRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	contract, err := s.CreateForOrder(ctx, order, bank)
	if err != nil {
		return nil, err
	}
	contract.Type = domain.ContractTypeRentalWithCredit
	contract.CreditCents = &creditCents
	contract.InterestRatePct = &interestRatePct
	if err := s.validate(contract); err != nil {
		return nil, err
	}
	if err := s.contractRepo.Update(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

func (s *contractService) Get(ctx context.Context, id int32) (*domain.Contract, error) {
	return s.contractRepo.GetByID(ctx, id)
}

func (s *contractService) GetByOrder(ctx context.Context, orderID int32) (*domain.Contract, error) {
	return s.contractRepo.GetByOrderID(ctx, orderID)
}

func (s *contractService) GetByNumber(ctx context.Context, number string) (*domain.Contract, error) {
	return s.contractRepo.GetByNumber(ctx, number)
}

// TotalWithInterest returns the contract value plus credit interest,
// in cents. Pure function of the contract; repeated calls agree.
func (s *contractService) TotalWithInterest(c *domain.Contract) int64 {
	if !c.HasCredit() || c.CreditCents == nil || c.InterestRatePct == nil {
		return c.ValueCents
	}
	return c.ValueCents + utils.InterestCents(*c.CreditCents, *c.InterestRatePct)
}

func (s *contractService) Complete(ctx context.Context, id int32) (*domain.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsActive() {
		return nil, domain.StateError("only active contracts can be completed")
	}
	c.Status = domain.ContractStatusCompleted
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contractService) Cancel(ctx context.Context, id int32, reason string) (*domain.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsActive() {
		return nil, domain.StateError("only active contracts can be cancelled")
	}
	c.Status = domain.ContractStatusCancelled
	if reason != "" {
		c.Terms = appendTerm(c.Terms, "Cancellation reason: "+reason)
	}
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contractService) Suspend(ctx context.Context, id int32, reason string) (*domain.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsActive() {
		return nil, domain.StateError("only active contracts can be suspended")
	}
	c.Status = domain.ContractStatusSuspended
	if reason != "" {
		c.Terms = appendTerm(c.Terms, "Suspension reason: "+reason)
	}
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contractService) Reactivate(ctx context.Context, id int32) (*domain.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.ContractStatusSuspended {
		return nil, domain.StateError("only suspended contracts can be reactivated")
	}
	c.Status = domain.ContractStatusActive
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contractService) ListByBank(ctx context.Context, bankID int32) ([]domain.Contract, error) {
	return s.contractRepo.ListByBank(ctx, bankID)
}

func (s *contractService) ListByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.Contract, error) {
	return s.contractRepo.ListByStatus(ctx, status)
}

func (s *contractService) ListWithCredit(ctx context.Context) ([]domain.Contract, error) {
	return s.contractRepo.ListWithCredit(ctx)
}

func (s *contractService) ProcessExpired(ctx context.Context) (int, error) {
	today := time.Now().UTC().Format(utils.DateLayout)
	expired, err := s.contractRepo.ListExpiredActive(ctx, today)
	if err != nil {
		return 0, err
	}
	completed := 0
	for i := range expired {
		if _, err := s.Complete(ctx, expired[i].ID); err != nil {
			logger.Error("failed to complete expired contract", "contract_id", expired[i].ID, "error", err)
			continue
		}
		completed++
	}
	return completed, nil
}

func (s *contractService) validate(c *domain.Contract) error {
	if c.RentalOrderID == 0 {
		return domain.ValidationError("rental order is required")
	}
	if c.SignatureDate == "" {
		return domain.ValidationError("signature date is required")
	}
	if c.ValueCents <= 0 {
		return domain.ValidationError("contract value must be greater than zero")
	}
	if c.HasCredit() {
		if c.BankID == nil {
			return domain.ValidationError("bank is required for credit contracts")
		}
		if c.CreditCents == nil || *c.CreditCents <= 0 {
			return domain.ValidationError("credit amount must be greater than zero")
		}
		if c.InterestRatePct == nil || *c.InterestRatePct < 0 {
			return domain.ValidationError("interest rate must not be negative")
		}
	}
	if c.StartDate != nil && c.EndDate != nil && *c.StartDate > *c.EndDate {
		return domain.ValidationError("start date must not be after end date")
	}
	return nil
}

func appendTerm(terms, line string) string {
	if terms == "" {
		return line
	}
	return terms + "\n" + line
}
