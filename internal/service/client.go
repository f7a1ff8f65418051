package service

import (
	"context"
	"strings"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type clientService struct {
	userRepo       repository.UserRepository
	employmentRepo repository.EmploymentRepository
	minIncomeCents int64
}

func NewClientService(userRepo repository.UserRepository, employmentRepo repository.EmploymentRepository, minIncomeCents int64) ClientService {
	return &clientService{
		userRepo:       userRepo,
		employmentRepo: employmentRepo,
		minIncomeCents: minIncomeCents,
	}
}

func (s *clientService) GetProfile(ctx context.Context, clientID int32) (*domain.User, *domain.ClientProfile, []domain.Employment, error) {
	user, err := s.userRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, nil, nil, err
	}
	if user.Role != domain.RoleClient {
		return nil, nil, nil, domain.NotFoundError("client", clientID)
	}
	profile, err := s.userRepo.GetClientProfile(ctx, clientID)
	if err != nil {
		return nil, nil, nil, err
	}
	emps, err := s.employmentRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, nil, nil, err
	}
	return user, profile, emps, nil
}

func (s *clientService) UpdateProfile(ctx context.Context, clientID int32, name, profession string) error {
	user, profile, _, err := s.GetProfile(ctx, clientID)
	if err != nil {
		return err
	}
	if name = strings.TrimSpace(name); name != "" {
		user.Name = name
		if err := s.userRepo.Update(ctx, user); err != nil {
			return err
		}
	}
	if profession != "" {
		profile.Profession = profession
		if err := s.userRepo.UpdateClientProfile(ctx, profile); err != nil {
			return err
		}
	}
	return nil
}

func (s *clientService) Activate(ctx context.Context, clientID int32) error {
	return s.userRepo.SetActive(ctx, clientID, true)
}

func (s *clientService) Deactivate(ctx context.Context, clientID int32) error {
	return s.userRepo.SetActive(ctx, clientID, false)
}

func (s *clientService) AddEmployment(ctx context.Context, clientID int32, employer, position string, salaryCents int64) (*domain.Employment, error) {
	if strings.TrimSpace(employer) == "" {
		return nil, domain.ValidationError("employer is required")
	}
	if salaryCents <= 0 {
		return nil, domain.ValidationError("salary must be greater than zero")
	}
	if _, err := s.userRepo.GetClientProfile(ctx, clientID); err != nil {
		return nil, err
	}

	count, err := s.employmentRepo.CountByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxEmployments {
		return nil, domain.StateError("client already has the maximum of %d employment records", domain.MaxEmployments)
	}

	emp := &domain.Employment{
		ClientID:    clientID,
		Employer:    strings.TrimSpace(employer),
		Position:    strings.TrimSpace(position),
		SalaryCents: salaryCents,
	}
	if err := s.employmentRepo.Create(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *clientService) RemoveEmployment(ctx context.Context, clientID, employmentID int32) error {
	emp, err := s.employmentRepo.GetByID(ctx, employmentID)
	if err != nil {
		return err
	}
	if emp.ClientID != clientID {
		return domain.ErrUnauthorized
	}
	return s.employmentRepo.Delete(ctx, employmentID)
}

func (s *clientService) TotalIncome(ctx context.Context, clientID int32) (int64, error) {
	return s.employmentRepo.TotalSalaryByClient(ctx, clientID)
}

// IsEligibleForRental reports whether the client may open a rental order:
// active account, at least one employment record, and summed income at or
// above the configured minimum.
func (s *clientService) IsEligibleForRental(ctx context.Context, clientID int32) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, clientID)
	if err != nil {
		return false, err
	}
	if user.Role != domain.RoleClient || !user.Active {
		return false, nil
	}

	count, err := s.employmentRepo.CountByClient(ctx, clientID)
	if err != nil {
		return false, err
	}
	if count == 0 {
		return false, nil
	}

	total, err := s.employmentRepo.TotalSalaryByClient(ctx, clientID)
	if err != nil {
		return false, err
	}
	return total >= s.minIncomeCents, nil
}
