package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type agentService struct {
	userRepo repository.UserRepository
}

func NewAgentService(userRepo repository.UserRepository) AgentService {
	return &agentService{userRepo: userRepo}
}

func (s *agentService) GetProfile(ctx context.Context, agentID int32) (*domain.User, *domain.AgentProfile, error) {
	user, err := s.userRepo.GetByID(ctx, agentID)
	if err != nil {
		return nil, nil, err
	}
	if user.Role != domain.RoleAgent {
		return nil, nil, domain.NotFoundError("agent", agentID)
	}
	profile, err := s.userRepo.GetAgentProfile(ctx, agentID)
	if err != nil {
		return nil, nil, err
	}
	return user, profile, nil
}

func (s *agentService) ListBanks(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListBanks(ctx)
}
