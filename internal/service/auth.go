package service

import (
	"context"
	"errors"
	"strings"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/security"
	"carrental-backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) SignupClient(ctx context.Context, name, email, password, cpf, profession string) (*domain.User, error) {
	user, err := s.signupUser(ctx, name, email, password, cpf, domain.RoleClient)
	if err != nil {
		return nil, err
	}
	profile := &domain.ClientProfile{UserID: user.ID, Profession: profession}
	if err := s.userRepo.CreateClientProfile(ctx, profile); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) SignupAgent(ctx context.Context, name, email, password, cpf, cnpj string, agentType domain.AgentType) (*domain.User, error) {
	if agentType != domain.AgentTypeCompany && agentType != domain.AgentTypeBank {
		return nil, domain.ValidationError("agent type must be COMPANY or BANK")
	}
	if !utils.IsValidCNPJ(cnpj) {
		return nil, domain.ValidationError("invalid CNPJ")
	}
	existing, err := s.userRepo.GetAgentByCNPJ(ctx, cnpj)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ValidationError("CNPJ already registered")
	}

	user, err := s.signupUser(ctx, name, email, password, cpf, domain.RoleAgent)
	if err != nil {
		return nil, err
	}
	profile := &domain.AgentProfile{UserID: user.ID, CNPJ: cnpj, AgentType: agentType}
	if err := s.userRepo.CreateAgentProfile(ctx, profile); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) signupUser(ctx context.Context, name, email, password, cpf string, role domain.Role) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if name == "" {
		return nil, domain.ValidationError("name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ValidationError("a valid email is required")
	}
	if len(password) < 6 {
		return nil, domain.ValidationError("password must be at least 6 characters")
	}
	if !utils.IsValidCPF(cpf) {
		return nil, domain.ValidationError("invalid CPF")
	}

	// Uniqueness checks at the validation boundary.
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ValidationError("email already registered")
	}
	existing, err = s.userRepo.GetByCPF(ctx, cpf)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ValidationError("CPF already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CPF:          cpf,
		Active:       true,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil || user == nil {
		return "", "", nil, ErrInvalidCredentials
	}
	if !user.Active {
		return "", "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", nil, err
	}
	return access, refresh, user, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", err
	}
	if !user.Active {
		return "", "", ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
