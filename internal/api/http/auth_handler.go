package http

import (
	"errors"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type signupClientRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	CPF        string `json:"cpf" validate:"required"`
	Profession string `json:"profession"`
}

type signupAgentRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	CPF       string `json:"cpf" validate:"required"`
	CNPJ      string `json:"cnpj" validate:"required"`
	AgentType string `json:"agent_type" validate:"required,oneof=COMPANY BANK"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type tokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *domain.User `json:"user,omitempty"`
}

func (h *AuthHandler) SignupClient(w http.ResponseWriter, r *http.Request) {
	var req signupClientRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.auth.SignupClient(r.Context(), req.Name, req.Email, req.Password, req.CPF, req.Profession)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) SignupAgent(w http.ResponseWriter, r *http.Request) {
	var req signupAgentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.auth.SignupAgent(r.Context(), req.Name, req.Email, req.Password, req.CPF, req.CNPJ, domain.AgentType(req.AgentType))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	access, refresh, user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
			return
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tokenResponse{AccessToken: access, RefreshToken: refresh, User: user})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	access, refresh, err := h.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tokenResponse{AccessToken: access, RefreshToken: refresh})
}
