package http

import (
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type ClientHandler struct {
	clients service.ClientService
	agents  service.AgentService
}

func NewClientHandler(clients service.ClientService, agents service.AgentService) *ClientHandler {
	return &ClientHandler{clients: clients, agents: agents}
}

type updateProfileRequest struct {
	Name       string `json:"name" validate:"required"`
	Profession string `json:"profession"`
}

type employmentRequest struct {
	Employer    string `json:"employer" validate:"required"`
	Position    string `json:"position" validate:"required"`
	SalaryCents int64  `json:"salary_cents" validate:"required,gt=0"`
}

type profileResponse struct {
	User        *domain.User          `json:"user"`
	Profile     *domain.ClientProfile `json:"profile"`
	Employments []domain.Employment   `json:"employments"`
}

type eligibilityResponse struct {
	Eligible         bool  `json:"eligible"`
	TotalIncomeCents int64 `json:"total_income_cents"`
}

func (h *ClientHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	user, profile, employments, err := h.clients.GetProfile(r.Context(), actor.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profileResponse{User: user, Profile: profile, Employments: employments})
}

func (h *ClientHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	var req updateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.clients.UpdateProfile(r.Context(), actor.UserID, req.Name, req.Profession); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	if err := h.clients.Deactivate(r.Context(), actor.UserID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientHandler) AddEmployment(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	var req employmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	employment, err := h.clients.AddEmployment(r.Context(), actor.UserID, req.Employer, req.Position, req.SalaryCents)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, employment)
}

func (h *ClientHandler) RemoveEmployment(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.clients.RemoveEmployment(r.Context(), actor.UserID, id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	eligible, err := h.clients.IsEligibleForRental(r.Context(), actor.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	total, err := h.clients.TotalIncome(r.Context(), actor.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, eligibilityResponse{Eligible: eligible, TotalIncomeCents: total})
}

func (h *ClientHandler) ListBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.agents.ListBanks(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, banks)
}
