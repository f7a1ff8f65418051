package http

import (
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type ContractHandler struct {
	contracts service.ContractService
	orders    service.OrderService
}

func NewContractHandler(contracts service.ContractService, orders service.OrderService) *ContractHandler {
	return &ContractHandler{contracts: contracts, orders: orders}
}

type grantCreditRequest struct {
	OrderID         int32   `json:"order_id" validate:"required,gt=0"`
	CreditCents     int64   `json:"credit_cents" validate:"required,gt=0"`
	InterestRatePct float64 `json:"interest_rate_pct" validate:"gte=0"`
}

type contractReasonRequest struct {
	Reason string `json:"reason"`
}

type contractResponse struct {
	*domain.Contract
	TotalWithInterestCents int64 `json:"total_with_interest_cents"`
}

func (h *ContractHandler) contractJSON(c *domain.Contract) contractResponse {
	return contractResponse{Contract: c, TotalWithInterestCents: h.contracts.TotalWithInterest(c)}
}

// GrantCredit attaches bank credit to an order's contract. The
// authenticated agent must be a bank.
func (h *ContractHandler) GrantCredit(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	var req grantCreditRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	contract, err := h.contracts.CreateCreditContract(r.Context(), req.OrderID, actor.UserID, req.CreditCents, req.InterestRatePct)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, h.contractJSON(contract))
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	contract, err := h.contracts.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.contractJSON(contract))
}

func (h *ContractHandler) GetByOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	orderID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	// Clients may only read contracts for their own orders.
	if _, err := h.orders.Get(r.Context(), actor, orderID); err != nil {
		respondError(w, err)
		return
	}

	contract, err := h.contracts.GetByOrder(r.Context(), orderID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.contractJSON(contract))
}

// List serves /contracts. Banks see contracts they funded by default;
// number=X looks up a single contract, status=X lists by status and
// with_credit=true lists credit-bearing contracts.
func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	var (
		contracts []domain.Contract
		err       error
	)
	switch {
	case q.Get("number") != "":
		var c *domain.Contract
		c, err = h.contracts.GetByNumber(r.Context(), q.Get("number"))
		if c != nil {
			contracts = []domain.Contract{*c}
		}
	case q.Get("with_credit") == "true":
		contracts, err = h.contracts.ListWithCredit(r.Context())
	case q.Get("status") != "":
		contracts, err = h.contracts.ListByStatus(r.Context(), domain.ContractStatus(q.Get("status")))
	default:
		contracts, err = h.contracts.ListByBank(r.Context(), actor.UserID)
	}
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]contractResponse, 0, len(contracts))
	for i := range contracts {
		out = append(out, h.contractJSON(&contracts[i]))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *ContractHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	contract, err := h.contracts.Complete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.contractJSON(contract))
}

func (h *ContractHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req contractReasonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	contract, err := h.contracts.Cancel(r.Context(), id, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.contractJSON(contract))
}

func (h *ContractHandler) Suspend(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req contractReasonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	contract, err := h.contracts.Suspend(r.Context(), id, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.contractJSON(contract))
}

func (h *ContractHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	contract, err := h.contracts.Reactivate(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.contractJSON(contract))
}
