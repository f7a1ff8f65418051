package http

import (
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type OrderHandler struct {
	orders service.OrderService
}

func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type createOrderRequest struct {
	VehicleID    int32  `json:"vehicle_id" validate:"required,gt=0"`
	StartDate    string `json:"start_date" validate:"required"`
	EndDate      string `json:"end_date" validate:"required"`
	Observations string `json:"observations"`
}

type evaluateOrderRequest struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

// Create places a rental order for the authenticated client.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	var req createOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := h.orders.Create(r.Context(), actor.UserID, req.VehicleID, req.StartDate, req.EndDate, req.Observations)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	order, err := h.orders.Get(r.Context(), actor, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// List serves /orders. Clients see their own orders; agents see all
// orders for a status (default PENDING).
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	var (
		orders []domain.RentalOrder
		err    error
	)
	if actor.Role == domain.RoleClient {
		orders, err = h.orders.ListByClient(r.Context(), actor.UserID)
	} else if status := r.URL.Query().Get("status"); status != "" {
		orders, err = h.orders.ListByStatus(r.Context(), domain.OrderStatus(status))
	} else {
		orders, err = h.orders.ListPending(r.Context())
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) StartEvaluation(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	order, err := h.orders.StartEvaluation(r.Context(), actor, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req evaluateOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := h.orders.Evaluate(r.Context(), actor, id, req.Approve, req.Notes)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req cancelOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := h.orders.Cancel(r.Context(), actor, id, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	order, err := h.orders.Complete(r.Context(), actor, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}
