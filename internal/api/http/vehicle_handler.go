package http

import (
	"net/http"
	"strconv"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type VehicleHandler struct {
	vehicles service.VehicleService
	orders   service.OrderService
}

func NewVehicleHandler(vehicles service.VehicleService, orders service.OrderService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles, orders: orders}
}

type vehicleRequest struct {
	Registration   string `json:"registration" validate:"required"`
	Plate          string `json:"plate" validate:"required"`
	Brand          string `json:"brand" validate:"required"`
	Model          string `json:"model" validate:"required"`
	Year           int32  `json:"year" validate:"required"`
	Color          string `json:"color"`
	DailyRateCents int64  `json:"daily_rate_cents" validate:"required,gt=0"`
	OwnerID        *int32 `json:"owner_id"`
	OwnerType      string `json:"owner_type" validate:"omitempty,oneof=CLIENT COMPANY BANK"`
}

func (req *vehicleRequest) toDomain() *domain.Vehicle {
	ownerType := domain.OwnerType(req.OwnerType)
	if ownerType == "" {
		ownerType = domain.OwnerTypeCompany
	}
	return &domain.Vehicle{
		Registration:   req.Registration,
		Plate:          req.Plate,
		Brand:          req.Brand,
		Model:          req.Model,
		Year:           req.Year,
		Color:          req.Color,
		DailyRateCents: req.DailyRateCents,
		OwnerID:        req.OwnerID,
		OwnerType:      ownerType,
	}
}

func (h *VehicleHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	vehicle := req.toDomain()
	if err := h.vehicles.Register(r.Context(), vehicle); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	vehicle, err := h.vehicles.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req vehicleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	vehicle := req.toDomain()
	vehicle.ID = id
	if err := h.vehicles.Update(r.Context(), vehicle); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.vehicles.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List serves /vehicles. Without query parameters it lists available
// vehicles; brand, model, year and max_daily_rate_cents narrow the search.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	brand := q.Get("brand")
	model := q.Get("model")

	var year int32
	if raw := q.Get("year"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid year"})
			return
		}
		year = int32(parsed)
	}

	var maxRate int64
	if raw := q.Get("max_daily_rate_cents"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid max_daily_rate_cents"})
			return
		}
		maxRate = parsed
	}

	var (
		vehicles []domain.Vehicle
		err      error
	)
	if brand == "" && model == "" && year == 0 && maxRate == 0 {
		vehicles, err = h.vehicles.ListAvailable(r.Context())
	} else {
		vehicles, err = h.vehicles.Search(r.Context(), brand, model, year, maxRate)
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

type availabilityResponse struct {
	VehicleID int32 `json:"vehicle_id"`
	Available bool  `json:"available"`
}

// Availability reports whether the vehicle can be rented for the window
// given by the start_date and end_date query parameters.
func (h *VehicleHandler) Availability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	start := r.URL.Query().Get("start_date")
	end := r.URL.Query().Get("end_date")
	if start == "" || end == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "start_date and end_date are required"})
		return
	}

	available, err := h.vehicles.IsAvailableForRental(r.Context(), id, start, end)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, availabilityResponse{VehicleID: id, Available: available})
}

func (h *VehicleHandler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.vehicles.SetMaintenance(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *VehicleHandler) SetAvailable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.vehicles.SetAvailable(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
