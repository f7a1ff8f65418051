package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/security"
)

// Handlers groups the resource handlers registered on the router.
type Handlers struct {
	Auth     *AuthHandler
	Client   *ClientHandler
	Vehicle  *VehicleHandler
	Order    *OrderHandler
	Contract *ContractHandler
	Report   *ReportHandler
	Photo    *PhotoHandler
}

// NewRouter builds the API routing table. Everything under /api except
// the auth endpoints requires a valid access token.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/signup/client", h.Auth.SignupClient).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup/agent", h.Auth.SignupAgent).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)

	auth := api.PathPrefix("").Subrouter()
	auth.Use(AuthMiddleware(tokens))

	auth.HandleFunc("/clients/me", h.Client.GetProfile).Methods(http.MethodGet)
	auth.HandleFunc("/clients/me", h.Client.UpdateProfile).Methods(http.MethodPut)
	auth.HandleFunc("/clients/me", h.Client.Deactivate).Methods(http.MethodDelete)
	auth.HandleFunc("/clients/me/employments", h.Client.AddEmployment).Methods(http.MethodPost)
	auth.HandleFunc("/clients/me/employments/{id:[0-9]+}", h.Client.RemoveEmployment).Methods(http.MethodDelete)
	auth.HandleFunc("/clients/me/eligibility", h.Client.Eligibility).Methods(http.MethodGet)
	auth.HandleFunc("/banks", h.Client.ListBanks).Methods(http.MethodGet)

	auth.HandleFunc("/vehicles", RequireRole(domain.RoleAgent, h.Vehicle.Register)).Methods(http.MethodPost)
	auth.HandleFunc("/vehicles", h.Vehicle.List).Methods(http.MethodGet)
	auth.HandleFunc("/vehicles/{id:[0-9]+}", h.Vehicle.Get).Methods(http.MethodGet)
	auth.HandleFunc("/vehicles/{id:[0-9]+}", RequireRole(domain.RoleAgent, h.Vehicle.Update)).Methods(http.MethodPut)
	auth.HandleFunc("/vehicles/{id:[0-9]+}", RequireRole(domain.RoleAgent, h.Vehicle.Delete)).Methods(http.MethodDelete)
	auth.HandleFunc("/vehicles/{id:[0-9]+}/availability", h.Vehicle.Availability).Methods(http.MethodGet)
	auth.HandleFunc("/vehicles/{id:[0-9]+}/maintenance", RequireRole(domain.RoleAgent, h.Vehicle.SetMaintenance)).Methods(http.MethodPost)
	auth.HandleFunc("/vehicles/{id:[0-9]+}/available", RequireRole(domain.RoleAgent, h.Vehicle.SetAvailable)).Methods(http.MethodPost)
	auth.HandleFunc("/vehicles/{id:[0-9]+}/photo", RequireRole(domain.RoleAgent, h.Photo.Upload)).Methods(http.MethodPost)
	auth.HandleFunc("/vehicles/{id:[0-9]+}/photo", h.Photo.Download).Methods(http.MethodGet)
	auth.HandleFunc("/vehicles/{id:[0-9]+}/photo", RequireRole(domain.RoleAgent, h.Photo.Delete)).Methods(http.MethodDelete)

	auth.HandleFunc("/orders", RequireRole(domain.RoleClient, h.Order.Create)).Methods(http.MethodPost)
	auth.HandleFunc("/orders", h.Order.List).Methods(http.MethodGet)
	auth.HandleFunc("/orders/{id:[0-9]+}", h.Order.Get).Methods(http.MethodGet)
	auth.HandleFunc("/orders/{id:[0-9]+}/evaluation", RequireRole(domain.RoleAgent, h.Order.StartEvaluation)).Methods(http.MethodPost)
	auth.HandleFunc("/orders/{id:[0-9]+}/evaluate", RequireRole(domain.RoleAgent, h.Order.Evaluate)).Methods(http.MethodPost)
	auth.HandleFunc("/orders/{id:[0-9]+}/cancel", h.Order.Cancel).Methods(http.MethodPost)
	auth.HandleFunc("/orders/{id:[0-9]+}/complete", RequireRole(domain.RoleAgent, h.Order.Complete)).Methods(http.MethodPost)
	auth.HandleFunc("/orders/{id:[0-9]+}/contract", h.Contract.GetByOrder).Methods(http.MethodGet)

	auth.HandleFunc("/contracts", RequireRole(domain.RoleAgent, h.Contract.List)).Methods(http.MethodGet)
	auth.HandleFunc("/contracts/credit", RequireRole(domain.RoleAgent, h.Contract.GrantCredit)).Methods(http.MethodPost)
	auth.HandleFunc("/contracts/{id:[0-9]+}", h.Contract.Get).Methods(http.MethodGet)
	auth.HandleFunc("/contracts/{id:[0-9]+}/complete", RequireRole(domain.RoleAgent, h.Contract.Complete)).Methods(http.MethodPost)
	auth.HandleFunc("/contracts/{id:[0-9]+}/cancel", RequireRole(domain.RoleAgent, h.Contract.Cancel)).Methods(http.MethodPost)
	auth.HandleFunc("/contracts/{id:[0-9]+}/suspend", RequireRole(domain.RoleAgent, h.Contract.Suspend)).Methods(http.MethodPost)
	auth.HandleFunc("/contracts/{id:[0-9]+}/reactivate", RequireRole(domain.RoleAgent, h.Contract.Reactivate)).Methods(http.MethodPost)

	auth.HandleFunc("/reports/dashboard", RequireRole(domain.RoleAgent, h.Report.Dashboard)).Methods(http.MethodGet)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return r
}
