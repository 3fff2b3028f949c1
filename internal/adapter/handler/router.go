package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the ticketing API. Every route except health and
// metrics requires a gateway-authenticated caller.
func NewRouter(catalog *CatalogHandler, checkout *CheckoutHandler, orders *OrderHandler, checkin *CheckInHandler) *mux.Router {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.NewRoute().Subrouter()
	api.Use(Identity)

	api.HandleFunc("/events/{id}/tickets/types", catalog.CreateType).Methods(http.MethodPost)
	api.HandleFunc("/events/{id}/tickets/types", catalog.ListPublic).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}/tickets/types/manage", catalog.ListManagement).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}/tickets/types/{typeId}", catalog.UpdateType).Methods(http.MethodPut)

	api.HandleFunc("/events/{id}/tickets/checkout", checkout.Checkout).Methods(http.MethodPost)
	api.HandleFunc("/tickets/mine", checkout.ListMine).Methods(http.MethodGet)

	api.HandleFunc("/events/{id}/orders", orders.ListOrders).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}/orders/{orderId}/mark-paid", orders.MarkPaid).Methods(http.MethodPost)

	api.HandleFunc("/events/{id}/tickets/check-in", checkin.CheckIn).Methods(http.MethodPost)

	return r
}
