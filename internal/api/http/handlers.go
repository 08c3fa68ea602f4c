package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodcourt-web/internal/cart"
	"foodcourt-web/internal/clients"
	"foodcourt-web/internal/notify"
	"foodcourt-web/internal/views"

	"github.com/gorilla/mux"
)

// Handler wires the storefront and admin endpoints over the session stores
// and the three backend clients.
type Handler struct {
	Carts       *cart.Store
	Notifier    *notify.Center
	Checkout    *views.CheckoutFlow
	Restaurants views.RestaurantAPI
	Orders      *views.OrderLookup
	Deliveries  *views.DeliveryLookup
	Admin       *views.AdminSessions

	// PublicBaseURL is the externally reachable address, used for QR links.
	PublicBaseURL string
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeBackendError translates a remote-call failure into this service's
// response: backend messages pass through with their status, missing
// entities become 404, everything else is a gateway-side failure with the
// given fallback text.
func writeBackendError(w http.ResponseWriter, err error, notFoundText, fallback string) {
	var apiErr *clients.APIError
	switch {
	case errors.Is(err, clients.ErrNotFound):
		http.Error(w, notFoundText, http.StatusNotFound)
	case errors.As(err, &apiErr):
		http.Error(w, apiErr.Error(), apiErr.StatusCode)
	default:
		http.Error(w, fallback, http.StatusBadGateway)
	}
}

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
