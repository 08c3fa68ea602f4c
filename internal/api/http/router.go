package httpapi

import (
	"net/http"

	"foodcourt-web/internal/session"

	"github.com/gorilla/mux"
)

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// storefront
	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart/switch/confirm", h.confirmSwitch).Methods("POST")
	r.HandleFunc("/api/cart/switch/cancel", h.cancelSwitch).Methods("POST")

	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/delivery/{id}", h.getDelivery).Methods("GET")
	r.HandleFunc("/api/notifications", h.getNotifications).Methods("GET")

	// admin: restaurants & menu
	r.HandleFunc("/api/admin/restaurants", h.adminRestaurantsLoad).Methods("GET")
	r.HandleFunc("/api/admin/restaurants/create", h.adminRestaurantsOpenCreate).Methods("POST")
	r.HandleFunc("/api/admin/restaurants/submit", h.adminRestaurantsSubmit).Methods("POST")
	r.HandleFunc("/api/admin/restaurants/cancel", h.adminRestaurantsCancel).Methods("POST")
	r.HandleFunc("/api/admin/restaurants/delete/confirm", h.adminRestaurantsConfirmDelete).Methods("POST")
	r.HandleFunc("/api/admin/restaurants/delete/cancel", h.adminRestaurantsCancelDelete).Methods("POST")
	r.HandleFunc("/api/admin/restaurants/{id}/edit", h.adminRestaurantsOpenEdit).Methods("POST")
	r.HandleFunc("/api/admin/restaurants/{id}/delete", h.adminRestaurantsAskDelete).Methods("POST")
	r.HandleFunc("/api/admin/restaurants/{id}/menu", h.adminManageMenu).Methods("POST")
	r.HandleFunc("/api/admin/menu/submit", h.adminMenuSubmit).Methods("POST")
	r.HandleFunc("/api/admin/menu/{id}/edit", h.adminMenuEdit).Methods("POST")
	r.HandleFunc("/api/admin/menu/{id}/delete", h.adminMenuAskDelete).Methods("POST")

	// admin: orders
	r.HandleFunc("/api/admin/orders", h.adminOrdersLoad).Methods("GET")
	r.HandleFunc("/api/admin/orders/delete/confirm", h.adminOrdersConfirmDelete).Methods("POST")
	r.HandleFunc("/api/admin/orders/delete/cancel", h.adminOrdersCancelDelete).Methods("POST")
	r.HandleFunc("/api/admin/orders/{id}/view", h.adminOrdersView).Methods("POST")
	r.HandleFunc("/api/admin/orders/{id}/status", h.adminOrdersChangeStatus).Methods("PUT")
	r.HandleFunc("/api/admin/orders/{id}/delete", h.adminOrdersAskDelete).Methods("POST")

	// admin: deliveries
	r.HandleFunc("/api/admin/delivery", h.adminDeliveriesLoad).Methods("GET")
	r.HandleFunc("/api/admin/delivery", h.adminDeliveriesCreate).Methods("POST")
	r.HandleFunc("/api/admin/delivery/delete/confirm", h.adminDeliveriesConfirmDelete).Methods("POST")
	r.HandleFunc("/api/admin/delivery/delete/cancel", h.adminDeliveriesCancelDelete).Methods("POST")
	r.HandleFunc("/api/admin/delivery/{id}/status", h.adminDeliveriesChangeStatus).Methods("PUT")
	r.HandleFunc("/api/admin/delivery/{id}/delete", h.adminDeliveriesAskDelete).Methods("POST")
}

// NewRouter wires the session middleware around the full route set and, when
// frontendDir is set, serves the static SPA for everything else.
func NewRouter(handler *Handler, frontendDir string) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	if frontendDir != "" {
		r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(frontendDir))))
		r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, frontendDir+"/index.html")
		})
	}

	return session.Middleware(r)
}
