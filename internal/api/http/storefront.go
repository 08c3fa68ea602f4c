package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"foodcourt-web/internal/cart"
	"foodcourt-web/internal/session"
	"foodcourt-web/internal/views"

	"github.com/skip2/go-qrcode"
)

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	cuisine := r.URL.Query().Get("cuisine")

	restaurants, err := h.Restaurants.ListRestaurants(r.Context(), city, cuisine)
	if err != nil {
		log.Printf("ERROR: list restaurants: %v", err)
		writeBackendError(w, err, "No restaurants found", "Failed to load restaurants")
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}

	restaurant, err := h.Restaurants.GetRestaurant(r.Context(), id)
	if err != nil {
		writeBackendError(w, err, "Restaurant not found", "Failed to load restaurant")
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}

	menu, err := h.Restaurants.GetMenu(r.Context(), id)
	if err != nil {
		writeBackendError(w, err, "Restaurant not found", "Failed to load menu")
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.Carts.Get(r.Context(), session.ID(r))
	if err != nil {
		log.Printf("ERROR: load cart: %v", err)
		http.Error(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type addItemRequest struct {
	RestaurantID int `json:"restaurantId"`
	MenuItemID   int `json:"menuItemId"`
}

// addCartItem resolves the item against the live menu so the snapshot the
// cart keeps (name, price) is authoritative at add time. A restaurant
// conflict answers 409 with the pending switch attached.
func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.RestaurantID <= 0 || req.MenuItemID <= 0 {
		http.Error(w, "restaurantId and menuItemId are required", http.StatusBadRequest)
		return
	}

	restaurant, err := h.Restaurants.GetRestaurant(r.Context(), req.RestaurantID)
	if err != nil {
		writeBackendError(w, err, "Restaurant not found", "Failed to load restaurant")
		return
	}
	menu, err := h.Restaurants.GetMenu(r.Context(), req.RestaurantID)
	if err != nil {
		writeBackendError(w, err, "Restaurant not found", "Failed to load menu")
		return
	}

	for _, item := range menu {
		if item.ID != req.MenuItemID {
			continue
		}
		if !item.Available {
			http.Error(w, "Item is unavailable", http.StatusBadRequest)
			return
		}

		c, err := h.Carts.AddItem(r.Context(), session.ID(r), item, restaurant)
		if errors.Is(err, cart.ErrRestaurantConflict) {
			writeJSON(w, http.StatusConflict, c)
			return
		}
		if err != nil {
			log.Printf("ERROR: add cart item: %v", err)
			http.Error(w, "Failed to update cart", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, c)
		return
	}

	http.Error(w, "Menu item not found", http.StatusNotFound)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid menu item id", http.StatusBadRequest)
		return
	}
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.Carts.UpdateQuantity(r.Context(), session.ID(r), id, req.Quantity)
	if err != nil {
		log.Printf("ERROR: update cart quantity: %v", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid menu item id", http.StatusBadRequest)
		return
	}

	c, err := h.Carts.RemoveItem(r.Context(), session.ID(r), id)
	if err != nil {
		log.Printf("ERROR: remove cart item: %v", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.Clear(r.Context(), session.ID(r)); err != nil {
		log.Printf("ERROR: clear cart: %v", err)
		http.Error(w, "Failed to clear cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, &cart.Cart{})
}

func (h *Handler) confirmSwitch(w http.ResponseWriter, r *http.Request) {
	c, err := h.Carts.ConfirmSwitch(r.Context(), session.ID(r))
	if errors.Is(err, cart.ErrNoPendingSwitch) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		log.Printf("ERROR: confirm restaurant switch: %v", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) cancelSwitch(w http.ResponseWriter, r *http.Request) {
	c, err := h.Carts.CancelSwitch(r.Context(), session.ID(r))
	if err != nil {
		log.Printf("ERROR: cancel restaurant switch: %v", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type checkoutRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	DeliveryAddress string `json:"deliveryAddress"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Checkout.PlaceOrder(r.Context(), session.ID(r), req.CustomerName, req.CustomerPhone, req.DeliveryAddress)
	switch {
	case errors.Is(err, views.ErrEmptyCart), errors.Is(err, views.ErrMissingField):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		writeBackendError(w, err, "Order service unavailable", "Network error while creating order.")
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Fetch(r.Context(), id)
	if err != nil {
		writeBackendError(w, err, "Order not found", "Failed to fetch order status")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// getOrderQRCode renders a PNG linking to the order status page, for the
// confirmation screen.
func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	if _, err := h.Orders.Fetch(r.Context(), id); err != nil {
		writeBackendError(w, err, "Order not found", "Failed to fetch order status")
		return
	}

	qrData := fmt.Sprintf("%s/order-status?orderId=%d", h.PublicBaseURL, id)
	png, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getDelivery(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid delivery id", http.StatusBadRequest)
		return
	}

	delivery, err := h.Deliveries.Fetch(r.Context(), id)
	if err != nil {
		writeBackendError(w, err, "Delivery not found", "Failed to fetch delivery status")
		return
	}
	writeJSON(w, http.StatusOK, delivery)
}

func (h *Handler) getNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Notifier.Active(session.ID(r)))
}
