package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"foodcourt-web/internal/domain"
	"foodcourt-web/internal/session"
)

// The admin endpoints are thin verbs over the per-session view controllers;
// every call answers with the controller's full state snapshot so the page
// can re-render from it.

// ===== Restaurants & menu =====

func (h *Handler) adminRestaurantsLoad(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Admin.Restaurants(session.ID(r)).Load(r.Context()))
}

func (h *Handler) adminRestaurantsOpenCreate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Admin.Restaurants(session.ID(r)).OpenCreate())
}

func (h *Handler) adminRestaurantsOpenEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Admin.Restaurants(session.ID(r)).OpenEdit(id))
}

func (h *Handler) adminRestaurantsCancel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Admin.Restaurants(session.ID(r)).Cancel())
}

func (h *Handler) adminRestaurantsSubmit(w http.ResponseWriter, r *http.Request) {
	var form domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Admin.Restaurants(session.ID(r)).Submit(r.Context(), form))
}

func (h *Handler) adminRestaurantsAskDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Admin.Restaurants(session.ID(r)).AskDelete(id))
}

func (h *Handler) adminRestaurantsConfirmDelete(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Admin.Restaurants(session.ID(r)).ConfirmDelete(r.Context()))
}

func (h *Handler) adminRestaurantsCancelDelete(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Admin.Restaurants(session.ID(r)).CancelDelete())
}

func (h *Handler) adminManageMenu(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Admin.Restaurants(session.ID(r)).ManageMenu(r.Context(), id))
}

func (h *Handler) adminMenuEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid menu item id", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Admin.Restaurants(session.ID(r)).EditMenuItem(id))
}

func (h *Handler) adminMenuSubmit(w http.ResponseWriter, r *http.Request) {
	var form domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Admin.Restaurants(session.ID(r)).SubmitMenuItem(r.Context(), form))
}

func (h *Handler) adminMenuAskDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid menu item id", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Admin.Restaurants(session.ID(r)).AskDeleteMenuItem(id))
}

// ===== Orders =====

func (h *Handler) adminOrdersLoad(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("customerPhone")
	restaurantID, _ := strconv.Atoi(r.URL.Query().Get("restaurantId"))
	writeJSON(w, http.StatusOK, h.Admin.Orders(session.ID(r)).Load(r.Context(), phone, restaurantID))
}

func (h *Handler) adminOrdersView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Admin.Orders(session.ID(r)).View(r.Context(), id))
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) adminOrdersChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Admin.Orders(session.ID(r)).ChangeStatus(r.Context(), id, req.Status))
}

func (h *Handler) adminOrdersAskDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Admin.Orders(session.ID(r)).AskDelete(id))
}

func (h *Handler) adminOrdersConfirmDelete(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Admin.Orders(session.ID(r)).ConfirmDelete(r.Context()))
}

func (h *Handler) adminOrdersCancelDelete(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Admin.Orders(session.ID(r)).CancelDelete())
}

// ===== Deliveries =====

func (h *Handler) adminDeliveriesLoad(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Admin.Deliveries(session.ID(r)).Load(r.Context()))
}

func (h *Handler) adminDeliveriesCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Admin.Deliveries(session.ID(r)).Create(r.Context(), req))
}

func (h *Handler) adminDeliveriesChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid delivery id", http.StatusBadRequest)
		return
	}
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Admin.Deliveries(session.ID(r)).ChangeStatus(r.Context(), id, req.Status))
}

func (h *Handler) adminDeliveriesAskDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid delivery id", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Admin.Deliveries(session.ID(r)).AskDelete(id))
}

func (h *Handler) adminDeliveriesConfirmDelete(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Admin.Deliveries(session.ID(r)).ConfirmDelete(r.Context()))
}

func (h *Handler) adminDeliveriesCancelDelete(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Admin.Deliveries(session.ID(r)).CancelDelete())
}
