package views

import (
	"context"
	"sync"

	"foodcourt-web/internal/domain"
	"foodcourt-web/internal/notify"
)

type OrderAdminState struct {
	Mode               AdminMode      `json:"mode"`
	Orders             []domain.Order `json:"orders"`
	FilterPhone        string         `json:"filterPhone,omitempty"`
	FilterRestaurantID int            `json:"filterRestaurantId,omitempty"`
	Selected           *domain.Order  `json:"selectedOrder,omitempty"`
	PendingDeleteID    int            `json:"pendingDeleteId,omitempty"`
	Err                string         `json:"error,omitempty"`
}

// OrderAdmin drives the admin orders screen for one session: filterable
// listing, a detail view, status changes and a delete confirmation handshake.
type OrderAdmin struct {
	mu        sync.Mutex
	api       OrderAPI
	notifier  *notify.Center
	sessionID string
	st        OrderAdminState
}

func NewOrderAdmin(api OrderAPI, notifier *notify.Center, sessionID string) *OrderAdmin {
	return &OrderAdmin{
		api:       api,
		notifier:  notifier,
		sessionID: sessionID,
		st:        OrderAdminState{Mode: ModeListing},
	}
}

func (a *OrderAdmin) State() OrderAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot()
}

// Load fetches the order list with the given filters and remembers them for
// later reloads. Zero values mean unfiltered.
func (a *OrderAdmin) Load(ctx context.Context, customerPhone string, restaurantID int) OrderAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.st.FilterPhone = customerPhone
	a.st.FilterRestaurantID = restaurantID
	a.st.Err = ""
	a.reload(ctx)
	return a.snapshot()
}

func (a *OrderAdmin) View(ctx context.Context, id int) OrderAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	order, err := a.api.GetOrder(ctx, id)
	if err != nil {
		a.fail("Failed to load order details")
		return a.snapshot()
	}
	a.st.Selected = &order
	a.st.Err = ""
	return a.snapshot()
}

// ChangeStatus issues the status update immediately, outside any form flow,
// then reloads the list and the open detail view if it shows the mutated
// order. Both refreshes are caught independently: a successful update is
// never reported as failed because a follow-up read broke.
func (a *OrderAdmin) ChangeStatus(ctx context.Context, id int, status string) OrderAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !domain.ValidOrderStatus(status) {
		a.st.Err = "Unknown order status"
		return a.snapshot()
	}

	if _, err := a.api.UpdateOrderStatus(ctx, id, status); err != nil {
		a.fail("Failed to update order status")
		return a.snapshot()
	}
	a.st.Err = ""
	a.notifier.Push(a.sessionID, "Order status updated", notify.SeveritySuccess)

	a.reload(ctx)
	if a.st.Selected != nil && a.st.Selected.ID == id {
		if order, err := a.api.GetOrder(ctx, id); err == nil {
			a.st.Selected = &order
		} else {
			a.fail("Failed to load order details")
		}
	}
	return a.snapshot()
}

func (a *OrderAdmin) AskDelete(id int) OrderAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.st.PendingDeleteID = id
	a.st.Mode = ModeConfirmingDelete
	return a.snapshot()
}

func (a *OrderAdmin) ConfirmDelete(ctx context.Context) OrderAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.st.PendingDeleteID
	a.st.PendingDeleteID = 0
	a.st.Mode = ModeListing
	if id == 0 {
		return a.snapshot()
	}

	if err := a.api.DeleteOrder(ctx, id); err != nil {
		a.fail("Failed to delete order")
		return a.snapshot()
	}
	a.st.Err = ""
	a.notifier.Push(a.sessionID, "Order deleted", notify.SeveritySuccess)

	a.reload(ctx)
	if a.st.Selected != nil && a.st.Selected.ID == id {
		a.st.Selected = nil
	}
	return a.snapshot()
}

func (a *OrderAdmin) CancelDelete() OrderAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.st.PendingDeleteID = 0
	a.st.Mode = ModeListing
	return a.snapshot()
}

func (a *OrderAdmin) reload(ctx context.Context) {
	orders, err := a.api.ListOrders(ctx, a.st.FilterPhone, a.st.FilterRestaurantID)
	if err != nil {
		a.fail("Failed to load orders")
		return
	}
	a.st.Orders = orders
}

func (a *OrderAdmin) fail(message string) {
	a.st.Err = message
	a.notifier.Push(a.sessionID, message, notify.SeverityError)
}

func (a *OrderAdmin) snapshot() OrderAdminState {
	st := a.st
	st.Orders = append([]domain.Order(nil), a.st.Orders...)
	if a.st.Selected != nil {
		sel := *a.st.Selected
		st.Selected = &sel
	}
	return st
}
