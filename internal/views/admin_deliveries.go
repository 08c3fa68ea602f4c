package views

import (
	"context"
	"sync"

	"foodcourt-web/internal/domain"
	"foodcourt-web/internal/notify"
)

type DeliveryAdminState struct {
	Mode            AdminMode         `json:"mode"`
	Deliveries      []domain.Delivery `json:"deliveries"`
	PendingDeleteID int               `json:"pendingDeleteId,omitempty"`
	Err             string            `json:"error,omitempty"`
}

// DeliveryAdmin drives the admin deliveries screen: listing, a create form,
// status changes and a delete confirmation handshake. Deliveries are created
// by the admin, never derived automatically from orders.
type DeliveryAdmin struct {
	mu        sync.Mutex
	api       DeliveryAPI
	notifier  *notify.Center
	sessionID string
	st        DeliveryAdminState
}

func NewDeliveryAdmin(api DeliveryAPI, notifier *notify.Center, sessionID string) *DeliveryAdmin {
	return &DeliveryAdmin{
		api:       api,
		notifier:  notifier,
		sessionID: sessionID,
		st:        DeliveryAdminState{Mode: ModeListing},
	}
}

func (a *DeliveryAdmin) State() DeliveryAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot()
}

func (a *DeliveryAdmin) Load(ctx context.Context) DeliveryAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.st.Err = ""
	a.reload(ctx)
	return a.snapshot()
}

func (a *DeliveryAdmin) Create(ctx context.Context, req domain.CreateDeliveryRequest) DeliveryAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.st.Err = ""
	if _, err := a.api.CreateDelivery(ctx, req); err != nil {
		a.fail("Failed to create delivery")
		return a.snapshot()
	}
	a.notifier.Push(a.sessionID, "Delivery created", notify.SeveritySuccess)
	a.reload(ctx)
	return a.snapshot()
}

// ChangeStatus issues the update immediately and reloads; the reload is
// caught independently of the mutation.
func (a *DeliveryAdmin) ChangeStatus(ctx context.Context, id int, status string) DeliveryAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !domain.ValidDeliveryStatus(status) {
		a.st.Err = "Unknown delivery status"
		return a.snapshot()
	}

	if _, err := a.api.UpdateDeliveryStatus(ctx, id, status); err != nil {
		a.fail("Failed to update delivery status")
		return a.snapshot()
	}
	a.st.Err = ""
	a.notifier.Push(a.sessionID, "Status updated", notify.SeveritySuccess)
	a.reload(ctx)
	return a.snapshot()
}

func (a *DeliveryAdmin) AskDelete(id int) DeliveryAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.st.PendingDeleteID = id
	a.st.Mode = ModeConfirmingDelete
	return a.snapshot()
}

func (a *DeliveryAdmin) ConfirmDelete(ctx context.Context) DeliveryAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.st.PendingDeleteID
	a.st.PendingDeleteID = 0
	a.st.Mode = ModeListing
	if id == 0 {
		return a.snapshot()
	}

	if err := a.api.DeleteDelivery(ctx, id); err != nil {
		a.fail("Failed to delete delivery")
		return a.snapshot()
	}
	a.st.Err = ""
	a.notifier.Push(a.sessionID, "Delivery deleted", notify.SeveritySuccess)
	a.reload(ctx)
	return a.snapshot()
}

func (a *DeliveryAdmin) CancelDelete() DeliveryAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.st.PendingDeleteID = 0
	a.st.Mode = ModeListing
	return a.snapshot()
}

func (a *DeliveryAdmin) reload(ctx context.Context) {
	deliveries, err := a.api.ListDeliveries(ctx)
	if err != nil {
		a.fail("Failed to load deliveries")
		return
	}
	a.st.Deliveries = deliveries
}

func (a *DeliveryAdmin) fail(message string) {
	a.st.Err = message
	a.notifier.Push(a.sessionID, message, notify.SeverityError)
}

func (a *DeliveryAdmin) snapshot() DeliveryAdminState {
	st := a.st
	st.Deliveries = append([]domain.Delivery(nil), a.st.Deliveries...)
	return st
}
