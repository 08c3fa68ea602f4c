package views

import (
	"context"
	"sync"

	"foodcourt-web/internal/domain"
)

// RestaurantAdminState is the snapshot rendered by the restaurants-and-menu
// management screen.
type RestaurantAdminState struct {
	Mode          AdminMode           `json:"mode"`
	Restaurants   []domain.Restaurant `json:"restaurants"`
	Editing       *domain.Restaurant  `json:"editing,omitempty"`
	Selected      *domain.Restaurant  `json:"selectedRestaurant,omitempty"`
	Menu          []domain.MenuItem   `json:"menu,omitempty"`
	EditingItemID int                 `json:"editingMenuItemId,omitempty"`
	PendingDelete *DeleteTarget       `json:"pendingDelete,omitempty"`
	Err           string              `json:"error,omitempty"`
}

// RestaurantAdmin drives the admin restaurants screen for one session,
// including the nested menu section for the selected restaurant. Local state
// only changes after the backend call has resolved.
type RestaurantAdmin struct {
	mu  sync.Mutex
	api RestaurantAPI
	st  RestaurantAdminState
}

func NewRestaurantAdmin(api RestaurantAPI) *RestaurantAdmin {
	return &RestaurantAdmin{
		api: api,
		st:  RestaurantAdminState{Mode: ModeListing},
	}
}

func (a *RestaurantAdmin) State() RestaurantAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot()
}

func (a *RestaurantAdmin) Load(ctx context.Context) RestaurantAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.st.Err = ""
	a.reloadRestaurants(ctx)
	return a.snapshot()
}

func (a *RestaurantAdmin) OpenCreate() RestaurantAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.st.Mode = ModeCreating
	a.st.Editing = nil
	return a.snapshot()
}

// OpenEdit pre-fills the form from the listed entity; the list copy is the
// source, no extra fetch happens.
func (a *RestaurantAdmin) OpenEdit(id int) RestaurantAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, r := range a.st.Restaurants {
		if r.ID == id {
			edit := r
			a.st.Editing = &edit
			a.st.Mode = ModeEditing
			a.st.Err = ""
			return a.snapshot()
		}
	}
	a.st.Err = "Restaurant not found"
	return a.snapshot()
}

func (a *RestaurantAdmin) Cancel() RestaurantAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.st.Mode = ModeListing
	a.st.Editing = nil
	a.st.PendingDelete = nil
	return a.snapshot()
}

// Submit issues an update when a restaurant is being edited, a create
// otherwise, then reloads the list.
func (a *RestaurantAdmin) Submit(ctx context.Context, form domain.Restaurant) RestaurantAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.st.Err = ""
	var err error
	if a.st.Mode == ModeEditing && a.st.Editing != nil {
		_, err = a.api.UpdateRestaurant(ctx, a.st.Editing.ID, form)
	} else {
		_, err = a.api.CreateRestaurant(ctx, form)
	}
	if err != nil {
		a.st.Err = "Failed to save restaurant"
		return a.snapshot()
	}

	a.st.Editing = nil
	a.st.Mode = ModeListing
	a.reloadRestaurants(ctx)
	return a.snapshot()
}

func (a *RestaurantAdmin) AskDelete(id int) RestaurantAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.st.PendingDelete = &DeleteTarget{Kind: TargetRestaurant, ID: id}
	a.st.Mode = ModeConfirmingDelete
	return a.snapshot()
}

func (a *RestaurantAdmin) AskDeleteMenuItem(itemID int) RestaurantAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.st.Selected == nil {
		return a.snapshot()
	}
	a.st.PendingDelete = &DeleteTarget{Kind: TargetMenuItem, ID: itemID}
	a.st.Mode = ModeConfirmingDelete
	return a.snapshot()
}

// ConfirmDelete executes the pending deletion according to its tagged kind
// and reloads the affected list. The reload is caught independently so a
// successful delete is never reported as a failure.
func (a *RestaurantAdmin) ConfirmDelete(ctx context.Context) RestaurantAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	target := a.st.PendingDelete
	a.st.PendingDelete = nil
	a.st.Mode = ModeListing
	if target == nil {
		return a.snapshot()
	}

	a.st.Err = ""
	switch target.Kind {
	case TargetRestaurant:
		if err := a.api.DeleteRestaurant(ctx, target.ID); err != nil {
			a.st.Err = "Failed to delete restaurant"
			return a.snapshot()
		}
		if a.st.Selected != nil && a.st.Selected.ID == target.ID {
			a.st.Selected = nil
			a.st.Menu = nil
			a.st.EditingItemID = 0
		}
		a.reloadRestaurants(ctx)
	case TargetMenuItem:
		if a.st.Selected == nil {
			return a.snapshot()
		}
		if err := a.api.DeleteMenuItem(ctx, a.st.Selected.ID, target.ID); err != nil {
			a.st.Err = "Failed to delete menu item"
			return a.snapshot()
		}
		a.reloadMenu(ctx)
	}
	return a.snapshot()
}

// CancelDelete discards the pending target without side effects.
func (a *RestaurantAdmin) CancelDelete() RestaurantAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.st.PendingDelete = nil
	a.st.Mode = ModeListing
	return a.snapshot()
}

// ManageMenu selects a restaurant and loads its menu into the nested section.
func (a *RestaurantAdmin) ManageMenu(ctx context.Context, restaurantID int) RestaurantAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, r := range a.st.Restaurants {
		if r.ID == restaurantID {
			sel := r
			a.st.Selected = &sel
			a.st.EditingItemID = 0
			a.st.Err = ""
			a.reloadMenu(ctx)
			return a.snapshot()
		}
	}
	a.st.Err = "Restaurant not found"
	return a.snapshot()
}

func (a *RestaurantAdmin) EditMenuItem(itemID int) RestaurantAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.st.EditingItemID = itemID
	return a.snapshot()
}

func (a *RestaurantAdmin) SubmitMenuItem(ctx context.Context, form domain.MenuItem) RestaurantAdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.st.Selected == nil {
		return a.snapshot()
	}

	a.st.Err = ""
	var err error
	if a.st.EditingItemID != 0 {
		_, err = a.api.UpdateMenuItem(ctx, a.st.Selected.ID, a.st.EditingItemID, form)
	} else {
		_, err = a.api.AddMenuItem(ctx, a.st.Selected.ID, form)
	}
	if err != nil {
		a.st.Err = "Failed to save menu item"
		return a.snapshot()
	}

	a.st.EditingItemID = 0
	a.reloadMenu(ctx)
	return a.snapshot()
}

func (a *RestaurantAdmin) reloadRestaurants(ctx context.Context) {
	restaurants, err := a.api.ListRestaurants(ctx, "", "")
	if err != nil {
		a.st.Err = "Failed to load restaurants"
		return
	}
	a.st.Restaurants = restaurants
}

func (a *RestaurantAdmin) reloadMenu(ctx context.Context) {
	if a.st.Selected == nil {
		return
	}
	menu, err := a.api.GetMenu(ctx, a.st.Selected.ID)
	if err != nil {
		a.st.Err = "Failed to load menu"
		return
	}
	a.st.Menu = menu
}

func (a *RestaurantAdmin) snapshot() RestaurantAdminState {
	st := a.st
	st.Restaurants = append([]domain.Restaurant(nil), a.st.Restaurants...)
	st.Menu = append([]domain.MenuItem(nil), a.st.Menu...)
	if a.st.Editing != nil {
		edit := *a.st.Editing
		st.Editing = &edit
	}
	if a.st.Selected != nil {
		sel := *a.st.Selected
		st.Selected = &sel
	}
	if a.st.PendingDelete != nil {
		target := *a.st.PendingDelete
		st.PendingDelete = &target
	}
	return st
}
