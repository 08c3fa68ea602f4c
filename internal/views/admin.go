package views

// AdminMode is the lifecycle of a CRUD management screen. Delete confirmation
// is an explicit state rather than a blocking prompt, so the event loop never
// waits on user input.
type AdminMode string

const (
	ModeListing          AdminMode = "listing"
	ModeCreating         AdminMode = "creating"
	ModeEditing          AdminMode = "editing"
	ModeConfirmingDelete AdminMode = "confirming-delete"
)

type DeleteTargetKind string

const (
	TargetRestaurant DeleteTargetKind = "restaurant"
	TargetMenuItem   DeleteTargetKind = "menu-item"
)

// DeleteTarget tags the pending deletion with what kind of entity it is.
// The restaurant screen shares one confirmation dialog between restaurants
// and menu items; the tag keeps a restaurant id from ever being mistaken for
// a menu-item id.
type DeleteTarget struct {
	Kind DeleteTargetKind `json:"kind"`
	ID   int              `json:"id"`
}
