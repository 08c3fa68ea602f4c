package cart

import "foodcourt-web/internal/domain"

// Line is one menu item in the cart. Name and price are snapshots taken when
// the item was added; the live menu price may diverge afterwards.
type Line struct {
	MenuItemID int     `json:"menuItemId"`
	ItemName   string  `json:"itemName"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

func (l Line) SubTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// PendingSwitch records an add that targeted a different restaurant than the
// one the cart is bound to. It sits until the user confirms or cancels the
// switch; the cart itself stays untouched meanwhile.
type PendingSwitch struct {
	Restaurant domain.Restaurant `json:"restaurant"`
	Item       domain.MenuItem   `json:"item"`
}

// Cart is the session-scoped pending order builder, bound to at most one
// restaurant.
type Cart struct {
	Restaurant *domain.Restaurant `json:"restaurant,omitempty"`
	Lines      []Line             `json:"items"`
	Pending    *PendingSwitch     `json:"pendingSwitch,omitempty"`
}

func (c *Cart) Empty() bool {
	return c.Restaurant == nil || len(c.Lines) == 0
}

func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.SubTotal()
	}
	return total
}

func (c *Cart) clone() *Cart {
	out := &Cart{}
	if c.Restaurant != nil {
		r := *c.Restaurant
		out.Restaurant = &r
	}
	if c.Lines != nil {
		out.Lines = make([]Line, len(c.Lines))
		copy(out.Lines, c.Lines)
	}
	if c.Pending != nil {
		p := *c.Pending
		out.Pending = &p
	}
	return out
}
