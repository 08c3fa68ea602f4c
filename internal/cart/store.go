package cart

import (
	"context"
	"errors"
	"sync"

	"foodcourt-web/internal/domain"
)

var (
	// ErrRestaurantConflict signals that the add targeted a restaurant other
	// than the cart's. The add is parked as a PendingSwitch until the user
	// confirms clearing the cart.
	ErrRestaurantConflict = errors.New("cart holds items from another restaurant")

	ErrNoPendingSwitch = errors.New("no restaurant switch awaiting confirmation")
)

// Repository persists carts per session id. Load returns an empty cart when
// none is stored.
type Repository interface {
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, c *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// Store owns all cart mutations. The mutex serializes load-modify-save
// cycles, standing in for the single UI event thread the cart logic assumes.
// Every mutation is written back to the repository before subscribers are
// notified, so readers never observe a partially applied change.
type Store struct {
	mu   sync.Mutex
	repo Repository
	subs []func(sessionID string)
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Subscribe registers a callback fired after every cart mutation. Subscribers
// must be registered before the store starts serving requests.
func (s *Store) Subscribe(fn func(sessionID string)) {
	s.subs = append(s.subs, fn)
}

func (s *Store) Get(ctx context.Context, sessionID string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return c.clone(), nil
}

// AddItem binds the cart to the restaurant and merges the item in. Adding
// from a different restaurant does not touch the existing lines; it records
// a pending switch and returns ErrRestaurantConflict so the UI can raise a
// confirmation dialog.
func (s *Store) AddItem(ctx context.Context, sessionID string, item domain.MenuItem, restaurant domain.Restaurant) (*Cart, error) {
	return s.update(ctx, sessionID, func(c *Cart) error {
		if c.Restaurant != nil && c.Restaurant.ID != restaurant.ID {
			c.Pending = &PendingSwitch{Restaurant: restaurant, Item: item}
			return ErrRestaurantConflict
		}
		c.Restaurant = &restaurant
		c.Pending = nil
		mergeLine(c, item)
		return nil
	})
}

// ConfirmSwitch applies a pending restaurant switch: the cart is cleared,
// rebound to the new restaurant, and the parked item is added.
func (s *Store) ConfirmSwitch(ctx context.Context, sessionID string) (*Cart, error) {
	return s.update(ctx, sessionID, func(c *Cart) error {
		if c.Pending == nil {
			return ErrNoPendingSwitch
		}
		restaurant := c.Pending.Restaurant
		item := c.Pending.Item
		c.Lines = nil
		c.Restaurant = &restaurant
		c.Pending = nil
		mergeLine(c, item)
		return nil
	})
}

// CancelSwitch discards a pending restaurant switch, leaving the cart as it
// was before the conflicting add.
func (s *Store) CancelSwitch(ctx context.Context, sessionID string) (*Cart, error) {
	return s.update(ctx, sessionID, func(c *Cart) error {
		c.Pending = nil
		return nil
	})
}

// RemoveItem deletes the matching line; absent ids are a no-op.
func (s *Store) RemoveItem(ctx context.Context, sessionID string, menuItemID int) (*Cart, error) {
	return s.update(ctx, sessionID, func(c *Cart) error {
		lines := c.Lines[:0]
		for _, line := range c.Lines {
			if line.MenuItemID != menuItemID {
				lines = append(lines, line)
			}
		}
		c.Lines = lines
		return nil
	})
}

// UpdateQuantity overwrites a line's quantity. Zero or negative quantities
// remove the line. There is no upper bound.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID string, menuItemID, quantity int) (*Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, menuItemID)
	}
	return s.update(ctx, sessionID, func(c *Cart) error {
		for i := range c.Lines {
			if c.Lines[i].MenuItemID == menuItemID {
				c.Lines[i].Quantity = quantity
				break
			}
		}
		return nil
	})
}

// Clear empties the cart and drops the restaurant binding.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	s.notify(sessionID)
	return nil
}

// update runs a load-modify-save cycle under the store mutex. The mutation
// result is saved even when fn returns a sentinel (a pending switch is state
// worth keeping); repository failures abort without notifying.
func (s *Store) update(ctx context.Context, sessionID string, fn func(c *Cart) error) (*Cart, error) {
	s.mu.Lock()
	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	fnErr := fn(c)
	if fnErr != nil && fnErr != ErrRestaurantConflict {
		s.mu.Unlock()
		return c.clone(), fnErr
	}

	if err := s.repo.Save(ctx, sessionID, c); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	s.notify(sessionID)
	return c.clone(), fnErr
}

func (s *Store) notify(sessionID string) {
	for _, fn := range s.subs {
		fn(sessionID)
	}
}

func mergeLine(c *Cart, item domain.MenuItem) {
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == item.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, Line{
		MenuItemID: item.ID,
		ItemName:   item.ItemName,
		Price:      item.Price,
		Quantity:   1,
	})
}
