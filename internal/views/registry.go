package views

import (
	"sync"

	"foodcourt-web/internal/notify"
)

// AdminSessions hands out the per-session admin controllers, creating them
// lazily. Controller state (edit mode, pending delete target, filters) lives
// for the session, mirroring how the SPA kept it per open page.
type AdminSessions struct {
	mu         sync.Mutex
	restaurant RestaurantAPI
	order      OrderAPI
	delivery   DeliveryAPI
	notifier   *notify.Center

	restaurantAdmins map[string]*RestaurantAdmin
	orderAdmins      map[string]*OrderAdmin
	deliveryAdmins   map[string]*DeliveryAdmin
}

func NewAdminSessions(restaurant RestaurantAPI, order OrderAPI, delivery DeliveryAPI, notifier *notify.Center) *AdminSessions {
	return &AdminSessions{
		restaurant:       restaurant,
		order:            order,
		delivery:         delivery,
		notifier:         notifier,
		restaurantAdmins: make(map[string]*RestaurantAdmin),
		orderAdmins:      make(map[string]*OrderAdmin),
		deliveryAdmins:   make(map[string]*DeliveryAdmin),
	}
}

func (s *AdminSessions) Restaurants(sessionID string) *RestaurantAdmin {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, ok := s.restaurantAdmins[sessionID]
	if !ok {
		admin = NewRestaurantAdmin(s.restaurant)
		s.restaurantAdmins[sessionID] = admin
	}
	return admin
}

func (s *AdminSessions) Orders(sessionID string) *OrderAdmin {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, ok := s.orderAdmins[sessionID]
	if !ok {
		admin = NewOrderAdmin(s.order, s.notifier, sessionID)
		s.orderAdmins[sessionID] = admin
	}
	return admin
}

func (s *AdminSessions) Deliveries(sessionID string) *DeliveryAdmin {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, ok := s.deliveryAdmins[sessionID]
	if !ok {
		admin = NewDeliveryAdmin(s.delivery, s.notifier, sessionID)
		s.deliveryAdmins[sessionID] = admin
	}
	return admin
}
