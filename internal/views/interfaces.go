package views

import (
	"context"

	"foodcourt-web/internal/domain"
)

type RestaurantAPI interface {
	ListRestaurants(ctx context.Context, city, cuisine string) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id int, restaurant domain.Restaurant) (domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int) error
	GetMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
	AddMenuItem(ctx context.Context, restaurantID int, item domain.MenuItem) (domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, restaurantID, itemID int, item domain.MenuItem) (domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, restaurantID, itemID int) error
}

type OrderAPI interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
	GetOrder(ctx context.Context, id int) (domain.Order, error)
	ListOrders(ctx context.Context, customerPhone string, restaurantID int) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status string) (domain.Order, error)
	DeleteOrder(ctx context.Context, id int) error
}

type DeliveryAPI interface {
	GetDelivery(ctx context.Context, id int) (domain.Delivery, error)
	ListDeliveries(ctx context.Context) ([]domain.Delivery, error)
	CreateDelivery(ctx context.Context, req domain.CreateDeliveryRequest) (domain.Delivery, error)
	UpdateDeliveryStatus(ctx context.Context, id int, status string) (domain.Delivery, error)
	DeleteDelivery(ctx context.Context, id int) error
}

// OrderPublisher fans successful checkouts out to interested consumers.
// Publishing is best-effort and never blocks an order placement.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, order domain.Order) error
}
