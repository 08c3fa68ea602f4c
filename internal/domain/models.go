package domain

import "time"

type Restaurant struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	CuisineType   string `json:"cuisineType"`
	ContactNumber string `json:"contactNumber"`
	Active        bool   `json:"active"`
}

type MenuItem struct {
	ID          int     `json:"id"`
	ItemName    string  `json:"itemName"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
}

type Order struct {
	ID              int         `json:"id"`
	RestaurantID    int         `json:"restaurantId"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Status          string      `json:"status"`
	TotalAmount     float64     `json:"totalAmount"`
	CreatedAt       time.Time   `json:"createdAt"`
	Items           []OrderItem `json:"items"`
}

type OrderItem struct {
	ID         int     `json:"id"`
	MenuItemID int     `json:"menuItemId"`
	ItemName   string  `json:"itemName"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	SubTotal   float64 `json:"subTotal"`
}

type Delivery struct {
	ID              int        `json:"id"`
	OrderID         *int       `json:"orderId,omitempty"`
	CustomerName    string     `json:"customerName"`
	CustomerPhone   string     `json:"customerPhone"`
	DeliveryAddress string     `json:"deliveryAddress"`
	Status          string     `json:"status"`
	DeliveryPerson  string     `json:"deliveryPerson,omitempty"`
	DeliveryTime    *time.Time `json:"deliveryTime,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// CreateOrderRequest is the order-service create payload. Prices and item
// names are intentionally absent, the order service recomputes authoritative
// pricing from the menu.
type CreateOrderRequest struct {
	RestaurantID    int                `json:"restaurantId"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Items           []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	MenuItemID int `json:"menuItemId"`
	Quantity   int `json:"quantity"`
}

type CreateDeliveryRequest struct {
	OrderID         int    `json:"orderId"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	DeliveryAddress string `json:"deliveryAddress"`
	DeliveryPerson  string `json:"deliveryPerson,omitempty"`
}
