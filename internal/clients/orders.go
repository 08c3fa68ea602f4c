package clients

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"foodcourt-web/internal/domain"
)

type OrderClient struct {
	c *Client
}

func NewOrderClient(baseURL string, httpClient HTTPClient) *OrderClient {
	return &OrderClient{c: New(baseURL, httpClient)}
}

func (oc *OrderClient) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	var order domain.Order
	err := oc.c.post(ctx, "/api/orders", req, &order)
	return order, err
}

func (oc *OrderClient) GetOrder(ctx context.Context, id int) (domain.Order, error) {
	var order domain.Order
	err := oc.c.get(ctx, fmt.Sprintf("/api/orders/%d", id), nil, &order)
	return order, err
}

// ListOrders filters by customer phone and restaurant id; zero values mean
// no filter.
func (oc *OrderClient) ListOrders(ctx context.Context, customerPhone string, restaurantID int) ([]domain.Order, error) {
	query := url.Values{}
	if customerPhone != "" {
		query.Set("customerPhone", customerPhone)
	}
	if restaurantID > 0 {
		query.Set("restaurantId", strconv.Itoa(restaurantID))
	}

	orders := []domain.Order{}
	if err := oc.c.get(ctx, "/api/orders", query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (oc *OrderClient) UpdateOrderStatus(ctx context.Context, id int, status string) (domain.Order, error) {
	var order domain.Order
	err := oc.c.put(ctx, fmt.Sprintf("/api/orders/%d/status", id), map[string]string{"status": status}, &order)
	return order, err
}

func (oc *OrderClient) DeleteOrder(ctx context.Context, id int) error {
	return oc.c.delete(ctx, fmt.Sprintf("/api/orders/%d", id))
}
