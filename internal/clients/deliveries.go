package clients

import (
	"context"
	"fmt"

	"foodcourt-web/internal/domain"
)

type DeliveryClient struct {
	c *Client
}

func NewDeliveryClient(baseURL string, httpClient HTTPClient) *DeliveryClient {
	return &DeliveryClient{c: New(baseURL, httpClient)}
}

func (dc *DeliveryClient) GetDelivery(ctx context.Context, id int) (domain.Delivery, error) {
	var delivery domain.Delivery
	err := dc.c.get(ctx, fmt.Sprintf("/api/delivery/%d", id), nil, &delivery)
	return delivery, err
}

func (dc *DeliveryClient) ListDeliveries(ctx context.Context) ([]domain.Delivery, error) {
	deliveries := []domain.Delivery{}
	if err := dc.c.get(ctx, "/api/delivery", nil, &deliveries); err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (dc *DeliveryClient) CreateDelivery(ctx context.Context, req domain.CreateDeliveryRequest) (domain.Delivery, error) {
	var delivery domain.Delivery
	err := dc.c.post(ctx, "/api/delivery", req, &delivery)
	return delivery, err
}

func (dc *DeliveryClient) UpdateDeliveryStatus(ctx context.Context, id int, status string) (domain.Delivery, error) {
	var delivery domain.Delivery
	err := dc.c.put(ctx, fmt.Sprintf("/api/delivery/%d/status", id), map[string]string{"status": status}, &delivery)
	return delivery, err
}

func (dc *DeliveryClient) DeleteDelivery(ctx context.Context, id int) error {
	return dc.c.delete(ctx, fmt.Sprintf("/api/delivery/%d", id))
}
