package views

import (
	"context"

	"foodcourt-web/internal/domain"
)

// Status lookups are plain fetch-by-id views with no state machine behind
// them; errors surface inline on the lookup page.

type OrderLookup struct {
	orders OrderAPI
}

func NewOrderLookup(orders OrderAPI) *OrderLookup {
	return &OrderLookup{orders: orders}
}

func (l *OrderLookup) Fetch(ctx context.Context, id int) (domain.Order, error) {
	return l.orders.GetOrder(ctx, id)
}

type DeliveryLookup struct {
	deliveries DeliveryAPI
}

func NewDeliveryLookup(deliveries DeliveryAPI) *DeliveryLookup {
	return &DeliveryLookup{deliveries: deliveries}
}

func (l *DeliveryLookup) Fetch(ctx context.Context, id int) (domain.Delivery, error) {
	return l.deliveries.GetDelivery(ctx, id)
}
