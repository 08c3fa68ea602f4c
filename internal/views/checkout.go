package views

import (
	"context"
	"errors"
	"log"
	"strings"

	"foodcourt-web/internal/cart"
	"foodcourt-web/internal/domain"
	"foodcourt-web/internal/notify"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrMissingField = errors.New("name, phone and delivery address are required")
)

// CheckoutFlow turns the session cart into an order-service submission. The
// cart is only cleared once the order service has accepted the order; any
// failure leaves it intact so the user can resubmit.
type CheckoutFlow struct {
	carts     *cart.Store
	orders    OrderAPI
	publisher OrderPublisher
	notifier  *notify.Center
}

func NewCheckoutFlow(carts *cart.Store, orders OrderAPI, publisher OrderPublisher, notifier *notify.Center) *CheckoutFlow {
	return &CheckoutFlow{
		carts:     carts,
		orders:    orders,
		publisher: publisher,
		notifier:  notifier,
	}
}

func (f *CheckoutFlow) PlaceOrder(ctx context.Context, sessionID, customerName, customerPhone, deliveryAddress string) (domain.Order, error) {
	c, err := f.carts.Get(ctx, sessionID)
	if err != nil {
		return domain.Order{}, err
	}
	if c.Empty() {
		return domain.Order{}, ErrEmptyCart
	}
	if strings.TrimSpace(customerName) == "" ||
		strings.TrimSpace(customerPhone) == "" ||
		strings.TrimSpace(deliveryAddress) == "" {
		return domain.Order{}, ErrMissingField
	}

	req := domain.CreateOrderRequest{
		RestaurantID:    c.Restaurant.ID,
		CustomerName:    customerName,
		CustomerPhone:   customerPhone,
		DeliveryAddress: deliveryAddress,
		Items:           make([]domain.OrderItemRequest, 0, len(c.Lines)),
	}
	for _, line := range c.Lines {
		req.Items = append(req.Items, domain.OrderItemRequest{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		})
	}

	order, err := f.orders.CreateOrder(ctx, req)
	if err != nil {
		f.notifier.Push(sessionID, DisplayError(err, "Network error while creating order."), notify.SeverityError)
		return domain.Order{}, err
	}

	if err := f.carts.Clear(ctx, sessionID); err != nil {
		// The order went through; a stale cart is recoverable.
		log.Printf("WARNING: failed to clear cart after checkout: %v", err)
	}

	if f.publisher != nil {
		if err := f.publisher.PublishOrderPlaced(ctx, order); err != nil {
			log.Printf("WARNING: failed to publish order event for order %d: %v", order.ID, err)
		}
	}

	f.notifier.Push(sessionID, "Order placed", notify.SeveritySuccess)
	return order, nil
}
