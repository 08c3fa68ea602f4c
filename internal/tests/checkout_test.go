package tests

import (
	"context"
	"testing"
	"time"

	"foodcourt-web/internal/cart"
	"foodcourt-web/internal/clients"
	"foodcourt-web/internal/domain"
	"foodcourt-web/internal/mocks"
	"foodcourt-web/internal/notify"
	"foodcourt-web/internal/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sid = "session-1"

func seedCart(t *testing.T, carts *cart.Store) {
	t.Helper()

	restaurant := domain.Restaurant{ID: 1, Name: "Pizzeria Uno"}
	margherita := domain.MenuItem{ID: 10, ItemName: "Margherita", Price: 100, Available: true}
	naan := domain.MenuItem{ID: 11, ItemName: "Garlic Naan", Price: 50, Available: true}

	_, err := carts.AddItem(context.Background(), sid, margherita, restaurant)
	require.NoError(t, err)
	_, err = carts.AddItem(context.Background(), sid, margherita, restaurant)
	require.NoError(t, err)
	_, err = carts.AddItem(context.Background(), sid, naan, restaurant)
	require.NoError(t, err)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	carts := cart.NewStore(cart.NewMemoryRepository())
	orders := mocks.NewOrderAPI(t)
	notifier := notify.NewCenter(time.Minute)
	flow := views.NewCheckoutFlow(carts, orders, nil, notifier)

	_, err := flow.PlaceOrder(context.Background(), sid, "Ravi", "9876543210", "12 MG Road")

	assert.ErrorIs(t, err, views.ErrEmptyCart)
	orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		cname   string
		phone   string
		address string
	}{
		{name: "blank_name", cname: "  ", phone: "9876543210", address: "12 MG Road"},
		{name: "blank_phone", cname: "Ravi", phone: "", address: "12 MG Road"},
		{name: "blank_address", cname: "Ravi", phone: "9876543210", address: "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carts := cart.NewStore(cart.NewMemoryRepository())
			seedCart(t, carts)
			orders := mocks.NewOrderAPI(t)
			notifier := notify.NewCenter(time.Minute)
			flow := views.NewCheckoutFlow(carts, orders, nil, notifier)

			_, err := flow.PlaceOrder(context.Background(), sid, tt.cname, tt.phone, tt.address)

			assert.ErrorIs(t, err, views.ErrMissingField)
			orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	carts := cart.NewStore(cart.NewMemoryRepository())
	seedCart(t, carts)

	placed := domain.Order{ID: 42, RestaurantID: 1, Status: "CREATED", TotalAmount: 250}
	orders := mocks.NewOrderAPI(t)
	orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req domain.CreateOrderRequest) bool {
		return req.RestaurantID == 1 &&
			req.CustomerName == "Ravi" &&
			len(req.Items) == 2 &&
			req.Items[0] == domain.OrderItemRequest{MenuItemID: 10, Quantity: 2} &&
			req.Items[1] == domain.OrderItemRequest{MenuItemID: 11, Quantity: 1}
	})).Return(placed, nil)

	publisher := mocks.NewOrderPublisher(t)
	publisher.On("PublishOrderPlaced", mock.Anything, placed).Return(nil)

	notifier := notify.NewCenter(time.Minute)
	flow := views.NewCheckoutFlow(carts, orders, publisher, notifier)

	order, err := flow.PlaceOrder(context.Background(), sid, "Ravi", "9876543210", "12 MG Road")
	require.NoError(t, err)
	assert.Equal(t, 42, order.ID)

	c, err := carts.Get(context.Background(), sid)
	require.NoError(t, err)
	assert.True(t, c.Empty())

	active := notifier.Active(sid)
	require.Len(t, active, 1)
	assert.Equal(t, "Order placed", active[0].Message)
	assert.Equal(t, notify.SeveritySuccess, active[0].Severity)
}

func TestPlaceOrder_BackendRejectsOrder(t *testing.T) {
	carts := cart.NewStore(cart.NewMemoryRepository())
	seedCart(t, carts)

	orders := mocks.NewOrderAPI(t)
	orders.On("CreateOrder", mock.Anything, mock.Anything).
		Return(domain.Order{}, &clients.APIError{StatusCode: 400, Msg: "Phone invalid"})

	notifier := notify.NewCenter(time.Minute)
	flow := views.NewCheckoutFlow(carts, orders, nil, notifier)

	_, err := flow.PlaceOrder(context.Background(), sid, "Ravi", "bad", "12 MG Road")
	require.Error(t, err)

	c, err := carts.Get(context.Background(), sid)
	require.NoError(t, err)
	assert.Len(t, c.Lines, 2, "cart must survive a rejected checkout")

	active := notifier.Active(sid)
	require.Len(t, active, 1)
	assert.Equal(t, "Phone invalid", active[0].Message)
	assert.Equal(t, notify.SeverityError, active[0].Severity)
}

func TestPlaceOrder_NetworkFailureUsesFallbackMessage(t *testing.T) {
	carts := cart.NewStore(cart.NewMemoryRepository())
	seedCart(t, carts)

	orders := mocks.NewOrderAPI(t)
	orders.On("CreateOrder", mock.Anything, mock.Anything).
		Return(domain.Order{}, context.DeadlineExceeded)

	notifier := notify.NewCenter(time.Minute)
	flow := views.NewCheckoutFlow(carts, orders, nil, notifier)

	_, err := flow.PlaceOrder(context.Background(), sid, "Ravi", "9876543210", "12 MG Road")
	require.Error(t, err)

	active := notifier.Active(sid)
	require.Len(t, active, 1)
	assert.Equal(t, "Network error while creating order.", active[0].Message)
}

func TestPlaceOrder_PublisherFailureDoesNotFailCheckout(t *testing.T) {
	carts := cart.NewStore(cart.NewMemoryRepository())
	seedCart(t, carts)

	placed := domain.Order{ID: 7, RestaurantID: 1, Status: "CREATED"}
	orders := mocks.NewOrderAPI(t)
	orders.On("CreateOrder", mock.Anything, mock.Anything).Return(placed, nil)

	publisher := mocks.NewOrderPublisher(t)
	publisher.On("PublishOrderPlaced", mock.Anything, placed).Return(assert.AnError)

	notifier := notify.NewCenter(time.Minute)
	flow := views.NewCheckoutFlow(carts, orders, publisher, notifier)

	order, err := flow.PlaceOrder(context.Background(), sid, "Ravi", "9876543210", "12 MG Road")
	require.NoError(t, err)
	assert.Equal(t, 7, order.ID)
}
