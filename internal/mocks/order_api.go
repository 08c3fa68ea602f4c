package mocks

import (
	"context"

	"foodcourt-web/internal/domain"

	"github.com/stretchr/testify/mock"
)

type OrderAPI struct {
	mock.Mock
}

func NewOrderAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderAPI {
	m := &OrderAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderAPI) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *OrderAPI) GetOrder(ctx context.Context, id int) (domain.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *OrderAPI) ListOrders(ctx context.Context, customerPhone string, restaurantID int) ([]domain.Order, error) {
	args := m.Called(ctx, customerPhone, restaurantID)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderAPI) UpdateOrderStatus(ctx context.Context, id int, status string) (domain.Order, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *OrderAPI) DeleteOrder(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
