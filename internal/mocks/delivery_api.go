package mocks

import (
	"context"

	"foodcourt-web/internal/domain"

	"github.com/stretchr/testify/mock"
)

type DeliveryAPI struct {
	mock.Mock
}

func NewDeliveryAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *DeliveryAPI {
	m := &DeliveryAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DeliveryAPI) GetDelivery(ctx context.Context, id int) (domain.Delivery, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Delivery), args.Error(1)
}

func (m *DeliveryAPI) ListDeliveries(ctx context.Context) ([]domain.Delivery, error) {
	args := m.Called(ctx)
	var deliveries []domain.Delivery
	if args.Get(0) != nil {
		deliveries = args.Get(0).([]domain.Delivery)
	}
	return deliveries, args.Error(1)
}

func (m *DeliveryAPI) CreateDelivery(ctx context.Context, req domain.CreateDeliveryRequest) (domain.Delivery, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Delivery), args.Error(1)
}

func (m *DeliveryAPI) UpdateDeliveryStatus(ctx context.Context, id int, status string) (domain.Delivery, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Delivery), args.Error(1)
}

func (m *DeliveryAPI) DeleteDelivery(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
