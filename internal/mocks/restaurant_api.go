package mocks

import (
	"context"

	"foodcourt-web/internal/domain"

	"github.com/stretchr/testify/mock"
)

type RestaurantAPI struct {
	mock.Mock
}

func NewRestaurantAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *RestaurantAPI {
	m := &RestaurantAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantAPI) ListRestaurants(ctx context.Context, city, cuisine string) ([]domain.Restaurant, error) {
	args := m.Called(ctx, city, cuisine)
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *RestaurantAPI) GetRestaurant(ctx context.Context, id int) (domain.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Restaurant), args.Error(1)
}

func (m *RestaurantAPI) CreateRestaurant(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error) {
	args := m.Called(ctx, restaurant)
	return args.Get(0).(domain.Restaurant), args.Error(1)
}

func (m *RestaurantAPI) UpdateRestaurant(ctx context.Context, id int, restaurant domain.Restaurant) (domain.Restaurant, error) {
	args := m.Called(ctx, id, restaurant)
	return args.Get(0).(domain.Restaurant), args.Error(1)
}

func (m *RestaurantAPI) DeleteRestaurant(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RestaurantAPI) GetMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	var menu []domain.MenuItem
	if args.Get(0) != nil {
		menu = args.Get(0).([]domain.MenuItem)
	}
	return menu, args.Error(1)
}

func (m *RestaurantAPI) AddMenuItem(ctx context.Context, restaurantID int, item domain.MenuItem) (domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID, item)
	return args.Get(0).(domain.MenuItem), args.Error(1)
}

func (m *RestaurantAPI) UpdateMenuItem(ctx context.Context, restaurantID, itemID int, item domain.MenuItem) (domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID, itemID, item)
	return args.Get(0).(domain.MenuItem), args.Error(1)
}

func (m *RestaurantAPI) DeleteMenuItem(ctx context.Context, restaurantID, itemID int) error {
	args := m.Called(ctx, restaurantID, itemID)
	return args.Error(0)
}
