package clients

import (
	"context"
	"fmt"
	"net/url"

	"foodcourt-web/internal/domain"
)

// RestaurantClient talks to the restaurant service, including its nested
// /menu sub-resource.
type RestaurantClient struct {
	c *Client
}

func NewRestaurantClient(baseURL string, httpClient HTTPClient) *RestaurantClient {
	return &RestaurantClient{c: New(baseURL, httpClient)}
}

func (rc *RestaurantClient) ListRestaurants(ctx context.Context, city, cuisine string) ([]domain.Restaurant, error) {
	query := url.Values{}
	if city != "" {
		query.Set("city", city)
	}
	if cuisine != "" {
		query.Set("cuisine", cuisine)
	}

	restaurants := []domain.Restaurant{}
	if err := rc.c.get(ctx, "/api/restaurants", query, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (rc *RestaurantClient) GetRestaurant(ctx context.Context, id int) (domain.Restaurant, error) {
	var restaurant domain.Restaurant
	err := rc.c.get(ctx, fmt.Sprintf("/api/restaurants/%d", id), nil, &restaurant)
	return restaurant, err
}

func (rc *RestaurantClient) CreateRestaurant(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error) {
	var created domain.Restaurant
	err := rc.c.post(ctx, "/api/restaurants", restaurant, &created)
	return created, err
}

func (rc *RestaurantClient) UpdateRestaurant(ctx context.Context, id int, restaurant domain.Restaurant) (domain.Restaurant, error) {
	var updated domain.Restaurant
	err := rc.c.put(ctx, fmt.Sprintf("/api/restaurants/%d", id), restaurant, &updated)
	return updated, err
}

func (rc *RestaurantClient) DeleteRestaurant(ctx context.Context, id int) error {
	return rc.c.delete(ctx, fmt.Sprintf("/api/restaurants/%d", id))
}

func (rc *RestaurantClient) GetMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	menu := []domain.MenuItem{}
	if err := rc.c.get(ctx, fmt.Sprintf("/api/restaurants/%d/menu", restaurantID), nil, &menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (rc *RestaurantClient) AddMenuItem(ctx context.Context, restaurantID int, item domain.MenuItem) (domain.MenuItem, error) {
	var created domain.MenuItem
	err := rc.c.post(ctx, fmt.Sprintf("/api/restaurants/%d/menu", restaurantID), item, &created)
	return created, err
}

func (rc *RestaurantClient) UpdateMenuItem(ctx context.Context, restaurantID, itemID int, item domain.MenuItem) (domain.MenuItem, error) {
	var updated domain.MenuItem
	err := rc.c.put(ctx, fmt.Sprintf("/api/restaurants/%d/menu/%d", restaurantID, itemID), item, &updated)
	return updated, err
}

func (rc *RestaurantClient) DeleteMenuItem(ctx context.Context, restaurantID, itemID int) error {
	return rc.c.delete(ctx, fmt.Sprintf("/api/restaurants/%d/menu/%d", restaurantID, itemID))
}
