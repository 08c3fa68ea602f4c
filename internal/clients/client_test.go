package clients_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodcourt-web/internal/clients"
	"foodcourt-web/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *clients.APIError
		want string
	}{
		{
			name: "message_field",
			err:  &clients.APIError{StatusCode: 400, Msg: "Phone invalid"},
			want: "Phone invalid",
		},
		{
			name: "error_field",
			err:  &clients.APIError{StatusCode: 400, ErrText: "bad request"},
			want: "bad request",
		},
		{
			name: "field_errors_joined_sorted",
			err: &clients.APIError{StatusCode: 400, Fields: map[string]string{
				"customerPhone": "Invalid phone number",
				"customerName":  "customerName is required",
			}},
			want: "customerName: customerName is required; customerPhone: Invalid phone number",
		},
		{
			name: "generic_fallback",
			err:  &clients.APIError{StatusCode: 500},
			want: "request failed with status 500",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, testCase.err.Error())
		})
	}
}

func TestOrderClient_CreateOrderDecodesBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Phone invalid"})
	}))
	defer server.Close()

	oc := clients.NewOrderClient(server.URL, http.DefaultClient)
	_, err := oc.CreateOrder(context.Background(), domain.CreateOrderRequest{RestaurantID: 1})

	var apiErr *clients.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Phone invalid", apiErr.Error())
}

func TestOrderClient_ListOrdersSendsFilters(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode([]domain.Order{{ID: 7, Status: "CREATED"}})
	}))
	defer server.Close()

	oc := clients.NewOrderClient(server.URL, http.DefaultClient)
	orders, err := oc.ListOrders(context.Background(), "9876543210", 3)
	require.NoError(t, err)

	require.Len(t, orders, 1)
	assert.Equal(t, []string{"9876543210"}, gotQuery["customerPhone"])
	assert.Equal(t, []string{"3"}, gotQuery["restaurantId"])
}

func TestOrderClient_ListOrdersOmitsEmptyFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		json.NewEncoder(w).Encode([]domain.Order{})
	}))
	defer server.Close()

	oc := clients.NewOrderClient(server.URL, http.DefaultClient)
	orders, err := oc.ListOrders(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderClient_GetOrderNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Order not found", http.StatusNotFound)
	}))
	defer server.Close()

	oc := clients.NewOrderClient(server.URL, http.DefaultClient)
	_, err := oc.GetOrder(context.Background(), 999)
	assert.ErrorIs(t, err, clients.ErrNotFound)
}

func TestOrderClient_UpdateOrderStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/orders/12/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "CONFIRMED", body["status"])

		json.NewEncoder(w).Encode(domain.Order{ID: 12, Status: "CONFIRMED"})
	}))
	defer server.Close()

	oc := clients.NewOrderClient(server.URL, http.DefaultClient)
	order, err := oc.UpdateOrderStatus(context.Background(), 12, "CONFIRMED")
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", order.Status)
}

func TestRestaurantClient_MenuRoutes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /api/restaurants/4/menu":
			json.NewEncoder(w).Encode([]domain.MenuItem{{ID: 40, ItemName: "Dal Makhani", Price: 220, Available: true}})
		case "PUT /api/restaurants/4/menu/40":
			json.NewEncoder(w).Encode(domain.MenuItem{ID: 40, ItemName: "Dal Makhani", Price: 240, Available: true})
		case "DELETE /api/restaurants/4/menu/40":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	rc := clients.NewRestaurantClient(server.URL, http.DefaultClient)
	ctx := context.Background()

	menu, err := rc.GetMenu(ctx, 4)
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "Dal Makhani", menu[0].ItemName)

	updated, err := rc.UpdateMenuItem(ctx, 4, 40, menu[0])
	require.NoError(t, err)
	assert.Equal(t, 240.0, updated.Price)

	assert.NoError(t, rc.DeleteMenuItem(ctx, 4, 40))
}

func TestRestaurantClient_ListSendsCityAndCuisine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Pune", r.URL.Query().Get("city"))
		assert.Equal(t, "Italian", r.URL.Query().Get("cuisine"))
		json.NewEncoder(w).Encode([]domain.Restaurant{{ID: 1, Name: "Pizzeria Uno"}})
	}))
	defer server.Close()

	rc := clients.NewRestaurantClient(server.URL, http.DefaultClient)
	restaurants, err := rc.ListRestaurants(context.Background(), "Pune", "Italian")
	require.NoError(t, err)
	assert.Len(t, restaurants, 1)
}

func TestDeliveryClient_UpdateStatusRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/delivery/5/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "DELIVERED", body["status"])

		json.NewEncoder(w).Encode(domain.Delivery{ID: 5, Status: "DELIVERED"})
	}))
	defer server.Close()

	dc := clients.NewDeliveryClient(server.URL, http.DefaultClient)
	delivery, err := dc.UpdateDeliveryStatus(context.Background(), 5, "DELIVERED")
	require.NoError(t, err)
	assert.Equal(t, "DELIVERED", delivery.Status)
}

func TestClient_PlainTextErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid order payload", http.StatusBadRequest)
	}))
	defer server.Close()

	oc := clients.NewOrderClient(server.URL, http.DefaultClient)
	_, err := oc.CreateOrder(context.Background(), domain.CreateOrderRequest{})

	var apiErr *clients.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid order payload", apiErr.Error())
}
