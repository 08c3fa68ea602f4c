package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	httpapi "foodcourt-web/internal/api/http"
	"foodcourt-web/internal/cart"
	"foodcourt-web/internal/clients"
	"foodcourt-web/internal/notify"
	"foodcourt-web/internal/storage"
	"foodcourt-web/internal/views"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/segmentio/kafka-go"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	httpClient := &http.Client{Timeout: 15 * time.Second}
	restaurantClient := clients.NewRestaurantClient(getEnv("RESTAURANT_SVC_URL", "http://localhost:8081"), httpClient)
	orderClient := clients.NewOrderClient(getEnv("ORDER_SVC_URL", "http://localhost:8082"), httpClient)
	deliveryClient := clients.NewDeliveryClient(getEnv("DELIVERY_SVC_URL", "http://localhost:8083"), httpClient)

	carts := cart.NewStore(newCartRepository())
	notifier := notify.NewCenter(notify.DefaultTTL)

	var publisher views.OrderPublisher
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    getEnv("KAFKA_ORDER_TOPIC", "orders"),
			Balancer: &kafka.LeastBytes{},
		}
		publisher = storage.NewKafkaPublisher(writer)
		log.Printf("[storefront] publishing order events to %s", broker)
	}

	handler := &httpapi.Handler{
		Carts:         carts,
		Notifier:      notifier,
		Checkout:      views.NewCheckoutFlow(carts, orderClient, publisher, notifier),
		Restaurants:   restaurantClient,
		Orders:        views.NewOrderLookup(orderClient),
		Deliveries:    views.NewDeliveryLookup(deliveryClient),
		Admin:         views.NewAdminSessions(restaurantClient, orderClient, deliveryClient, notifier),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}

	router := httpapi.NewRouter(handler, getEnv("FRONTEND_DIR", "./frontend"))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	addr := ":" + getEnv("PORT", "8080")
	log.Printf("Storefront starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, c.Handler(router)))
}

// newCartRepository picks redis-backed carts when REDIS_HOST is configured,
// in-process carts otherwise.
func newCartRepository() cart.Repository {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return cart.NewMemoryRepository()
	}

	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + getEnv("REDIS_PORT", "6379"),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	log.Printf("[storefront] session carts stored in redis at %s", client.Options().Addr)
	return storage.NewRedisCartRepository(client, 24*time.Hour)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
