package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"foodcourt-web/internal/domain"

	"github.com/segmentio/kafka-go"
)

type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	TotalAmount  float64   `json:"total_amount"`
	Timestamp    time.Time `json:"timestamp"`
}

// KafkaPublisher emits order lifecycle events keyed by order id.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, order domain.Order) error {
	payload, _ := json.Marshal(OrderEvent{
		Type:         "order_placed",
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		TotalAmount:  order.TotalAmount,
		Timestamp:    time.Now(),
	})
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(order.ID)),
		Value: payload,
	})
}
