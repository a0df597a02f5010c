package kafka

import "time"

// OrderLine is one priced line of a dispatched order
type OrderLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// OrderDispatchedEvent is published once an order has been handed off to the vendor
type OrderDispatchedEvent struct {
	EventID       string      `json:"event_id"`
	EventType     string      `json:"event_type"`
	OrderID       string      `json:"order_id"`
	CustomerID    uint        `json:"customer_id"`
	CustomerEmail string      `json:"customer_email"`
	CustomerName  string      `json:"customer_name"`
	Channel       string      `json:"channel"`
	PaymentMethod string      `json:"payment_method"`
	Items         []OrderLine `json:"items"`
	ItemCount     int         `json:"item_count"`
	Total         float64     `json:"total"`
	Timestamp     time.Time   `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderDispatched = "checkout.order_dispatched"
)

// Kafka topics
const (
	TopicOrderDispatched = "checkout.order_dispatched"
)
