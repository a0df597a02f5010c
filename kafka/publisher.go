package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/adielbeauty/storefront/internal/checkout/dispatch"
	"github.com/adielbeauty/storefront/internal/checkout/domain"
	"github.com/adielbeauty/storefront/pkg/breaker"
	"github.com/adielbeauty/storefront/pkg/logger"
)

// Publisher wraps Kafka producer
type Publisher struct {
	producer sarama.SyncProducer
	now      func() time.Time
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return NewPublisherWithProducer(producer), nil
}

// NewPublisherWithProducer wraps an existing producer
func NewPublisherWithProducer(producer sarama.SyncProducer) *Publisher {
	return &Publisher{producer: producer, now: time.Now}
}

// NewOrderDispatchedEvent flattens an order and its hand-off into the wire event
func NewOrderDispatchedEvent(order *domain.OrderSummary, handoff *dispatch.Handoff, at time.Time) OrderDispatchedEvent {
	lines := make([]OrderLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, OrderLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal.Float64(),
		})
	}

	channel := string(order.FulfillmentMethod)
	if handoff != nil && handoff.Channel != "" {
		channel = string(handoff.Channel)
	}

	return OrderDispatchedEvent{
		EventID:       uuid.New().String(),
		EventType:     EventTypeOrderDispatched,
		OrderID:       order.OrderID,
		CustomerID:    order.Customer.UserID,
		CustomerEmail: order.Customer.Email,
		CustomerName:  order.Customer.Name,
		Channel:       channel,
		PaymentMethod: string(order.PaymentMethod),
		Items:         lines,
		ItemCount:     order.ItemCount(),
		Total:         order.GrandTotal.Float64(),
		Timestamp:     at,
	}
}

// PublishOrderDispatched publishes an order dispatched event with tracing
func (p *Publisher) PublishOrderDispatched(ctx context.Context, order *domain.OrderSummary, handoff *dispatch.Handoff) error {
	if order == nil {
		return fmt.Errorf("order summary is required")
	}
	event := NewOrderDispatchedEvent(order, handoff, p.now())

	// Start producer span
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish.order_dispatched",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicOrderDispatched),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", EventTypeOrderDispatched),
			attribute.String("event.id", event.EventID),
			attribute.String("order.id", event.OrderID),
			attribute.String("order.channel", event.Channel),
			attribute.Int("order.item_count", event.ItemCount),
			attribute.Float64("order.total", event.Total),
		),
	)
	defer span.End()

	// Marshal event
	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(EventTypeOrderDispatched)},
		{Key: []byte("event_id"), Value: []byte(event.EventID)},
	}
	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	// Key by order id so one order's events stay on one partition
	msg := &sarama.ProducerMessage{
		Topic:   TopicOrderDispatched,
		Key:     sarama.StringEncoder(event.OrderID),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Error(ctx).
			Err(err).
			Str("topic", TopicOrderDispatched).
			Str("order_id", event.OrderID).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	// Record where the event landed
	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Info(ctx).
		Str("event_id", event.EventID).
		Str("topic", TopicOrderDispatched).
		Int32("partition", partition).
		Int64("offset", offset).
		Str("order_id", event.OrderID).
		Str("channel", event.Channel).
		Msg("Order dispatched event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// GuardedPublisher skips the broker while it keeps failing. Order hand-off never waits on it.
type GuardedPublisher struct {
	next    *Publisher
	breaker *breaker.Breaker
}

// NewGuardedPublisher wraps p with b
func NewGuardedPublisher(p *Publisher, b *breaker.Breaker) *GuardedPublisher {
	return &GuardedPublisher{next: p, breaker: b}
}

// PublishOrderDispatched publishes through the breaker
func (g *GuardedPublisher) PublishOrderDispatched(ctx context.Context, order *domain.OrderSummary, handoff *dispatch.Handoff) error {
	return g.breaker.Execute(func() error {
		return g.next.PublishOrderDispatched(ctx, order, handoff)
	})
}

// Close closes the wrapped publisher
func (g *GuardedPublisher) Close() error {
	return g.next.Close()
}
