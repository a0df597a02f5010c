package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adielbeauty/storefront/internal/checkout/dispatch"
	"github.com/adielbeauty/storefront/internal/checkout/domain"
	"github.com/adielbeauty/storefront/pkg/breaker"
	"github.com/adielbeauty/storefront/pkg/money"
)

func sampleOrder() *domain.OrderSummary {
	return &domain.OrderSummary{
		OrderID: "ORD-1700000000000",
		Items: []domain.LineItem{
			{ProductID: "avon-lipsticks", Name: "Avon Lipsticks", Price: 12, Quantity: 2, LineTotal: 24},
			{ProductID: "amity-hill-balm", Name: "Amity Hill Balm", Price: 8.5, Quantity: 1, LineTotal: 8.5},
		},
		GrandTotal:        money.Amount(32.5),
		Customer:          domain.Customer{UserID: 7, Email: "rudo@example.com", Name: "Rudo"},
		FulfillmentMethod: domain.FulfillmentWhatsApp,
		PaymentMethod:     domain.PaymentEcoCash,
		Status:            domain.StatusPendingPayment,
	}
}

func header(msg *sarama.ProducerMessage, key string) string {
	for _, h := range msg.Headers {
		if string(h.Key) == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestNewOrderDispatchedEvent(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	event := NewOrderDispatchedEvent(sampleOrder(), &dispatch.Handoff{Channel: domain.FulfillmentWhatsApp}, at)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, EventTypeOrderDispatched, event.EventType)
	assert.Equal(t, "ORD-1700000000000", event.OrderID)
	assert.Equal(t, uint(7), event.CustomerID)
	assert.Equal(t, "whatsapp", event.Channel)
	assert.Equal(t, "ecocash", event.PaymentMethod)
	assert.Equal(t, 3, event.ItemCount)
	assert.InDelta(t, 32.5, event.Total, 0.001)
	require.Len(t, event.Items, 2)
	assert.InDelta(t, 24.0, event.Items[0].LineTotal, 0.001)
	assert.Equal(t, at, event.Timestamp)
}

func TestPublishOrderDispatched(t *testing.T) {
	producer := mocks.NewSyncProducer(t, producerConfig())
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != TopicOrderDispatched {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "ORD-1700000000000" {
			return errors.New("message not keyed by order id")
		}
		if header(msg, "event_type") != EventTypeOrderDispatched || header(msg, "event_id") == "" {
			return errors.New("missing event headers")
		}

		raw, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var event OrderDispatchedEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return err
		}
		if event.EventID != header(msg, "event_id") {
			return errors.New("event id header does not match payload")
		}
		return nil
	})

	p := NewPublisherWithProducer(producer)
	require.NoError(t, p.PublishOrderDispatched(context.Background(), sampleOrder(), &dispatch.Handoff{Channel: domain.FulfillmentWhatsApp}))
	require.NoError(t, p.Close())
}

func TestPublishOrderDispatchedFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, producerConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisherWithProducer(producer)
	err := p.PublishOrderDispatched(context.Background(), sampleOrder(), nil)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestPublishRequiresOrder(t *testing.T) {
	p := NewPublisherWithProducer(mocks.NewSyncProducer(t, producerConfig()))
	assert.Error(t, p.PublishOrderDispatched(context.Background(), nil, nil))
	require.NoError(t, p.Close())
}

func consumerMessage(t *testing.T, eventType string, event OrderDispatchedEvent) *sarama.ConsumerMessage {
	t.Helper()
	raw, err := json.Marshal(event)
	require.NoError(t, err)

	msg := &sarama.ConsumerMessage{Topic: TopicOrderDispatched, Value: raw}
	if eventType != "" {
		msg.Headers = append(msg.Headers,
			&sarama.RecordHeader{Key: []byte("event_type"), Value: []byte(eventType)},
			&sarama.RecordHeader{Key: []byte("event_id"), Value: []byte(event.EventID)},
		)
	}
	return msg
}

func TestHandleMessage(t *testing.T) {
	c := NewConsumerFromGroup(nil, "storefront-notifier", []string{TopicOrderDispatched})

	var got OrderDispatchedEvent
	c.RegisterHandler(EventTypeOrderDispatched, func(ctx context.Context, event OrderDispatchedEvent) error {
		got = event
		return nil
	})

	sent := NewOrderDispatchedEvent(sampleOrder(), nil, time.Now().UTC())
	require.NoError(t, c.HandleMessage(context.Background(), consumerMessage(t, EventTypeOrderDispatched, sent)))
	assert.Equal(t, sent.EventID, got.EventID)
	assert.Equal(t, sent.OrderID, got.OrderID)
	assert.Equal(t, "whatsapp", got.Channel)
}

func TestHandleMessageRejects(t *testing.T) {
	c := NewConsumerFromGroup(nil, "storefront-notifier", []string{TopicOrderDispatched})
	event := NewOrderDispatchedEvent(sampleOrder(), nil, time.Now())

	err := c.HandleMessage(context.Background(), consumerMessage(t, "", event))
	assert.ErrorIs(t, err, ErrMissingEventType)

	err = c.HandleMessage(context.Background(), consumerMessage(t, EventTypeOrderDispatched, event))
	assert.ErrorIs(t, err, ErrNoHandler)

	boom := errors.New("boom")
	c.RegisterHandler(EventTypeOrderDispatched, func(context.Context, OrderDispatchedEvent) error { return boom })
	err = c.HandleMessage(context.Background(), consumerMessage(t, EventTypeOrderDispatched, event))
	assert.ErrorIs(t, err, boom)

	bad := consumerMessage(t, EventTypeOrderDispatched, event)
	bad.Value = []byte("{")
	assert.Error(t, c.HandleMessage(context.Background(), bad))
}

func TestGuardedPublisherSkipsBrokerWhileOpen(t *testing.T) {
	producer := mocks.NewSyncProducer(t, producerConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	g := NewGuardedPublisher(NewPublisherWithProducer(producer), breaker.New("kafka-test", 1, time.Minute))
	assert.ErrorIs(t, g.PublishOrderDispatched(context.Background(), sampleOrder(), nil), sarama.ErrOutOfBrokers)
	assert.ErrorIs(t, g.PublishOrderDispatched(context.Background(), sampleOrder(), nil), breaker.ErrOpen)
	require.NoError(t, g.Close())
}

func producerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	return config
}
