package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"pms_marketplace/internal/adapters/observability"
	"pms_marketplace/internal/domain"
)

// publisher is the slice of *amqp.Channel the broker needs.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Broker publishes notifications as JSON to a topic exchange under
// "notification.<kind>" behind a circuit breaker.
type Broker struct {
	pub      publisher
	exchange string
	cb       *gobreaker.CircuitBreaker
	timeout  time.Duration
	closer   func() error
}

// DialBroker connects, declares the exchange and returns a ready Broker.
func DialBroker(url, exchange string) (*Broker, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	b := newBroker(ch, exchange)
	b.closer = func() error {
		_ = ch.Close()
		return conn.Close()
	}
	return b, nil
}

func newBroker(p publisher, exchange string) *Broker {
	return &Broker{
		pub:      p,
		exchange: exchange,
		cb:       CircuitBreaker("amqp-" + exchange),
		timeout:  2 * time.Second,
	}
}

// CircuitBreaker trips after three consecutive failures and half-opens after 10s.
func CircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures > 2
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
	})
}

func RoutingKey(k domain.NotificationKind) string { return "notification." + string(k) }

func (b *Broker) Notify(ctx context.Context, n domain.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}
	_, err = b.cb.Execute(func() (any, error) {
		ctx, cancel := context.WithTimeout(ctx, b.timeout)
		defer cancel()
		return nil, b.pub.PublishWithContext(ctx, b.exchange, RoutingKey(n.Kind), false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    n.At,
			Body:         body,
		})
	})
	observability.ObserveNotification("amqp", string(n.Kind), err)
	if err != nil {
		return fmt.Errorf("publish %s: %w", RoutingKey(n.Kind), err)
	}
	return nil
}

func (b *Broker) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer()
}
