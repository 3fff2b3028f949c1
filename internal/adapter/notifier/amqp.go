// Package notifier publishes buyer notifications to the platform's
// message broker. Delivery is best effort: the messaging service owns
// retries and rendering, and callers never fail on a publish error.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/openpass/ticketing/internal/core/domain"
)

const (
	routingKeyTicketsIssued = "notification.ticket.issued"
	routingKeyOrderPaid     = "notification.order.paid"
)

type AMQPNotifier struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &AMQPNotifier{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

type ticketsIssuedMessage struct {
	BuyerID uuid.UUID `json:"buyer_id"`
	EventID uuid.UUID `json:"event_id"`
	Count   int       `json:"count"`
	Text    string    `json:"text"`
}

func (n *AMQPNotifier) TicketsIssued(ctx context.Context, buyerID, eventID uuid.UUID, count int) error {
	return n.publish(ctx, routingKeyTicketsIssued, ticketsIssuedMessage{
		BuyerID: buyerID,
		EventID: eventID,
		Count:   count,
		Text:    fmt.Sprintf("Your %d ticket(s) are ready. Open your tickets to show them at the gate.", count),
	})
}

type orderPaidMessage struct {
	BuyerID    uuid.UUID `json:"buyer_id"`
	OrderID    uuid.UUID `json:"order_id"`
	EventID    uuid.UUID `json:"event_id"`
	Quantity   int       `json:"quantity"`
	TotalCents int64     `json:"total_cents"`
	Currency   string    `json:"currency"`
	Text       string    `json:"text"`
}

func (n *AMQPNotifier) OrderPaid(ctx context.Context, order *domain.Order) error {
	return n.publish(ctx, routingKeyOrderPaid, orderPaidMessage{
		BuyerID:    order.BuyerID,
		OrderID:    order.ID,
		EventID:    order.EventID,
		Quantity:   order.Quantity,
		TotalCents: order.TotalCents,
		Currency:   order.Currency,
		Text:       fmt.Sprintf("Payment confirmed. Your %d ticket(s) have been issued.", order.Quantity),
	})
}

func (n *AMQPNotifier) publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return n.channel.PublishWithContext(ctx, n.exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        body,
	})
}

func (n *AMQPNotifier) Close() error {
	if err := n.channel.Close(); err != nil {
		n.conn.Close()
		return err
	}

	return n.conn.Close()
}
