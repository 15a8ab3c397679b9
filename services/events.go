package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"train-booking/models"
)

const (
	bookingCreatedKey   = "booking.created"
	bookingCancelledKey = "booking.cancelled"
)

// EventPublisher announces booking lifecycle events
type EventPublisher interface {
	BookingCreated(ctx context.Context, booking *models.Booking) error
	BookingCancelled(ctx context.Context, booking *models.Booking) error
	Close() error
}

// NoopPublisher is used when no broker is configured
type NoopPublisher struct{}

func (NoopPublisher) BookingCreated(context.Context, *models.Booking) error { return nil }
func (NoopPublisher) BookingCancelled(context.Context, *models.Booking) error { return nil }
func (NoopPublisher) Close() error { return nil }

// AMQPPublisher publishes booking events to a topic exchange
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewAMQPPublisher dials the broker and declares the exchange
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat: 60 * time.Second,
		Locale:    "en_US",
	})
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := channel.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &AMQPPublisher{conn: conn, channel: channel, exchange: exchange}, nil
}

type bookingEvent struct {
	BookingID   string    `json:"bookingId"`
	UserID      string    `json:"userId"`
	TrainNumber string    `json:"trainNumber"`
	TravelClass string    `json:"travelClass"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	Passengers  int       `json:"passengers"`
	Total       int       `json:"total"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newBookingEvent(booking *models.Booking) bookingEvent {
	return bookingEvent{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		TrainNumber: booking.TrainDetails.TrainNumber,
		TravelClass: booking.TrainDetails.TravelClass,
		Date:        booking.TrainDetails.Date,
		Status:      booking.Status,
		Passengers:  len(booking.Passengers),
		Total:       booking.PaymentSummary.Total,
		Email:       booking.ContactInfo.Email,
		CreatedAt:   booking.CreatedAt,
	}
}

func (p *AMQPPublisher) BookingCreated(ctx context.Context, booking *models.Booking) error {
	return p.publish(ctx, bookingCreatedKey, booking)
}

func (p *AMQPPublisher) BookingCancelled(ctx context.Context, booking *models.Booking) error {
	return p.publish(ctx, bookingCancelledKey, booking)
}

func (p *AMQPPublisher) publish(ctx context.Context, routingKey string, booking *models.Booking) error {
	body, err := json.Marshal(newBookingEvent(booking))
	if err != nil {
		return err
	}
	return p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    booking.ID,
		Timestamp:    booking.CreatedAt,
		Body:         body,
	})
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
