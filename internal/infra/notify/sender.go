// Package notify implements the notification sender as a RabbitMQ publisher:
// messages are email jobs consumed by an out-of-process worker. Delivery is
// fire-and-forget from the booking flow's point of view.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tipi-reserve/internal/pkg/errs"
	"tipi-reserve/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const emailQueue = "notifications.email"

type emailJob struct {
	Template string            `json:"template"`
	To       string            `json:"to"`
	Params   map[string]string `json:"params"`
	SentAt   time.Time         `json:"sent_at"`
}

type AMQPSender struct {
	url string
}

func NewAMQPSender(url string) *AMQPSender {
	return &AMQPSender{url: url}
}

// Send publishes one persistent message per job. A connection per publish is
// deliberate: notification volume is a handful of messages per booking and a
// broken cached channel must never stall a reservation.
func (s *AMQPSender) Send(ctx context.Context, template, to string, params map[string]string) error {
	conn, err := amqp.Dial(s.url)
	if err != nil {
		return errs.Wrap(err, "amqp dial failed")
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "amqp channel open failed")
	}
	defer func() { _ = ch.Close() }()

	// Durable so jobs survive broker restarts.
	if _, err := ch.QueueDeclare(emailQueue, true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "amqp queue declare failed")
	}

	body, err := json.Marshal(emailJob{
		Template: template,
		To:       to,
		Params:   params,
		SentAt:   time.Now().UTC(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal email job")
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", emailQueue, false, false, pub); err != nil {
		return errs.Wrap(err, "amqp publish failed")
	}
	return nil
}

// LogSender stands in when no broker is configured: jobs are logged and
// dropped, keeping the booking flow identical across environments.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(_ context.Context, template, to string, params map[string]string) error {
	slog.Info("notification (log only)", "template", template, "to", to, "params", params)
	return nil
}

var (
	_ shared.NotificationSender = (*AMQPSender)(nil)
	_ shared.NotificationSender = (*LogSender)(nil)
)
