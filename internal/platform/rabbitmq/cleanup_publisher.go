package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// CleanupPublisher enqueues image file paths left on disk after their
// database rows were removed by a cascade delete.
type CleanupPublisher struct {
	conn      *amqp.Connection
	queueName string
}

func NewCleanupPublisher(conn *amqp.Connection, queueName string) *CleanupPublisher {
	return &CleanupPublisher{
		conn:      conn,
		queueName: queueName,
	}
}

func (p *CleanupPublisher) Publish(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		p.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue failed: %w", err)
	}

	payload, err := json.Marshal(paths)
	if err != nil {
		return fmt.Errorf("marshal cleanup payload failed: %w", err)
	}

	if err := ch.PublishWithContext(
		ctx,
		"",
		p.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         payload,
		},
	); err != nil {
		return fmt.Errorf("publish cleanup job failed: %w", err)
	}
	return nil
}
