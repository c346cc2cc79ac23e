package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ImageCleanupWorker consumes batches of file paths orphaned by article
// deletes and unlinks them from disk.
type ImageCleanupWorker struct {
	conn      *amqp.Connection
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewImageCleanupWorker(conn *amqp.Connection, queueName string) *ImageCleanupWorker {
	return &ImageCleanupWorker{
		conn:      conn,
		queueName: queueName,
	}
}

func (w *ImageCleanupWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				var paths []string
				if err := json.Unmarshal(d.Body, &paths); err != nil {
					log.Printf("worker decode cleanup job failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				for _, path := range paths {
					if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
						log.Printf("worker remove file %s failed: %v", path, err)
					}
				}

				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *ImageCleanupWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
