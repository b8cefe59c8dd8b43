package queue

import (
	"fmt"

	"github.com/phambaophuc/pdf-watermarking/internal/services/processor"
	"github.com/phambaophuc/pdf-watermarking/internal/services/storage"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

const watermarkQueue = "pdf_watermarking"

// QueueService owns the broker connection and runs the background
// watermarking pipeline: published jobs are consumed by workers, stamped
// and uploaded, with their state mirrored into the job store.
type QueueService struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	logger    *zap.Logger
	queueName string
	processor *processor.DocumentProcessor
	storage   *storage.StorageService
}

func NewQueueService(
	rabbitmqURL string,
	processor *processor.DocumentProcessor,
	storage *storage.StorageService,
	logger *zap.Logger,
) (*QueueService, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Declare queue
	_, err = channel.QueueDeclare(
		watermarkQueue, // name
		true,           // durable
		false,          // delete when unused
		false,          // exclusive
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		conn.Close()
		channel.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	// One document per worker at a time, stamping is memory heavy
	if err := channel.Qos(1, 0, false); err != nil {
		conn.Close()
		channel.Close()
		return nil, fmt.Errorf("failed to set channel QoS: %w", err)
	}

	return &QueueService{
		conn:      conn,
		channel:   channel,
		logger:    logger,
		queueName: watermarkQueue,
		processor: processor,
		storage:   storage,
	}, nil
}

// Close closes the queue connection
func (q *QueueService) Close() error {
	if q.channel != nil {
		q.channel.Close()
	}
	if q.conn != nil {
		q.conn.Close()
	}
	return nil
}
