package queue

import "fmt"

// Stats is a point-in-time snapshot of the watermarking queue.
type Stats struct {
	Queue     string `json:"queue"`
	Pending   int    `json:"pending"`
	Consumers int    `json:"consumers"`
}

// GetQueueStats reports how many jobs wait in the queue and how many
// workers consume it.
func (q *QueueService) GetQueueStats() (*Stats, error) {
	queueInfo, err := q.channel.QueueInspect(q.queueName)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect queue: %w", err)
	}

	return &Stats{
		Queue:     queueInfo.Name,
		Pending:   queueInfo.Messages,
		Consumers: queueInfo.Consumers,
	}, nil
}

// HealthCheck checks if RabbitMQ is available
func (q *QueueService) HealthCheck() string {
	if q.conn == nil || q.conn.IsClosed() {
		return "unhealthy: connection closed"
	}

	if q.channel == nil {
		return "unhealthy: channel not available"
	}

	return "healthy"
}
