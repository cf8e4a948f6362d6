package repository

import (
	"context"

	"github.com/directory-platform/internal/domain"
)

// StreamRepository is the redis-streams job queue contract.
type StreamRepository interface {
	// CreateConsumerGroup creates the consumer group for a stream,
	// creating the stream if needed. Safe to call when the group
	// already exists.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to count pending messages for the consumer
	// without blocking. Returns an empty slice when the queue is empty.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// AckMessage acknowledges one processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// Publish appends a JSON-serialized payload to the stream.
	Publish(ctx context.Context, stream string, data interface{}) error
}
