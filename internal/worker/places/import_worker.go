package places

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/domain/repository"
	"github.com/directory-platform/internal/usecase"
	"github.com/directory-platform/internal/worker"
	"go.uber.org/zap"
)

const (
	emptyQueueSleep = 100 * time.Millisecond
	errorSleep      = time.Second
)

// ImportWorker consumes places import jobs from stream:places:import,
// runs them through the import use case and publishes the outcome to
// stream:places:done.
type ImportWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	importUC     *usecase.ImportUseCase
	consumerName string
	batchSize    int
}

func NewImportWorker(
	streamRepo repository.StreamRepository,
	importUC *usecase.ImportUseCase,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *ImportWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &ImportWorker{
		BaseWorker:   worker.NewBaseWorker("places-import", consumerGroup, logger),
		streamRepo:   streamRepo,
		importUC:     importUC,
		consumerName: consumerName,
		batchSize:    batchSize,
	}
}

// Start runs the consume loop until Stop or context cancellation.
func (w *ImportWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ImportWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPlacesImport, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(errorSleep)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch reads and handles one batch of messages.
// Returns the number of messages consumed from the stream.
func (w *ImportWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamPlacesImport,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		job, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK the broken message so it does not block the group.
			_ = w.streamRepo.AckMessage(ctx, domain.StreamPlacesImport, w.ConsumerGroup(), msg.ID)
			continue
		}

		w.handleJob(ctx, msg.ID, job)
	}

	return len(messages), nil
}

// handleJob runs one job, publishes its result and acks the message.
// Failed jobs are still acked; the failure is reported on the done stream.
func (w *ImportWorker) handleJob(ctx context.Context, messageID string, job *domain.PlacesImportJob) {
	logger := w.Logger()

	result, err := w.importUC.ProcessJob(ctx, job)
	if err != nil {
		logger.Error("Import job failed",
			zap.String("job_id", job.JobID.String()),
			zap.String("query", job.Query()),
			zap.Error(err))
		result = &domain.PlacesImportResult{
			JobID:  job.JobID,
			SiteID: job.SiteID,
			Error:  err.Error(),
		}
	}

	if err := w.importUC.PublishResult(ctx, result); err != nil {
		logger.Error("Failed to publish result",
			zap.String("job_id", job.JobID.String()),
			zap.Error(err))
	}

	if err := w.streamRepo.AckMessage(ctx, domain.StreamPlacesImport, w.ConsumerGroup(), messageID); err != nil {
		logger.Error("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}

func (w *ImportWorker) parseMessage(msg domain.StreamMessage) (*domain.PlacesImportJob, error) {
	var job domain.PlacesImportJob
	if err := json.Unmarshal([]byte(msg.Data), &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	return &job, nil
}
