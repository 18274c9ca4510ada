package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aayushkhanal47/jobboard-be/internal/worker/domain"
)

// spawnWorkerPool spawns N worker goroutines based on concurrency configuration
func (w *Worker) spawnWorkerPool(ctx context.Context) {
	w.logger.Info("Spawning worker pool",
		slog.Int("concurrency", w.concurrency),
		slog.String("worker_id", w.workerID),
	)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.workerLoop(ctx, i)
	}
}

// workerLoop is the main processing loop for each worker goroutine
func (w *Worker) workerLoop(ctx context.Context, workerNum int) {
	defer w.wg.Done()

	workerName := fmt.Sprintf("%s-%d", w.workerID, workerNum)
	w.logger.Info("Worker goroutine started",
		slog.String("worker_name", workerName),
	)

	for {
		select {
		case <-w.stopChan:
			w.logger.Info("Worker goroutine stopping - stopChan closed",
				slog.String("worker_name", workerName),
			)
			return

		case <-ctx.Done():
			w.logger.Info("Worker goroutine stopping - context canceled",
				slog.String("worker_name", workerName),
			)
			return

		case msg, ok := <-w.eventsChan:
			if !ok {
				w.logger.Info("Worker goroutine stopping - eventsChan closed",
					slog.String("worker_name", workerName),
				)
				return
			}

			err := w.processEvent(ctx, msg)

			channel := w.rabbitClient.GetChannel()
			if channel == nil {
				w.logger.Error("Failed to get RabbitMQ channel for ACK/NACK",
					slog.String("worker_name", workerName),
					slog.String("application_id", msg.ApplicationID),
				)
				continue
			}

			if err != nil {
				w.logger.Error("Event processing failed",
					slog.String("worker_name", workerName),
					slog.String("event", msg.Event),
					slog.String("application_id", msg.ApplicationID),
					slog.String("error", err.Error()),
				)

				requeue := w.shouldRequeue(err)
				if nackErr := channel.Nack(msg.DeliveryTag, false, requeue); nackErr != nil {
					w.logger.Error("Failed to NACK message",
						slog.String("worker_name", workerName),
						slog.String("error", nackErr.Error()),
					)
				} else {
					w.logger.Info("Message NACKed",
						slog.String("worker_name", workerName),
						slog.String("application_id", msg.ApplicationID),
						slog.Bool("requeue", requeue),
					)
				}
				continue
			}

			if ackErr := channel.Ack(msg.DeliveryTag, false); ackErr != nil {
				w.logger.Error("Failed to ACK message",
					slog.String("worker_name", workerName),
					slog.String("error", ackErr.Error()),
				)
			} else {
				w.logger.Info("Event processed",
					slog.String("worker_name", workerName),
					slog.String("event", msg.Event),
					slog.String("application_id", msg.ApplicationID),
				)
			}
		}
	}
}

// shouldRequeue determines whether a failed event goes back on the queue.
// Only transient errors wrapped in RetryableError are requeued; missing
// applications and unknown event types would fail the same way every time.
func (w *Worker) shouldRequeue(err error) bool {
	if errors.Is(err, domain.ErrApplicationNotFound) {
		return false
	}

	if errors.Is(err, domain.ErrUnknownEvent) {
		return false
	}

	var retryableErr *domain.RetryableError
	return errors.As(err, &retryableErr)
}
