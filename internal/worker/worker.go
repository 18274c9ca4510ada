package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aayushkhanal47/jobboard-be/internal/worker/domain"
	"github.com/aayushkhanal47/jobboard-be/internal/worker/storage"
	"github.com/aayushkhanal47/jobboard-be/shared/postgresql"
	"github.com/aayushkhanal47/jobboard-be/shared/rabbitmq"
)

// Config holds worker configuration
type Config struct {
	Logger        *slog.Logger
	DBClient      *postgresql.Client
	RabbitClient  *rabbitmq.Client
	Concurrency   int
	PrefetchCount int
	JobTimeout    time.Duration
	QueueName     string
}

// Worker consumes application lifecycle events and writes notification
// outbox rows
type Worker struct {
	logger        *slog.Logger
	dbClient      *postgresql.Client
	rabbitClient  *rabbitmq.Client
	storage       *storage.Storage
	eventsChan    chan *domain.EventMessage
	concurrency   int
	prefetchCount int
	jobTimeout    time.Duration
	queueName     string
	workerID      string
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

// NewWorker creates a new worker instance
func NewWorker(cfg *Config) *Worker {
	return &Worker{
		logger:        cfg.Logger,
		dbClient:      cfg.DBClient,
		rabbitClient:  cfg.RabbitClient,
		storage:       storage.NewStorage(cfg.DBClient.GetDB(), cfg.Logger),
		eventsChan:    make(chan *domain.EventMessage),
		concurrency:   cfg.Concurrency,
		prefetchCount: cfg.PrefetchCount,
		jobTimeout:    cfg.JobTimeout,
		queueName:     cfg.QueueName,
		workerID:      fmt.Sprintf("worker-%s", uuid.New().String()[:8]),
		stopChan:      make(chan struct{}),
	}
}

// Start begins consuming events. Blocks until the context is canceled or the
// delivery channel closes.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting worker",
		slog.String("worker_id", w.workerID),
		slog.Int("concurrency", w.concurrency),
		slog.Duration("job_timeout", w.jobTimeout),
	)

	deliveries, err := w.setupConsumer(ctx)
	if err != nil {
		return fmt.Errorf("failed to set up consumer: %w", err)
	}

	w.spawnWorkerPool(ctx)

	w.startMessageDispatcher(ctx, deliveries)

	return nil
}

// Stop gracefully stops the worker
func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...",
		slog.String("worker_id", w.workerID),
	)
	close(w.stopChan)
	w.wg.Wait()
	w.logger.Info("Worker stopped",
		slog.String("worker_id", w.workerID),
	)
}
