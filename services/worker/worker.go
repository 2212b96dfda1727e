package worker

import (
	"context"
	"time"

	"sjsage522/prodlink/logger"
	"sjsage522/prodlink/services/publisher"
)

// Worker periodically trims the product streams so they stay bounded
type Worker struct {
	ctx          context.Context
	publisher    publisher.Publisher
	trimInterval time.Duration
	log          *logger.Logger
}

// NewWorker creates a new worker
func NewWorker(
	ctx context.Context,
	pub publisher.Publisher,
	trimInterval time.Duration,
) *Worker {
	return &Worker{
		ctx:          ctx,
		publisher:    pub,
		trimInterval: trimInterval,
		log:          logger.ForWorker(),
	}
}

// Start runs the trimming loop until the worker context is cancelled
func (w *Worker) Start() error {
	ticker := time.NewTicker(w.trimInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.log.Info().Msg("Stopping stream trimming")
			return nil
		case <-ticker.C:
			w.trimStreams()
		}
	}
}

// trimStreams trims the streams once and logs how long it took
func (w *Worker) trimStreams() {
	start := time.Now()
	if err := w.publisher.TrimStreams(); err != nil {
		w.log.Error().Err(err).Msg("Failed to trim streams")
		return
	}
	w.log.Debug().Dur("elapsed", time.Since(start)).Msg("Trimmed streams")
}
