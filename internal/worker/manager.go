package worker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

const DefaultShutdownTimeout = 30 * time.Second

var ErrNoWorkers = errors.New("no workers registered")

// WorkerManager держит по горутине на воркер. Паника воркера логируется
// и не роняет процесс, остальные продолжают работать.
type WorkerManager struct {
	logger          *zap.Logger
	shutdownTimeout time.Duration

	mu      sync.Mutex
	workers []Worker
	running []runningWorker
}

type runningWorker struct {
	name     string
	finished chan struct{}
}

func NewWorkerManager(logger *zap.Logger, shutdownTimeout time.Duration) *WorkerManager {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	return &WorkerManager{
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}
}

func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Start не блокируется
func (m *WorkerManager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.workers) == 0 {
		return ErrNoWorkers
	}

	m.logger.Info("Starting workers", zap.Int("count", len(m.workers)))

	for _, w := range m.workers {
		finished := make(chan struct{})
		m.running = append(m.running, runningWorker{name: w.Name(), finished: finished})
		go m.run(ctx, w, finished)
	}

	return nil
}

func (m *WorkerManager) run(ctx context.Context, w Worker, finished chan struct{}) {
	defer close(finished)
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Worker panicked",
				zap.String("name", w.Name()),
				zap.Any("panic", r))
		}
	}()

	m.logger.Info("Starting worker", zap.String("name", w.Name()))
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		m.logger.Error("Worker failed",
			zap.String("name", w.Name()),
			zap.Error(err))
	}
}

// Stop сигналит всем воркерам и ждёт их не дольше shutdownTimeout.
// В ошибке перечислены воркеры, не успевшие завершиться.
func (m *WorkerManager) Stop() error {
	m.mu.Lock()
	workers := append([]Worker(nil), m.workers...)
	running := append([]runningWorker(nil), m.running...)
	m.mu.Unlock()

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker",
				zap.String("name", w.Name()),
				zap.Error(err))
		}
	}

	allDone := make(chan struct{})
	go func() {
		for _, r := range running {
			<-r.finished
		}
		close(allDone)
	}()

	select {
	case <-allDone:
		m.logger.Info("All workers stopped gracefully")
		return nil
	case <-time.After(m.shutdownTimeout):
	}

	var stuck []string
	for _, r := range running {
		select {
		case <-r.finished:
		default:
			stuck = append(stuck, r.name)
		}
	}
	sort.Strings(stuck)

	m.logger.Warn("Workers shutdown timed out",
		zap.Duration("timeout", m.shutdownTimeout),
		zap.Strings("workers", stuck))
	return fmt.Errorf("workers shutdown timed out after %v: %v", m.shutdownTimeout, stuck)
}
