package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// BaseWorker хранит имя, consumer group и сигнал остановки.
// Stop можно вызывать из любой горутины и сколько угодно раз.
type BaseWorker struct {
	name  string
	group string
	log   *zap.Logger

	done     chan struct{}
	stopOnce sync.Once
}

func NewBaseWorker(name, consumerGroup string, logger *zap.Logger) *BaseWorker {
	return &BaseWorker{
		name:  name,
		group: consumerGroup,
		log:   logger.With(zap.String("worker", name)),
		done:  make(chan struct{}),
	}
}

func (w *BaseWorker) Name() string          { return w.name }
func (w *BaseWorker) ConsumerGroup() string { return w.group }
func (w *BaseWorker) Logger() *zap.Logger   { return w.log }

func (w *BaseWorker) Stop() error {
	w.stopOnce.Do(func() {
		w.log.Info("Stopping worker")
		close(w.done)
	})
	return nil
}

// Done закрывается при Stop
func (w *BaseWorker) Done() <-chan struct{} {
	return w.done
}

func (w *BaseWorker) IsStopped() bool {
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}

// Context производный от parent, отменяется и при Stop.
// Блокирующее чтение из стрима с таким ctx прерывается сразу после остановки.
func (w *BaseWorker) Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		select {
		case <-w.done:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

// Pause ждёт d; false - если раньше пришёл Stop или отменён ctx
func (w *BaseWorker) Pause(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-w.done:
		return false
	case <-ctx.Done():
		return false
	}
}
