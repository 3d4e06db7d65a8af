// Package worker запускает фоновых потребителей stream:forest:events.
//
// Воркер встраивает BaseWorker и реализует Start; WorkerManager поднимает
// всех зарегистрированных и останавливает их по сигналу процесса.
package worker

import "context"

type Worker interface {
	// Start блокируется, пока воркер не остановлен или не отменён ctx
	Start(ctx context.Context) error
	Stop() error
	Name() string
}
