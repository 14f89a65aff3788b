package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/LuckySpin_Go/internal/event"
	"github.com/osse101/LuckySpin_Go/internal/scheduler"
	"github.com/osse101/LuckySpin_Go/internal/server"
	"github.com/osse101/LuckySpin_Go/internal/slots"
	"github.com/osse101/LuckySpin_Go/internal/sse"
	"github.com/osse101/LuckySpin_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	SlotsService       slots.Service
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	Hub                *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	Repositories       *Repositories
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Slots service (stop auto-spins, let in-flight spins resolve)
// 3. Scheduler and worker pool
// 4. Event publisher (flush pending events)
// 5. SSE hub and storage
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.SlotsService != nil {
		shutdownService(ctx, ServiceNameSlots, components.SlotsService)
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	// Publisher after the slots service so resolutions from draining spins
	// are still delivered
	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Repositories != nil {
		components.Repositories.Close()
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
