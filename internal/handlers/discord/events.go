package discord

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// dispatcher fans platform events out to the modules from a single goroutine
type dispatcher struct {
	events   chan any
	handlers []EventHandler
	logger   *zap.Logger
}

func newDispatcher(handlers []EventHandler, buffer int, logger *zap.Logger) *dispatcher {
	return &dispatcher{
		events:   make(chan any, buffer),
		handlers: handlers,
		logger:   logger,
	}
}

// push queues an event; it is dropped when the queue is full
func (d *dispatcher) push(event any) {
	select {
	case d.events <- event:
	default:
		d.logger.Warn("event queue full, dropping event", zap.String("event", fmt.Sprintf("%T", event)))
	}
}

func (d *dispatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-d.events:
			d.dispatch(ctx, event)
		}
	}
}

func (d *dispatcher) dispatch(ctx context.Context, event any) {
	for _, h := range d.handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					d.logger.Error("event handler panicked",
						zap.String("event", fmt.Sprintf("%T", event)),
						zap.Any("panic", r),
					)
				}
			}()
			h.HandleEvent(ctx, event)
		}()
	}
}
