// Package shutdown coordinates an orderly stop of flatbench: a signal or an
// explicit call cancels the run context and then runs the registered hooks.
package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler owns a cancellable context and the hooks to run when it is cancelled.
type Handler struct {
	mut    sync.Mutex
	hooks  []func()
	cancel context.CancelFunc
	once   sync.Once
}

// New returns a Handler and the context it cancels on shutdown.
func New(parent context.Context) (*Handler, context.Context) {
	ctx, cancel := context.WithCancel(parent)

	return &Handler{cancel: cancel}, ctx
}

// BeforeShutdown registers h to run on shutdown, after the context has been
// cancelled. Hooks run in registration order.
func (s *Handler) BeforeShutdown(h func()) {
	s.mut.Lock()
	defer s.mut.Unlock()

	s.hooks = append(s.hooks, h)
}

// Shutdown cancels the context and runs the hooks. Only the first call does anything.
func (s *Handler) Shutdown() {
	s.once.Do(func() {
		s.cancel()

		s.mut.Lock()
		hooks := s.hooks
		s.hooks = nil
		s.mut.Unlock()

		for _, h := range hooks {
			h()
		}
	})
}

// Listen shuts down on SIGINT or SIGTERM until stop is called.
func (s *Handler) Listen() (stop func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})

	go func() {
		select {
		case sig := <-signals:
			slog.Warn("Received " + sig.String() + ", shutting down...")
			s.Shutdown()
		case <-done:
		}
	}()

	var stopOnce sync.Once

	return func() {
		stopOnce.Do(func() {
			signal.Stop(signals)
			close(done)
		})
	}
}
