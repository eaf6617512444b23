// Package bootstrap runs a session and tears down its devices when it ends.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
)

type hook struct {
	name string
	fn   func(ctx context.Context) error
}

// App runs one session and releases its resources on every exit path.
type App struct {
	mu    sync.Mutex
	hooks []hook
	done  bool
}

func New() *App {
	return &App{}
}

// AddShutdownHook registers a release function. Hooks run in reverse order
// of registration, once.
func (a *App) AddShutdownHook(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, hook{name: name, fn: fn})
}

// Run executes run until it returns or the process is interrupted, then
// calls the shutdown hooks. Errors from run and from hooks are joined.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Default().Debug("shutting down", "cause", context.Cause(ctx))
	case runErr = <-errCh:
	}
	return errors.Join(runErr, a.Shutdown(context.WithoutCancel(ctx)))
}

// Shutdown calls every hook that has not run yet.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done {
		return nil
	}
	a.done = true

	var errs []error
	for i := len(a.hooks) - 1; i >= 0; i-- {
		if err := a.hooks[i].fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s > %w", a.hooks[i].name, err))
		}
	}
	return errors.Join(errs...)
}
