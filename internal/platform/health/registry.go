// Package health runs the readiness checks of the process service.
package health

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/jsamuelsen11/process-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

const defaultConcurrency = 4

// Option configures a Registry.
type Option func(*Registry)

// WithConcurrency bounds how many checks run at once. Values below one are
// ignored.
func WithConcurrency(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.concurrency = int64(n)
		}
	}
}

// Registry holds one checker per name. It is safe for concurrent use.
type Registry struct {
	concurrency int64

	mu       sync.RWMutex
	order    []string
	checkers map[string]ports.HealthChecker
}

func New(opts ...Option) *Registry {
	r := &Registry{
		concurrency: defaultConcurrency,
		checkers:    make(map[string]ports.HealthChecker),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker. A checker registered under a name already taken
// replaces the earlier one.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.checkers[name]; !ok {
		r.order = append(r.order, name)
	}
	r.checkers[name] = checker
}

// Names lists the registered checkers in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// CheckAll runs every checker and keys the outcome by name; nil means
// healthy. A check that cannot get a slot before ctx is done reports
// ctx.Err() and is never called.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	names := slices.Clone(r.order)
	checkers := make([]ports.HealthChecker, len(names))
	for i, name := range names {
		checkers[i] = r.checkers[name]
	}
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	slots := semaphore.NewWeighted(r.concurrency)

	// The group only joins the checks; a failing one must not cancel the rest.
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			if err := slots.Acquire(ctx, 1); err != nil {
				errs[i] = err
				return nil
			}
			defer slots.Release(1)
			errs[i] = c.HealthCheck(ctx)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(names))
	for i, name := range names {
		results[name] = errs[i]
	}
	return results
}
