package ports

import "context"

// HealthChecker is a dependency the readiness check asks about, such as the
// SQL store.
type HealthChecker interface {
	// Name keys the checker in the readiness response.
	Name() string

	// HealthCheck returns nil when the dependency can serve requests. It
	// must return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs every registered checker for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
