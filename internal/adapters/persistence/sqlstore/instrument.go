package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/platform/telemetry"
)

const (
	tableProcesses = "processes"
	tableExec      = "executions"
	tableAudit     = "audit_log"
	tableRoles     = "roles"
)

// observe runs fn through the breaker inside a client span and records the
// store metrics. A not-found outcome is reported as a result, not as a span
// error.
func (s *Store) observe(ctx context.Context, table, operation string, fn func(context.Context) error) error {
	start := time.Now()

	ctx, span := s.startSpan(ctx, table, operation)
	defer span.End()

	err := s.guard(ctx, fn)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	s.recordMetrics(ctx, table, operation, start, err)
	return err
}

// guard runs fn through the breaker when one is configured. A rejected call
// never reaches the database and reports domain.ErrUnavailable.
func (s *Store) guard(ctx context.Context, fn func(context.Context) error) error {
	if s.breaker == nil {
		return fn(ctx)
	}

	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	if isBreakerRejection(err) {
		return fmt.Errorf("%w: database circuit breaker: %w", domain.ErrUnavailable, err)
	}
	return err
}

func isBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// isInfrastructureError reports whether err says the database misbehaved,
// as opposed to answering a question the caller did not like.
func isInfrastructureError(err error) bool {
	switch {
	case err == nil,
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, context.Canceled):
		return false
	default:
		return true
	}
}

// toUint32 clamps v into uint32, treating negatives as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

func (s *Store) startSpan(ctx context.Context, table, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("sqlstore")

	return tracer.Start(ctx, fmt.Sprintf("%s %s", operation, table),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", string(s.dialect)),
			telemetry.AttrDBOperation.String(operation),
			telemetry.AttrDBTable.String(table),
		),
	)
}

// recordMetrics is a no-op when the store was built without metrics.
func (s *Store) recordMetrics(ctx context.Context, table, operation string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case isBreakerRejection(err):
		result = "circuit_open"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBOperation.String(operation),
		telemetry.AttrDBTable.String(table),
		telemetry.AttrResult.String(result),
	)

	s.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}
