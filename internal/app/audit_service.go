package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/process-service/internal/domain/audit"
	"github.com/jsamuelsen11/process-service/internal/ports"
)

// Compile-time check that AuditService implements ports.AuditService.
var _ ports.AuditService = (*AuditService)(nil)

// AuditService implements ports.AuditService as a read-only view of the
// audit log.
type AuditService struct {
	repo   ports.AuditLogRepository
	logger *slog.Logger
}

// NewAuditService creates an AuditService. A nil logger discards output.
func NewAuditService(repo ports.AuditLogRepository, logger *slog.Logger) *AuditService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuditService{repo: repo, logger: logger}
}

// ListEntries returns entries matching filter, oldest first.
func (s *AuditService) ListEntries(ctx context.Context, filter ports.AuditFilter) ([]*audit.Entry, error) {
	s.logger.InfoContext(ctx, "listing audit entries",
		slog.String("entity", filter.Entity),
		slog.Int64("entity_id", filter.EntityID),
	)

	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list audit entries",
			slog.String("operation", "ListEntries"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing audit entries: %w", err)
	}

	return entries, nil
}
