package app

import (
	"context"
	"fmt"
	"log/slog"

	appctx "github.com/jsamuelsen11/process-service/internal/app/context"
	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/domain/audit"
	"github.com/jsamuelsen11/process-service/internal/domain/org"
	"github.com/jsamuelsen11/process-service/internal/ports"
)

// Compile-time check that RoleService implements ports.RoleService.
var _ ports.RoleService = (*RoleService)(nil)

// RoleService implements ports.RoleService.
type RoleService struct {
	repos  Repositories
	clock  domain.Clock
	logger *slog.Logger
}

// NewRoleService creates a RoleService. A nil clock falls back to
// domain.SystemClock and a nil logger discards output.
func NewRoleService(repos Repositories, clock domain.Clock, logger *slog.Logger) *RoleService {
	if clock == nil {
		clock = domain.SystemClock
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RoleService{repos: repos, clock: clock, logger: logger}
}

func (s *RoleService) ListRoles(ctx context.Context) ([]*org.Role, error) {
	s.logger.InfoContext(ctx, "listing roles")

	roles, err := s.repos.Roles.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list roles",
			slog.String("operation", "ListRoles"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	return roles, nil
}

func (s *RoleService) GetRole(ctx context.Context, id int64) (*org.Role, error) {
	s.logger.InfoContext(ctx, "fetching role", slog.Int64("id", id))

	role, err := appctx.GetOrFetch(ctx, unitOfWork(ctx), roleKey(id), func(ctx context.Context) (*org.Role, error) {
		return s.repos.Roles.Get(ctx, id)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch role",
			slog.String("operation", "GetRole"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading role %d: %w", id, err)
	}
	return role, nil
}

// CreateRole validates and persists a role together with its audit entry.
func (s *RoleService) CreateRole(ctx context.Context, in ports.CreateRoleInput) (*org.Role, error) {
	s.logger.InfoContext(ctx, "creating role", slog.String("name", in.Name))

	role, err := org.NewRole(s.clock, in.Name, in.Description)
	if err != nil {
		s.logger.WarnContext(ctx, "role rejected",
			slog.String("operation", "CreateRole"),
			slog.Any("error", err),
		)
		return nil, err
	}

	err = commitActions(ctx, unitOfWork(ctx),
		&saveRole{repo: s.repos.Roles, role: role},
		&appendAudit{
			repo:     s.repos.Audit,
			clock:    s.clock,
			entity:   audit.EntityRole,
			entityID: role.ID,
			action:   audit.ActionCreated,
			actorID:  in.CreatedBy,
			detail:   role.Name(),
		},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create role",
			slog.String("operation", "CreateRole"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return role, nil
}
