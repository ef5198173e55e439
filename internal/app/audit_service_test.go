package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/domain/audit"
	"github.com/jsamuelsen11/process-service/internal/ports"
	"github.com/jsamuelsen11/process-service/mocks"
)

func TestAuditService_ListEntries(t *testing.T) {
	t.Parallel()

	t.Run("passes filter through", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockAuditLogRepository(t)
		svc := NewAuditService(repo, discardLogger())

		filter := ports.AuditFilter{Entity: audit.EntityProcess, EntityID: 1}
		entry, _ := audit.NewEntry(testClock(), audit.EntityProcess, 1, audit.ActionCreated, nil, "")
		repo.EXPECT().List(mock.Anything, filter).Return([]*audit.Entry{entry}, nil)

		got, err := svc.ListEntries(context.Background(), filter)
		if err != nil {
			t.Fatalf("ListEntries() error = %v", err)
		}
		if len(got) != 1 || got[0].Action() != audit.ActionCreated {
			t.Errorf("ListEntries() = %v, want one created entry", got)
		}
	})

	t.Run("wraps repository error", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockAuditLogRepository(t)
		svc := NewAuditService(repo, nil)

		repo.EXPECT().List(mock.Anything, ports.AuditFilter{}).Return(nil, domain.ErrUnavailable)

		_, err := svc.ListEntries(context.Background(), ports.AuditFilter{})
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("ListEntries() error = %v, want ErrUnavailable", err)
		}
	})
}
