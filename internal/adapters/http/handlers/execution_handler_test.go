package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/process-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/process-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/domain/process"
	"github.com/jsamuelsen11/process-service/mocks"
)

func TestGetExecution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		exec       *process.Execution
		err        error
		wantStatus int
	}{
		{name: "found", exec: sampleExecution(process.StatusStarted), wantStatus: http.StatusOK},
		{name: "not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockExecutionService(t)
			svc.EXPECT().GetExecution(mock.Anything, int64(100)).Return(tt.exec, tt.err)
			h := handlers.NewExecutionHandler(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/executions/100", nil)
			req = withChiParams(req, map[string]string{"id": "100"})
			h.GetExecution(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestDeleteExecution_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockExecutionService(t)
	svc.EXPECT().DeleteExecution(mock.Anything, int64(100)).Return(nil)
	h := handlers.NewExecutionHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/executions/100", nil)
	req = withChiParams(req, map[string]string{"id": "100"})
	h.DeleteExecution(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestStartExecution_BodyOptional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     io.Reader
		wantUser domain.Optional[int64]
	}{
		{name: "no body", body: http.NoBody, wantUser: domain.None[int64]()},
		{name: "empty object", body: strings.NewReader(`{}`), wantUser: domain.None[int64]()},
		{name: "new user", body: strings.NewReader(`{"user_id":8}`), wantUser: domain.Some[int64](8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockExecutionService(t)
			svc.EXPECT().StartExecution(mock.Anything, int64(100), tt.wantUser).
				Return(sampleExecution(process.StatusStarted), nil)
			h := handlers.NewExecutionHandler(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/executions/100/start", tt.body)
			req = withChiParams(req, map[string]string{"id": "100"})
			h.StartExecution(rec, req)

			requireStatus(t, rec, http.StatusOK)
		})
	}
}

func TestStartExecution_InvalidUser(t *testing.T) {
	t.Parallel()

	h := handlers.NewExecutionHandler(mocks.NewMockExecutionService(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/executions/100/start", strings.NewReader(`{"user_id":-1}`))
	req = withChiParams(req, map[string]string{"id": "100"})
	h.StartExecution(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCompleteExecution(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockExecutionService(t)
	svc.EXPECT().CompleteExecution(mock.Anything, int64(100), domain.Some("approved")).
		Return(sampleExecution(process.StatusCompleted), nil)
	h := handlers.NewExecutionHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/executions/100/complete",
		strings.NewReader(`{"remarks":"approved"}`))
	req = withChiParams(req, map[string]string{"id": "100"})
	h.CompleteExecution(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.ExecutionResponse](t, rec)
	if resp.Status != "concluido" {
		t.Errorf("status = %q, want %q", resp.Status, "concluido")
	}
}

func TestCancelExecution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       io.Reader
		err        error
		wantStatus int
	}{
		{name: "without remarks", body: http.NoBody, wantStatus: http.StatusOK},
		{name: "not found", body: http.NoBody, err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var exec *process.Execution
			if tt.err == nil {
				exec = sampleExecution(process.StatusCancelled)
			}

			svc := mocks.NewMockExecutionService(t)
			svc.EXPECT().CancelExecution(mock.Anything, int64(100), domain.None[string]()).Return(exec, tt.err)
			h := handlers.NewExecutionHandler(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/executions/100/cancel", tt.body)
			req = withChiParams(req, map[string]string{"id": "100"})
			h.CancelExecution(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestCancelExecution_MalformedBody(t *testing.T) {
	t.Parallel()

	h := handlers.NewExecutionHandler(mocks.NewMockExecutionService(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/executions/100/cancel", strings.NewReader(`{"remarks":`))
	req = withChiParams(req, map[string]string{"id": "100"})
	h.CancelExecution(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}
