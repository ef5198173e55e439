package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/process-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/process-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/domain/process"
	"github.com/jsamuelsen11/process-service/internal/ports"
	"github.com/jsamuelsen11/process-service/mocks"
)

func newProcessHandler(t *testing.T) (*handlers.ProcessHandler, *mocks.MockProcessService, *mocks.MockExecutionService) {
	t.Helper()
	svc := mocks.NewMockProcessService(t)
	exec := mocks.NewMockExecutionService(t)
	return handlers.NewProcessHandler(svc, exec), svc, exec
}

// --- ListProcesses ---

func TestListProcesses_Success(t *testing.T) {
	t.Parallel()

	h, svc, _ := newProcessHandler(t)
	svc.EXPECT().ListProcesses(mock.Anything).Return([]*process.Process{sampleProcess()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/processes", nil)
	h.ListProcesses(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.ProcessListResponse](t, rec)
	if resp.Count != 1 {
		t.Fatalf("count = %d, want 1", resp.Count)
	}
	if len(resp.Processes[0].Steps) != 2 {
		t.Errorf("len(steps) = %d, want 2", len(resp.Processes[0].Steps))
	}
}

func TestListProcesses_ServiceError(t *testing.T) {
	t.Parallel()

	h, svc, _ := newProcessHandler(t)
	svc.EXPECT().ListProcesses(mock.Anything).Return(nil, fmt.Errorf("listing: %w", domain.ErrUnavailable))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/processes", nil)
	h.ListProcesses(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- CreateProcess ---

func TestCreateProcess_Success(t *testing.T) {
	t.Parallel()

	h, svc, _ := newProcessHandler(t)
	svc.EXPECT().CreateProcess(mock.Anything, ports.CreateProcessInput{
		Name:         "Payroll",
		DepartmentID: int64Ptr(2),
	}).Return(sampleProcess(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/processes",
		jsonBody(t, map[string]any{"name": "Payroll", "department_id": 2}))
	h.CreateProcess(rec, req)

	requireStatus(t, rec, http.StatusCreated)

	resp := decodeJSON[dto.ProcessResponse](t, rec)
	if resp.ID != 1 || resp.Name != "Payroll" {
		t.Errorf("process = %d %q, want 1 \"Payroll\"", resp.ID, resp.Name)
	}
}

func TestCreateProcess_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setup      func(svc *mocks.MockProcessService)
		wantStatus int
		wantDetail string
	}{
		{
			name:       "invalid JSON",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing name",
			body:       `{"description":"monthly"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "domain rule rejected",
			body: `{"name":"` + strings.Repeat("x", 201) + `"}`,
			setup: func(svc *mocks.MockProcessService) {
				svc.EXPECT().CreateProcess(mock.Anything, mock.Anything).
					Return(nil, domain.Violation("Process name too long (max 200)."))
			},
			wantStatus: http.StatusBadRequest,
			wantDetail: "Process name too long (max 200).",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, svc, _ := newProcessHandler(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/processes", strings.NewReader(tt.body))
			h.CreateProcess(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantDetail != "" {
				resp := decodeProblem(t, rec)
				if resp.Detail != tt.wantDetail {
					t.Errorf("detail = %q, want %q", resp.Detail, tt.wantDetail)
				}
			}
		})
	}
}

// --- GetProcess ---

func TestGetProcess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setup      func(svc *mocks.MockProcessService)
		wantStatus int
	}{
		{
			name: "found",
			id:   "1",
			setup: func(svc *mocks.MockProcessService) {
				svc.EXPECT().GetProcess(mock.Anything, int64(1)).Return(sampleProcess(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "99",
			setup: func(svc *mocks.MockProcessService) {
				svc.EXPECT().GetProcess(mock.Anything, int64(99)).
					Return(nil, fmt.Errorf("getting process 99: %w", domain.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-numeric id",
			id:         "abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero id",
			id:         "0",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, svc, _ := newProcessHandler(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/processes/"+tt.id, nil)
			req = withChiParams(req, map[string]string{"id": tt.id})
			h.GetProcess(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- UpdateProcess ---

func TestUpdateProcess_PassesPartialInput(t *testing.T) {
	t.Parallel()

	h, svc, _ := newProcessHandler(t)
	svc.EXPECT().UpdateProcess(mock.Anything, int64(1), mock.MatchedBy(func(in ports.UpdateProcessInput) bool {
		name, nameSet := in.Name.Get()
		desc, descSet := in.Description.Get()
		return nameSet && name == "Payroll v2" && descSet && desc == nil && !in.DepartmentID.IsSet()
	})).Return(sampleProcess(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/processes/1",
		strings.NewReader(`{"name":"Payroll v2","description":null}`))
	req = withChiParams(req, map[string]string{"id": "1"})
	h.UpdateProcess(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestUpdateProcess_NullNameRejected(t *testing.T) {
	t.Parallel()

	h, _, _ := newProcessHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/processes/1", strings.NewReader(`{"name":null}`))
	req = withChiParams(req, map[string]string{"id": "1"})
	h.UpdateProcess(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- DeleteProcess ---

func TestDeleteProcess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, svc, _ := newProcessHandler(t)
			svc.EXPECT().DeleteProcess(mock.Anything, int64(1)).Return(tt.err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/processes/1", nil)
			req = withChiParams(req, map[string]string{"id": "1"})
			h.DeleteProcess(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- Steps ---

func TestAddStep_Success(t *testing.T) {
	t.Parallel()

	h, svc, _ := newProcessHandler(t)
	step := sampleProcess().Steps()[1]
	svc.EXPECT().AddStep(mock.Anything, int64(1), ports.AddStepInput{
		Name:           "Approve",
		Order:          2,
		AssignedRoleID: int64Ptr(3),
	}).Return(step, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/processes/1/steps",
		jsonBody(t, map[string]any{"name": "Approve", "order": 2, "assigned_role_id": 3}))
	req = withChiParams(req, map[string]string{"id": "1"})
	h.AddStep(rec, req)

	requireStatus(t, rec, http.StatusCreated)

	resp := decodeJSON[dto.StepResponse](t, rec)
	if resp.ID != 11 || resp.Seq != 2 {
		t.Errorf("step = id %d seq %d, want id 11 seq 2", resp.ID, resp.Seq)
	}
}

func TestAddStep_DuplicateOrder(t *testing.T) {
	t.Parallel()

	h, svc, _ := newProcessHandler(t)
	svc.EXPECT().AddStep(mock.Anything, int64(1), mock.Anything).
		Return(nil, domain.Violation("Step order 1 already exists in this process."))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/processes/1/steps",
		strings.NewReader(`{"name":"Collect again","order":1}`))
	req = withChiParams(req, map[string]string{"id": "1"})
	h.AddStep(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)

	resp := decodeProblem(t, rec)
	if !strings.Contains(resp.Detail, "already exists") {
		t.Errorf("detail = %q, want the rule message", resp.Detail)
	}
}

func TestAddStep_MissingOrder(t *testing.T) {
	t.Parallel()

	h, _, _ := newProcessHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/processes/1/steps", strings.NewReader(`{"name":"Collect"}`))
	req = withChiParams(req, map[string]string{"id": "1"})
	h.AddStep(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateStep_Success(t *testing.T) {
	t.Parallel()

	h, svc, _ := newProcessHandler(t)
	step := sampleProcess().Steps()[0]
	svc.EXPECT().UpdateStep(mock.Anything, int64(1), int64(10), mock.MatchedBy(func(in ports.UpdateStepInput) bool {
		name, ok := in.Name.Get()
		return ok && name == "Gather" && !in.Order.IsSet()
	})).Return(step, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/processes/1/steps/10", strings.NewReader(`{"name":"Gather"}`))
	req = withChiParams(req, map[string]string{"id": "1", "stepId": "10"})
	h.UpdateStep(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestUpdateStep_InvalidStepID(t *testing.T) {
	t.Parallel()

	h, _, _ := newProcessHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/processes/1/steps/x", strings.NewReader(`{}`))
	req = withChiParams(req, map[string]string{"id": "1", "stepId": "x"})
	h.UpdateStep(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)

	resp := decodeProblem(t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "path.stepId" {
		t.Errorf("errors = %+v, want one stepId entry", resp.Errors)
	}
}

func TestRemoveStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "removed", wantStatus: http.StatusNoContent},
		{name: "step not found", err: domain.Violation("Step not found."), wantStatus: http.StatusBadRequest},
		{name: "process not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, svc, _ := newProcessHandler(t)
			svc.EXPECT().RemoveStep(mock.Anything, int64(1), int64(2)).Return(tt.err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/processes/1/steps/2", nil)
			req = withChiParams(req, map[string]string{"id": "1", "stepId": "2"})
			h.RemoveStep(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- Executions under a process ---

func TestListExecutions_Success(t *testing.T) {
	t.Parallel()

	h, _, exec := newProcessHandler(t)
	exec.EXPECT().ListExecutions(mock.Anything, int64(1)).
		Return([]*process.Execution{sampleExecution(process.StatusStarted)}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/processes/1/executions", nil)
	req = withChiParams(req, map[string]string{"id": "1"})
	h.ListExecutions(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.ExecutionListResponse](t, rec)
	if resp.Count != 1 || resp.Executions[0].Status != "iniciado" {
		t.Errorf("executions = %+v, want one started execution", resp.Executions)
	}
}

func TestStartProcessExecution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setup      func(svc *mocks.MockProcessService)
		wantStatus int
	}{
		{
			name: "started",
			body: `{"step_id":10,"user_id":5}`,
			setup: func(svc *mocks.MockProcessService) {
				svc.EXPECT().StartExecution(mock.Anything, int64(1), ports.StartExecutionInput{
					StepID: 10,
					UserID: int64Ptr(5),
				}).Return(sampleExecution(process.StatusStarted), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing step",
			body:       `{"user_id":5}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "process not found",
			body: `{"step_id":10}`,
			setup: func(svc *mocks.MockProcessService) {
				svc.EXPECT().StartExecution(mock.Anything, int64(1), mock.Anything).
					Return(nil, domain.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, svc, _ := newProcessHandler(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/processes/1/executions", strings.NewReader(tt.body))
			req = withChiParams(req, map[string]string{"id": "1"})
			h.StartExecution(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestCreateProcess_BodyErrorLocations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		body         string
		wantLocation string
		wantMessage  string
	}{
		{
			name:         "empty body",
			body:         "",
			wantLocation: "body",
			wantMessage:  "is required",
		},
		{
			name:         "wrong field type",
			body:         `{"name": 5}`,
			wantLocation: "body.name",
			wantMessage:  "must be a string",
		},
		{
			name:         "malformed",
			body:         `{"name" "Payroll"}`,
			wantLocation: "body",
			wantMessage:  "invalid JSON at offset",
		},
		{
			name:         "too large",
			body:         `{"name":"` + strings.Repeat("x", 1<<20) + `"}`,
			wantLocation: "body",
			wantMessage:  "must not exceed 1048576 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _, _ := newProcessHandler(t)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/processes", strings.NewReader(tt.body))
			h.CreateProcess(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
			resp := decodeProblem(t, rec)
			if len(resp.Errors) != 1 {
				t.Fatalf("errors = %+v, want one entry", resp.Errors)
			}
			got := resp.Errors[0]
			if got.Location != tt.wantLocation || !strings.HasPrefix(got.Message, tt.wantMessage) {
				t.Errorf("error = %+v, want %s %q", got, tt.wantLocation, tt.wantMessage)
			}
		})
	}
}
