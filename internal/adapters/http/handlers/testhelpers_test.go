package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/process-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/process-service/internal/domain/process"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func fixedClock() time.Time { return testTime }

func int64Ptr(v int64) *int64 { return &v }

// withChiParams attaches chi URL params so handlers can be called without
// a router.
func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// sampleProcess returns a persisted process with two steps.
func sampleProcess() *process.Process {
	return process.Restore(process.State{
		ID:           1,
		Name:         "Payroll",
		DepartmentID: int64Ptr(2),
		CreatedAt:    testTime,
		Steps: []process.StepState{
			{ID: 10, Seq: 1, ProcessID: 1, Name: "Collect", Order: 1, CreatedAt: testTime},
			{ID: 11, Seq: 2, ProcessID: 1, Name: "Approve", Order: 2, CreatedAt: testTime},
		},
	}, fixedClock)
}

func sampleExecution(status process.Status) *process.Execution {
	started := testTime
	return process.RestoreExecution(process.ExecutionState{
		ID:        100,
		ProcessID: 1,
		StepID:    10,
		UserID:    int64Ptr(5),
		Status:    status,
		StartedAt: &started,
		CreatedAt: testTime,
	}, fixedClock)
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

// decodeJSON decodes the recorded body as T, failing the test on bad JSON.
func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out), "body = %s", rec.Body.String())
	return out
}

// requireStatus stops the test on an unexpected status so later decoding
// does not run against the wrong body shape.
func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body = %s", rec.Body.String())
}

// decodeProblem checks the problem+json content type and decodes the body.
func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	return decodeJSON[dto.ErrorResponse](t, rec)
}
