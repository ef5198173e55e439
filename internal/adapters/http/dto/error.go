package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/process-service/internal/domain"
)

const internalErrorDetail = "the request could not be completed"

// Field locations. A validation key without one of these prefixes names a
// request body field.
const (
	LocationBody  = "body"
	LocationPath  = "path"
	LocationQuery = "query"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail points at one rejected input, e.g. "body.name" or
// "path.stepId".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problemKinds is checked in order; the first sentinel err matches decides
// the status. A *domain.DomainError unwraps to ErrValidation. A missing
// reference is a programming error and is left to the 500 fallback.
var problemKinds = []struct {
	sentinel error
	status   int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// FieldPath qualifies name with a location, e.g. FieldPath(LocationPath,
// "id") is "path.id".
func FieldPath(location, name string) string {
	return location + "." + name
}

// NewErrorResponse builds the problem document for err. Instance is the
// request URI. Errors that map to 500 keep their text out of the body
// since it may carry storage internals.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusFor(err)

	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = internalErrorDetail
	}

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json. 500s are
// logged with the full error chain.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	if resp.Status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			slog.String("instance", resp.Instance),
			slog.Any("error", err),
		)
	}
	writeProblem(w, r, resp)
}

// WriteProblem writes a problem document for a failure that happens before
// any handler runs, such as an unknown route.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	})
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "encoding problem response",
			slog.Any("error", err),
		)
	}
}

func statusFor(err error) int {
	for _, kind := range problemKinds {
		if errors.Is(err, kind.sentinel) {
			return kind.status
		}
	}
	return http.StatusInternalServerError
}

// fieldDetails turns validation fields into details sorted by location.
// The bare key "body" refers to the whole request body.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for key, msg := range fields {
		details = append(details, ErrorDetail{Location: qualify(key), Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}

func qualify(key string) string {
	if key == LocationBody {
		return key
	}
	for _, loc := range []string{LocationBody, LocationPath, LocationQuery} {
		if strings.HasPrefix(key, loc+".") {
			return key
		}
	}
	return FieldPath(LocationBody, key)
}
