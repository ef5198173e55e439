package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/process-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/process-service/internal/domain"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// bodyPolicy says whether an empty request body is acceptable.
type bodyPolicy int

const (
	bodyRequired bodyPolicy = iota
	bodyOptional
)

// validatable is implemented by request DTOs.
type validatable interface {
	Validate() error
}

// parseID reads a positive int64 chi path parameter.
func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidInput(dto.FieldPath(dto.LocationPath, param), "must be a positive integer")
	}
	return id, nil
}

// pathIDs parses params in order and writes the problem response for the
// first bad one.
func pathIDs(w http.ResponseWriter, r *http.Request, params ...string) ([]int64, bool) {
	ids := make([]int64, 0, len(params))
	for _, param := range params {
		id, err := parseID(r, param)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", slog.Any("error", err))
	}
}

// decodeAndValidate reads a required JSON body into dst and validates it.
// It writes the problem response itself and reports whether the handler
// may continue.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	return decode(w, r, dst, bodyRequired)
}

// decodeOptional is decodeAndValidate for endpoints that accept no body.
func decodeOptional[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	return decode(w, r, dst, bodyOptional)
}

func decode[T validatable](w http.ResponseWriter, r *http.Request, dst T, policy bodyPolicy) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil:
		err = dst.Validate()
	case errors.Is(err, io.EOF) && policy == bodyOptional:
		err = dst.Validate()
	default:
		err = bodyError(err)
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// bodyError describes a decode failure without echoing the payload.
func bodyError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		sizeErr   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return invalidInput(dto.FieldPath(dto.LocationBody, typeErr.Field),
			fmt.Sprintf("must be a %s", typeErr.Type))
	case errors.As(err, &syntaxErr):
		return invalidInput(dto.LocationBody, fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset))
	case errors.As(err, &sizeErr):
		return invalidInput(dto.LocationBody, fmt.Sprintf("must not exceed %d bytes", sizeErr.Limit))
	case errors.Is(err, io.EOF):
		return invalidInput(dto.LocationBody, "is required")
	default:
		return invalidInput(dto.LocationBody, "invalid JSON")
	}
}

func invalidInput(location, msg string) *domain.ValidationError {
	return &domain.ValidationError{Fields: map[string]string{location: msg}}
}
