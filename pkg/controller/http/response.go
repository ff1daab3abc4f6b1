package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/vantis-uk/vantis/pkg/domain/model/audit"
	"github.com/vantis-uk/vantis/pkg/usecase"
	"github.com/vantis-uk/vantis/pkg/utils/errutil"
	"github.com/vantis-uk/vantis/pkg/utils/logging"
)

const maxRequestBodySize = 64 * 1024

var errBadRequest = goerr.New("malformed request")

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck // header already committed
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return goerr.Wrap(errBadRequest, "request body is empty")
		}
		return goerr.Wrap(errBadRequest, "invalid JSON body", goerr.V("cause", err.Error()))
	}
	return nil
}

// errorStatus maps use case errors to an HTTP status and a client-facing message
func errorStatus(err error) (int, errorResponse) {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, errorResponse{Error: "malformed request"}
	case errors.Is(err, usecase.ErrSessionNotFound):
		return http.StatusNotFound, errorResponse{Error: "audit session not found"}
	case errors.Is(err, usecase.ErrUnknownQuestion):
		return http.StatusBadRequest, errorResponse{Error: "unknown question"}
	case errors.Is(err, usecase.ErrValidation):
		resp := errorResponse{Error: audit.ValidationHint(err)}
		if ge := goerr.Unwrap(err); ge != nil {
			if field, ok := ge.Values()[audit.FieldKey].(string); ok {
				resp.Field = field
			}
		}
		return http.StatusUnprocessableEntity, resp
	case errors.Is(err, usecase.ErrInvalidTransition):
		return http.StatusConflict, errorResponse{Error: "this step is not available right now"}
	default:
		return http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)}
	}
}

// writeError responds with a JSON error. Server errors go through errutil so they are
// logged with their stack and reported.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, resp := errorStatus(err)
	if status >= http.StatusInternalServerError {
		_ = errutil.Handle(ctx, err, "request failed")
	} else {
		logging.From(ctx).Warn("request rejected", "status", status, "error", err.Error())
	}
	writeJSON(ctx, w, status, resp)
}
