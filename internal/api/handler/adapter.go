// internal/api/handler/adapter.go
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"commentbox/internal/api/types"
	"commentbox/internal/util"
)

// Handler is a domain-logic function declaring its outcome abstractly: a
// Result on success, an error otherwise. The adapter translates either into
// a concrete wire response, so handlers never touch the ResponseWriter.
type Handler func(ctx context.Context, req *RequestContext) (*types.Result, error)

// Middleware follows the same contract, except a nil Result with a nil error
// means "continue to the next stage" instead of "emit a response".
type Middleware func(ctx context.Context, req *RequestContext) (*types.Result, error)

// Define wraps a Handler into an http.HandlerFunc. Every returned error is
// converted into an error envelope at this boundary; nothing escapes to
// crash the process.
func Define(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := FromContext(r.Context())
		result, err := h(r.Context(), req)
		if err != nil {
			slog.Error("Handler error", "request", req.Title, "error", err)
			writeError(w, err)
			return
		}
		writeResult(w, result)
	}
}

// DefineMiddleware wraps a Middleware into a chi-style middleware. A nil
// Result passes control to the next stage; anything else terminates the
// request exactly like Define.
func DefineMiddleware(m Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req := FromContext(r.Context())
			result, err := m(r.Context(), req)
			if err != nil {
				slog.Error("Middleware error", "request", req.Title, "error", err)
				writeError(w, err)
				return
			}
			if result == nil {
				next.ServeHTTP(w, r)
				return
			}
			writeResult(w, result)
		})
	}
}

// writeResult normalizes a successful Result into the wire response.
func writeResult(w http.ResponseWriter, result *types.Result) {
	if result == nil {
		result = &types.Result{}
	}

	status := result.Status
	if status == 0 {
		status = http.StatusOK
	}

	switch result.Kind {
	case types.KindHTML:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(result.HTML))

	case types.KindJSON:
		message := result.Message
		if message == "" {
			message = "Success"
		}
		writeJSON(w, status, types.Envelope{
			Error:   false,
			Message: message,
			Data:    result.Data,
		})
	}
}

// writeError normalizes any error into an error envelope. Structured
// *util.Error values contribute their status, message and data; everything
// else becomes a 500 with a generic message so internals never leak.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"
	var data any

	var appErr *util.Error
	if errors.As(err, &appErr) {
		if appErr.Status != 0 {
			status = appErr.Status
		}
		if appErr.Message != "" {
			message = appErr.Message
		}
		data = appErr.Data
	}

	writeJSON(w, status, types.Envelope{
		Error:   true,
		Message: message,
		Data:    data,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
