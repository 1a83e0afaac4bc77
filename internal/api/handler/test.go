// internal/api/handler/test.go
package handler

import (
	"context"
	"log/slog"
	"math/rand"

	"commentbox/internal/api/types"
)

// TestHandler serves the /api/test diagnostic endpoint.
type TestHandler struct{}

// NewTestHandler creates a new TestHandler.
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// LogMiddleware announces test-route traffic and passes the request through,
// exercising the middleware continue contract.
func (h *TestHandler) LogMiddleware(ctx context.Context, req *RequestContext) (*types.Result, error) {
	slog.Info("Test route hit", "request", req.Title)
	return nil, nil
}

// Diagnostics returns a random number and the caller's resolved origin.
// GET /api/test
func (h *TestHandler) Diagnostics(ctx context.Context, req *RequestContext) (*types.Result, error) {
	return types.JSON(0, "", map[string]any{
		"luckyNumber": rand.Intn(100),
		"domain":      req.Origin.Host,
		"path":        req.Origin.Path,
	}), nil
}
