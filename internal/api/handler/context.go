// internal/api/handler/context.go
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Origin is the caller's resolved origin. A missing or malformed Origin and
// Referer header leaves both fields unset; downstream domain-scoped
// operations treat that as "no matching domain".
type Origin struct {
	Host string
	Path string
}

// RequestContext carries the per-request state handlers operate on: the
// resolved origin and the decoded (and later sanitized) body fields. It is
// created when a request enters the adapter and discarded with the response.
type RequestContext struct {
	Title  string
	Origin Origin
	Body   map[string]any
}

// ResolveOrigin extracts the caller's origin from the Origin header, falling
// back to Referer. Parse failures yield the zero Origin, never an error.
func ResolveOrigin(r *http.Request) Origin {
	raw := r.Header.Get("Origin")
	if raw == "" {
		raw = r.Header.Get("Referer")
	}
	if raw == "" {
		return Origin{}
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return Origin{}
	}
	return Origin{
		Host: u.Host,
		Path: u.Path,
	}
}

type contextKey struct{}

// WithRequestContext builds the RequestContext once per request, before any
// handler or middleware runs, so the body is only consumed once. Bodies that
// are absent or not valid JSON objects decode to an empty map.
func WithRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc := &RequestContext{
			Title:  r.Method + " " + r.URL.Path,
			Origin: ResolveOrigin(r),
			Body:   map[string]any{},
		}
		if r.Body != nil {
			// Content type is deliberately ignored: the widget posts JSON
			// without setting one.
			_ = json.NewDecoder(r.Body).Decode(&rc.Body)
		}
		ctx := context.WithValue(r.Context(), contextKey{}, rc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the RequestContext installed by WithRequestContext, or
// a fresh empty one if the middleware is not mounted (as in handler tests).
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(contextKey{}).(*RequestContext); ok {
		return rc
	}
	return &RequestContext{Body: map[string]any{}}
}
