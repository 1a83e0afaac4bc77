// internal/api/handler/site_test.go
package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"commentbox/internal/domain"
)

func TestSiteHome_ServesDemoPageVerbatim(t *testing.T) {
	h := NewSiteHandler(new(MockCommentService))

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	WithRequestContext(Define(h.Home)).ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	// Client-side templates must reach the browser unresolved.
	assert.Contains(t, rec.Body.String(), "{{author}}")
	assert.Contains(t, rec.Body.String(), "<cb-comments>")
}

func TestSitePreview_RendersCallerComments(t *testing.T) {
	svc := new(MockCommentService)
	comment := domain.NewComment("jane", "hello world", uuid.New())
	comment.CreatedAt = time.Date(2026, 3, 1, 9, 5, 0, 0, time.UTC)
	svc.On("ListByOrigin", mock.Anything, "example.com").
		Return([]domain.Comment{*comment}, nil)

	h := NewSiteHandler(svc)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/embed/preview", nil)
	r.Header.Set("Origin", "https://example.com")
	WithRequestContext(Define(h.Preview)).ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "jane")
	assert.Contains(t, body, "hello world")
	assert.Contains(t, body, "2026/3/1 @ 09:05")
	assert.Contains(t, body, "Page 1 of 1")
	// Server-side render resolves every placeholder.
	assert.NotContains(t, body, "{{")
	svc.AssertExpectations(t)
}

func TestSiteScript_ServedWithScriptContentType(t *testing.T) {
	h := NewSiteHandler(new(MockCommentService))

	rec := httptest.NewRecorder()
	h.Script(rec, httptest.NewRequest(http.MethodGet, "/commentbox.js", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/javascript; charset=utf-8", rec.Header().Get("Content-Type"))
}
